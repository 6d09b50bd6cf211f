package classify

import "regexp"

// Vocabulary shared by the message classifier and the direction
// classifier. All checks are case-insensitive and word-boundary-aware so
// "dr" cannot match inside "address".

// Debit vocabulary: any hit means money left the account.
var debitWords = []string{
	"debited", "spent", "debit", "dr", "withdrawn", "sent", "paid",
	"purchase", "payment", "deducted",
}

// Credit vocabulary: money arriving. Only decisive when no debit word
// co-occurs (dual-mention messages count as debits).
var creditWords = []string{
	"credited", "received", "deposited", "refunded", "refund", "cashback credited",
}

// Strong OTP phrases.
var otpStrongWords = []string{
	"otp", "verification code", "security code", "auth code",
	"one time password", "one-time password",
}

// Broader OTP vocabulary, still decisive on its own.
var otpBroadWords = []string{
	"2fa", "passcode", "login code", "do not share", "never share",
	"valid for 10 min", "expires in",
}

// "482910 is your OTP" / "6-digit code" numeric-code shapes.
var otpCodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d{4,8}\s+is\s+your\b`),
	regexp.MustCompile(`(?i)\b\d\s*-?\s*digit\s+code\b`),
	regexp.MustCompile(`(?i)\bcode\s*[:\-]?\s*\d{4,8}\b`),
}

// Promotional vocabulary: direct hits.
var promoWords = []string{
	"offer", "offers", "discount", "cashback offer", "voucher", "coupon",
	"sale ends", "flat off", "apply now", "avail now", "hurry",
	"limited period", "congratulations", "pre-approved", "pre-qualified",
	"exclusive benefits", "reward points", "win ", "lucky draw",
	"maintain an average", "average monthly balance", "average balance",
	"upgrade your", "t&c apply", "tnc apply",
}

// Marketing URL fragments.
var promoURLFragments = []string{
	"http://", "https://", "bit.ly", "tinyurl", "click here",
}

// Compound promotional signals: an invitation phrase plus a percentage or
// amount-range pattern implies marketing even without a direct keyword.
var (
	invitePhrases    = []string{"we invite you", "you are invited", "invites you"}
	percentPattern   = regexp.MustCompile(`\d{1,3}\s*%`)
	amountRangeRe    = regexp.MustCompile(`(?i)\brs\.?\s*\d[\d,]*\s*(?:-|to)\s*(?:rs\.?\s*)?\d[\d,]*`)
	loanOfferWords   = []string{"loan", "get cash", "instant cash", "personal loan"}
	applyWords       = []string{"apply", "avail", "call now"}
	balanceMentions  = []string{"available balance", "avl bal", "avbl bal", "a/c balance", "account balance", "balance in your", "closing balance"}
	cardUsagePhrases = []string{"card", "pos", "swiped", "card ending", "card no"}
)

// Merchant-preposition shapes: "at NAME", "to NAME", "towards NAME".
var merchantPreposition = regexp.MustCompile(`(?i)\b(?:at|to|towards)\s+[A-Za-z]`)
