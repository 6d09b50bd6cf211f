// Package sender decides whether a message originates from a trusted
// financial entity.
package sender

import "strings"

// Sender id fragments used by Indian banks. DLT sender ids usually carry a
// route prefix (e.g. "VM-HDFCBK"), so matching is done per token.
var bankCodes = []string{
	"HDFCBK", "HDFC",
	"ICICIB", "ICICI",
	"SBIINB", "SBIPSG", "SBIUPI", "SBI",
	"AXISBK", "AXIS",
	"KOTAKB", "KOTAK",
	"PNBSMS", "PNB",
	"BOIIND", "BOI",
	"BOBTXN", "BOB",
	"CANBNK", "CBI",
	"UNIONB", "UBI",
	"YESBNK", "YES",
	"IDFCFB", "IDFC",
	"INDUSB", "INDUS",
	"FEDBNK", "FEDERAL",
	"CITIBK", "CITI",
	"SCBANK", "HSBC",
	"RBLBNK", "RBL",
	"AUBANK", "DBSBNK",
	"IOBCHN", "IOB",
	"CENTBK", "UCOBNK",
	"KVBANK", "TMBANK",
	"IDBIBK", "IDBI",
}

var paymentCodes = []string{
	"PAYTM", "PYTMBK",
	"PHONPE", "PHONEPE",
	"GPAY", "GOOGLEPAY",
	"AMZNPY", "AMAZONPAY",
	"BHIMPY", "BHIM",
	"MOBIKW", "MOBIKWIK",
	"FRECHG", "FREECHARGE",
	"CREDCL", "CRED",
	"SLICE", "LAZYPY",
	"SIMPL", "JUPITR",
	"NAVIPL", "WHTSPP",
	"UPIPAY", "NPCIUP",
}

// Short codes are too ambiguous for token matching but rare enough to risk
// a plain substring match.
const (
	bankSubstringLimit    = 4
	paymentSubstringLimit = 5
)

// Classifier decides whether a sender id belongs to a trusted financial
// entity. It holds only static curated data and is safe for concurrent use.
type Classifier struct {
	banks    []string
	payments []string
}

// NewClassifier creates a sender classifier with the curated code sets.
func NewClassifier() *Classifier {
	return &Classifier{banks: bankCodes, payments: paymentCodes}
}

// IsTrusted reports whether the sender id matches a known bank or
// payment-app sender code.
func (c *Classifier) IsTrusted(senderID string) bool {
	return c.IsBank(senderID) || c.IsPaymentApp(senderID)
}

// IsBank reports whether the sender id matches a known bank code.
func (c *Classifier) IsBank(senderID string) bool {
	return matches(senderID, c.banks, bankSubstringLimit)
}

// IsPaymentApp reports whether the sender id matches a known payment or
// UPI app code.
func (c *Classifier) IsPaymentApp(senderID string) bool {
	return matches(senderID, c.payments, paymentSubstringLimit)
}

func matches(senderID string, codes []string, substringLimit int) bool {
	id := strings.ToUpper(strings.TrimSpace(senderID))
	if id == "" {
		return false
	}
	tokens := splitTokens(id)

	for _, code := range codes {
		if len(code) <= substringLimit {
			if strings.Contains(id, code) {
				return true
			}
			continue
		}
		for _, tok := range tokens {
			if tok == code {
				return true
			}
		}
	}
	return false
}

// splitTokens breaks a sender id into alphanumeric runs, so route prefixes
// like "VM-" or "AD-" do not defeat whole-token matching.
func splitTokens(id string) []string {
	return strings.FieldsFunc(id, func(r rune) bool {
		return !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9')
	})
}
