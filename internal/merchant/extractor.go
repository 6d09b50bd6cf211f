// Package merchant derives a human-readable counterparty name from a
// message using an ordered cascade of increasingly permissive extractors.
package merchant

import (
	"regexp"
	"strings"

	"github.com/arjunmahishi/sms-ledger/internal/common"
)

// FallbackName is returned when no tier finds anything and cleanup yields
// nothing usable.
const FallbackName = "Unknown"

// tier is one stage of the extraction cascade: a named extractor that may
// decline by returning ok=false.
type tier struct {
	name    string
	extract func(sender, body string) (string, bool)
}

// The cascade, in precedence order. The first tier to produce a candidate
// wins and its output is post-processed; the context-label tier runs last
// and its synthesized labels are already in display form.
var tiers = []tier{
	{name: "known-merchant", extract: knownMerchantTier},
	{name: "bank-pattern", extract: bankPatternTier},
	{name: "generic-recipient", extract: genericRecipientTier},
	{name: "card-pos", extract: cardPOSTier},
	{name: "recurring-payment", extract: recurringTier},
	{name: "upi-id", extract: upiIDTier},
	{name: "remarks-label", extract: remarksTier},
	{name: "capitalized-phrase", extract: capitalizedPhraseTier},
}

// Extract runs the cascade and post-processes the winning candidate. It
// never fails: undecidable messages degrade to a context label or
// FallbackName.
func Extract(sender, body string) string {
	for _, t := range tiers {
		if candidate, ok := t.extract(sender, body); ok {
			return Cleanup(candidate)
		}
	}
	label, _ := contextLabelTier(sender, body)
	return label
}

// IsGenericLabel reports whether an extracted name is a last-resort label
// rather than a real counterparty. Callers can route these for manual
// review.
func IsGenericLabel(name string) bool {
	if name == FallbackName || name == "Bank Transaction" {
		return true
	}
	for _, entry := range contextLabels {
		if name == entry.label {
			return true
		}
	}
	return false
}

// Tier 1: curated known-merchant list.
func knownMerchantTier(_, body string) (string, bool) {
	return LookupKnown(body)
}

// Tier 2: bank-specific phrasings, selected by the bank token found in the
// sender id or the body. Each bank words its messages differently.
var bankPatterns = map[string][]*regexp.Regexp{
	"hdfc": {
		regexp.MustCompile(`(?i)\bInfo:\s*([A-Za-z0-9 @._\-]{2,40}?)(?:[.;]|$)`),
		regexp.MustCompile(`(?i)\bVPA\s+([A-Za-z0-9._\-]+@[A-Za-z]+)`),
		regexp.MustCompile(`(?i)\bto\s+([A-Za-z][A-Za-z0-9 ._&\-]{1,39}?)\s+on\s+\d`),
	},
	"icici": {
		regexp.MustCompile(`(?i);\s*([A-Za-z][A-Za-z ._]{1,29}?)\s+credited\b`),
		regexp.MustCompile(`(?i)\bUPI[-/]([A-Za-z0-9._\-]{2,30})`),
	},
	"sbi": {
		regexp.MustCompile(`(?i)\btrf\s+to\s+([A-Za-z][A-Za-z0-9 ._]{1,29}?)(?:\s+Refno|\s+Ref|[.;]|$)`),
		regexp.MustCompile(`(?i)\btransfer\s+to\s+([A-Za-z][A-Za-z0-9 ._]{1,29}?)(?:[.;]|$)`),
	},
	"axis": {
		regexp.MustCompile(`(?i)\bsent\s+to\s+([A-Za-z0-9 ._@\-]{2,30}?)(?:\s+on\b|[.;]|$)`),
		regexp.MustCompile(`(?i)\bUPI-([A-Za-z0-9._\-]{2,30})`),
	},
	"kotak": {
		regexp.MustCompile(`(?i)\bto\s+([A-Za-z][A-Za-z0-9 ._@\-]{1,29}?)\s+via\b`),
	},
}

var bankTokens = []string{"hdfc", "icici", "sbi", "axis", "kotak"}

func bankPatternTier(sender, body string) (string, bool) {
	haystack := strings.ToLower(sender + " " + body)
	for _, bank := range bankTokens {
		if !strings.Contains(haystack, bank) {
			continue
		}
		for _, re := range bankPatterns[bank] {
			if m := re.FindStringSubmatch(body); m != nil {
				if c := strings.TrimSpace(m[1]); usableCandidate(c) {
					return c, true
				}
			}
		}
	}
	return "", false
}

// Tier 3: generic recipient phrasings shared across senders.
var genericRecipientPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bpaid\s+to\s+([A-Za-z0-9@._][A-Za-z0-9 @._&\-]{1,39}?)(?:\s+(?:on|via|ref|upi|from|is|has|was)\b|[.,;]|$)`),
	regexp.MustCompile(`(?i)\bbeneficiary[:\s]+([A-Za-z][A-Za-z0-9 ._&\-]{1,39}?)(?:\s+(?:on|via|ref)\b|[.,;]|$)`),
	regexp.MustCompile(`(?i)\b(?:NEFT|IMPS|RTGS)\s+to\s+([A-Za-z][A-Za-z0-9 ._&\-]{1,39}?)(?:\s+(?:on|via|ref)\b|[.,;]|$)`),
	regexp.MustCompile(`(?i)\btowards\s+([A-Za-z][A-Za-z0-9 ._&\-]{1,39}?)(?:\s+(?:on|via|ref)\b|[.,;]|$)`),
	regexp.MustCompile(`(?i)\bto\s+([A-Za-z0-9@._][A-Za-z0-9 @._&\-]{1,39}?)(?:\s+(?:on|via|ref|upi)\b|[.,;]|$)`),
}

func genericRecipientTier(_, body string) (string, bool) {
	for _, re := range genericRecipientPatterns {
		if m := re.FindStringSubmatch(body); m != nil {
			if c := strings.TrimSpace(m[1]); usableCandidate(c) {
				return c, true
			}
		}
	}
	return "", false
}

// Tier 4: "at/@" POS patterns, only for messages that actually talk about
// a card or a purchase. "at" is far too common otherwise.
var atPattern = regexp.MustCompile(`(?i)\b(?:at|@)\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,39}?)(?:\s+on\b|[.,;]|$)`)

func cardPOSTier(_, body string) (string, bool) {
	if !common.ContainsAnyWord(body, "card", "pos", "swiped", "purchase", "spent") {
		return "", false
	}
	if m := atPattern.FindStringSubmatch(body); m != nil {
		if c := strings.TrimSpace(m[1]); usableCandidate(c) {
			return c, true
		}
	}
	return "", false
}

// Tier 5: "for/bill/subscription" patterns for recurring payments.
var recurringPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bsubscription\s+(?:to|for)\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,39}?)(?:\s+(?:on|via|ref)\b|[.,;]|$)`),
	regexp.MustCompile(`(?i)\bbill\s+(?:payment\s+)?for\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,39}?)(?:\s+(?:on|via|ref)\b|[.,;]|$)`),
	regexp.MustCompile(`(?i)\bfor\s+([A-Za-z][A-Za-z .&'\-]{1,39}?)\s+(?:bill|subscription|premium|recharge)\b`),
}

func recurringTier(_, body string) (string, bool) {
	for _, re := range recurringPatterns {
		if m := re.FindStringSubmatch(body); m != nil {
			if c := strings.TrimSpace(m[1]); usableCandidate(c) {
				return c, true
			}
		}
	}
	return "", false
}

// Tier 6: bare UPI ids. The local part is mined for purpose words or known
// merchants before falling back to a humanized "(UPI)" form.
var upiID = regexp.MustCompile(`\b([A-Za-z0-9.\-_]{2,})@([A-Za-z]{2,})\b`)

var purposeWords = []string{"rent", "bill", "fee", "fees", "maintenance", "emi", "recharge", "salary", "donation", "tuition"}

func upiIDTier(_, body string) (string, bool) {
	m := upiID.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	id := strings.ToLower(m[1] + "@" + m[2])
	local := strings.ToLower(m[1])

	for _, word := range purposeWords {
		if strings.Contains(local, word) {
			return titleWords(word) + " Payment", true
		}
	}
	if canonical, ok := LookupKnown(local); ok {
		return canonical, true
	}
	if len(local) < 3 || isNumeric(local) {
		return id, true
	}
	return humanizeLocal(local) + " (UPI)", true
}

// humanizeLocal turns "ramesh.kumar92" into "Ramesh Kumar".
func humanizeLocal(local string) string {
	local = strings.TrimRight(local, "0123456789")
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || (r >= '0' && r <= '9')
	})
	return titleWords(strings.Join(parts, " "))
}

// Tier 7: explicit remarks/purpose labels.
var remarksPattern = regexp.MustCompile(`(?i)\b(?:remarks?|purpose|note)\s*[:\-]\s*([A-Za-z0-9][A-Za-z0-9 ._\-]{1,39}?)(?:[.,;]|$)`)

var uninformativeRemarks = map[string]bool{
	"upi": true, "ref": true, "payment": true, "transfer": true,
	"na": true, "none": true, "nil": true, "self": true,
}

func remarksTier(_, body string) (string, bool) {
	m := remarksPattern.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	c := strings.TrimSpace(m[1])
	if !usableCandidate(c) || uninformativeRemarks[strings.ToLower(c)] {
		return "", false
	}
	return c, true
}

// Tier 8: a capitalized phrase shortly after a payment verb.
var (
	paymentVerb       = regexp.MustCompile(`(?i)\b(?:paid|sent|spent|debited|purchase(?:d)?|payment)\b`)
	capitalizedPhrase = regexp.MustCompile(`\b([A-Z][A-Za-z&'.]+(?:\s+[A-Z][A-Za-z&'.]+){0,3})\b`)
)

const capitalizedScanWindow = 50

func capitalizedPhraseTier(_, body string) (string, bool) {
	loc := paymentVerb.FindStringIndex(body)
	if loc == nil {
		return "", false
	}
	end := loc[1] + capitalizedScanWindow
	if end > len(body) {
		end = len(body)
	}
	window := body[loc[1]:end]

	for _, m := range capitalizedPhrase.FindAllStringSubmatch(window, -1) {
		if c := strings.TrimSpace(m[1]); usableCandidate(c) && len(c) > 2 {
			return c, true
		}
	}
	return "", false
}

// Tier 9: context-aware generic labels. A decision table keyed by keyword
// combinations; always produces something.
var contextLabels = []struct {
	label string
	keys  []string
}{
	{label: "UPI P2P Transfer", keys: []string{"upi", "p2p"}},
	{label: "UPI Merchant Payment", keys: []string{"upi", "p2m"}},
	{label: "International POS Purchase", keys: []string{"pos", "international"}},
	{label: "POS Purchase", keys: []string{"pos"}},
	{label: "ATM Withdrawal", keys: []string{"atm"}},
	{label: "NEFT Transfer", keys: []string{"neft"}},
	{label: "IMPS Transfer", keys: []string{"imps"}},
	{label: "RTGS Transfer", keys: []string{"rtgs"}},
	{label: "ECS Payment", keys: []string{"ecs"}},
	{label: "EMI Payment", keys: []string{"emi"}},
	{label: "Electricity Bill", keys: []string{"bill", "electricity"}},
	{label: "Bill Payment", keys: []string{"bill"}},
	{label: "UPI Payment", keys: []string{"upi"}},
	{label: "Card Payment", keys: []string{"card"}},
}

func contextLabelTier(_, body string) (string, bool) {
	for _, entry := range contextLabels {
		all := true
		for _, key := range entry.keys {
			if !common.ContainsWord(body, key) {
				all = false
				break
			}
		}
		if all {
			return entry.label, true
		}
	}
	return "Bank Transaction", true
}

// Generic nouns that regularly show up where a name should be.
var genericNouns = map[string]bool{
	"account": true, "customer": true, "bank": true, "you": true,
	"your": true, "a/c": true, "ac": true, "card": true, "upi": true,
	"the": true, "merchant": true,
}

// usableCandidate rejects captures that cannot be a counterparty: empty,
// purely numeric, or a generic noun.
func usableCandidate(c string) bool {
	c = strings.TrimSpace(c)
	if len(c) < 2 {
		return false
	}
	if isNumeric(c) {
		return false
	}
	return !genericNouns[strings.ToLower(c)]
}

func isNumeric(s string) bool {
	seen := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seen = true
		case r == ' ' || r == ',' || r == '.' || r == '-':
		default:
			return false
		}
	}
	return seen
}
