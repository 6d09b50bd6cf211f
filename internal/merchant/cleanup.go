package merchant

import (
	"fmt"
	"regexp"
	"strings"
)

// Post-processing patterns.
var (
	maskedAccount    = regexp.MustCompile(`(?i)^(?:a/c\s*(?:no\.?)?\s*)?[x*]+[\s\-]?(\d{2,4})$`)
	transferWithNum  = regexp.MustCompile(`(?i)^(neft|imps|rtgs|upi|ach)[\s\-/]*(\d{2,})$`)
	bareTransferType = regexp.MustCompile(`(?i)^(neft|imps|rtgs|upi|ach)$`)
	embeddedRefCode  = regexp.MustCompile(`\b[A-Za-z]*\d[A-Za-z0-9]{9,}\b`)
	embeddedDate     = regexp.MustCompile(`\b\d{1,2}[-/](?:\d{1,2}|[A-Za-z]{3})[-/]\d{2,4}\b`)
	punctRun         = regexp.MustCompile(`[.,;:/\\|]+`)
	spaceRun         = regexp.MustCompile(`\s{2,}`)
)

// Tokens that add nothing to a merchant name. Bank names appear because
// payment rails embed them next to the actual payee.
var noiseTokens = map[string]bool{
	"pvt": true, "ltd": true, "limited": true, "llp": true, "inc": true,
	"corp": true, "india": true, "ind": true, "in": true, "bal": true,
	"ref": true, "ecom": true, "intl": true, "txn": true,
	"hdfc": true, "icici": true, "sbi": true, "axis": true, "kotak": true,
	"avl": true,
}

// Business-suffix vocabulary used to distinguish businesses from probable
// person names.
var businessSuffixes = []string{
	"pvt", "ltd", "limited", "llp", "inc", "corp", "co", "enterprises",
	"traders", "technologies", "solutions", "services", "store", "mart",
	"agencies", "industries", "retail",
}

// Cleanup normalizes a raw candidate into a display name. It applies
// regardless of which tier produced the candidate.
func Cleanup(candidate string) string {
	original := candidate
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return FallbackName
	}

	// UPI ids survive untouched apart from standardized casing.
	if strings.Contains(candidate, "@") {
		return strings.ToLower(candidate)
	}

	// Masked account numbers collapse to their visible digits.
	if m := maskedAccount.FindStringSubmatch(candidate); m != nil {
		return "Account " + m[1]
	}

	// Bare transfer rails with or without trailing digits.
	if m := transferWithNum.FindStringSubmatch(candidate); m != nil {
		return fmt.Sprintf("%s Account %s", strings.ToUpper(m[1]), m[2])
	}
	if m := bareTransferType.FindStringSubmatch(candidate); m != nil {
		return strings.ToUpper(m[1]) + " Transfer"
	}

	// Prefer curated capitalization when the candidate is a known merchant.
	if canonical, ok := LookupKnown(candidate); ok {
		return canonical
	}

	isBusiness := hasBusinessSuffix(candidate)

	// Strip embedded reference codes, dates and punctuation runs.
	candidate = embeddedRefCode.ReplaceAllString(candidate, " ")
	candidate = embeddedDate.ReplaceAllString(candidate, " ")
	candidate = punctRun.ReplaceAllString(candidate, " ")

	// Drop noise tokens.
	words := strings.Fields(candidate)
	kept := words[:0]
	for _, w := range words {
		if noiseTokens[strings.ToLower(w)] {
			continue
		}
		kept = append(kept, w)
	}
	candidate = spaceRun.ReplaceAllString(strings.TrimSpace(strings.Join(kept, " ")), " ")

	if len(candidate) < 2 {
		return firstWordFallback(original)
	}

	if isBusiness {
		return titleBusiness(candidate)
	}
	return titleWords(candidate)
}

func hasBusinessSuffix(candidate string) bool {
	lower := strings.ToLower(candidate)
	for _, suffix := range businessSuffixes {
		if strings.Contains(lower, suffix) {
			return true
		}
	}
	return false
}

// titleWords applies person-name casing: every purely alphabetic word is
// title-cased; tokens carrying digits or punctuation stay as they are.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if !isAlphaWord(w) {
			continue
		}
		lower := strings.ToLower(w)
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}

func isAlphaWord(w string) bool {
	for _, r := range w {
		if !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return len(w) > 0
}

// titleBusiness title-cases business names but keeps short all-caps tokens
// (acronyms like "KFC", "TVS") as they are.
func titleBusiness(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) <= 3 && w == strings.ToUpper(w) {
			continue
		}
		lower := strings.ToLower(w)
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}

// firstWordFallback recovers the first usable word from the original
// candidate once cleanup has eaten everything.
func firstWordFallback(original string) string {
	for _, w := range strings.Fields(original) {
		w = punctRun.ReplaceAllString(w, "")
		if len(w) >= 2 && !noiseTokens[strings.ToLower(w)] {
			return titleWords(w)
		}
	}
	return FallbackName
}
