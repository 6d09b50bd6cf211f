// Package amount extracts the monetary value from a message body using a
// three-tier cascade of increasingly permissive patterns.
package amount

import (
	"regexp"
	"strconv"
	"strings"
)

// Numeric tokens outside this range are implausible as transaction amounts
// and are ignored by the fallback tier.
const (
	minPlausible = 10
	maxPlausible = 1_000_000
)

const number = `([0-9][0-9,]*(?:\.[0-9]+)?)`

// Tier 1: currency-tagged and phrasing-anchored patterns. The first
// capturing group that parses to a positive number wins.
var primaryPatterns = []*regexp.Regexp{
	// Currency prefix: Rs.2,599.00 / INR 100 / ₹50 / $20
	regexp.MustCompile(`(?i)(?:\brs\.?|\binr|₹|\$|\busd)\s*\.?\s*` + number),
	// Currency suffix: 2,599.00 INR
	regexp.MustCompile(`(?i)` + number + `\s*(?:(?:rs|inr)\b|₹)`),
	// "amount of X"
	regexp.MustCompile(`(?i)amount\s+of\s+(?:rs\.?|inr|₹)?\s*` + number),
	// Verb + amount: "paid 250", "debited 100.00"
	regexp.MustCompile(`(?i)\b(?:paid|sent|debited|credited|spent|transferred|withdrawn|deducted|received)\s+(?:rs\.?|inr|₹)?\s*` + number),
	// Preposition + amount: "for 199", "worth 2,000"
	regexp.MustCompile(`(?i)\b(?:for|of|worth)\s+(?:rs\.?|inr|₹)?\s*` + number),
	// "X is debited" / "X has been debited"
	regexp.MustCompile(`(?i)` + number + `\s+(?:is|was|has\s+been)\s+(?:debited|deducted|paid|sent|credited)`),
	// "X DR" suffix
	regexp.MustCompile(`(?i)` + number + `\s*dr\b`),
	// Trailing-minus notation: "500.00-"
	regexp.MustCompile(number + `-(?:\s|$)`),
	// Quoted amounts
	regexp.MustCompile(`"` + number + `"`),
}

// Tier 2: looser contextual numeric patterns.
var secondaryPatterns = []*regexp.Regexp{
	// Decimal-formatted number with paise digits
	regexp.MustCompile(`\b([0-9][0-9,]*\.[0-9]{1,2})\b`),
	// Currency glued to digits: "Rs100", "INR2500"
	regexp.MustCompile(`(?i)\b(?:rs|inr)` + number),
	// "balance is X"
	regexp.MustCompile(`(?i)balance\s+(?:is\s+)?(?:rs\.?|inr|₹)?\s*` + number),
}

var numericToken = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?`)

// Extract runs the cascade and returns the positive amount found. A zero
// return with ok=false means extraction failed and the message cannot be a
// valid transaction.
func Extract(body string) (float64, bool) {
	if v := firstMatch(body, primaryPatterns); v > 0 {
		return v, true
	}
	if v := firstMatch(body, secondaryPatterns); v > 0 {
		return v, true
	}
	if v := bestNumericToken(body); v > 0 {
		return v, true
	}
	return 0, false
}

// HasAmountToken reports whether the body carries any pattern tier 1 or
// tier 2 would match. Used by the message classifier as an amount signal
// without committing to a value.
func HasAmountToken(body string) bool {
	for _, re := range primaryPatterns {
		if re.MatchString(body) {
			return true
		}
	}
	for _, re := range secondaryPatterns {
		if re.MatchString(body) {
			return true
		}
	}
	return false
}

// InLakhsOrCrores reports whether the body quotes an amount in lakhs or
// crores. Such figures signal a loan or offer rather than a transaction.
func InLakhsOrCrores(body string) bool {
	return lakhCrore.MatchString(body)
}

var lakhCrore = regexp.MustCompile(`(?i)\b(?:lakh|lakhs|lac|lacs|crore|crores)\b`)

func firstMatch(body string, patterns []*regexp.Regexp) float64 {
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(body, -1) {
			if v := parseNumber(m[1]); v > 0 {
				return v
			}
		}
	}
	return 0
}

// bestNumericToken scans every numeric token, keeps the plausible ones and
// prefers the largest decimal-bearing token over any integer-only token.
// Plain integers in message bodies are usually dates, account digits or
// years, while paise-formatted values are almost always money.
func bestNumericToken(body string) float64 {
	var bestDecimal, bestInteger float64

	for _, tok := range numericToken.FindAllString(body, -1) {
		v := parseNumber(tok)
		if v < minPlausible || v > maxPlausible {
			continue
		}
		if strings.Contains(tok, ".") {
			if v > bestDecimal {
				bestDecimal = v
			}
		} else if v > bestInteger {
			bestInteger = v
		}
	}

	if bestDecimal > 0 {
		return bestDecimal
	}
	return bestInteger
}

func parseNumber(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
