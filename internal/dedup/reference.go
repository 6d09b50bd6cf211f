// Package dedup extracts transaction reference numbers, synthesizes
// fingerprints, and suppresses short-term duplicate deliveries.
package dedup

import (
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// A usable reference needs at least this many characters; anything shorter
// is too likely to be a stray token.
const minReferenceLen = 6

// Ordered extraction cascade. The first non-empty, sufficiently long,
// non-date-shaped capture wins.
var referencePatterns = []*regexp.Regexp{
	// Explicit "Ref NNN" forms
	regexp.MustCompile(`(?i)\bref(?:erence)?\s*(?:no\.?|number|#)?\s*[:\-]?\s*([A-Za-z0-9]{6,})`),
	// Labelled transaction / UPI / RRN forms
	regexp.MustCompile(`(?i)\b(?:txn|transaction|utr|rrn|upi)\s*(?:ref)?\s*(?:no\.?|id|number|#)?\s*[:\-]?\s*([A-Za-z0-9]{6,})`),
	// Generic id / number labels
	regexp.MustCompile(`(?i)\b(?:id|number)\s*[:\-]\s*([A-Za-z0-9]{6,})`),
	// UPI rail notation: UPI/P2A/400123456789 or UPI/400123456789
	regexp.MustCompile(`(?i)\bUPI/(?:P2[APM]/)?([0-9]{6,})`),
}

var (
	separatedDate = regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{2,4}$`)
	compactDate   = regexp.MustCompile(`^20\d{6}$`)
)

// ExtractReference returns the first plausible reference number in the
// body, or "" when none is present.
func ExtractReference(body string) string {
	for _, re := range referencePatterns {
		for _, m := range re.FindAllStringSubmatch(body, -1) {
			candidate := strings.TrimSpace(m[1])
			if len(candidate) < minReferenceLen {
				continue
			}
			if looksLikeDate(candidate) {
				continue
			}
			return candidate
		}
	}
	return ""
}

// looksLikeDate filters out captures that are really dates: reference
// labels often sit next to "on 12-04-23" fragments.
func looksLikeDate(s string) bool {
	return separatedDate.MatchString(s) || compactDate.MatchString(s)
}

// Best-effort date or time tokens inside the body, used to anchor a
// synthetic fingerprint to the transaction's own clock.
var timeTokens = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[-/](?:\d{1,2}|[A-Za-z]{3})[-/]\d{2,4}\b`),
	regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\b`),
}

// Fingerprint derives the deduplication fingerprint for a message: the
// explicit reference when one exists, else a synthesized hash of amount,
// the body's own date/time token (falling back to receive-minute
// granularity) and the full body. Distinct unreferenced messages arriving
// in different minutes stay distinct; identical resends within the same
// minute collapse.
func Fingerprint(body string, amt float64, receivedAt time.Time) string {
	if ref := ExtractReference(body); ref != "" {
		return ref
	}
	return Synthesize(body, amt, receivedAt)
}

// Synthesize builds a fingerprint for a message with no usable reference.
func Synthesize(body string, amt float64, receivedAt time.Time) string {
	anchor := bestTimeAnchor(body, receivedAt)
	sum := sha256.Sum256([]byte(body))
	return fmt.Sprintf("%.2f|%s|%x", amt, anchor, sum[:8])
}

func bestTimeAnchor(body string, receivedAt time.Time) string {
	for _, re := range timeTokens {
		if tok := re.FindString(body); tok != "" {
			return tok
		}
	}
	return receivedAt.Format("2006-01-02T15:04")
}
