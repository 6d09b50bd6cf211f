package common

import "strings"

// ContainsWord reports whether text contains word bounded by non-word
// characters or string edges. Matching is case-insensitive. This avoids
// partial-word false positives, e.g. "dr" inside "address".
func ContainsWord(text, word string) bool {
	if word == "" {
		return false
	}
	text = strings.ToLower(text)
	word = strings.ToLower(word)

	for i := 0; i <= len(text)-len(word); {
		j := strings.Index(text[i:], word)
		if j < 0 {
			return false
		}
		start := i + j
		end := start + len(word)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		i = start + 1
	}
	return false
}

// ContainsAnyWord reports whether text contains any of the given words,
// each matched with word boundaries.
func ContainsAnyWord(text string, words ...string) bool {
	for _, w := range words {
		if ContainsWord(text, w) {
			return true
		}
	}
	return false
}

// ContainsAny reports whether text contains any of the given substrings.
// Matching is case-insensitive, with no boundary requirement.
func ContainsAny(text string, subs ...string) bool {
	text = strings.ToLower(text)
	for _, s := range subs {
		if s != "" && strings.Contains(text, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// Tokens splits text into maximal runs of word characters.
func Tokens(text string) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(text); i++ {
		if isWordChar(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}
