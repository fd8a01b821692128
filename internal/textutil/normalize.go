package textutil

import (
	"strings"
	"unicode"
)

// NormalizeForMatch produces the canonical form used for exact-name
// comparison: lowercase, "&" expanded to "and", everything except letters,
// digits, and spaces removed, whitespace collapsed and trimmed.
// Idempotent: applying it twice yields the same result.
func NormalizeForMatch(input string) string {
	normalized := strings.ToLower(input)
	normalized = strings.ReplaceAll(normalized, "&", "and")

	var b strings.Builder
	for _, r := range normalized {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// MatchSlug produces the hyphenated form used for slug comparison:
// lowercase, trimmed, everything except letters/digits/spaces/hyphens
// removed, spaces converted to hyphens, hyphen runs collapsed, and
// leading/trailing hyphens trimmed.
func MatchSlug(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))

	var b strings.Builder
	for _, r := range normalized {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-':
			b.WriteByte('-')
		}
	}

	var out strings.Builder
	prevHyphen := false
	for _, r := range b.String() {
		if r == '-' {
			if prevHyphen {
				continue
			}
			prevHyphen = true
		} else {
			prevHyphen = false
		}
		out.WriteRune(r)
	}
	return strings.Trim(out.String(), "-")
}

// Tokenize splits text into its lowercase token set: "&" expands to "and",
// non-alphanumeric runs separate tokens, and duplicates collapse. Tokens are
// returned in first-occurrence order so callers can inspect the leading token.
func Tokenize(input string) []string {
	normalized := strings.ToLower(input)
	normalized = strings.ReplaceAll(normalized, "&", "and")

	raw := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(raw))
	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}
