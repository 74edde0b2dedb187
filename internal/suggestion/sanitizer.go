package suggestion

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// The edge classes are ASCII-only, so a trailing non-ASCII letter is trimmed
// ("Quel café" becomes "Quel caf"). Lengths elsewhere count runes.
var (
	leadingJunk  = regexp.MustCompile(`^[^a-zA-Z0-9]+`)
	trailingJunk = regexp.MustCompile(`[^a-zA-Z0-9?]+$`)
	lineBreaks   = strings.NewReplacer("\r", "", "\n", "")
)

// Sanitize turns raw model output into a candidate "a||b||c" string. The
// result may still hold fewer than three questions; see Validate.
//
// Edges are trimmed once on the whole text, before the split. When a
// leading segment is dropped or the three-question cap cuts the tail, the
// result can start or end with punctuation that a second pass would trim.
func Sanitize(raw string) string {
	text := stripQuotes(raw)
	text = lineBreaks.Replace(text)
	text = leadingJunk.ReplaceAllString(text, "")
	text = trailingJunk.ReplaceAllString(text, "")

	kept := make([]string, 0, 3)
	for _, q := range strings.Split(text, Delimiter) {
		q = strings.TrimSpace(q)
		if !strings.HasSuffix(q, "?") && utf8.RuneCountInString(q) < minQuestionLength {
			continue
		}
		kept = append(kept, q)
		if len(kept) == 3 {
			break
		}
	}
	return strings.Join(kept, Delimiter)
}

// stripQuotes drops quote and brace characters. A single quote between two
// letters is an apostrophe ("How's") and stays.
func stripQuotes(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i, r := range runes {
		switch r {
		case '"', '“', '”', '‘', '{', '}':
			continue
		case '\'', '’':
			if !isApostrophe(runes, i) {
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isApostrophe(runes []rune, i int) bool {
	return i > 0 && i < len(runes)-1 &&
		unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1])
}
