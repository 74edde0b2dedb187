package suggestion

import (
	"strings"
	"unicode/utf8"
)

// Validate reports whether candidate holds exactly three questions of at
// least ten characters each. Question-mark termination is not required.
func Validate(candidate string) bool {
	parts := strings.Split(candidate, Delimiter)
	if len(parts) != 3 {
		return false
	}
	for _, q := range parts {
		if utf8.RuneCountInString(strings.TrimSpace(q)) < minQuestionLength {
			return false
		}
	}
	return true
}
