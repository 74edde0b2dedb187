package suggestion

import "strings"

// Delimiter joins the three questions on the wire.
const Delimiter = "||"

const minQuestionLength = 10

// QuestionTriple holds three conversation-starter questions in order.
type QuestionTriple [3]string

func (t QuestionTriple) String() string {
	return strings.Join(t[:], Delimiter)
}

// ParseTriple validates candidate and splits it into a QuestionTriple.
func ParseTriple(candidate string) (QuestionTriple, bool) {
	var t QuestionTriple
	if !Validate(candidate) {
		return t, false
	}
	for i, q := range strings.Split(candidate, Delimiter) {
		t[i] = strings.TrimSpace(q)
	}
	return t, true
}

type SuggestionResponse struct {
	Summary string `json:"summary" example:"How's your day going||What's for lunch||Any weekend plans"`
}
