package suggestion_test

import (
	"testing"

	"github.com/saulo-duarte/suggest-messages-lambda/internal/suggestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"ThreeLongQuestions", "How's your day?||What's for lunch||Any weekend plans", true},
		{"TwoSegments", "Hi||Bye", false},
		{"TwoLongSegments", "How's your day going||What's for lunch", false},
		{"FourSegments", "First question here||Second question here||Third question here||Fourth one here", false},
		{"ShortQuestionMark", "Why?||What's for dinner tonight||Any weekend plans", false},
		{"EmptySegment", "How's your day going||||Any weekend plans", false},
		{"Empty", "", false},
		{"ExactlyTenCharacters", "abcdefghij||klmnopqrst||uvwxyz0123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, suggestion.Validate(tt.candidate))
		})
	}
}

func TestParseTriple(t *testing.T) {
	triple, ok := suggestion.ParseTriple("How's your day?||What's for lunch||Any weekend plans")
	require.True(t, ok)
	assert.Equal(t, suggestion.QuestionTriple{"How's your day?", "What's for lunch", "Any weekend plans"}, triple)
	assert.Equal(t, "How's your day?||What's for lunch||Any weekend plans", triple.String())

	_, ok = suggestion.ParseTriple("Hi||Bye")
	assert.False(t, ok)
}
