package suggestion_test

import (
	"testing"

	"github.com/saulo-duarte/suggest-messages-lambda/internal/suggestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var documentedFallbacks = []string{
	"What's your favorite movie||How's the weather today||Got any fun plans",
	"What music do you like||Had any good food lately||Seen any good shows",
	"How was your weekend||What makes you happy||Tell me about your day",
}

func TestDefaultFallbackCatalog(t *testing.T) {
	c := suggestion.DefaultFallbackCatalog()
	require.Equal(t, 3, c.Len())

	for i := 0; i < 50; i++ {
		got := c.Random()
		assert.Contains(t, documentedFallbacks, got.String())
		assert.True(t, suggestion.Validate(got.String()))
	}
}

func TestFallbackCatalogPicker(t *testing.T) {
	for i, want := range documentedFallbacks {
		idx := i
		c, err := suggestion.NewFallbackCatalog(documentedFallbacks, func(n int) int {
			assert.Equal(t, 3, n)
			return idx
		})
		require.NoError(t, err)
		assert.Equal(t, want, c.Random().String())
	}
}

func TestNewFallbackCatalogRejectsInvalidEntries(t *testing.T) {
	_, err := suggestion.NewFallbackCatalog(nil, nil)
	assert.Error(t, err)

	_, err = suggestion.NewFallbackCatalog([]string{"Hi||Bye"}, nil)
	assert.Error(t, err)
}

func TestFallbackCatalogContains(t *testing.T) {
	c := suggestion.DefaultFallbackCatalog()

	known, ok := suggestion.ParseTriple(documentedFallbacks[1])
	require.True(t, ok)
	assert.True(t, c.Contains(known))

	other, ok := suggestion.ParseTriple("How's your day?||What's for lunch||Any weekend plans")
	require.True(t, ok)
	assert.False(t, c.Contains(other))
}
