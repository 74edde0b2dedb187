package suggestion

import (
	"fmt"
	"math/rand/v2"
)

var defaultFallbackQuestions = []string{
	"What's your favorite movie||How's the weather today||Got any fun plans",
	"What music do you like||Had any good food lately||Seen any good shows",
	"How was your weekend||What makes you happy||Tell me about your day",
}

// FallbackCatalog is the fixed set of canned triples served whenever the
// model is unavailable or its output is unusable. It is never mutated after
// construction and is safe for concurrent use.
type FallbackCatalog struct {
	triples []QuestionTriple
	pick    func(n int) int
}

// NewFallbackCatalog sanitizes and validates every entry. pick returns an
// index in [0, n); nil selects uniformly at random.
func NewFallbackCatalog(entries []string, pick func(n int) int) (*FallbackCatalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("fallback catalog: no entries")
	}
	if pick == nil {
		pick = rand.IntN
	}

	triples := make([]QuestionTriple, 0, len(entries))
	for _, e := range entries {
		t, ok := ParseTriple(Sanitize(e))
		if !ok {
			return nil, fmt.Errorf("fallback catalog: invalid entry %q", e)
		}
		triples = append(triples, t)
	}
	return &FallbackCatalog{triples: triples, pick: pick}, nil
}

func DefaultFallbackCatalog() *FallbackCatalog {
	c, err := NewFallbackCatalog(defaultFallbackQuestions, nil)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *FallbackCatalog) Random() QuestionTriple {
	return c.triples[c.pick(len(c.triples))]
}

// Contains reports whether t is one of the catalog triples.
func (c *FallbackCatalog) Contains(t QuestionTriple) bool {
	for _, known := range c.triples {
		if known == t {
			return true
		}
	}
	return false
}

// Len returns the number of catalog triples.
func (c *FallbackCatalog) Len() int {
	return len(c.triples)
}
