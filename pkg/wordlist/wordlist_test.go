package wordlist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laceymwes/deep-dive-diceware/pkg/wordlist"
)

func builtinLists() []struct {
	name  string
	words func() []string
} {
	return []struct {
		name  string
		words func() []string
	}{
		{name: "Short", words: wordlist.Short},
		{name: "Memorable", words: wordlist.Memorable},
	}
}

func TestListInvariants(t *testing.T) {
	t.Parallel()

	for _, tt := range builtinLists() {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			words := tt.words()
			require.NotEmpty(t, words, "built-in list must not be empty")

			seen := make(map[string]bool, len(words))
			for _, w := range words {
				assert.NotEmpty(t, w)
				assert.Equal(t, strings.ToLower(w), w, "word %q must be lower-case", w)
				assert.False(t, seen[w], "word %q appears twice", w)
				seen[w] = true
			}
		})
	}
}

func TestShort_WordLengths(t *testing.T) {
	t.Parallel()

	for _, w := range wordlist.Short() {
		assert.GreaterOrEqual(t, len(w), 3, "word %q is shorter than three letters", w)
		assert.LessOrEqual(t, len(w), 5, "word %q is longer than five letters", w)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	for _, tt := range builtinLists() {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			first := tt.words()
			first[0] = "tampered"

			second := tt.words()
			assert.NotContains(t, second, "tampered",
				"mutating a returned list must not affect the canonical data")
		})
	}
}
