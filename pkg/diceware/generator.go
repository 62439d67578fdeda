package diceware

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Generator selects random words from a fixed pool built at construction
// time. The pool is deduplicated and lower-cased once and never changes
// afterwards, so a Generator is safe to share between goroutines as long as
// its RandomSource is (see NewSyncSource).
type Generator struct {
	pool       []string
	src        RandomSource
	maxRetries int
}

// New builds a Generator from the supplied words and random source.
//
// Each word is lower-cased with a language-agnostic caser and inserted into
// the pool once, keeping the first occurrence order. The input slice is
// copied, never aliased, so the caller's data stays untouched.
//
// Returns ErrNilSource, ErrNilWords, or ErrEmptyWords when the corresponding
// argument is missing.
func New(words []string, src RandomSource, opts ...Option) (*Generator, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if words == nil {
		return nil, ErrNilWords
	}
	if len(words) == 0 {
		return nil, ErrEmptyWords
	}

	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(words))
	pool := make([]string, 0, len(words))
	for _, word := range words {
		word = lower.String(word)
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		pool = append(pool, word)
	}

	g := &Generator{
		pool: pool,
		src:  src,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Next returns one word drawn uniformly from the pool. Draws are independent
// and with replacement. The pool is guaranteed non-empty by construction, so
// Next cannot fail.
func (g *Generator) Next() string {
	return g.pool[g.src.IntN(len(g.pool))]
}

// NextN returns exactly count words drawn from the pool, in the order they
// were accepted. With allowDuplicates every draw is kept; without it each
// draw already present in the result is rejected and redrawn, so the
// expected number of draws grows sharply as count approaches the pool size.
//
// Returns ErrNegativeCount for a negative count and ErrInsufficientWords
// when count distinct words are requested from a smaller pool. When a retry
// cap is configured via WithMaxRetries the rejection loop aborts with
// ErrRetryLimitExceeded instead of spinning on a degenerate source. No
// partial result is ever returned alongside an error.
func (g *Generator) NextN(count int, allowDuplicates bool) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCount, count)
	}
	if !allowDuplicates && count > len(g.pool) {
		return nil, fmt.Errorf("%w: requested %d distinct words from a pool of %d",
			ErrInsufficientWords, count, len(g.pool))
	}

	selection := make([]string, 0, count)
	var seen map[string]struct{}
	if !allowDuplicates {
		seen = make(map[string]struct{}, count)
	}

	rejected := 0
	for len(selection) < count {
		word := g.Next()
		if !allowDuplicates {
			if _, ok := seen[word]; ok {
				rejected++
				if g.maxRetries > 0 && rejected >= g.maxRetries {
					return nil, fmt.Errorf("%w: %d draws rejected after collecting %d of %d words",
						ErrRetryLimitExceeded, rejected, len(selection), count)
				}
				continue
			}
			seen[word] = struct{}{}
		}
		selection = append(selection, word)
	}
	return selection, nil
}

// Words returns count words with duplicates permitted. It is shorthand for
// NextN(count, true).
func (g *Generator) Words(count int) ([]string, error) {
	return g.NextN(count, true)
}

// PoolSize reports how many distinct words are available for selection.
func (g *Generator) PoolSize() int {
	return len(g.pool)
}

// Pool returns a copy of the deduplicated, lower-cased word pool in
// first-seen order.
func (g *Generator) Pool() []string {
	return slices.Clone(g.pool)
}
