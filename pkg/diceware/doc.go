// Package diceware selects random words from a caller-supplied pool for
// passphrase-style generation.
//
// A Generator normalizes its input once at construction: every word is
// lower-cased and duplicates are collapsed to the first occurrence, so
// "Apple", "apple" and "APPLE" all land in the pool as a single "apple".
// The caller's slice is copied and never mutated. After that the Generator
// draws uniformly from the pool, either one word at a time or in batches
// with or without duplicates.
//
// Randomness is an injected dependency. The RandomSource interface has a
// single method, IntN, shaped after math/rand/v2, which keeps production
// code on crypto-quality randomness (NewCryptoSource) while tests substitute
// seeded or scripted sources for deterministic assertions.
//
// # Usage
//
//	import "github.com/laceymwes/deep-dive-diceware/pkg/diceware"
//
//	gen, err := diceware.New(wordlist.Short(), diceware.NewCryptoSource())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	words, err := gen.NextN(6, false) // six distinct words
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Downstream concerns such as joining the words into a passphrase or
// estimating entropy strength are deliberately left to the caller.
//
// # Error Handling
//
// All failures are reported through sentinel errors comparable with
// errors.Is: ErrNilSource, ErrNilWords and ErrEmptyWords from construction,
// ErrNegativeCount and ErrInsufficientWords from batch selection, and
// ErrRetryLimitExceeded when an optional WithMaxRetries cap is exhausted.
// Either the full requested result is returned or an error, never both.
//
// # Concurrency
//
// A Generator is immutable after construction and performs no locking of its
// own; it is as safe for concurrent use as the RandomSource behind it.
// NewCryptoSource is safe for concurrent use, and NewSyncSource makes any
// other source safe by serializing draws.
package diceware
