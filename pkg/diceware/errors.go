package diceware

import "errors"

// Package-level error definitions for generator construction and selection.
var (
	// ErrNilSource indicates that no random source was supplied.
	ErrNilSource = errors.New("random source must not be nil")

	// ErrNilWords indicates that no word slice was supplied.
	ErrNilWords = errors.New("word slice must not be nil")

	// ErrEmptyWords indicates that the supplied word slice has no elements.
	ErrEmptyWords = errors.New("word slice must not be empty")

	// ErrNegativeCount indicates that a negative number of words was requested.
	ErrNegativeCount = errors.New("requested word count must not be negative")

	// ErrInsufficientWords indicates that more distinct words were requested
	// than the pool contains.
	ErrInsufficientWords = errors.New("requested distinct word count exceeds pool size")

	// ErrRetryLimitExceeded indicates that the duplicate-rejection loop hit
	// the configured retry cap before collecting enough distinct words.
	ErrRetryLimitExceeded = errors.New("retry limit exceeded during distinct selection")
)
