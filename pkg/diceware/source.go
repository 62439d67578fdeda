package diceware

import (
	"crypto/rand"
	"math/big"
	"sync"
)

// RandomSource produces uniformly distributed integers in [0, n).
// *math/rand/v2.Rand satisfies it directly, so a seeded PCG source can be
// injected for deterministic tests. Implementations are not required to be
// safe for concurrent use; wrap with NewSyncSource when sharing one source
// across goroutines.
type RandomSource interface {
	// IntN returns a uniform random integer in [0, n). It must panic if n <= 0,
	// matching the math/rand/v2 contract.
	IntN(n int) int
}

type cryptoSource struct{}

// NewCryptoSource returns a RandomSource backed by crypto/rand. Selection is
// bias-free: each draw reads a fresh uniform value in [0, n) rather than
// reducing a wider value modulo n. The source is stateless and safe for
// concurrent use.
//
// IntN panics if the platform CSPRNG fails, which on supported platforms
// indicates an unrecoverable runtime problem rather than a condition callers
// can handle.
func NewCryptoSource() RandomSource {
	return cryptoSource{}
}

func (cryptoSource) IntN(n int) int {
	if n <= 0 {
		panic("diceware: bound must be positive")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("diceware: crypto random source failed: " + err.Error())
	}
	return int(v.Int64())
}

type syncSource struct {
	mu  sync.Mutex
	src RandomSource
}

// NewSyncSource wraps src with a mutex so a single source can be shared by
// concurrent callers. Panics if src is nil to fail fast on misconfiguration.
func NewSyncSource(src RandomSource) RandomSource {
	if src == nil {
		panic("diceware: nil source passed to NewSyncSource")
	}
	return &syncSource{src: src}
}

func (s *syncSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.IntN(n)
}
