package diceware

// Option configures optional Generator behavior.
type Option func(*Generator)

// WithMaxRetries caps the number of rejected draws a single distinct
// selection call will tolerate before giving up with ErrRetryLimitExceeded.
// The default of zero keeps the rejection loop unbounded, which matches the
// classic diceware behavior but can spin on a degenerate random source.
// Non-positive values are ignored.
func WithMaxRetries(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxRetries = n
		}
	}
}
