package modbinomial

import (
	"errors"
	"fmt"
)

// Client provides a high-level API for factor recovery operations.
type Client struct {
	strategies []RecoveryStrategy
	parser     ChallengeParser
	reporter   Reporter
}

// NewClient creates a client with the default settings: the a-coefficient
// attack followed by the b-coefficient fallback, a properties-file parser
// and silent progress.
func NewClient() *Client {
	return &Client{
		strategies: []RecoveryStrategy{
			NewACoefficientStrategy(),
			NewBCoefficientStrategy(),
		},
		parser:   &PropertiesParser{},
		reporter: NopReporter{},
	}
}

// WithStrategies replaces the ordered strategy list.
func (c *Client) WithStrategies(strategies ...RecoveryStrategy) *Client {
	c.strategies = strategies
	return c
}

// WithParser sets a custom challenge parser.
func (c *Client) WithParser(parser ChallengeParser) *Client {
	c.parser = parser
	return c
}

// WithReporter directs progress output to reporter.
func (c *Client) WithReporter(reporter Reporter) *Client {
	c.reporter = reporter
	return c
}

// ErrNoFactorsFound reports that every strategy exhausted without exposing
// a factor. This is the expected terminal outcome for instances that lack
// the two-binomial structure, not a programming error.
var ErrNoFactorsFound = errors.New("no factors found with any strategy")

// SolveFile parses a challenge from source and solves it.
//
// Args:
//   - source: Path to a "key = value" file with N, e1, e2, c1 and c2.
//
// Returns:
//   - Factors if successful, error otherwise.
func (c *Client) SolveFile(source string) (*Factors, error) {
	ch, err := c.parser.ParseChallenge(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse challenge: %w", err)
	}
	return c.Solve(ch)
}

// Solve tries each configured strategy in order and returns the first
// factor pair that reconstructs ch.N. A failed strategy (non-invertible
// coefficient, trivial candidate) only ends that strategy; the next one
// still runs. No strategy is ever retried.
//
// Returns:
//   - Factors with P*Q == N on success, annotated with the winning
//     strategy and the outcome of the ciphertext cross-check.
//   - ErrNoFactorsFound when every strategy fails.
func (c *Client) Solve(ch *Challenge) (*Factors, error) {
	if err := ch.Validate(); err != nil {
		return nil, fmt.Errorf("invalid challenge: %w", err)
	}

	c.reporter.Progressf("solving for p and q, %d strategies configured", len(c.strategies))

	for _, strategy := range c.strategies {
		c.reporter.Progressf("trying strategy %q", strategy.Name())

		factors, err := strategy.Recover(ch, c.reporter)
		if err != nil {
			c.reporter.Progressf("strategy %q failed: %v", strategy.Name(), err)
			continue
		}

		c.verify(ch, factors)
		return factors, nil
	}

	return nil, ErrNoFactorsFound
}

// verify recomputes both ciphertexts from the recovered pair and records
// the outcome on it. A mismatch is reported but does not invalidate the
// pair: P*Q == N already holds, and the coefficient-to-prime assignment
// may simply be swapped relative to the instance that produced c1 and c2.
func (c *Client) verify(ch *Challenge, factors *Factors) {
	factors.C1Match, factors.C2Match = VerifyFactors(ch, factors.P, factors.Q)
	c.reporter.Progressf("ciphertext cross-check: c1 match=%t, c2 match=%t",
		factors.C1Match, factors.C2Match)
}
