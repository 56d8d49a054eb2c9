package modbinomial

import (
	"errors"
	"fmt"
	"math/big"
)

// Challenge holds the public values of one modular binomials instance.
// This is the core type used throughout the package.
type Challenge struct {
	N  *big.Int // Public modulus, product of the two secret primes
	E1 *big.Int // Exponent of the first equation
	E2 *big.Int // Exponent of the second equation
	C1 *big.Int // (2p + 3q)^e1 mod N
	C2 *big.Int // (5p + 7q)^e2 mod N
}

// ErrIncompleteChallenge reports that one or more of the five required
// values is absent.
var ErrIncompleteChallenge = errors.New("challenge is missing required values")

// Validate checks the preconditions the solver relies on. It does not test
// N for actually being a semiprime; only the relations the attack needs.
func (ch *Challenge) Validate() error {
	for _, v := range []*big.Int{ch.N, ch.E1, ch.E2, ch.C1, ch.C2} {
		if v == nil {
			return ErrIncompleteChallenge
		}
	}
	if ch.N.Cmp(one) <= 0 {
		return fmt.Errorf("modulus must exceed 1, got %s", ch.N)
	}
	if ch.E1.Sign() <= 0 || ch.E2.Sign() <= 0 {
		return errors.New("exponents must be positive")
	}
	if ch.C1.Sign() < 0 || ch.C1.Cmp(ch.N) >= 0 {
		return errors.New("c1 must lie in [0, N)")
	}
	if ch.C2.Sign() < 0 || ch.C2.Cmp(ch.N) >= 0 {
		return errors.New("c2 must lie in [0, N)")
	}
	return nil
}

// CoefficientPair is one fixed public (a, b) pair from the binomial
// equations, with a multiplying p and b multiplying q.
type CoefficientPair struct {
	A *big.Int
	B *big.Int
}

// The challenge construction fixes the coefficients of both equations.
var (
	FirstEquation  = CoefficientPair{A: big.NewInt(2), B: big.NewInt(3)}
	SecondEquation = CoefficientPair{A: big.NewInt(5), B: big.NewInt(7)}
)

// Factors contains the result of a successful recovery.
type Factors struct {
	P        *big.Int // First prime factor
	Q        *big.Int // Second prime factor, P*Q == N
	Strategy string   // Name of the strategy that produced the pair
	C1Match  bool     // Recomputed c1 matches the challenge (informational)
	C2Match  bool     // Recomputed c2 matches the challenge (informational)
}
