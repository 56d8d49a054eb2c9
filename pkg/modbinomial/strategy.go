package modbinomial

import (
	"errors"
	"fmt"
	"math/big"
)

// RecoveryStrategy is one self-contained attempt at factoring the modulus.
// Strategies must be pure: the same challenge always yields the same
// outcome. The solver tries its strategies in order and stops at the first
// success.
type RecoveryStrategy interface {
	// Recover attempts to factor ch.N. It returns an error wrapping
	// ErrNoInverse when one of the strategy's coefficients shares a factor
	// with N, and ErrNoFactor when the GCD step produces nothing usable.
	Recover(ch *Challenge, reporter Reporter) (*Factors, error)

	// Name returns a human-readable name for this strategy.
	Name() string
}

// ErrNoFactor reports that a strategy's GCD candidate was trivial (1 or N
// itself) and therefore exposes no factor of the modulus.
var ErrNoFactor = errors.New("candidate exposes no nontrivial factor")

// FactorRole says which of the two secret primes a GCD candidate is read
// as. The a-coefficient algebra isolates q, the b-coefficient algebra p.
type FactorRole int

const (
	RoleQ FactorRole = iota
	RoleP
)

// CoefficientStrategy runs the shared-factor GCD attack using one
// coefficient from each of the two public equations. With
// E = (e1*e2) mod (N-1) it computes
//
//	t1 = second^(-E) * c2^e1 (mod N)
//	t2 = first^(-E) * c1^e2 (mod N)
//
// Reduced modulo the prime whose linear term the inverses cancel, both
// values collapse to the same power of that prime's cofactor, so t1 - t2
// is divisible by exactly one of the two secret primes and gcd(t1-t2, N)
// isolates it.
type CoefficientStrategy struct {
	First  *big.Int   // coefficient taken from the first equation
	Second *big.Int   // coefficient taken from the second equation
	Role   FactorRole // which prime the candidate is interpreted as
	name   string
}

// NewACoefficientStrategy attacks through the p-side coefficients (2, 5);
// the candidate it isolates is q.
func NewACoefficientStrategy() *CoefficientStrategy {
	return &CoefficientStrategy{
		First:  FirstEquation.A,
		Second: SecondEquation.A,
		Role:   RoleQ,
		name:   "a-coefficients",
	}
}

// NewBCoefficientStrategy attacks through the q-side coefficients (3, 7);
// the candidate it isolates is p. It remains usable when N shares a factor
// with 2 or 5 and the a-coefficient stage cannot invert its constants.
func NewBCoefficientStrategy() *CoefficientStrategy {
	return &CoefficientStrategy{
		First:  FirstEquation.B,
		Second: SecondEquation.B,
		Role:   RoleP,
		name:   "b-coefficients",
	}
}

// Name returns the name of this strategy.
func (s *CoefficientStrategy) Name() string {
	return s.name
}

// Recover implements RecoveryStrategy.
func (s *CoefficientStrategy) Recover(ch *Challenge, reporter Reporter) (*Factors, error) {
	n := ch.N

	firstInv, err := ModInverse(s.First, n)
	if err != nil {
		return nil, fmt.Errorf("inverting %s: %w", s.First, err)
	}
	secondInv, err := ModInverse(s.Second, n)
	if err != nil {
		return nil, fmt.Errorf("inverting %s: %w", s.Second, err)
	}

	// The true group order (p-1)(q-1) is unknown, so e1*e2 is reduced
	// modulo N-1 instead. Exact whenever e1*e2 < N-1; see the package
	// documentation for the limits of this stand-in.
	exp := new(big.Int).Mul(ch.E1, ch.E2)
	exp.Mod(exp, new(big.Int).Sub(n, one))

	t1 := ModPow(secondInv, exp, n)
	t1.Mul(t1, ModPow(ch.C2, ch.E1, n))
	t1.Mod(t1, n)

	t2 := ModPow(firstInv, exp, n)
	t2.Mul(t2, ModPow(ch.C1, ch.E2, n))
	t2.Mod(t2, n)

	diff := new(big.Int).Sub(t1, t2)
	diff.Mod(diff, n)
	candidate := GCD(diff, n)

	reporter.Progressf("%s: gcd candidate has %d bits (modulus has %d)",
		s.name, candidate.BitLen(), n.BitLen())

	factors, err := s.assign(n, candidate)
	if err != nil {
		return nil, err
	}
	factors.Strategy = s.name
	return factors, nil
}

// assign turns a candidate divisor into an ordered (p, q) pair. The
// primary reading follows s.Role; if that pair fails to reconstruct N the
// swapped reading is tried before giving up.
func (s *CoefficientStrategy) assign(n, candidate *big.Int) (*Factors, error) {
	if candidate.Cmp(one) <= 0 || candidate.Cmp(n) >= 0 {
		return nil, ErrNoFactor
	}

	cofactor, rem := new(big.Int).QuoRem(n, candidate, new(big.Int))
	if rem.Sign() != 0 {
		return nil, fmt.Errorf("%w: candidate does not divide N", ErrNoFactor)
	}

	primary := &Factors{P: cofactor, Q: candidate}
	if s.Role == RoleP {
		primary = &Factors{P: candidate, Q: cofactor}
	}
	if reconstructs(n, primary) {
		return primary, nil
	}

	swapped := &Factors{P: primary.Q, Q: primary.P}
	if reconstructs(n, swapped) {
		return swapped, nil
	}
	return nil, ErrNoFactor
}

// reconstructs is the hard invariant every returned pair must satisfy.
func reconstructs(n *big.Int, f *Factors) bool {
	return new(big.Int).Mul(f.P, f.Q).Cmp(n) == 0
}
