package modbinomial

import (
	"errors"
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// ErrNoInverse is returned by ModInverse when gcd(a, m) != 1 and the
// inverse therefore does not exist. Against a composite modulus this often
// means a shares a factor with m, which callers may treat as information
// rather than failure.
var ErrNoInverse = errors.New("modular inverse does not exist")

// ExtendedGCD computes g = gcd(a, b) together with Bézout coefficients
// x, y such that a*x + b*y = g.
//
// This is the iterative form of the classic recursion (base case a == 0
// yields (b, 0, 1)), so the stack stays flat however large the inputs are.
// Both inputs are expected to be non-negative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Div(oldR, r)
		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}

	return oldR, oldS, oldT
}

// ModInverse returns x in [0, m) such that a*x ≡ 1 (mod m).
//
// Returns:
//   - The inverse if a and m are coprime.
//   - An error wrapping ErrNoInverse otherwise.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	g, x, _ := ExtendedGCD(a, m)
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: gcd(%s, m) = %s", ErrNoInverse, a, g)
	}
	return x.Mod(x, m), nil
}

// ModPow returns base^exp mod modulus, with the result in [0, modulus).
// exp must be non-negative; exponents as large as the modulus itself are
// fine, the loop cost is governed by the exponent's bit length.
func ModPow(base, exp, modulus *big.Int) *big.Int {
	if modulus.Cmp(one) == 0 {
		return big.NewInt(0)
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exp)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		e.Rsh(e, 1)
		b.Mul(b, b)
		b.Mod(b, modulus)
	}

	return result
}

// GCD returns the greatest common divisor of a and b by plain Euclid.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)

	for y.Sign() != 0 {
		x, y = y, new(big.Int).Mod(x, y)
	}
	return x
}
