package modbinomial

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendedGCDBezoutIdentity(t *testing.T) {
	cases := [][2]int64{
		{0, 7}, {7, 0}, {1, 1}, {12, 18}, {240, 46},
		{3233, 61}, {270, 192}, {99991, 3}, {1000003, 5000015},
	}
	for _, c := range cases {
		a, b := big.NewInt(c[0]), big.NewInt(c[1])
		g, x, y := ExtendedGCD(a, b)

		want := new(big.Int).GCD(nil, nil, a, b)
		assert.Zero(t, g.Cmp(want), "gcd mismatch for (%d, %d)", c[0], c[1])

		id := new(big.Int).Mul(a, x)
		id.Add(id, new(big.Int).Mul(b, y))
		assert.Zero(t, id.Cmp(g), "a*x + b*y != g for (%d, %d)", c[0], c[1])
	}
}

func TestExtendedGCDZeroBase(t *testing.T) {
	g, x, y := ExtendedGCD(big.NewInt(0), big.NewInt(7))
	require.Equal(t, int64(7), g.Int64())
	require.Equal(t, int64(0), x.Int64())
	require.Equal(t, int64(1), y.Int64())
}

func TestModInverseExhaustiveSmallModuli(t *testing.T) {
	for m := int64(2); m < 60; m++ {
		for a := int64(1); a < m; a++ {
			inv, err := ModInverse(big.NewInt(a), big.NewInt(m))

			coprime := new(big.Int).GCD(nil, nil, big.NewInt(a), big.NewInt(m)).Int64() == 1
			if !coprime {
				require.ErrorIs(t, err, ErrNoInverse, "a=%d m=%d", a, m)
				continue
			}

			require.NoError(t, err, "a=%d m=%d", a, m)
			require.True(t, inv.Sign() >= 0 && inv.Cmp(big.NewInt(m)) < 0,
				"inverse out of range for a=%d m=%d", a, m)

			prod := new(big.Int).Mul(big.NewInt(a), inv)
			prod.Mod(prod, big.NewInt(m))
			assert.Equal(t, int64(1), prod.Int64(), "a=%d m=%d", a, m)
		}
	}
}

func TestModInverseKnownValues(t *testing.T) {
	n := big.NewInt(3233)

	inv2, err := ModInverse(big.NewInt(2), n)
	require.NoError(t, err)
	assert.Equal(t, int64(1617), inv2.Int64())

	inv5, err := ModInverse(big.NewInt(5), n)
	require.NoError(t, err)
	assert.Equal(t, int64(1940), inv5.Int64())
}

func TestModPowAgainstNaiveReference(t *testing.T) {
	naive := func(base, exp, m int64) int64 {
		r := int64(1) % m
		for i := int64(0); i < exp; i++ {
			r = r * (base % m) % m
		}
		return r
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 250; i++ {
		m := rng.Int63n(999998) + 2
		base := rng.Int63n(1000000)
		exp := rng.Int63n(10000)

		got := ModPow(big.NewInt(base), big.NewInt(exp), big.NewInt(m))
		require.Equal(t, naive(base, exp, m), got.Int64(),
			"base=%d exp=%d m=%d", base, exp, m)
	}
}

func TestModPowEdgeCases(t *testing.T) {
	// Anything to the zeroth power is 1 mod m.
	assert.Equal(t, int64(1), ModPow(big.NewInt(42), big.NewInt(0), big.NewInt(97)).Int64())
	// The ring mod 1 has a single element.
	assert.Equal(t, int64(0), ModPow(big.NewInt(42), big.NewInt(9001), big.NewInt(1)).Int64())
	// Large exponent against a small modulus stays bounded.
	exp := mustBig(t, "123456789123456789123456789")
	got := ModPow(big.NewInt(3), exp, big.NewInt(1000))
	assert.True(t, got.Sign() >= 0 && got.Cmp(big.NewInt(1000)) < 0)
}

func TestGCD(t *testing.T) {
	cases := [][3]int64{
		{0, 5, 5}, {5, 0, 5}, {1, 1, 1}, {12, 18, 6},
		{318, 3233, 53}, {76, 100, 4},
	}
	for _, c := range cases {
		got := GCD(big.NewInt(c[0]), big.NewInt(c[1]))
		assert.Equal(t, c[2], got.Int64(), "gcd(%d, %d)", c[0], c[1])
	}
}
