package modbinomial

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustBig parses a base-10 integer literal for test setup.
func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	z, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad integer literal %q", s)
	return z
}

// challenge builds a Challenge from base-10 literals.
func challenge(t *testing.T, n, e1, e2, c1, c2 string) *Challenge {
	t.Helper()
	return &Challenge{
		N:  mustBig(t, n),
		E1: mustBig(t, e1),
		E2: mustBig(t, e2),
		C1: mustBig(t, c1),
		C2: mustBig(t, c2),
	}
}

// A mid-size instance built from the primes 10712916089 and 14649436847
// with e1 = 7, e2 = 17; the ciphertexts follow the defining equations.
func midChallenge(t *testing.T) *Challenge {
	t.Helper()
	return challenge(t,
		"156938187693015731383",
		"7",
		"17",
		"20139761748263328847",
		"65051506559108213514",
	)
}
