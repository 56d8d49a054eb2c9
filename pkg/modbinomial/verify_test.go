package modbinomial

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyFactorsMatchesKnownCiphertexts(t *testing.T) {
	ch := midChallenge(t)
	p := mustBig(t, "10712916089")
	q := mustBig(t, "14649436847")

	c1Match, c2Match := VerifyFactors(ch, p, q)
	assert.True(t, c1Match)
	assert.True(t, c2Match)

	// The binomials are not symmetric in p and q, so swapping the roles
	// must change both recomputed ciphertexts.
	c1Match, c2Match = VerifyFactors(ch, q, p)
	assert.False(t, c1Match)
	assert.False(t, c2Match)
}

func TestVerifyFactorsEvenModulus(t *testing.T) {
	// N = 2 * 7 = 14: (2*2 + 3*7) mod 14 = 11 and (5*2 + 7*7) mod 14 = 3.
	ch := challenge(t, "14", "1", "1", "11", "3")

	c1Match, c2Match := VerifyFactors(ch, big.NewInt(2), big.NewInt(7))
	assert.True(t, c1Match)
	assert.True(t, c2Match)
}
