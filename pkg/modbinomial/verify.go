package modbinomial

import (
	"math/big"

	"github.com/cronokirby/saferith"
)

// VerifyFactors recomputes both challenge ciphertexts from a recovered
// factor pair and reports which of them match. The arithmetic runs on
// saferith rather than math/big, so the cross-check shares no code with
// the attack path that produced the pair.
func VerifyFactors(ch *Challenge, p, q *big.Int) (c1Match, c2Match bool) {
	// saferith exponentiation wants an odd modulus. Even N only shows up in
	// degenerate instances (a recovered factor of 2); recompute those with
	// the plain arithmetic instead.
	if ch.N.Bit(0) == 0 {
		return verifyWithModPow(ch, p, q)
	}

	n := saferith.ModulusFromNat(natFromBig(ch.N))
	pNat := natFromBig(p)
	qNat := natFromBig(q)

	c1 := evalBinomial(FirstEquation, pNat, qNat, natFromBig(ch.E1), n)
	c2 := evalBinomial(SecondEquation, pNat, qNat, natFromBig(ch.E2), n)

	return bigFromNat(c1).Cmp(ch.C1) == 0, bigFromNat(c2).Cmp(ch.C2) == 0
}

func verifyWithModPow(ch *Challenge, p, q *big.Int) (c1Match, c2Match bool) {
	eval := func(coeff CoefficientPair, e *big.Int) *big.Int {
		base := new(big.Int).Mul(coeff.A, p)
		base.Add(base, new(big.Int).Mul(coeff.B, q))
		return ModPow(base, e, ch.N)
	}
	return eval(FirstEquation, ch.E1).Cmp(ch.C1) == 0,
		eval(SecondEquation, ch.E2).Cmp(ch.C2) == 0
}

// evalBinomial computes (a*p + b*q)^e mod n.
func evalBinomial(coeff CoefficientPair, p, q, e *saferith.Nat, n *saferith.Modulus) *saferith.Nat {
	ap := new(saferith.Nat).Mul(natFromBig(coeff.A), p, -1)
	bq := new(saferith.Nat).Mul(natFromBig(coeff.B), q, -1)
	base := new(saferith.Nat).ModAdd(ap, bq, n)
	return new(saferith.Nat).Exp(base, e, n)
}

func natFromBig(z *big.Int) *saferith.Nat {
	return new(saferith.Nat).SetBytes(z.Bytes())
}

func bigFromNat(n *saferith.Nat) *big.Int {
	return new(big.Int).SetBytes(n.Bytes())
}
