// Package modbinomial recovers the two prime factors of a composite
// modulus from the "modular binomials" construction:
//
//	c1 = (2p + 3q)^e1 mod N
//	c2 = (5p + 7q)^e2 mod N
//
// with N = p*q. Raising each ciphertext to the other equation's exponent
// and stripping the public coefficients with modular inverses produces two
// values that agree modulo one of the secret primes, so the GCD of their
// difference with N exposes that prime.
//
// # Quick Start
//
//	import "github.com/Nziza-Prince/Modular-Binomials-CryptoHack-Solution/pkg/modbinomial"
//
//	// Create a client with default settings
//	client := modbinomial.NewClient()
//
//	// Read N, e1, e2, c1, c2 from a "key = value" file and solve
//	factors, err := client.SolveFile("data.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("p = %s\nq = %s\n", factors.P, factors.Q)
//
// # Strategies
//
// Recovery runs an ordered list of strategies; the first one whose GCD
// candidate divides N nontrivially wins. The default order is the
// a-coefficient attack (isolates q) followed by the b-coefficient attack
// (isolates p); the second covers moduli that share a factor with 2 or 5,
// where the first cannot even invert its coefficients. Custom orders go
// through WithStrategies:
//
//	client := modbinomial.NewClient().
//	    WithStrategies(modbinomial.NewBCoefficientStrategy())
//
// # Custom Strategies
//
// Implement the RecoveryStrategy interface to plug in a different attack:
//
//	type MyStrategy struct{}
//
//	func (s *MyStrategy) Recover(ch *modbinomial.Challenge, r modbinomial.Reporter) (*modbinomial.Factors, error) {
//	    // Your factoring logic
//	}
//
//	func (s *MyStrategy) Name() string {
//	    return "MyCustomStrategy"
//	}
//
// # Limits
//
// The exponent applied to the public coefficients is (e1*e2) mod (N-1), a
// stand-in for the unknown group order. It is exact whenever e1*e2 < N-1
// and heuristic beyond that; instances built outside this construction may
// defeat the attack, in which case Solve returns ErrNoFactorsFound. That
// outcome is expected for such inputs, not an error in the usual sense.
package modbinomial
