package modbinomial

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/viper"
)

// ChallengeParser defines the interface for reading challenges from
// external sources.
type ChallengeParser interface {
	// ParseChallenge reads the five challenge integers from a source.
	ParseChallenge(source string) (*Challenge, error)
}

// ErrMissingValue reports that a required challenge key is absent from the
// input file.
var ErrMissingValue = errors.New("missing required value")

// PropertiesParser reads "key = value" challenge files.
//
// Expected format:
//
//	N = 77650653673682003687...
//	e1 = 11
//	e2 = 13
//	c1 = 39154126546862096528...
//	c2 = 29417896021376896099...
//
// Key names are configurable; empty fields fall back to the conventional
// N, e1, e2, c1, c2. Values are decimal, or hex with a 0x prefix.
type PropertiesParser struct {
	NKey  string
	E1Key string
	E2Key string
	C1Key string
	C2Key string
}

// ParseChallenge reads a challenge from a properties file.
func (p *PropertiesParser) ParseChallenge(file string) (*Challenge, error) {
	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("properties")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read challenge file: %w", err)
	}

	fields := []struct {
		key      string
		fallback string
		dst      **big.Int
	}{
		{p.NKey, "N", nil},
		{p.E1Key, "e1", nil},
		{p.E2Key, "e2", nil},
		{p.C1Key, "c1", nil},
		{p.C2Key, "c2", nil},
	}

	ch := &Challenge{}
	fields[0].dst = &ch.N
	fields[1].dst = &ch.E1
	fields[2].dst = &ch.E2
	fields[3].dst = &ch.C1
	fields[4].dst = &ch.C2

	for _, f := range fields {
		key := f.key
		if key == "" {
			key = f.fallback
		}
		if !v.IsSet(key) {
			return nil, fmt.Errorf("%w: %s", ErrMissingValue, key)
		}
		z, err := parseBigInt(v.GetString(key))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", key, err)
		}
		*f.dst = z
	}

	return ch, nil
}

// parseBigInt parses a big integer from decimal or 0x-prefixed hex text.
func parseBigInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}

	z, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("invalid number format: %q", s)
	}
	return z, nil
}
