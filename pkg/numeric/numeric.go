// Package numeric holds the wire-format integer types used on every API
// boundary. TigerBeetle identifiers and amounts are unsigned 64/128-bit
// values that do not survive a float64 JSON number, so the API accepts
// either a JSON number or a decimal string on input and always renders a
// decimal string on output. 32-bit fields stay plain numbers.
package numeric

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

var (
	ErrNotANumber = errors.New("value must be an integer or a decimal string")
	ErrOutOfRange = errors.New("value out of range")
)

var maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// U64 is an unsigned 64-bit wire integer: unmarshals from a JSON number or
// a decimal string, always marshals as a decimal string.
type U64 uint64

func (u U64) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, strconv.FormatUint(uint64(u), 10)), nil
}

func (u *U64) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return err
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return fmt.Errorf("%w: %q exceeds 64 bits", ErrOutOfRange, s)
		}
		return fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	*u = U64(v)
	return nil
}

func (u U64) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

// U128 is an unsigned 128-bit wire integer, stored as two 64-bit halves.
type U128 struct {
	hi, lo uint64
}

func NewU128(hi, lo uint64) U128 {
	return U128{hi: hi, lo: lo}
}

func (u U128) Hi() uint64 { return u.hi }
func (u U128) Lo() uint64 { return u.lo }

func (u U128) BigInt() *big.Int {
	v := new(big.Int).SetUint64(u.hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.lo))
}

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.BigInt().String()
}

func (u U128) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, u.String()), nil
}

func (u *U128) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return err
	}
	v, err := ParseU128(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// ParseU128 parses a decimal-digit string into a U128. Signs, blanks and
// any non-digit reject; so does anything above 2^128-1.
func ParseU128(s string) (U128, error) {
	if s == "" {
		return U128{}, fmt.Errorf("%w: empty string", ErrNotANumber)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return U128{}, fmt.Errorf("%w: %q", ErrNotANumber, s)
		}
	}
	// Fast path for values that fit in 64 bits.
	if len(s) <= 19 {
		lo, err := strconv.ParseUint(s, 10, 64)
		if err == nil {
			return U128{lo: lo}, nil
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return U128{}, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	if v.Cmp(maxU128) > 0 {
		return U128{}, fmt.Errorf("%w: %q exceeds 128 bits", ErrOutOfRange, s)
	}
	var hi, lo big.Int
	hi.Rsh(v, 64)
	lo.And(v, new(big.Int).SetUint64(^uint64(0)))
	return U128{hi: hi.Uint64(), lo: lo.Uint64()}, nil
}

// U128FromBigInt converts a non-negative big.Int of at most 128 bits.
func U128FromBigInt(v *big.Int) (U128, error) {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return U128{}, fmt.Errorf("%w: %s", ErrOutOfRange, v.String())
	}
	var hi, lo big.Int
	hi.Rsh(v, 64)
	lo.And(v, new(big.Int).SetUint64(^uint64(0)))
	return U128{hi: hi.Uint64(), lo: lo.Uint64()}, nil
}

// unquote strips the quotes off a JSON string token, leaving numbers and
// anything else untouched. Null is rejected up front so omitted fields
// must rely on the Go zero value, matching the engine's zero semantics.
func unquote(data []byte) (string, error) {
	if bytes.Equal(data, []byte("null")) {
		return "", fmt.Errorf("%w: null", ErrNotANumber)
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotANumber, data)
		}
		return s, nil
	}
	return string(data), nil
}
