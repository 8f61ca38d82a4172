package tb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tigerbridge/tigerbridge/pkg/numeric"
)

func TestUint128RoundTrip(t *testing.T) {
	values := []string{
		"0",
		"1",
		"18446744073709551615",
		"18446744073709551616",
		"170141183460469231731687303715884105728", // 2^127
		"340282366920938463463374607431768211455", // 2^128-1
	}

	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			u, err := numeric.ParseU128(v)
			assert.NoError(t, err)

			back := FromUint128(ToUint128(u))
			assert.Equal(t, v, back.String())
		})
	}
}
