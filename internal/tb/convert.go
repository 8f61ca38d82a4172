package tb

import (
	"github.com/tigerbeetle/tigerbeetle-go/pkg/types"
	"github.com/tigerbridge/tigerbridge/pkg/numeric"
)

// ToUint128 converts a wire U128 into the engine's native representation.
func ToUint128(v numeric.U128) types.Uint128 {
	return types.BigIntToUint128(*v.BigInt())
}

// FromUint128 converts an engine value back to the wire type. The engine
// can't hand back anything wider than 128 bits, so the error path is
// unreachable and swallowed.
func FromUint128(v types.Uint128) numeric.U128 {
	bi := v.BigInt()
	u, _ := numeric.U128FromBigInt(&bi)
	return u
}
