package dto

import "github.com/tigerbridge/tigerbridge/pkg/numeric"

const defaultFilterLimit = 10

// AccountFilter scopes balance and transfer history to one account. The
// engine filters on exactly the fields given: a zero account_id matches
// nothing, and timestamp_max=0 is a literal upper bound of zero, not
// "unbounded" — callers wanting recent records must send the present
// time explicitly.
type AccountFilter struct {
	AccountID    numeric.U128 `json:"account_id"`
	UserData128  numeric.U128 `json:"user_data_128"`
	UserData64   numeric.U64  `json:"user_data_64"`
	UserData32   uint32       `json:"user_data_32"`
	Code         uint16       `json:"code"`
	TimestampMin numeric.U64  `json:"timestamp_min"`
	TimestampMax numeric.U64  `json:"timestamp_max"`
	Limit        *uint32      `json:"limit,omitempty"`
	Flags        uint32       `json:"flags"`
}

// LimitOrDefault returns 10 when limit was omitted. An explicit value,
// zero included, passes through untouched.
func (f *AccountFilter) LimitOrDefault() uint32 {
	if f.Limit == nil {
		return defaultFilterLimit
	}
	return *f.Limit
}

// QueryFilter is the unanchored variant used by the generic account and
// transfer queries. The same literal-zero timestamp semantics apply.
type QueryFilter struct {
	Ledger       uint32       `json:"ledger"`
	Code         uint16       `json:"code"`
	UserData128  numeric.U128 `json:"user_data_128"`
	UserData64   numeric.U64  `json:"user_data_64"`
	UserData32   uint32       `json:"user_data_32"`
	TimestampMin numeric.U64  `json:"timestamp_min"`
	TimestampMax numeric.U64  `json:"timestamp_max"`
	Limit        *uint32      `json:"limit,omitempty"`
	Flags        uint32       `json:"flags"`
}

func (f *QueryFilter) LimitOrDefault() uint32 {
	if f.Limit == nil {
		return defaultFilterLimit
	}
	return *f.Limit
}
