package ledgerservice

import (
	"github.com/tigerbeetle/tigerbeetle-go/pkg/types"
	"github.com/tigerbridge/tigerbridge/internal/dto"
	"github.com/tigerbridge/tigerbridge/internal/tb"
	"github.com/tigerbridge/tigerbridge/pkg/numeric"
)

func toEngineAccount(a dto.Account) types.Account {
	return types.Account{
		ID:             tb.ToUint128(a.ID),
		DebitsPending:  tb.ToUint128(a.DebitsPending),
		DebitsPosted:   tb.ToUint128(a.DebitsPosted),
		CreditsPending: tb.ToUint128(a.CreditsPending),
		CreditsPosted:  tb.ToUint128(a.CreditsPosted),
		UserData128:    tb.ToUint128(a.UserData128),
		UserData64:     uint64(a.UserData64),
		UserData32:     a.UserData32,
		Ledger:         a.Ledger,
		Code:           a.Code,
		Flags:          a.Flags,
		Timestamp:      uint64(a.Timestamp),
	}
}

func fromEngineAccount(a types.Account) dto.Account {
	return dto.Account{
		ID:             tb.FromUint128(a.ID),
		DebitsPending:  tb.FromUint128(a.DebitsPending),
		DebitsPosted:   tb.FromUint128(a.DebitsPosted),
		CreditsPending: tb.FromUint128(a.CreditsPending),
		CreditsPosted:  tb.FromUint128(a.CreditsPosted),
		UserData128:    tb.FromUint128(a.UserData128),
		UserData64:     numeric.U64(a.UserData64),
		UserData32:     a.UserData32,
		Ledger:         a.Ledger,
		Code:           a.Code,
		Flags:          a.Flags,
		Timestamp:      numeric.U64(a.Timestamp),
	}
}

func toEngineTransfer(t dto.Transfer) types.Transfer {
	return types.Transfer{
		ID:              tb.ToUint128(t.ID),
		DebitAccountID:  tb.ToUint128(t.DebitAccountID),
		CreditAccountID: tb.ToUint128(t.CreditAccountID),
		Amount:          types.ToUint128(uint64(t.Amount)),
		PendingID:       tb.ToUint128(t.PendingID),
		UserData128:     tb.ToUint128(t.UserData128),
		UserData64:      uint64(t.UserData64),
		UserData32:      t.UserData32,
		Timeout:         t.Timeout,
		Ledger:          t.Ledger,
		Code:            t.Code,
		Flags:           t.Flags,
		Timestamp:       uint64(t.Timestamp),
	}
}

func fromEngineTransfer(t types.Transfer) dto.Transfer {
	return dto.Transfer{
		ID:              tb.FromUint128(t.ID),
		DebitAccountID:  tb.FromUint128(t.DebitAccountID),
		CreditAccountID: tb.FromUint128(t.CreditAccountID),
		Amount:          numeric.U64(tb.FromUint128(t.Amount).Lo()),
		PendingID:       tb.FromUint128(t.PendingID),
		UserData128:     tb.FromUint128(t.UserData128),
		UserData64:      numeric.U64(t.UserData64),
		UserData32:      t.UserData32,
		Timeout:         t.Timeout,
		Ledger:          t.Ledger,
		Code:            t.Code,
		Flags:           t.Flags,
		Timestamp:       numeric.U64(t.Timestamp),
	}
}

func toEngineAccountFilter(f dto.AccountFilter) types.AccountFilter {
	return types.AccountFilter{
		AccountID:    tb.ToUint128(f.AccountID),
		UserData128:  tb.ToUint128(f.UserData128),
		UserData64:   uint64(f.UserData64),
		UserData32:   f.UserData32,
		Code:         f.Code,
		TimestampMin: uint64(f.TimestampMin),
		TimestampMax: uint64(f.TimestampMax),
		Limit:        f.LimitOrDefault(),
		Flags:        f.Flags,
	}
}

func toEngineQueryFilter(f dto.QueryFilter) types.QueryFilter {
	return types.QueryFilter{
		UserData128:  tb.ToUint128(f.UserData128),
		UserData64:   uint64(f.UserData64),
		UserData32:   f.UserData32,
		Ledger:       f.Ledger,
		Code:         f.Code,
		TimestampMin: uint64(f.TimestampMin),
		TimestampMax: uint64(f.TimestampMax),
		Limit:        f.LimitOrDefault(),
		Flags:        f.Flags,
	}
}
