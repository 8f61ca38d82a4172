package dto

import "github.com/tigerbridge/tigerbridge/pkg/numeric"

// Transfer is the wire shape for both creation and lookup results.
// Flags: 1=linked, 2=pending, 4=post_pending_transfer,
// 8=void_pending_transfer, 16=imported. Timeout only applies to pending
// transfers; pending_id references the pending transfer being posted or
// voided.
type Transfer struct {
	ID              numeric.U128 `json:"id"`
	DebitAccountID  numeric.U128 `json:"debit_account_id"`
	CreditAccountID numeric.U128 `json:"credit_account_id"`
	Amount          numeric.U64  `json:"amount"`
	PendingID       numeric.U128 `json:"pending_id"`
	UserData128     numeric.U128 `json:"user_data_128"`
	UserData64      numeric.U64  `json:"user_data_64"`
	UserData32      uint32       `json:"user_data_32"`
	Timeout         uint32       `json:"timeout"`
	Ledger          uint32       `json:"ledger"`
	Code            uint16       `json:"code"`
	Flags           uint16       `json:"flags"`
	Timestamp       numeric.U64  `json:"timestamp"`
}
