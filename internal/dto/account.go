package dto

import "github.com/tigerbridge/tigerbridge/pkg/numeric"

// Account is the wire shape for both creation and lookup results. Wide
// fields accept a number or decimal string inbound and always render as
// decimal strings; balances must be zero at creation time (the engine
// rejects anything else, see the account flags docs for bit meanings:
// 1=linked, 2=debits_must_not_exceed_credits,
// 4=credits_must_not_exceed_debits, 8=history, 16=imported).
type Account struct {
	ID             numeric.U128 `json:"id"`
	DebitsPending  numeric.U128 `json:"debits_pending"`
	DebitsPosted   numeric.U128 `json:"debits_posted"`
	CreditsPending numeric.U128 `json:"credits_pending"`
	CreditsPosted  numeric.U128 `json:"credits_posted"`
	UserData128    numeric.U128 `json:"user_data_128"`
	UserData64     numeric.U64  `json:"user_data_64"`
	UserData32     uint32       `json:"user_data_32"`
	Ledger         uint32       `json:"ledger"`
	Code           uint16       `json:"code"`
	Flags          uint16       `json:"flags"`
	Timestamp      numeric.U64  `json:"timestamp"`
}

// AccountBalance is one history snapshot for an account created with the
// history flag.
type AccountBalance struct {
	DebitsPending  numeric.U128 `json:"debits_pending"`
	DebitsPosted   numeric.U128 `json:"debits_posted"`
	CreditsPending numeric.U128 `json:"credits_pending"`
	CreditsPosted  numeric.U128 `json:"credits_posted"`
	Timestamp      numeric.U64  `json:"timestamp"`
}

// BatchError is one rejected record of a submitted batch. Index is the
// zero-based position in the submitted batch; records absent from the
// list succeeded.
type BatchError struct {
	Index     uint32 `json:"index"`
	ErrorCode uint32 `json:"error_code"`
	Error     string `json:"error"`
}
