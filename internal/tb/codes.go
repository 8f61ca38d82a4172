package tb

// Static result-code tables, maintained against the engine's published
// CreateAccountsResult / CreateTransfersResult lists. A code this build
// does not know (engine version skew) maps to UnknownError instead of
// failing the whole response.

const UnknownError = "UNKNOWN_ERROR"

var accountResultNames = map[uint32]string{
	0:  "OK",
	1:  "LINKED_EVENT_FAILED",
	2:  "LINKED_EVENT_CHAIN_OPEN",
	3:  "TIMESTAMP_MUST_BE_ZERO",
	4:  "RESERVED_FIELD",
	5:  "RESERVED_FLAG",
	6:  "ID_MUST_NOT_BE_ZERO",
	7:  "ID_MUST_NOT_BE_INT_MAX",
	8:  "FLAGS_ARE_MUTUALLY_EXCLUSIVE",
	9:  "DEBITS_PENDING_MUST_BE_ZERO",
	10: "DEBITS_POSTED_MUST_BE_ZERO",
	11: "CREDITS_PENDING_MUST_BE_ZERO",
	12: "CREDITS_POSTED_MUST_BE_ZERO",
	13: "LEDGER_MUST_NOT_BE_ZERO",
	14: "CODE_MUST_NOT_BE_ZERO",
	15: "EXISTS_WITH_DIFFERENT_FLAGS",
	16: "EXISTS_WITH_DIFFERENT_USER_DATA_128",
	17: "EXISTS_WITH_DIFFERENT_USER_DATA_64",
	18: "EXISTS_WITH_DIFFERENT_USER_DATA_32",
	19: "EXISTS_WITH_DIFFERENT_LEDGER",
	20: "EXISTS_WITH_DIFFERENT_CODE",
	21: "EXISTS",
	22: "IMPORTED_EVENT_EXPECTED",
	23: "IMPORTED_EVENT_NOT_EXPECTED",
	24: "IMPORTED_EVENT_TIMESTAMP_OUT_OF_RANGE",
	25: "IMPORTED_EVENT_TIMESTAMP_MUST_NOT_ADVANCE",
	26: "IMPORTED_EVENT_TIMESTAMP_MUST_NOT_REGRESS",
}

var transferResultNames = map[uint32]string{
	0:  "OK",
	1:  "LINKED_EVENT_FAILED",
	2:  "LINKED_EVENT_CHAIN_OPEN",
	3:  "TIMESTAMP_MUST_BE_ZERO",
	4:  "RESERVED_FLAG",
	5:  "ID_MUST_NOT_BE_ZERO",
	6:  "ID_MUST_NOT_BE_INT_MAX",
	7:  "FLAGS_ARE_MUTUALLY_EXCLUSIVE",
	8:  "DEBIT_ACCOUNT_ID_MUST_NOT_BE_ZERO",
	9:  "DEBIT_ACCOUNT_ID_MUST_NOT_BE_INT_MAX",
	10: "CREDIT_ACCOUNT_ID_MUST_NOT_BE_ZERO",
	11: "CREDIT_ACCOUNT_ID_MUST_NOT_BE_INT_MAX",
	12: "ACCOUNTS_MUST_BE_DIFFERENT",
	13: "PENDING_ID_MUST_BE_ZERO",
	14: "PENDING_ID_MUST_NOT_BE_ZERO",
	15: "PENDING_ID_MUST_NOT_BE_INT_MAX",
	16: "PENDING_ID_MUST_BE_DIFFERENT",
	17: "TIMEOUT_RESERVED_FOR_PENDING_TRANSFER",
	18: "AMOUNT_MUST_NOT_BE_ZERO",
	19: "LEDGER_MUST_NOT_BE_ZERO",
	20: "CODE_MUST_NOT_BE_ZERO",
	21: "DEBIT_ACCOUNT_NOT_FOUND",
	22: "CREDIT_ACCOUNT_NOT_FOUND",
	23: "ACCOUNTS_MUST_HAVE_THE_SAME_LEDGER",
	24: "TRANSFER_MUST_HAVE_THE_SAME_LEDGER_AS_ACCOUNTS",
	25: "PENDING_TRANSFER_NOT_FOUND",
	26: "PENDING_TRANSFER_NOT_PENDING",
	27: "PENDING_TRANSFER_HAS_DIFFERENT_DEBIT_ACCOUNT_ID",
	28: "PENDING_TRANSFER_HAS_DIFFERENT_CREDIT_ACCOUNT_ID",
	29: "PENDING_TRANSFER_HAS_DIFFERENT_LEDGER",
	30: "PENDING_TRANSFER_HAS_DIFFERENT_CODE",
	31: "EXCEEDS_PENDING_TRANSFER_AMOUNT",
	32: "PENDING_TRANSFER_HAS_DIFFERENT_AMOUNT",
	33: "PENDING_TRANSFER_ALREADY_POSTED",
	34: "PENDING_TRANSFER_ALREADY_VOIDED",
	35: "PENDING_TRANSFER_EXPIRED",
	36: "EXISTS_WITH_DIFFERENT_FLAGS",
	37: "EXISTS_WITH_DIFFERENT_DEBIT_ACCOUNT_ID",
	38: "EXISTS_WITH_DIFFERENT_CREDIT_ACCOUNT_ID",
	39: "EXISTS_WITH_DIFFERENT_AMOUNT",
	40: "EXISTS_WITH_DIFFERENT_PENDING_ID",
	41: "EXISTS_WITH_DIFFERENT_USER_DATA_128",
	42: "EXISTS_WITH_DIFFERENT_USER_DATA_64",
	43: "EXISTS_WITH_DIFFERENT_USER_DATA_32",
	44: "EXISTS_WITH_DIFFERENT_TIMEOUT",
	45: "EXISTS_WITH_DIFFERENT_CODE",
	46: "EXISTS",
	47: "OVERFLOWS_DEBITS_PENDING",
	48: "OVERFLOWS_CREDITS_PENDING",
	49: "OVERFLOWS_DEBITS_POSTED",
	50: "OVERFLOWS_CREDITS_POSTED",
	51: "OVERFLOWS_DEBITS",
	52: "OVERFLOWS_CREDITS",
	53: "OVERFLOWS_TIMEOUT",
	54: "EXCEEDS_CREDITS",
	55: "EXCEEDS_DEBITS",
	56: "IMPORTED_EVENT_EXPECTED",
	57: "IMPORTED_EVENT_NOT_EXPECTED",
	58: "IMPORTED_EVENT_TIMESTAMP_OUT_OF_RANGE",
	59: "IMPORTED_EVENT_TIMESTAMP_MUST_NOT_ADVANCE",
	60: "IMPORTED_EVENT_TIMESTAMP_MUST_NOT_REGRESS",
	61: "IMPORTED_EVENT_TIMESTAMP_MUST_POSTDATE_DEBIT_ACCOUNT",
	62: "IMPORTED_EVENT_TIMESTAMP_MUST_POSTDATE_CREDIT_ACCOUNT",
	63: "IMPORTED_EVENT_TIMEOUT_MUST_BE_ZERO",
}

func AccountResultName(code uint32) string {
	if name, ok := accountResultNames[code]; ok {
		return name
	}
	return UnknownError
}

func TransferResultName(code uint32) string {
	if name, ok := transferResultNames[code]; ok {
		return name
	}
	return UnknownError
}
