package tb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountResultName(t *testing.T) {
	tests := []struct {
		name     string
		code     uint32
		expected string
	}{
		{name: "Ok", code: 0, expected: "OK"},
		{name: "Exists", code: 21, expected: "EXISTS"},
		{name: "Debits posted must be zero", code: 10, expected: "DEBITS_POSTED_MUST_BE_ZERO"},
		{name: "Unknown code from newer engine", code: 9999, expected: UnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AccountResultName(tt.code))
		})
	}
}

func TestTransferResultName(t *testing.T) {
	tests := []struct {
		name     string
		code     uint32
		expected string
	}{
		{name: "Ok", code: 0, expected: "OK"},
		{name: "Exists", code: 46, expected: "EXISTS"},
		{name: "Accounts must be different", code: 12, expected: "ACCOUNTS_MUST_BE_DIFFERENT"},
		{name: "Unknown code from newer engine", code: 9999, expected: UnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TransferResultName(tt.code))
		})
	}
}
