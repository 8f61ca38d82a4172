package app

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsServeFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "Nil", err: nil, expected: false},
		{name: "Server closed", err: http.ErrServerClosed, expected: false},
		{name: "Wrapped server closed", err: fmt.Errorf("serve: %w", http.ErrServerClosed), expected: false},
		{name: "Listen failure", err: &net.OpError{Op: "listen", Err: errors.New("address already in use")}, expected: true},
		{name: "Other error", err: errors.New("boom"), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isServeFailure(tt.err))
		})
	}
}
