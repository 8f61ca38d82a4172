package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) Response {
	var resp Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestSuccess(t *testing.T) {
	rr := httptest.NewRecorder()
	Success(rr, "ok", map[string]int{"n": 1})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	resp := decode(t, rr)
	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "ok", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestErrorTransportMatchesEnvelopeCode(t *testing.T) {
	rr := httptest.NewRecorder()
	Error(rr, http.StatusForbidden, "Superuser privileges required")

	assert.Equal(t, http.StatusForbidden, rr.Code)

	resp := decode(t, rr)
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestErrorOmitsEmptyFields(t *testing.T) {
	rr := httptest.NewRecorder()
	Error(rr, http.StatusUnauthorized, "Not authenticated")

	var raw map[string]json.RawMessage
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	assert.NotContains(t, raw, "data")
	assert.NotContains(t, raw, "errors")
}

func TestPartialError(t *testing.T) {
	rr := httptest.NewRecorder()
	PartialError(rr, "Some accounts failed to create", []map[string]any{
		{"index": 0, "error_code": 21, "error": "EXISTS"},
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp := decode(t, rr)
	assert.Equal(t, StatusPartialError, resp.Status)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NotNil(t, resp.Errors)
}

func TestErrorWith(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorWith(rr, http.StatusBadRequest, "Email already registered", []FieldError{
		{Field: "email", Message: "Email already exists"},
	})

	var resp struct {
		Errors []FieldError `json:"errors"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, []FieldError{{Field: "email", Message: "Email already exists"}}, resp.Errors)
}
