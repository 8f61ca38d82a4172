package accounts

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tigerbridge/tigerbridge/internal/dto"
	"github.com/tigerbridge/tigerbridge/pkg/numeric"
	"github.com/tigerbridge/tigerbridge/pkg/response"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AccountsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestCreateAccountsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		body            string
		prepareMock     func()
		expectedCode    int
		expectedStatus  string
		expectedMessage string
	}{
		{
			name: "Full success",
			body: `[{"id":"1","ledger":1,"code":718}]`,
			prepareMock: func() {
				service.EXPECT().CreateAccounts(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedCode:    http.StatusOK,
			expectedStatus:  response.StatusSuccess,
			expectedMessage: "All accounts created successfully",
		},
		{
			name: "Partial failure",
			body: `[{"id":"1","ledger":1,"code":718}]`,
			prepareMock: func() {
				service.EXPECT().CreateAccounts(gomock.Any(), gomock.Any()).Return([]dto.BatchError{
					{Index: 0, ErrorCode: 21, Error: "EXISTS"},
				}, nil)
			},
			expectedCode:    http.StatusBadRequest,
			expectedStatus:  response.StatusPartialError,
			expectedMessage: "Some accounts failed to create",
		},
		{
			name: "Engine failure",
			body: `[{"id":"1","ledger":1,"code":718}]`,
			prepareMock: func() {
				service.EXPECT().CreateAccounts(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			},
			expectedCode:    http.StatusInternalServerError,
			expectedStatus:  response.StatusError,
			expectedMessage: "Internal server error. Please contact administrator.",
		},
		{
			name:            "Non-digit id is a validation failure",
			body:            `[{"id":"12abc","ledger":1,"code":718}]`,
			prepareMock:     func() {},
			expectedCode:    http.StatusUnprocessableEntity,
			expectedStatus:  response.StatusError,
			expectedMessage: `value must be an integer or a decimal string: "12abc"`,
		},
		{
			name:            "Id exceeding 128 bits is a validation failure",
			body:            `[{"id":"340282366920938463463374607431768211456","ledger":1,"code":718}]`,
			prepareMock:     func() {},
			expectedCode:    http.StatusUnprocessableEntity,
			expectedStatus:  response.StatusError,
			expectedMessage: `value out of range: "340282366920938463463374607431768211456" exceeds 128 bits`,
		},
		{
			name:            "Malformed body",
			body:            `{not json`,
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedStatus:  response.StatusError,
			expectedMessage: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/v1/accounts", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeEnvelope(t, rr)
			assert.Equal(t, tt.expectedStatus, resp.Status)
			assert.Equal(t, tt.expectedCode, resp.Code)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestCreateAccountsHandlerPartialErrorShape(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().CreateAccounts(gomock.Any(), gomock.Any()).Return([]dto.BatchError{
		{Index: 0, ErrorCode: 21, Error: "EXISTS"},
		{Index: 2, ErrorCode: 10, Error: "DEBITS_POSTED_MUST_BE_ZERO"},
	}, nil)

	body := `[{"id":"1"},{"id":"2"},{"id":"3","debits_posted":"5"}]`
	req := httptest.NewRequest(http.MethodPost, "/v1/accounts", bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	var resp struct {
		Errors []dto.BatchError `json:"errors"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, []dto.BatchError{
		{Index: 0, ErrorCode: 21, Error: "EXISTS"},
		{Index: 2, ErrorCode: 10, Error: "DEBITS_POSTED_MUST_BE_ZERO"},
	}, resp.Errors)
}

func TestLookupAccountsHandler(t *testing.T) {
	handler, service := NewMock(t)

	// Mixed number and string ids in one list.
	service.EXPECT().
		LookupAccounts(gomock.Any(), []numeric.U128{numeric.NewU128(0, 1), numeric.NewU128(0, 2)}).
		Return([]dto.Account{{ID: numeric.NewU128(0, 1), Ledger: 1, Code: 718}}, nil)

	body := `[1,"2"]`
	req := httptest.NewRequest(http.MethodPost, "/v1/accounts/lookup", bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()

	handler.Lookup(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeEnvelope(t, rr)
	assert.Equal(t, "Found 1 accounts", resp.Message)
}

func TestBalancesHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetAccountBalances(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, filter dto.AccountFilter) ([]dto.AccountBalance, error) {
			assert.Equal(t, "1", filter.AccountID.String())
			assert.Nil(t, filter.Limit)
			return []dto.AccountBalance{}, nil
		})

	body := `{"account_id":"1"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/accounts/balances", bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()

	handler.Balances(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeEnvelope(t, rr)
	assert.Equal(t, "Balances retrieved successfully", resp.Message)
}

func TestAccountTransfersHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetAccountTransfers(gomock.Any(), gomock.Any()).
		Return([]dto.Transfer{{ID: numeric.NewU128(0, 101)}}, nil)

	body := `{"account_id":"1","limit":30}`
	req := httptest.NewRequest(http.MethodPost, "/v1/accounts/transfers", bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()

	handler.Transfers(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeEnvelope(t, rr)
	assert.Equal(t, "Found 1 related transfers", resp.Message)
}

func TestQueryAccountsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().QueryAccounts(gomock.Any(), gomock.Any()).
		Return([]dto.Account{}, nil)

	body := `{"ledger":1,"code":718}`
	req := httptest.NewRequest(http.MethodPost, "/v1/accounts/query", bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()

	handler.Query(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeEnvelope(t, rr)
	assert.Equal(t, "Query returned 0 accounts", resp.Message)
}
