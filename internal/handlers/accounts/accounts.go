package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/tigerbridge/tigerbridge/internal/dto"
	"github.com/tigerbridge/tigerbridge/pkg/numeric"
	"github.com/tigerbridge/tigerbridge/pkg/response"
)

type Service interface {
	CreateAccounts(ctx context.Context, accounts []dto.Account) ([]dto.BatchError, error)
	LookupAccounts(ctx context.Context, ids []numeric.U128) ([]dto.Account, error)
	GetAccountBalances(ctx context.Context, filter dto.AccountFilter) ([]dto.AccountBalance, error)
	GetAccountTransfers(ctx context.Context, filter dto.AccountFilter) ([]dto.Transfer, error)
	QueryAccounts(ctx context.Context, filter dto.QueryFilter) ([]dto.Account, error)
}

type AccountsHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *AccountsHandler {
	return &AccountsHandler{
		ledgerService: ledgerService,
	}
}

// decodeBody distinguishes a numeric field that failed normalization
// (422) from a body that is not valid JSON at all (400).
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	if errors.Is(err, numeric.ErrNotANumber) || errors.Is(err, numeric.ErrOutOfRange) {
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	response.Error(w, http.StatusBadRequest, "Invalid request body")
	return false
}

func engineError(w http.ResponseWriter, err error) {
	response.ErrorWith(w, http.StatusInternalServerError, "Internal server error. Please contact administrator.",
		[]map[string]string{{"detail": err.Error()}})
}

// Create godoc
//
//	@Summary		Batch create accounts
//	@Description	Submit a batch of accounts in one engine call; an empty errors list means every record was created
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		[]dto.Account	true	"Accounts to create"
//	@Success		200		{object}	response.Response
//	@Failure		400		{object}	response.Response	"Some accounts failed to create"
//	@Failure		422		{object}	response.Response	"Numeric field failed normalization"
//	@Failure		500		{object}	response.Response	"Engine unavailable"
//	@Router			/v1/accounts [post]
func (h *AccountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var accounts []dto.Account
	if !decodeBody(w, r, &accounts) {
		return
	}

	batchErrs, err := h.ledgerService.CreateAccounts(r.Context(), accounts)
	if err != nil {
		engineError(w, err)
		return
	}
	if len(batchErrs) > 0 {
		response.PartialError(w, "Some accounts failed to create", batchErrs)
		return
	}
	response.Success(w, "All accounts created successfully", []dto.Account{})
}

// Lookup godoc
//
//	@Summary		Lookup accounts
//	@Description	Point lookup by id list; missing ids are omitted, never an error
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		[]string	true	"Account ids"
//	@Success		200		{object}	response.Response{data=[]dto.Account}
//	@Failure		422		{object}	response.Response	"Numeric field failed normalization"
//	@Router			/v1/accounts/lookup [post]
func (h *AccountsHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var ids []numeric.U128
	if !decodeBody(w, r, &ids) {
		return
	}

	accounts, err := h.ledgerService.LookupAccounts(r.Context(), ids)
	if err != nil {
		engineError(w, err)
		return
	}
	response.Success(w, fmt.Sprintf("Found %d accounts", len(accounts)), accounts)
}

// Balances godoc
//
//	@Summary		Get account balance history
//	@Description	Balance snapshots for an account created with the history flag; the filter is taken literally, timestamp_max=0 included
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.AccountFilter	true	"Balance filter"
//	@Success		200		{object}	response.Response{data=[]dto.AccountBalance}
//	@Failure		422		{object}	response.Response	"Numeric field failed normalization"
//	@Router			/v1/accounts/balances [post]
func (h *AccountsHandler) Balances(w http.ResponseWriter, r *http.Request) {
	var filter dto.AccountFilter
	if !decodeBody(w, r, &filter) {
		return
	}

	balances, err := h.ledgerService.GetAccountBalances(r.Context(), filter)
	if err != nil {
		engineError(w, err)
		return
	}
	response.Success(w, "Balances retrieved successfully", balances)
}

// Transfers godoc
//
//	@Summary		Get account transfer history
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.AccountFilter	true	"History filter"
//	@Success		200		{object}	response.Response{data=[]dto.Transfer}
//	@Failure		422		{object}	response.Response	"Numeric field failed normalization"
//	@Router			/v1/accounts/transfers [post]
func (h *AccountsHandler) Transfers(w http.ResponseWriter, r *http.Request) {
	var filter dto.AccountFilter
	if !decodeBody(w, r, &filter) {
		return
	}

	transfers, err := h.ledgerService.GetAccountTransfers(r.Context(), filter)
	if err != nil {
		engineError(w, err)
		return
	}
	response.Success(w, fmt.Sprintf("Found %d related transfers", len(transfers)), transfers)
}

// Query godoc
//
//	@Summary		Query accounts
//	@Description	Generic filter query over accounts
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.QueryFilter	true	"Query filter"
//	@Success		200		{object}	response.Response{data=[]dto.Account}
//	@Failure		422		{object}	response.Response	"Numeric field failed normalization"
//	@Router			/v1/accounts/query [post]
func (h *AccountsHandler) Query(w http.ResponseWriter, r *http.Request) {
	var filter dto.QueryFilter
	if !decodeBody(w, r, &filter) {
		return
	}

	accounts, err := h.ledgerService.QueryAccounts(r.Context(), filter)
	if err != nil {
		engineError(w, err)
		return
	}
	response.Success(w, fmt.Sprintf("Query returned %d accounts", len(accounts)), accounts)
}
