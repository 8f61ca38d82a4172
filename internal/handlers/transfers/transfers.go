package transfers

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
	CreateTransfers(ctx context.Context, transfers []dto.Transfer) ([]dto.BatchError, error)
	LookupTransfers(ctx context.Context, ids []numeric.U128) ([]dto.Transfer, error)
	QueryTransfers(ctx context.Context, filter dto.QueryFilter) ([]dto.Transfer, error)
}

type TransfersHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *TransfersHandler {
	return &TransfersHandler{
		ledgerService: ledgerService,
	}
}

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
//	@Summary		Batch create transfers
//	@Description	Submit a batch of transfers in one engine call; linked runs succeed or fail together
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		[]dto.Transfer	true	"Transfers to create"
//	@Success		200		{object}	response.Response
//	@Failure		400		{object}	response.Response	"Some transfers failed to create"
//	@Failure		422		{object}	response.Response	"Numeric field failed normalization"
//	@Failure		500		{object}	response.Response	"Engine unavailable"
//	@Router			/v1/transfers [post]
func (h *TransfersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var transfers []dto.Transfer
	if !decodeBody(w, r, &transfers) {
		return
	}

	batchErrs, err := h.ledgerService.CreateTransfers(r.Context(), transfers)
	if err != nil {
		engineError(w, err)
		return
	}
	if len(batchErrs) > 0 {
		response.PartialError(w, "Some transfers failed to create", batchErrs)
		return
	}
	response.Success(w, "All transfers created successfully", []dto.Transfer{})
}

// Lookup godoc
//
//	@Summary		Lookup transfers
//	@Description	Point lookup by id list; missing ids are omitted, never an error
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		[]string	true	"Transfer ids"
//	@Success		200		{object}	response.Response{data=[]dto.Transfer}
//	@Failure		422		{object}	response.Response	"Numeric field failed normalization"
//	@Router			/v1/transfers/lookup [post]
func (h *TransfersHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var ids []numeric.U128
	if !decodeBody(w, r, &ids) {
		return
	}

	transfers, err := h.ledgerService.LookupTransfers(r.Context(), ids)
	if err != nil {
		engineError(w, err)
		return
	}
	response.Success(w, fmt.Sprintf("Found %d transfers", len(transfers)), transfers)
}

// Query godoc
//
//	@Summary		Query transfers
//	@Description	Generic filter query over transfers
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.QueryFilter	true	"Query filter"
//	@Success		200		{object}	response.Response{data=[]dto.Transfer}
//	@Failure		422		{object}	response.Response	"Numeric field failed normalization"
//	@Router			/v1/transfers/query [post]
func (h *TransfersHandler) Query(w http.ResponseWriter, r *http.Request) {
	var filter dto.QueryFilter
	if !decodeBody(w, r, &filter) {
		return
	}

	transfers, err := h.ledgerService.QueryTransfers(r.Context(), filter)
	if err != nil {
		engineError(w, err)
		return
	}
	response.Success(w, fmt.Sprintf("Query returned %d transfers", len(transfers)), transfers)
}
