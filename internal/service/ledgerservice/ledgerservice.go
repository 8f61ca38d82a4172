// Package ledgerservice bridges HTTP batches onto the ledger engine and
// translates its sparse results. The engine reports only failed records
// as (index, result) pairs; an empty result list means the whole batch
// succeeded. Batches are submitted as received, never reordered or
// split (linked-batch runs are the engine's business), and never
// resubmitted here: ids are caller-assigned, so retry policy belongs to
// the caller.
package ledgerservice

import (
	"context"

	"github.com/tigerbeetle/tigerbeetle-go/pkg/types"
	"github.com/tigerbridge/tigerbridge/internal/dto"
	"github.com/tigerbridge/tigerbridge/internal/tb"
	"github.com/tigerbridge/tigerbridge/pkg/numeric"
	"go.uber.org/zap"
)

type Service struct {
	engine tb.Engine
}

func New(engine tb.Engine) *Service {
	return &Service{
		engine: engine,
	}
}

// CreateAccounts submits the batch in one engine call. A nil error slice
// means every record was created; otherwise only the rejected records
// come back, in submission order.
func (s *Service) CreateAccounts(ctx context.Context, accounts []dto.Account) ([]dto.BatchError, error) {
	batch := make([]types.Account, 0, len(accounts))
	for _, a := range accounts {
		batch = append(batch, toEngineAccount(a))
	}

	results, err := s.engine.CreateAccounts(batch)
	if err != nil {
		zap.L().Error("can't create accounts", zap.Int("batchSize", len(batch)), zap.Error(err))
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	batchErrs := make([]dto.BatchError, 0, len(results))
	for _, res := range results {
		code := uint32(res.Result)
		batchErrs = append(batchErrs, dto.BatchError{
			Index:     res.Index,
			ErrorCode: code,
			Error:     tb.AccountResultName(code),
		})
	}
	zap.L().Info("account batch partially failed",
		zap.Int("batchSize", len(batch)),
		zap.Int("failed", len(batchErrs)),
	)
	return batchErrs, nil
}

func (s *Service) CreateTransfers(ctx context.Context, transfers []dto.Transfer) ([]dto.BatchError, error) {
	batch := make([]types.Transfer, 0, len(transfers))
	for _, t := range transfers {
		batch = append(batch, toEngineTransfer(t))
	}

	results, err := s.engine.CreateTransfers(batch)
	if err != nil {
		zap.L().Error("can't create transfers", zap.Int("batchSize", len(batch)), zap.Error(err))
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	batchErrs := make([]dto.BatchError, 0, len(results))
	for _, res := range results {
		code := uint32(res.Result)
		batchErrs = append(batchErrs, dto.BatchError{
			Index:     res.Index,
			ErrorCode: code,
			Error:     tb.TransferResultName(code),
		})
	}
	zap.L().Info("transfer batch partially failed",
		zap.Int("batchSize", len(batch)),
		zap.Int("failed", len(batchErrs)),
	)
	return batchErrs, nil
}

// LookupAccounts returns only the accounts that exist; missing ids are
// silently omitted, in engine order.
func (s *Service) LookupAccounts(ctx context.Context, ids []numeric.U128) ([]dto.Account, error) {
	engineIDs := make([]types.Uint128, 0, len(ids))
	for _, id := range ids {
		engineIDs = append(engineIDs, tb.ToUint128(id))
	}

	accounts, err := s.engine.LookupAccounts(engineIDs)
	if err != nil {
		zap.L().Error("can't lookup accounts", zap.Error(err))
		return nil, err
	}

	out := make([]dto.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, fromEngineAccount(a))
	}
	return out, nil
}

func (s *Service) LookupTransfers(ctx context.Context, ids []numeric.U128) ([]dto.Transfer, error) {
	engineIDs := make([]types.Uint128, 0, len(ids))
	for _, id := range ids {
		engineIDs = append(engineIDs, tb.ToUint128(id))
	}

	transfers, err := s.engine.LookupTransfers(engineIDs)
	if err != nil {
		zap.L().Error("can't lookup transfers", zap.Error(err))
		return nil, err
	}

	out := make([]dto.Transfer, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, fromEngineTransfer(t))
	}
	return out, nil
}

func (s *Service) GetAccountBalances(ctx context.Context, filter dto.AccountFilter) ([]dto.AccountBalance, error) {
	balances, err := s.engine.GetAccountBalances(toEngineAccountFilter(filter))
	if err != nil {
		zap.L().Error("can't get account balances", zap.Error(err))
		return nil, err
	}

	out := make([]dto.AccountBalance, 0, len(balances))
	for _, b := range balances {
		out = append(out, dto.AccountBalance{
			DebitsPending:  tb.FromUint128(b.DebitsPending),
			DebitsPosted:   tb.FromUint128(b.DebitsPosted),
			CreditsPending: tb.FromUint128(b.CreditsPending),
			CreditsPosted:  tb.FromUint128(b.CreditsPosted),
			Timestamp:      numeric.U64(b.Timestamp),
		})
	}
	return out, nil
}

func (s *Service) GetAccountTransfers(ctx context.Context, filter dto.AccountFilter) ([]dto.Transfer, error) {
	transfers, err := s.engine.GetAccountTransfers(toEngineAccountFilter(filter))
	if err != nil {
		zap.L().Error("can't get account transfers", zap.Error(err))
		return nil, err
	}

	out := make([]dto.Transfer, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, fromEngineTransfer(t))
	}
	return out, nil
}

func (s *Service) QueryAccounts(ctx context.Context, filter dto.QueryFilter) ([]dto.Account, error) {
	accounts, err := s.engine.QueryAccounts(toEngineQueryFilter(filter))
	if err != nil {
		zap.L().Error("can't query accounts", zap.Error(err))
		return nil, err
	}

	out := make([]dto.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, fromEngineAccount(a))
	}
	return out, nil
}

func (s *Service) QueryTransfers(ctx context.Context, filter dto.QueryFilter) ([]dto.Transfer, error) {
	transfers, err := s.engine.QueryTransfers(toEngineQueryFilter(filter))
	if err != nil {
		zap.L().Error("can't query transfers", zap.Error(err))
		return nil, err
	}

	out := make([]dto.Transfer, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, fromEngineTransfer(t))
	}
	return out, nil
}
