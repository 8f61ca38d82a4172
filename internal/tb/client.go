// Package tb wraps the official TigerBeetle client behind an interface
// the services can mock. One Client is built at startup and shared by
// every request; the underlying client multiplexes concurrent batches
// internally, so no locking happens here.
package tb

import (
	"fmt"
	"time"

	tbclient "github.com/tigerbeetle/tigerbeetle-go"
	"github.com/tigerbeetle/tigerbeetle-go/pkg/types"
	"go.uber.org/zap"
)

type Engine interface {
	CreateAccounts(accounts []types.Account) ([]types.AccountEventResult, error)
	CreateTransfers(transfers []types.Transfer) ([]types.TransferEventResult, error)
	LookupAccounts(ids []types.Uint128) ([]types.Account, error)
	LookupTransfers(ids []types.Uint128) ([]types.Transfer, error)
	GetAccountBalances(filter types.AccountFilter) ([]types.AccountBalance, error)
	GetAccountTransfers(filter types.AccountFilter) ([]types.Transfer, error)
	QueryAccounts(filter types.QueryFilter) ([]types.Account, error)
	QueryTransfers(filter types.QueryFilter) ([]types.Transfer, error)
	Close()
}

type Client struct {
	client tbclient.Client
}

func NewClient(clusterID uint64, addresses []string) (*Client, error) {
	zap.L().Info("initializing tigerbeetle client",
		zap.Uint64("clusterID", clusterID),
		zap.Strings("addresses", addresses),
	)
	client, err := tbclient.NewClient(types.ToUint128(clusterID), addresses)
	if err != nil {
		return nil, fmt.Errorf("can't create tigerbeetle client: %w", err)
	}
	return &Client{client: client}, nil
}

// exec times the operation the way every op here is timed; errors are
// logged with the operation name and passed through untouched.
func exec[T any](op string, fn func() (T, error)) (T, error) {
	start := time.Now()
	result, err := fn()
	latency := time.Since(start)
	if err != nil {
		zap.L().Error("tigerbeetle operation failed",
			zap.String("op", op),
			zap.Duration("latency", latency),
			zap.Error(err),
		)
		return result, err
	}
	zap.L().Debug("tigerbeetle operation executed",
		zap.String("op", op),
		zap.Duration("latency", latency),
	)
	return result, nil
}

func (c *Client) CreateAccounts(accounts []types.Account) ([]types.AccountEventResult, error) {
	return exec("create_accounts", func() ([]types.AccountEventResult, error) {
		return c.client.CreateAccounts(accounts)
	})
}

func (c *Client) CreateTransfers(transfers []types.Transfer) ([]types.TransferEventResult, error) {
	return exec("create_transfers", func() ([]types.TransferEventResult, error) {
		return c.client.CreateTransfers(transfers)
	})
}

func (c *Client) LookupAccounts(ids []types.Uint128) ([]types.Account, error) {
	return exec("lookup_accounts", func() ([]types.Account, error) {
		return c.client.LookupAccounts(ids)
	})
}

func (c *Client) LookupTransfers(ids []types.Uint128) ([]types.Transfer, error) {
	return exec("lookup_transfers", func() ([]types.Transfer, error) {
		return c.client.LookupTransfers(ids)
	})
}

func (c *Client) GetAccountBalances(filter types.AccountFilter) ([]types.AccountBalance, error) {
	return exec("get_account_balances", func() ([]types.AccountBalance, error) {
		return c.client.GetAccountBalances(filter)
	})
}

func (c *Client) GetAccountTransfers(filter types.AccountFilter) ([]types.Transfer, error) {
	return exec("get_account_transfers", func() ([]types.Transfer, error) {
		return c.client.GetAccountTransfers(filter)
	})
}

func (c *Client) QueryAccounts(filter types.QueryFilter) ([]types.Account, error) {
	return exec("query_accounts", func() ([]types.Account, error) {
		return c.client.QueryAccounts(filter)
	})
}

func (c *Client) QueryTransfers(filter types.QueryFilter) ([]types.Transfer, error) {
	return exec("query_transfers", func() ([]types.Transfer, error) {
		return c.client.QueryTransfers(filter)
	})
}

func (c *Client) Close() {
	zap.L().Info("closing tigerbeetle client")
	c.client.Close()
}
