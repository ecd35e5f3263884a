package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/chainsafe/bridge-monitor/internal/metrics"
	"github.com/chainsafe/bridge-monitor/pkg/config"
	"github.com/chainsafe/bridge-monitor/pkg/retry"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// Backend is the JSON-RPC surface read by the monitor. *ethclient.Client satisfies it.
type Backend interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
}

// Client is a read-only client of one chain. Every call goes through the retry policy.
type Client struct {
	chain   string
	backend Backend
	policy  retry.Policy
	timeout time.Duration
	logger  *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithRequestTimeout bounds every single attempt.
func WithRequestTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// Dial connects to the JSON-RPC endpoint of chain.
func Dial(ctx context.Context, chain string, cfg config.ChainConfig, policy retry.Policy, logger *zap.Logger) (*Client, error) {
	rpcClient, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s RPC: %w", chain, err)
	}

	logger.Info("Connected to chain",
		zap.String("chain", chain),
		zap.String("rpc_url", cfg.RPCURL))

	return NewClient(chain, rpcClient, policy, logger, WithRequestTimeout(cfg.RequestTimeout)), nil
}

// NewClient wraps backend.
func NewClient(chain string, backend Backend, policy retry.Policy, logger *zap.Logger, opts ...ClientOption) *Client {
	c := &Client{
		chain:   chain,
		backend: backend,
		policy:  policy,
		logger:  logger.With(zap.String("chain", chain)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases the underlying connection when the backend owns one.
func (c *Client) Close() {
	if closer, ok := c.backend.(interface{ Close() }); ok {
		closer.Close()
	}
}

// BlockNumber returns the most recent block number.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var head uint64
	err := c.call(ctx, "eth_blockNumber", func(ctx context.Context) error {
		var err error
		head, err = c.backend.BlockNumber(ctx)
		return err
	})
	return head, err
}

// FilterLogs executes a single eth_getLogs query.
func (c *Client) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	var logs []types.Log
	err := c.call(ctx, "eth_getLogs", func(ctx context.Context) error {
		var err error
		logs, err = c.backend.FilterLogs(ctx, q)
		return err
	})
	return logs, err
}

// TransactionReceipt returns the receipt of txHash. ethereum.NotFound is not retried.
func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt
	err := c.call(ctx, "eth_getTransactionReceipt", func(ctx context.Context) error {
		var err error
		receipt, err = c.backend.TransactionReceipt(ctx, txHash)
		return err
	})
	return receipt, err
}

// CallContract executes an eth_call.
func (c *Client) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	var out []byte
	err := c.call(ctx, "eth_call", func(ctx context.Context) error {
		var err error
		out, err = c.backend.CallContract(ctx, call, blockNumber)
		return err
	})
	return out, err
}

// CodeAt returns the code of account.
func (c *Client) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	var code []byte
	err := c.call(ctx, "eth_getCode", func(ctx context.Context) error {
		var err error
		code, err = c.backend.CodeAt(ctx, account, blockNumber)
		return err
	})
	return code, err
}

func (c *Client) call(ctx context.Context, method string, fn func(ctx context.Context) error) error {
	start := time.Now()

	retrier := retry.New(c.policy, retry.WithNotify(func(err error, attempt int, next time.Duration) {
		metrics.RPCRetriesTotal.WithLabelValues(c.chain, method).Inc()
		c.logger.Warn("RPC call failed, retrying",
			zap.String("method", method),
			zap.Int("attempt", attempt),
			zap.Duration("next_delay", next),
			zap.Error(err))
	}))

	err := retrier.Do(ctx, func(ctx context.Context) error {
		attemptCtx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}
		err := fn(attemptCtx)
		if errors.Is(err, ethereum.NotFound) {
			return retry.Permanent(err)
		}
		return err
	})

	metrics.RPCRequestDuration.WithLabelValues(c.chain, method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RPCRequestsTotal.WithLabelValues(c.chain, method, "error").Inc()
		metrics.ErrorsTotal.WithLabelValues("rpc", method).Inc()
		return fmt.Errorf("%s on %s: %w", method, c.chain, err)
	}
	metrics.RPCRequestsTotal.WithLabelValues(c.chain, method, "ok").Inc()
	return nil
}
