package reconciler

import (
	"context"
	"fmt"
	"sync"

	"github.com/chainsafe/bridge-monitor/pkg/config"
	"github.com/chainsafe/bridge-monitor/pkg/ethereum"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Chain holds the shared readers of one configured chain.
type Chain struct {
	Client *ethereum.Client
	Events *ethereum.EventReader
}

// Chains dials configured chains on first use and keeps one client per chain.
type Chains struct {
	cfg    *config.Config
	logger *zap.Logger

	mu     sync.Mutex
	chains map[string]*Chain
}

// NewChains creates an empty chain registry.
func NewChains(cfg *config.Config, logger *zap.Logger) *Chains {
	return &Chains{cfg: cfg, logger: logger, chains: make(map[string]*Chain)}
}

// Get returns the readers of chain name, dialing it if needed.
func (c *Chains) Get(ctx context.Context, name string) (*Chain, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if chain, ok := c.chains[name]; ok {
		return chain, nil
	}

	chainCfg, err := c.cfg.Chain(name)
	if err != nil {
		return nil, err
	}
	client, err := ethereum.Dial(ctx, name, chainCfg, c.cfg.Retry.Policy(), c.logger)
	if err != nil {
		return nil, err
	}
	fetcher, err := ethereum.NewLogFetcher(name, client, c.cfg.Fetch.BatchSize, c.logger)
	if err != nil {
		client.Close()
		return nil, err
	}
	events, err := ethereum.NewEventReader(name, fetcher, client, c.logger)
	if err != nil {
		client.Close()
		return nil, err
	}

	chain := &Chain{Client: client, Events: events}
	c.chains[name] = chain
	return chain, nil
}

// Close closes every dialed client.
func (c *Chains) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, chain := range c.chains {
		chain.Client.Close()
		delete(c.chains, name)
	}
}

// Overrides replace the configured scan window per side. Nil keeps the configuration.
type Overrides struct {
	RSKStartBlock   *uint64
	OtherStartBlock *uint64
	RSKEndBlock     *uint64
	OtherEndBlock   *uint64
}

// OptionsFromConfig converts the reconcile section.
func OptionsFromConfig(cfg config.ReconcileConfig) (Options, error) {
	policy, err := ParseDuplicatePolicy(cfg.DuplicatePolicy)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Workers:         cfg.Workers,
		DuplicatePolicy: policy,
		LegacyIDs:       cfg.LegacyIDs,
		ErrorLookup:     cfg.ErrorLookup,
	}, nil
}

// BuildBridge wires the named bridge from configuration.
func BuildBridge(ctx context.Context, cfg *config.Config, chains *Chains, name string, overrides Overrides, logger *zap.Logger) (*Bridge, error) {
	bridgeCfg, err := cfg.Bridge(name)
	if err != nil {
		return nil, err
	}
	opts, err := OptionsFromConfig(cfg.Reconcile)
	if err != nil {
		return nil, err
	}

	rsk, err := buildSide(ctx, chains, bridgeCfg.RSK, overrides.RSKStartBlock, overrides.RSKEndBlock)
	if err != nil {
		return nil, fmt.Errorf("failed to wire rsk side of %s: %w", name, err)
	}
	other, err := buildSide(ctx, chains, bridgeCfg.Other, overrides.OtherStartBlock, overrides.OtherEndBlock)
	if err != nil {
		return nil, fmt.Errorf("failed to wire other side of %s: %w", name, err)
	}

	return NewBridge(name, rsk, other, opts, logger,
		WithConfirmations(cfg.Fetch.Confirmations),
		WithParallelDirections(cfg.Reconcile.ParallelDirections),
	), nil
}

func buildSide(ctx context.Context, chains *Chains, sideCfg config.SideConfig, start, end *uint64) (*Side, error) {
	chain, err := chains.Get(ctx, sideCfg.Chain)
	if err != nil {
		return nil, err
	}

	federationAddr := common.HexToAddress(sideCfg.FederationAddress)
	federation, err := ethereum.NewFederationReader(federationAddr, chain.Client)
	if err != nil {
		return nil, err
	}

	side := &Side{
		Chain:             sideCfg.Chain,
		Bridge:            common.HexToAddress(sideCfg.BridgeAddress),
		FederationAddress: federationAddr,
		StartBlock:        sideCfg.StartBlock,
		Head:              chain.Client,
		Events:            chain.Events,
		Federation:        federation,
	}
	if start != nil {
		side.StartBlock = *start
	}
	if end != nil {
		v := *end
		side.EndBlock = &v
	}
	return side, nil
}
