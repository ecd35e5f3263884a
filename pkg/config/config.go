package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/chainsafe/bridge-monitor/pkg/retry"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "BRIDGE_MONITOR"

var (
	// ErrUnknownBridge is returned when a bridge name is not present in the configuration.
	ErrUnknownBridge = errors.New("unknown bridge")
	// ErrUnknownChain is returned when a chain name is not present in the configuration.
	ErrUnknownChain = errors.New("unknown chain")
	// ErrUnknownSide is returned for a bridge side other than "rsk" or "other".
	ErrUnknownSide = errors.New("unknown bridge side")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config represents the application configuration
type Config struct {
	Chains     map[string]ChainConfig  `mapstructure:"chains" validate:"required,min=1,dive"`
	Bridges    map[string]BridgeConfig `mapstructure:"bridges" validate:"required,min=1,dive"`
	Fetch      FetchConfig             `mapstructure:"fetch"`
	Retry      RetryConfig             `mapstructure:"retry"`
	Reconcile  ReconcileConfig         `mapstructure:"reconcile"`
	Report     ReportConfig            `mapstructure:"report"`
	Server     ServerConfig            `mapstructure:"server"`
	Monitor    MonitorConfig           `mapstructure:"monitor"`
	Database   DatabaseConfig          `mapstructure:"database"`
	Monitoring MonitoringConfig        `mapstructure:"monitoring"`
	Logging    LoggingConfig           `mapstructure:"logging"`
}

// ChainConfig describes a JSON-RPC endpoint of a single chain
type ChainConfig struct {
	RPCURL         string        `mapstructure:"rpc_url" validate:"required,url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// SideConfig holds the contracts deployed on one side of a bridge
type SideConfig struct {
	Chain             string `mapstructure:"chain" validate:"required"`
	BridgeAddress     string `mapstructure:"bridge_address" validate:"required,eth_addr"`
	FederationAddress string `mapstructure:"federation_address" validate:"required,eth_addr"`
	StartBlock        uint64 `mapstructure:"start_block"`
}

// BridgeConfig is a named pair of bridge sides. One side always lives on RSK.
type BridgeConfig struct {
	RSK   SideConfig `mapstructure:"rsk"`
	Other SideConfig `mapstructure:"other"`
}

// Side names accepted by BridgeConfig.Side.
const (
	SideRSK   = "rsk"
	SideOther = "other"
)

// Side returns the side config by name.
func (b BridgeConfig) Side(name string) (SideConfig, error) {
	switch strings.ToLower(name) {
	case SideRSK:
		return b.RSK, nil
	case SideOther:
		return b.Other, nil
	default:
		return SideConfig{}, fmt.Errorf("%w: %q", ErrUnknownSide, name)
	}
}

// Counterpart returns the side opposite to name.
func (b BridgeConfig) Counterpart(name string) (SideConfig, error) {
	switch strings.ToLower(name) {
	case SideRSK:
		return b.Other, nil
	case SideOther:
		return b.RSK, nil
	default:
		return SideConfig{}, fmt.Errorf("%w: %q", ErrUnknownSide, name)
	}
}

// FetchConfig controls batched log retrieval
type FetchConfig struct {
	BatchSize     uint64 `mapstructure:"batch_size" default:"100" validate:"gt=0"`
	Confirmations uint64 `mapstructure:"confirmations"`
}

// RetryConfig controls the back-off applied to every RPC call
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" default:"10" validate:"gte=1"`
	BaseDelay   time.Duration `mapstructure:"base_delay" default:"1s" validate:"gt=0"`
	MaxDelay    time.Duration `mapstructure:"max_delay" default:"256s" validate:"gtefield=BaseDelay"`
}

// Policy converts the configuration into a retry policy.
func (r RetryConfig) Policy() retry.Policy {
	return retry.Policy{
		MaxAttempts: r.MaxAttempts,
		BaseDelay:   r.BaseDelay,
		MaxDelay:    r.MaxDelay,
	}
}

// ReconcileConfig selects optional pipeline stages and concurrency of a reconciliation pass
type ReconcileConfig struct {
	Workers            int           `mapstructure:"workers" default:"1" validate:"gte=1"`
	DuplicatePolicy    string        `mapstructure:"duplicate_policy" default:"last_wins" validate:"oneof=last_wins first_wins fail"`
	LegacyIDs          bool          `mapstructure:"legacy_ids" default:"true"`
	ErrorLookup        bool          `mapstructure:"error_lookup" default:"true"`
	ParallelDirections bool          `mapstructure:"parallel_directions"`
	Timeout            time.Duration `mapstructure:"timeout"`
}

// ReportConfig contains export settings
type ReportConfig struct {
	Format          string `mapstructure:"format" default:"csv" validate:"oneof=csv json yaml"`
	AmountPrecision int32  `mapstructure:"amount_precision" default:"6" validate:"gte=0"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string     `mapstructure:"host" default:"0.0.0.0"`
	Port int        `mapstructure:"port" default:"8080" validate:"gt=0,lte=65535"`
	Auth AuthConfig `mapstructure:"auth"`
}

// AuthConfig enables bearer token checks on the API. Empty JWKSURL leaves the API open.
type AuthConfig struct {
	JWKSURL  string `mapstructure:"jwks_url" validate:"omitempty,url"`
	Issuer   string `mapstructure:"issuer"`
	Audience string `mapstructure:"audience"`
}

// MonitorConfig contains settings of the periodic reconciliation service
type MonitorConfig struct {
	Bridges  []string      `mapstructure:"bridges"`
	Interval time.Duration `mapstructure:"interval" default:"5m" validate:"gt=0"`
	Persist  bool          `mapstructure:"persist"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host" default:"localhost"`
	Port     int    `mapstructure:"port" default:"5432"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database" default:"bridge_monitor"`
	SSLMode  string `mapstructure:"ssl_mode" default:"disable"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level" default:"info"`
	Format     string `mapstructure:"format" default:"console" validate:"oneof=json console"`
	OutputPath string `mapstructure:"output_path" default:"stderr"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := new(Config)
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks struct tags and cross references between bridges and chains.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	for _, name := range c.BridgeNames() {
		b := c.Bridges[name]
		for _, side := range []SideConfig{b.RSK, b.Other} {
			if _, ok := c.Chains[side.Chain]; !ok {
				return fmt.Errorf("bridge %s: %w: %s", name, ErrUnknownChain, side.Chain)
			}
		}
	}
	for _, name := range c.Monitor.Bridges {
		if _, ok := c.Bridges[name]; !ok {
			return fmt.Errorf("monitor: %w: %s", ErrUnknownBridge, name)
		}
	}
	return nil
}

// Bridge looks up a bridge by name.
func (c *Config) Bridge(name string) (BridgeConfig, error) {
	b, ok := c.Bridges[name]
	if !ok {
		return BridgeConfig{}, fmt.Errorf("%w: %q (valid options: %s)", ErrUnknownBridge, name, strings.Join(c.BridgeNames(), ", "))
	}
	return b, nil
}

// Chain looks up a chain by name.
func (c *Config) Chain(name string) (ChainConfig, error) {
	ch, ok := c.Chains[name]
	if !ok {
		return ChainConfig{}, fmt.Errorf("%w: %q", ErrUnknownChain, name)
	}
	return ch, nil
}

// BridgeNames returns the configured bridge names in lexical order.
func (c *Config) BridgeNames() []string {
	names := make([]string, 0, len(c.Bridges))
	for name := range c.Bridges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MonitoredBridges returns monitor.bridges, or every bridge when the list is empty.
func (c *Config) MonitoredBridges() []string {
	if len(c.Monitor.Bridges) > 0 {
		return c.Monitor.Bridges
	}
	return c.BridgeNames()
}
