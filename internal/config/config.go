package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Network   NetworkConfig   `mapstructure:"network"`
	Parent    ParentConfig    `mapstructure:"parent"`
	Backend   BackendConfig   `mapstructure:"backend"`
	Authority AuthorityConfig `mapstructure:"authority"`
	Directory DirectoryConfig `mapstructure:"directory"`
	Wallet    WalletConfig    `mapstructure:"wallet"`
	Session   SessionConfig   `mapstructure:"session"`
	Checker   CheckerConfig   `mapstructure:"checker"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `mapstructure:"port"`
	// RateLimit uses the limiter format "<limit>-<period>", e.g. "30-M".
	RateLimit string `mapstructure:"rate_limit"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// NetworkConfig selects the active network from the chain registry.
type NetworkConfig struct {
	Active string `mapstructure:"active"`
	// RegistryFile overrides the embedded network registry when set.
	RegistryFile string `mapstructure:"registry_file"`
	// ChainlistURL, when set, adds the public RPC endpoints listed there to every network.
	ChainlistURL string `mapstructure:"chainlist_url"`
}

// ParentConfig holds the parent domain subnames are minted under.
type ParentConfig struct {
	Name string `mapstructure:"name"`
}

// BackendConfig selects and tunes the minting backend.
type BackendConfig struct {
	Kind              string `mapstructure:"kind"`
	SourceTag         string `mapstructure:"source_tag"`
	ExpiryYears       int    `mapstructure:"expiry_years"`
	StrictSuggestions bool   `mapstructure:"strict_suggestions"`
}

// AuthorityConfig holds settings for the minting-parameters service.
type AuthorityConfig struct {
	URL     string        `mapstructure:"url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DirectoryConfig holds settings for the off-chain subname directory.
type DirectoryConfig struct {
	URL      string        `mapstructure:"url"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
	PageSize int           `mapstructure:"page_size"`

	// ProfileURL is published as the url text record of every issued subname.
	ProfileURL string `mapstructure:"profile_url"`
}

// WalletConfig points at the signing key used for on-chain mints.
type WalletConfig struct {
	PrivateKeyFile string `mapstructure:"private_key_file"`
}

// SessionConfig holds settings for the in-memory session store.
type SessionConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// CheckerConfig holds settings related to the RPC checking process.
type CheckerConfig struct {
	CheckTimeout  time.Duration `mapstructure:"check_timeout"`
	MaxWorkers    int           `mapstructure:"max_workers"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	CheckInterval time.Duration `mapstructure:"check_interval"`
}

// Backend kinds.
const (
	BackendOnchain  = "onchain"
	BackendSDK      = "sdk"
	BackendOffchain = "offchain"
)

// Load reads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "subname-minter")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.rate_limit", "30-M")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("network.active", "sepolia")
	v.SetDefault("network.registry_file", "")
	v.SetDefault("network.chainlist_url", "")
	v.SetDefault("wallet.private_key_file", "")
	v.SetDefault("parent.name", "kalidecoder.eth")
	v.SetDefault("backend.kind", BackendOnchain)
	v.SetDefault("backend.source_tag", "namespace-sdk")
	v.SetDefault("backend.expiry_years", 1)
	v.SetDefault("backend.strict_suggestions", false)
	v.SetDefault("authority.url", "https://api.namespace.ninja")
	v.SetDefault("authority.api_key", "")
	v.SetDefault("authority.timeout", "15s")
	v.SetDefault("directory.url", "https://offchain-manager.namespace.ninja")
	v.SetDefault("directory.api_key", "")
	v.SetDefault("directory.timeout", "15s")
	v.SetDefault("directory.page_size", 20)
	v.SetDefault("directory.profile_url", "https://example.com")
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.cleanup_interval", "10m")
	v.SetDefault("checker.check_timeout", "5s")
	v.SetDefault("checker.max_workers", 8)
	v.SetDefault("checker.cache_ttl", "5m")
	v.SetDefault("checker.check_interval", "4m")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		fmt.Printf("Warning: Config file not found in %s or '.', using defaults/env vars\n", configPath)
	}

	v.SetEnvPrefix("SUBNAME_MINTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	switch c.Backend.Kind {
	case BackendOnchain, BackendSDK, BackendOffchain:
	default:
		return fmt.Errorf("unknown backend kind %q", c.Backend.Kind)
	}
	if strings.TrimSpace(c.Parent.Name) == "" {
		return errors.New("parent.name must not be empty")
	}
	if c.Backend.ExpiryYears <= 0 {
		return fmt.Errorf("backend.expiry_years must be positive, got %d", c.Backend.ExpiryYears)
	}
	return nil
}

func (c CheckerConfig) GetTimeout() time.Duration {
	return c.CheckTimeout
}

func (c CheckerConfig) GetCacheTTL() time.Duration {
	return c.CacheTTL
}

func (c CheckerConfig) GetCheckInterval() time.Duration {
	return c.CheckInterval
}

func (c SessionConfig) GetTTL() time.Duration {
	return c.TTL
}

func (c SessionConfig) GetCleanupInterval() time.Duration {
	return c.CleanupInterval
}
