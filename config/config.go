package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Tron configures read-only access to the notice contract.
	Tron *TronConfig `json:"tron" yaml:"tron"`

	// RecordStore configures the backend client used by the recipient agent.
	RecordStore *RecordStoreConfig `json:"recordStore" yaml:"recordStore"`

	// Poller configures the recipient notification poller.
	Poller *PollerConfig `json:"poller" yaml:"poller"`

	// Notifier configures how new-notice events are surfaced locally.
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`

	// QRCode configuration for notice deep-link QR codes.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Geolocation configures best-effort IP geolocation for activity events.
	Geolocation *GeolocationConfig `json:"geolocation" yaml:"geolocation"`

	// TestRoutes configuration for testing endpoints.
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

// PostgresConfig defines the primary connection plus optional read replicas.
type PostgresConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	UserName string `json:"userName" yaml:"userName"`
	Password string `json:"password" yaml:"password"`
	DBName   string `json:"dbName" yaml:"dbName"`
	SSLMode  string `json:"sslMode" yaml:"sslMode"`

	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`

	Replicas []ConnectionConfig `json:"replicas" yaml:"replicas"`
}

// ConnectionConfig describes a single replica connection.
type ConnectionConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	UserName string `json:"userName" yaml:"userName"`
	Password string `json:"password" yaml:"password"`
}

// AuthConfig defines wallet-session authentication configuration.
type AuthConfig struct {
	ChallengeTTL   time.Duration `json:"challengeTtl" yaml:"challengeTtl"`
	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
}

// TronConfig defines the TRON full-node HTTP API and notice contract.
type TronConfig struct {
	// Endpoint is the base URL of a TronGrid-compatible HTTP API.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// ContractAddress is the base58check address of the notice contract.
	ContractAddress string `json:"contractAddress" yaml:"contractAddress"`

	// APIKey is an optional TronGrid API key sent on each request.
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// CallTimeout bounds a single contract call.
	CallTimeout time.Duration `json:"callTimeout" yaml:"callTimeout"`

	// MaxEnumeratedTokens caps the owned-token fallback enumeration.
	MaxEnumeratedTokens int `json:"maxEnumeratedTokens" yaml:"maxEnumeratedTokens"`

	// MaxIndexedNotices caps the per-recipient index walk.
	MaxIndexedNotices int `json:"maxIndexedNotices" yaml:"maxIndexedNotices"`
}

// RecordStoreConfig defines the backend notice store consumed by the agent.
type RecordStoreConfig struct {
	BaseURL     string        `json:"baseUrl" yaml:"baseUrl"`
	CallTimeout time.Duration `json:"callTimeout" yaml:"callTimeout"`

	// AccessToken is an optional bearer token for authenticated routes.
	AccessToken string `json:"accessToken" yaml:"accessToken"`
}

// PollerConfig defines the recipient notification poller.
type PollerConfig struct {
	// WalletAddress is the recipient wallet this agent polls for.
	WalletAddress string `json:"walletAddress" yaml:"walletAddress"`

	Interval     time.Duration `json:"interval" yaml:"interval"`
	CycleTimeout time.Duration `json:"cycleTimeout" yaml:"cycleTimeout"`

	// StatePath is the local notification-state cache file.
	StatePath string `json:"statePath" yaml:"statePath"`
}

// NotifierConfig selects the new-notice notifier provider.
type NotifierConfig struct {
	// Provider type: "webhook", "command" or "noop".
	Provider string `json:"provider" yaml:"provider"`

	// Endpoint receives POSTed new-notice events (webhook provider).
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Command is executed per new notice, e.g. notify-send (command provider).
	Command string `json:"command" yaml:"command"`
}

// QRCodeConfig defines QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// GeolocationConfig defines best-effort IP geolocation lookup.
type GeolocationConfig struct {
	Enabled     bool          `json:"enabled" yaml:"enabled"`
	Endpoint    string        `json:"endpoint" yaml:"endpoint"`
	CallTimeout time.Duration `json:"callTimeout" yaml:"callTimeout"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TestRoutesConfig defines configuration for testing endpoints.
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: TRON_CONTRACTADDRESS -> tron.contractAddress (not tron.contractaddress)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = append(cfg.Postgres.Replicas, buildReplicasFromEnv()...)
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []ConnectionConfig {
	var replicas []ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
