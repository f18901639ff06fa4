// Package config loads the service configuration from YAML files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

// Dispatch defaults applied when the section leaves fields unset.
const (
	defaultDispatchInterval  = 30 * time.Second
	defaultBatchSize         = 100
	defaultWorkers           = 8
	defaultMaxRetries        = 3
	defaultSendTimeout       = 10 * time.Second
	defaultStaleClaimTimeout = 5 * time.Minute
	defaultBackoffBase       = 30 * time.Second
	defaultBackoffMax        = time.Hour
	defaultLockTTL           = time.Minute
	defaultMaxSendsPerDay    = 10
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis is optional; when present it backs the dispatch cycle lock shared
	// across worker instances.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Firebase configuration for push notifications.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Dispatch configuration for the notification dispatch worker.
	Dispatch DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Policy configuration for the privacy/policy evaluator.
	Policy PolicyConfig `json:"policy" yaml:"policy"`

	// DebugRoutes configuration for operational test endpoints.
	DebugRoutes *DebugRoutesConfig `json:"debugRoutes" yaml:"debugRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the optional redis connection for cycle locking.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// FirebaseConfig defines Firebase configuration for push notifications.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// DispatchConfig tunes the dispatch worker loop.
type DispatchConfig struct {
	// Interval between dispatch cycles.
	Interval time.Duration `json:"interval" yaml:"interval"`

	// BatchSize bounds how many due records one cycle may select.
	BatchSize int `json:"batchSize" yaml:"batchSize"`

	// Workers bounds per-record fan-out inside a cycle.
	Workers int `json:"workers" yaml:"workers"`

	// MaxRetries is the default attempt budget for new records.
	MaxRetries int `json:"maxRetries" yaml:"maxRetries"`

	// SendTimeout bounds one push provider call.
	SendTimeout time.Duration `json:"sendTimeout" yaml:"sendTimeout"`

	// StaleClaimTimeout is how long a record may sit in processing before the
	// watchdog reclaims it back to pending.
	StaleClaimTimeout time.Duration `json:"staleClaimTimeout" yaml:"staleClaimTimeout"`

	// BackoffBase and BackoffMax shape the exponential retry backoff curve.
	BackoffBase time.Duration `json:"backoffBase" yaml:"backoffBase"`
	BackoffMax  time.Duration `json:"backoffMax" yaml:"backoffMax"`

	// LockTTL is the expiry of the cross-instance cycle lock, when redis is
	// configured. Must exceed the expected cycle duration.
	LockTTL time.Duration `json:"lockTTL" yaml:"lockTTL"`
}

// PolicyConfig tunes the privacy/policy evaluator.
type PolicyConfig struct {
	// MaxSendsPerDay caps notifications per user over the trailing 24 hours.
	// Zero disables the cap.
	MaxSendsPerDay int `json:"maxSendsPerDay" yaml:"maxSendsPerDay"`
}

// DebugRoutesConfig gates the operational debug endpoints.
type DebugRoutesConfig struct {
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
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
			// Example: DISPATCH_BATCHSIZE -> dispatch.batchSize (not dispatch.batchsize)
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

	applyDispatchDefaults(&cfg.Dispatch)
	if cfg.Policy.MaxSendsPerDay == 0 {
		cfg.Policy.MaxSendsPerDay = defaultMaxSendsPerDay
	}

	return cfg, nil
}

func applyDispatchDefaults(d *DispatchConfig) {
	if d.Interval <= 0 {
		d.Interval = defaultDispatchInterval
	}
	if d.BatchSize <= 0 {
		d.BatchSize = defaultBatchSize
	}
	if d.Workers <= 0 {
		d.Workers = defaultWorkers
	}
	if d.MaxRetries <= 0 {
		d.MaxRetries = defaultMaxRetries
	}
	if d.SendTimeout <= 0 {
		d.SendTimeout = defaultSendTimeout
	}
	if d.StaleClaimTimeout <= 0 {
		d.StaleClaimTimeout = defaultStaleClaimTimeout
	}
	if d.BackoffBase <= 0 {
		d.BackoffBase = defaultBackoffBase
	}
	if d.BackoffMax <= 0 {
		d.BackoffMax = defaultBackoffMax
	}
	if d.LockTTL <= 0 {
		d.LockTTL = defaultLockTTL
	}
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
