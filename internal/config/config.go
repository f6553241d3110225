// Package config resolves runtime settings from flags, ZENNAV_* environment
// variables and an optional config.yaml in the data directory, in that order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/zennav/internal/storage"
	"github.com/spf13/viper"
)

// Keys shared by viper, the environment (upper-cased, ZENNAV_ prefix) and
// config.yaml.
const (
	KeyDataDir            = "data_dir"
	KeyBackend            = "backend"
	KeyCheckConcurrency   = "check_concurrency"
	KeyCheckTimeout       = "check_timeout"
	KeyCullExcludeDomains = "cull_exclude_domains"
)

const (
	envPrefix      = "ZENNAV"
	configFileName = "config"
)

// Config holds runtime settings for the CLI app.
type Config struct {
	DataDir            string
	Backend            string
	CheckConcurrency   int
	CheckTimeout       time.Duration
	CullExcludeDomains []string
}

// New returns a viper instance with defaults and environment binding set up.
// Callers may bind command-line flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyBackend, storage.BackendJSON)
	v.SetDefault(KeyCheckConcurrency, 10)
	v.SetDefault(KeyCheckTimeout, 10*time.Second)
	v.SetDefault(KeyCullExcludeDomains, []string{"github.com", "gitlab.com"})
	return v
}

// Load resolves the configuration from v. The data directory is settled
// first, since config.yaml is looked up inside it.
func Load(v *viper.Viper) (Config, error) {
	dataDir := v.GetString(KeyDataDir)
	if dataDir == "" {
		var err error
		dataDir, err = storage.DefaultDataDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve data dir: %w", err)
		}
	}
	dataDir = expandHome(dataDir)

	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		DataDir:            dataDir,
		Backend:            strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
		CheckConcurrency:   v.GetInt(KeyCheckConcurrency),
		CheckTimeout:       v.GetDuration(KeyCheckTimeout),
		CullExcludeDomains: splitList(v.GetStringSlice(KeyCullExcludeDomains)),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	switch c.Backend {
	case storage.BackendJSON, storage.BackendSQLite, storage.BackendBolt:
	default:
		return fmt.Errorf("backend must be json, sqlite or bolt: %s", c.Backend)
	}
	if c.CheckConcurrency < 1 || c.CheckConcurrency > 64 {
		return fmt.Errorf("check_concurrency must be between 1 and 64: %d", c.CheckConcurrency)
	}
	if c.CheckTimeout <= 0 {
		return fmt.Errorf("check_timeout must be positive: %s", c.CheckTimeout)
	}
	return nil
}

// splitList flattens comma separated entries, as they arrive from the
// environment, and drops blanks.
func splitList(in []string) []string {
	out := []string{}
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, strings.ToLower(part))
			}
		}
	}
	return out
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
