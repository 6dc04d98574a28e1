package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	envDelay   = "PAYDESK_SETTLEMENT_DELAY"
	envBaseURL = "PAYDESK_LINK_BASE_URL"
	envEncKey  = "PAYDESK_LINK_ENCRYPTION_KEY"
	envSigKey  = "PAYDESK_LINK_SIGNING_KEY"
	envOut     = "PAYDESK_OUT"
)

type Config struct {
	Ledger struct {
		SettlementDelay time.Duration `yaml:"settlement_delay"`
		Seed            bool          `yaml:"seed"`
	} `yaml:"ledger"`
	Links struct {
		BaseURL       string `yaml:"base_url"`
		EncryptionKey string `yaml:"encryption_key"`
		SigningKey    string `yaml:"signing_key"`
	} `yaml:"links"`
	Export struct {
		Out string `yaml:"out"`
	} `yaml:"export"`
}

func Default() Config {
	cfg := Config{}
	cfg.Ledger.SettlementDelay = 2 * time.Second
	cfg.Ledger.Seed = true
	cfg.Links.BaseURL = "http://localhost:5173"
	return cfg
}

// Load reads path over the defaults, then applies env overrides. A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile is Load without env overrides, for rewriting the file itself.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write stores cfg at path, readable by the owner only since it may hold link keys.
func Write(path string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

func applyEnvOverrides(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(envDelay)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		cfg.Ledger.SettlementDelay = d
	}
	if v := strings.TrimSpace(os.Getenv(envBaseURL)); v != "" {
		cfg.Links.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envEncKey)); v != "" {
		cfg.Links.EncryptionKey = v
	}
	if v := strings.TrimSpace(os.Getenv(envSigKey)); v != "" {
		cfg.Links.SigningKey = v
	}
	if v := strings.TrimSpace(os.Getenv(envOut)); v != "" {
		cfg.Export.Out = v
	}
	return nil
}
