package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/dshills/herald/internal/log"
)

// Provider names recognized in active_provider.
const (
	ProviderSCP = "scp"
	ProviderS3  = "s3"
)

// DefaultProvider is used when the config file lacks the active_provider key.
const DefaultProvider = ProviderSCP

// Defaults for optional s3 fields.
const (
	DefaultRegion = "us-east-1"
	DefaultACL    = "public-read"
)

// Config is the root herald configuration. A nil section pointer means the
// section was absent from the config file.
type Config struct {
	ActiveProvider string     `json:"active_provider,omitempty"`
	SCP            *SCPConfig `json:"scp,omitempty"`
	S3             *S3Config  `json:"s3,omitempty"`
}

// SCPConfig configures the remote-copy provider.
type SCPConfig struct {
	Host            string `json:"host"`
	DestinationPath string `json:"destination_path"`
	PublicURLBase   string `json:"public_url_base,omitempty"`
}

// Validate checks required fields.
func (c *SCPConfig) Validate() error {
	if c.Host == "" || c.DestinationPath == "" {
		return errors.New("scp provider requires 'host' and 'destination_path' in config.")
	}
	return nil
}

// S3Config configures the object-storage provider. Endpoint and PathStyle
// support S3-compatible services; AccessKey/SecretKey select static
// credentials instead of the default AWS chain.
type S3Config struct {
	Bucket        string `json:"bucket"`
	Region        string `json:"region,omitempty"`
	ACL           string `json:"acl,omitempty"`
	Endpoint      string `json:"endpoint,omitempty"`
	PathStyle     bool   `json:"path_style,omitempty"`
	AccessKey     string `json:"access_key,omitempty"`
	SecretKey     string `json:"secret_key,omitempty"`
	PublicURLBase string `json:"public_url_base,omitempty"`
}

// Validate checks required fields.
func (c *S3Config) Validate() error {
	if c.Bucket == "" {
		return errors.New("s3 provider requires 'bucket' in config.")
	}
	return nil
}

// RegionOrDefault returns the configured region or DefaultRegion.
func (c *S3Config) RegionOrDefault() string {
	if c.Region != "" {
		return c.Region
	}
	return DefaultRegion
}

// ACLOrDefault returns the configured canned ACL or DefaultACL.
func (c *S3Config) ACLOrDefault() string {
	if c.ACL != "" {
		return c.ACL
	}
	return DefaultACL
}

// Default returns the configuration scaffold written by `herald config init`.
// Required fields (scp.host, scp.destination_path, s3.bucket) are left for
// the user to fill in.
func Default() Config {
	return Config{
		ActiveProvider: DefaultProvider,
		SCP: &SCPConfig{
			DestinationPath: "/var/www/html",
		},
		S3: &S3Config{
			Region: DefaultRegion,
			ACL:    DefaultACL,
		},
	}
}

// Dir returns the platform-appropriate config directory for herald.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "herald"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "herald"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "herald"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "herald"), nil
	default:
		return filepath.Join(home, ".config", "herald"), nil
	}
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file and applies the environment override table.
// The second return value is false when the file does not exist; the caller
// decides how to report that. Parse errors are returned as errors. Override
// application never fails the load.
//
// DefaultProvider is filled in only when the file lacks the active_provider
// key entirely; a present but empty value is kept as is and fails provider
// lookup later.
func Load() (Config, bool, error) {
	cfg, raw, found, err := loadFile()
	if err != nil || !found {
		return cfg, found, err
	}
	applyOverrides(&cfg, raw, environMap())
	if _, present := raw["active_provider"]; !present {
		cfg.ActiveProvider = DefaultProvider
	}
	return cfg, true, nil
}

// LoadFile reads the config file as written, without environment overrides.
// Used by `herald config set` so overrides are never baked into the saved
// file.
func LoadFile() (Config, bool, error) {
	cfg, _, found, err := loadFile()
	return cfg, found, err
}

func loadFile() (Config, map[string]json.RawMessage, bool, error) {
	path, err := Path()
	if err != nil {
		return Config{}, nil, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil, false, nil
		}
		return Config{}, nil, false, fmt.Errorf("reading config file: %w", err)
	}

	// Root-key presence drives the root override rule, so keep the raw
	// key set alongside the typed parse.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, nil, false, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, nil, false, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("config loaded")
	return cfg, raw, true, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// SetField sets a single config field by dotted key name (active_provider,
// scp.host, s3.bucket, ...). Setting a section field materializes the
// section. Returns an error if the key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "active_provider":
		cfg.ActiveProvider = value
		return nil
	}

	section, sub, ok := strings.Cut(key, ".")
	if !ok {
		return fmt.Errorf("unknown config key: %s", key)
	}
	switch section {
	case ProviderSCP:
		if cfg.SCP == nil {
			cfg.SCP = &SCPConfig{}
		}
		switch sub {
		case "host":
			cfg.SCP.Host = value
		case "destination_path":
			cfg.SCP.DestinationPath = value
		case "public_url_base":
			cfg.SCP.PublicURLBase = value
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
	case ProviderS3:
		if cfg.S3 == nil {
			cfg.S3 = &S3Config{}
		}
		switch sub {
		case "bucket":
			cfg.S3.Bucket = value
		case "region":
			cfg.S3.Region = value
		case "acl":
			cfg.S3.ACL = value
		case "endpoint":
			cfg.S3.Endpoint = value
		case "path_style":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("s3.path_style must be a boolean: %w", err)
			}
			cfg.S3.PathStyle = b
		case "access_key":
			cfg.S3.AccessKey = value
		case "secret_key":
			cfg.S3.SecretKey = value
		case "public_url_base":
			cfg.S3.PublicURLBase = value
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
