package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/herald/internal/log"
)

// envOverride binds one environment variable to one config path. The table
// below is the complete override surface; variables outside it never touch
// the configuration.
type envOverride struct {
	name    string // lowercased environment variable name
	section string // "" for root keys
	set     func(*Config, string)
}

var envOverrides = []envOverride{
	{"active_provider", "", func(c *Config, v string) { c.ActiveProvider = v }},

	{"scp__host", ProviderSCP, func(c *Config, v string) { c.SCP.Host = v }},
	{"scp__destination_path", ProviderSCP, func(c *Config, v string) { c.SCP.DestinationPath = v }},
	{"scp__public_url_base", ProviderSCP, func(c *Config, v string) { c.SCP.PublicURLBase = v }},

	{"s3__bucket", ProviderS3, func(c *Config, v string) { c.S3.Bucket = v }},
	{"s3__region", ProviderS3, func(c *Config, v string) { c.S3.Region = v }},
	{"s3__acl", ProviderS3, func(c *Config, v string) { c.S3.ACL = v }},
	{"s3__endpoint", ProviderS3, func(c *Config, v string) { c.S3.Endpoint = v }},
	{"s3__path_style", ProviderS3, func(c *Config, v string) {
		// Unparsable booleans are ignored; overrides never fail the load.
		if b, err := strconv.ParseBool(v); err == nil {
			c.S3.PathStyle = b
		}
	}},
	{"s3__access_key", ProviderS3, func(c *Config, v string) { c.S3.AccessKey = v }},
	{"s3__secret_key", ProviderS3, func(c *Config, v string) { c.S3.SecretKey = v }},
	{"s3__public_url_base", ProviderS3, func(c *Config, v string) { c.S3.PublicURLBase = v }},
}

// environMap collects the process environment with lowercased names, giving
// the case-insensitive match (SCP__HOST and scp__host are the same
// override).
func environMap() map[string]string {
	env := make(map[string]string, len(os.Environ()))
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[strings.ToLower(name)] = value
	}
	return env
}

// applyOverrides walks the declared table in order. A section entry applies
// only when its section was present in the file; a root entry only when the
// root key was. raw holds the file's root key set.
func applyOverrides(cfg *Config, raw map[string]json.RawMessage, env map[string]string) {
	for _, o := range envOverrides {
		value, ok := env[o.name]
		if !ok {
			continue
		}
		switch o.section {
		case "":
			if _, present := raw[o.name]; !present {
				continue
			}
		case ProviderSCP:
			if cfg.SCP == nil {
				continue
			}
		case ProviderS3:
			if cfg.S3 == nil {
				continue
			}
		}
		o.set(cfg, value)
		log.Debug().Str("override", o.name).Msg("environment override applied")
	}
}
