package config

import (
	"fmt"
	"net/url"
	"strconv"
)

// Config represents the persistent chatproxy configuration stored as
// config.toml in the config directory. The TOML layout uses sections for
// logical grouping; every key can also be supplied as a CHATPROXY_ env var.
type Config struct {
	Version  int            `toml:"version" mapstructure:"version"`
	Proxy    ProxyConfig    `toml:"proxy" mapstructure:"proxy"`
	Upstream UpstreamConfig `toml:"upstream" mapstructure:"upstream"`
	Log      LogConfig      `toml:"log" mapstructure:"log"`
}

// ProxyConfig holds listener settings.
type ProxyConfig struct {
	Listen string `toml:"listen,omitempty" mapstructure:"listen"`

	// MetricsListen is the address of the Prometheus listener. Empty disables it.
	MetricsListen string `toml:"metrics_listen,omitempty" mapstructure:"metrics_listen"`
}

// UpstreamConfig holds the base URL of each provider API. Overriding these
// points the proxy at a mock or a compatible gateway.
type UpstreamConfig struct {
	OpenAI    string `toml:"openai,omitempty" mapstructure:"openai"`
	Anthropic string `toml:"anthropic,omitempty" mapstructure:"anthropic"`
	Google    string `toml:"google,omitempty" mapstructure:"google"`
}

// LogConfig holds logging output settings.
type LogConfig struct {
	JSON bool   `toml:"json,omitempty" mapstructure:"json"`
	File string `toml:"file,omitempty" mapstructure:"file"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"proxy.listen": {
		get: func(c *Config) string { return c.Proxy.Listen },
		set: func(c *Config, v string) error { c.Proxy.Listen = v; return nil },
	},
	"proxy.metrics_listen": {
		get: func(c *Config) string { return c.Proxy.MetricsListen },
		set: func(c *Config, v string) error { c.Proxy.MetricsListen = v; return nil },
	},
	"upstream.openai": {
		get: func(c *Config) string { return c.Upstream.OpenAI },
		set: func(c *Config, v string) error { return setURL(&c.Upstream.OpenAI, "upstream.openai", v) },
	},
	"upstream.anthropic": {
		get: func(c *Config) string { return c.Upstream.Anthropic },
		set: func(c *Config, v string) error { return setURL(&c.Upstream.Anthropic, "upstream.anthropic", v) },
	},
	"upstream.google": {
		get: func(c *Config) string { return c.Upstream.Google },
		set: func(c *Config, v string) error { return setURL(&c.Upstream.Google, "upstream.google", v) },
	},
	"log.json": {
		get: func(c *Config) string { return strconv.FormatBool(c.Log.JSON) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for log.json: %w", err)
			}
			c.Log.JSON = b
			return nil
		},
	},
	"log.file": {
		get: func(c *Config) string { return c.Log.File },
		set: func(c *Config, v string) error { c.Log.File = v; return nil },
	},
}

func setURL(target *string, key, v string) error {
	u, err := url.Parse(v)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid value for %s: %q is not an absolute URL", key, v)
	}
	*target = v
	return nil
}
