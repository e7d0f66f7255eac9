package config

import (
	"github.com/papercomputeco/chatproxy/pkg/llm/provider/anthropic"
	"github.com/papercomputeco/chatproxy/pkg/llm/provider/google"
	"github.com/papercomputeco/chatproxy/pkg/llm/provider/openai"
)

const (
	defaultProxyListen = ":8080"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Proxy: ProxyConfig{
			Listen: defaultProxyListen,
		},
		Upstream: UpstreamConfig{
			OpenAI:    openai.DefaultBaseURL,
			Anthropic: anthropic.DefaultBaseURL,
			Google:    google.DefaultBaseURL,
		},
	}
}
