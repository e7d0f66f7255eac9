package proxy

import (
	"net/http"

	"github.com/papercomputeco/chatproxy/pkg/llm/provider"
	"github.com/papercomputeco/chatproxy/pkg/metrics"
)

// Config is the proxy server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8080")
	ListenAddr string

	// Endpoints holds the upstream base URL of each provider. Empty fields
	// fall back to the provider's public API host.
	Endpoints provider.Endpoints

	// Metrics is an optional collector set. If nil, metrics are not recorded.
	Metrics *metrics.Metrics

	// HTTPClient overrides the client used for upstream calls. Defaults to a
	// client with no timeout.
	HTTPClient *http.Client
}
