// Package provider defines the closed set of upstream LLM providers the proxy
// can dispatch to and the request builder each of them implements.
package provider

import (
	"context"
	"errors"
	"net/http"

	"github.com/papercomputeco/chatproxy/pkg/llm"
)

// ErrUnsupported is returned when a provider name or kind is not one of the
// supported variants.
var ErrUnsupported = errors.New("unsupported provider")

// Provider builds the provider-specific outbound request for a chat request.
// Implementations hold only immutable configuration and are safe for
// concurrent use.
type Provider interface {
	// Name returns the canonical provider name (e.g., "openai", "anthropic", "google")
	Name() string

	// BuildRequest converts the inbound chat request into a ready-to-send
	// upstream HTTP request, credentials included.
	BuildRequest(ctx context.Context, req *llm.ChatRequest) (*http.Request, error)
}
