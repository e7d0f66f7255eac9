// Package llm holds the request-scoped data model shared by the proxy and the
// provider request builders.
package llm

import (
	"encoding/json"
	"fmt"
)

// ChatRequest is the inbound chat payload accepted by the proxy.
// It names the upstream provider and carries the caller's own credential;
// nothing in it outlives the request.
type ChatRequest struct {
	// Conversation messages, in order
	Messages []Message `json:"messages"`

	// Provider name: "openai", "anthropic" or "google"
	Provider string `json:"provider"`

	// APIKey is the caller-supplied upstream credential. It is forwarded
	// verbatim and never logged.
	APIKey string `json:"apiKey"`

	// Model name (optional, each provider has its own default)
	Model string `json:"model,omitempty"`
}

// UnmarshalJSON reads the four fields by exact key. encoding/json would
// otherwise also accept "PROVIDER" or "ApiKey".
func (r *ChatRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*r = ChatRequest{}
	for key, target := range map[string]any{
		"messages": &r.Messages,
		"provider": &r.Provider,
		"apiKey":   &r.APIKey,
		"model":    &r.Model,
	} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	return nil
}

// HasRequiredFields reports whether messages, provider and apiKey are all present.
func (r *ChatRequest) HasRequiredFields() bool {
	return len(r.Messages) > 0 && r.Provider != "" && r.APIKey != ""
}

// ModelOr returns the requested model, or fallback when none was given.
func (r *ChatRequest) ModelOr(fallback string) string {
	if r.Model == "" {
		return fallback
	}
	return r.Model
}

// ErrorResponse is the JSON error envelope returned to clients.
type ErrorResponse struct {
	Error string `json:"error"`
}
