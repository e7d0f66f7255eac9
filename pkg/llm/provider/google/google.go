// Package google builds requests for the Gemini generateContent API on
// generativelanguage.googleapis.com.
//
// Two differences from the other providers:
//   - the model is part of the endpoint path rather than the body
//   - the API key travels as the "key" query parameter, not a header
package google

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/papercomputeco/chatproxy/pkg/llm"
	"github.com/papercomputeco/chatproxy/pkg/llm/provider/internal/jsonreq"
)

const (
	// DefaultBaseURL is the public Generative Language API host.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// DefaultModel is used when the request names no model.
	DefaultModel = "gemini-pro"

	modelsPath      = "/v1beta/models/"
	generateAction  = ":generateContent"
	temperature     = 0.7
	maxOutputTokens = 500
)

// Provider builds Gemini generateContent requests.
type Provider struct {
	baseURL string
}

// New returns a Provider targeting baseURL, or DefaultBaseURL when empty.
func New(baseURL string) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Provider{baseURL: strings.TrimRight(baseURL, "/")}
}

func (p *Provider) Name() string {
	return "google"
}

// BuildRequest flattens the whole conversation into a single content entry
// with one "{role}: {content}" part per message. Non-string content is
// rendered as its JSON text.
func (p *Provider) BuildRequest(ctx context.Context, req *llm.ChatRequest) (*http.Request, error) {
	parts := make([]part, 0, len(req.Messages))
	for _, msg := range req.Messages {
		parts = append(parts, part{Text: msg.Role + ": " + msg.Text()})
	}

	body := generateContentRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	return jsonreq.New(ctx, p.endpoint(req.ModelOr(DefaultModel), req.APIKey), body)
}

func (p *Provider) endpoint(model, apiKey string) string {
	query := url.Values{"key": {apiKey}}
	return p.baseURL + modelsPath + url.PathEscape(model) + generateAction + "?" + query.Encode()
}
