// Package openai builds requests for OpenAI's Chat Completions API.
package openai

import (
	"context"
	"net/http"
	"strings"

	"github.com/papercomputeco/chatproxy/pkg/llm"
	"github.com/papercomputeco/chatproxy/pkg/llm/provider/internal/jsonreq"
)

const (
	// DefaultBaseURL is the public OpenAI API host.
	DefaultBaseURL = "https://api.openai.com"

	// DefaultModel is used when the request names no model.
	DefaultModel = "gpt-3.5-turbo"

	chatCompletionsPath = "/v1/chat/completions"
	temperature         = 0.7
	maxTokens           = 500
)

// Provider builds OpenAI chat completion requests.
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
	return "openai"
}

// BuildRequest passes the messages through unchanged and authenticates with
// a bearer token.
func (p *Provider) BuildRequest(ctx context.Context, req *llm.ChatRequest) (*http.Request, error) {
	body := openaiRequest{
		Model:       req.ModelOr(DefaultModel),
		Messages:    req.Messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	httpReq, err := jsonreq.New(ctx, p.baseURL+chatCompletionsPath, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)

	return httpReq, nil
}
