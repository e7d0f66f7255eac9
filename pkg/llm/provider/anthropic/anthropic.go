// Package anthropic builds requests for Anthropic's Messages API.
//
// The Messages API does not accept "system" entries in the conversation list;
// the system prompt travels in its own top-level field instead.
package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/papercomputeco/chatproxy/pkg/llm"
	"github.com/papercomputeco/chatproxy/pkg/llm/provider/internal/jsonreq"
)

const (
	// DefaultBaseURL is the public Anthropic API host.
	DefaultBaseURL = "https://api.anthropic.com"

	// DefaultModel is used when the request names no model.
	DefaultModel = "claude-3-sonnet-20240229"

	// APIVersion is sent in the anthropic-version header.
	APIVersion = "2023-06-01"

	messagesPath = "/v1/messages"
	maxTokens    = 500
)

// Provider builds Anthropic message requests.
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
	return "anthropic"
}

func (p *Provider) BuildRequest(ctx context.Context, req *llm.ChatRequest) (*http.Request, error) {
	system, conversation := splitSystem(req.Messages)

	body := anthropicRequest{
		Model:     req.ModelOr(DefaultModel),
		MaxTokens: maxTokens,
		Messages:  conversation,
		System:    system,
	}

	httpReq, err := jsonreq.New(ctx, p.baseURL+messagesPath, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("x-api-key", req.APIKey)
	httpReq.Header.Set("anthropic-version", APIVersion)

	return httpReq, nil
}

// splitSystem returns the raw content of the first system message (nil when
// there is none) and every non-system message in order, untouched.
func splitSystem(messages []llm.Message) (json.RawMessage, []llm.Message) {
	var (
		system    json.RawMessage
		seenFirst bool
	)
	conversation := make([]llm.Message, 0, len(messages))

	for i := range messages {
		msg := messages[i]
		if !msg.IsSystem() {
			conversation = append(conversation, msg)
			continue
		}
		if !seenFirst {
			seenFirst = true
			system = msg.Content
		}
	}

	return system, conversation
}
