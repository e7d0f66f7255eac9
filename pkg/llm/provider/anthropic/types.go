package anthropic

import (
	"encoding/json"

	"github.com/papercomputeco/chatproxy/pkg/llm"
)

// anthropicRequest represents Anthropic's Messages API request format.
// System holds the raw content of the first system message. It is omitted
// when there is none, and sent as-is (an empty string, or an array of text
// blocks) when there is.
type anthropicRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []llm.Message   `json:"messages"`
	System    json.RawMessage `json:"system,omitempty"`
}
