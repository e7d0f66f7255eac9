package openai

import "github.com/papercomputeco/chatproxy/pkg/llm"

// openaiRequest represents OpenAI's chat completions request format.
type openaiRequest struct {
	Model       string        `json:"model"`
	Messages    []llm.Message `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}
