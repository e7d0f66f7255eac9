package llm

import "encoding/json"

// Message is one entry of the inbound conversation. Only the role is
// interpreted; the element itself is kept as received so providers that
// accept the caller's message shape can forward it untouched.
type Message struct {
	Role string

	// Content is the raw "content" value. It may be a string, an array of
	// content parts, or absent.
	Content json.RawMessage

	raw json.RawMessage
}

// NewTextMessage creates a message with the given role and string content.
func NewTextMessage(role, text string) Message {
	content, _ := json.Marshal(text)
	return Message{Role: role, Content: content}
}

// UnmarshalJSON keeps the element verbatim and picks out "role" and
// "content" by exact key. It never fails: an element that is not an object,
// or whose role is not a string, simply has no role.
func (m *Message) UnmarshalJSON(data []byte) error {
	m.raw = append(json.RawMessage(nil), data...)
	m.Role, m.Content = "", nil

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	_ = json.Unmarshal(fields["role"], &m.Role)
	m.Content = fields["content"]
	return nil
}

// MarshalJSON writes the element as it was received, or {role, content} for
// messages built in code.
func (m Message) MarshalJSON() ([]byte, error) {
	if m.raw != nil {
		return m.raw, nil
	}
	return json.Marshal(struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content,omitempty"`
	}{m.Role, m.Content})
}

// Text returns the content as plain text: the string itself when content is
// a JSON string, otherwise the raw JSON.
func (m *Message) Text() string {
	var s string
	if err := json.Unmarshal(m.Content, &s); err == nil {
		return s
	}
	return string(m.Content)
}

// IsSystem reports whether the message carries the system role.
func (m *Message) IsSystem() bool {
	return m.Role == RoleSystem
}

// Well known message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
