package provider

import (
	"fmt"

	"github.com/papercomputeco/chatproxy/pkg/llm/provider/anthropic"
	"github.com/papercomputeco/chatproxy/pkg/llm/provider/google"
	"github.com/papercomputeco/chatproxy/pkg/llm/provider/openai"
)

// Kind enumerates the supported providers.
type Kind int

const (
	OpenAI Kind = iota + 1
	Anthropic
	Google
)

var kindNames = map[Kind]string{
	OpenAI:    "openai",
	Anthropic: "anthropic",
	Google:    "google",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// SupportedProviders returns the list of all supported provider names.
func SupportedProviders() []string {
	return []string{OpenAI.String(), Anthropic.String(), Google.String()}
}

// Parse maps a wire provider name onto its Kind. Matching is exact.
func Parse(name string) (Kind, error) {
	for kind, n := range kindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (supported: %v)", ErrUnsupported, name, SupportedProviders())
}

// Endpoints holds the upstream base URL of each provider. Empty values fall
// back to the provider's public API host.
type Endpoints struct {
	OpenAI    string
	Anthropic string
	Google    string
}

// DefaultEndpoints returns the public API hosts of every provider.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		OpenAI:    openai.DefaultBaseURL,
		Anthropic: anthropic.DefaultBaseURL,
		Google:    google.DefaultBaseURL,
	}
}

// New creates the Provider for kind.
func New(kind Kind, endpoints Endpoints) (Provider, error) {
	switch kind {
	case OpenAI:
		return openai.New(endpoints.OpenAI), nil
	case Anthropic:
		return anthropic.New(endpoints.Anthropic), nil
	case Google:
		return google.New(endpoints.Google), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind)
	}
}

// Registry holds one Provider per Kind, built once at startup.
type Registry struct {
	providers map[Kind]Provider
}

// NewRegistry builds every supported provider against endpoints.
func NewRegistry(endpoints Endpoints) (*Registry, error) {
	r := &Registry{providers: make(map[Kind]Provider, len(kindNames))}
	for kind := range kindNames {
		p, err := New(kind, endpoints)
		if err != nil {
			return nil, fmt.Errorf("could not create provider %s: %w", kind, err)
		}
		r.providers[kind] = p
	}
	return r, nil
}

// Lookup resolves a wire provider name to its Provider.
func (r *Registry) Lookup(name string) (Provider, error) {
	kind, err := Parse(name)
	if err != nil {
		return nil, err
	}
	p, ok := r.providers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind)
	}
	return p, nil
}
