package provider_test

import (
	"context"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/chatproxy/pkg/llm"
	"github.com/papercomputeco/chatproxy/pkg/llm/provider"
)

var _ = Describe("Parse", func() {
	DescribeTable("known provider names",
		func(name string, want provider.Kind) {
			kind, err := provider.Parse(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(kind).To(Equal(want))
			Expect(kind.String()).To(Equal(name))
		},
		Entry("openai", "openai", provider.OpenAI),
		Entry("anthropic", "anthropic", provider.Anthropic),
		Entry("google", "google", provider.Google),
	)

	DescribeTable("unknown provider names",
		func(name string) {
			_, err := provider.Parse(name)
			Expect(err).To(MatchError(provider.ErrUnsupported))
		},
		Entry("unknown vendor", "cohere"),
		Entry("case mismatch", "OpenAI"),
		Entry("empty", ""),
	)
})

var _ = Describe("New", func() {
	It("builds a provider for every supported kind", func() {
		for _, name := range provider.SupportedProviders() {
			kind, err := provider.Parse(name)
			Expect(err).NotTo(HaveOccurred())

			p, err := provider.New(kind, provider.DefaultEndpoints())
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Name()).To(Equal(name))
		}
	})

	It("rejects kinds outside the closed set", func() {
		_, err := provider.New(provider.Kind(42), provider.Endpoints{})
		Expect(err).To(MatchError(provider.ErrUnsupported))
		Expect(provider.Kind(42).String()).To(Equal("Kind(42)"))
	})
})

var _ = Describe("Registry", func() {
	var reg *provider.Registry

	BeforeEach(func() {
		var err error
		reg, err = provider.NewRegistry(provider.Endpoints{OpenAI: "http://mock"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("resolves providers by wire name against the configured endpoints", func() {
		p, err := reg.Lookup("openai")
		Expect(err).NotTo(HaveOccurred())

		req, err := p.BuildRequest(context.Background(), &llm.ChatRequest{
			Provider: "openai",
			APIKey:   "k",
			Messages: []llm.Message{llm.NewTextMessage("user", "hi")},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(req.URL.Host).To(Equal("mock"))
	})

	It("falls back to the public host for unset endpoints", func() {
		p, err := reg.Lookup("anthropic")
		Expect(err).NotTo(HaveOccurred())

		req, err := p.BuildRequest(context.Background(), &llm.ChatRequest{
			Provider: "anthropic",
			APIKey:   "k",
			Messages: []llm.Message{llm.NewTextMessage("user", "hi")},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(req.URL.Host).To(Equal("api.anthropic.com"))
	})

	It("rejects unknown names", func() {
		_, err := reg.Lookup("mistral")
		Expect(err).To(MatchError(provider.ErrUnsupported))
	})

	It("builds identical payloads for identical input", func() {
		in := &llm.ChatRequest{
			Provider: "google",
			APIKey:   "k",
			Messages: []llm.Message{
				llm.NewTextMessage("system", "S"),
				llm.NewTextMessage("user", "U"),
			},
		}

		for _, name := range provider.SupportedProviders() {
			in.Provider = name
			p, err := reg.Lookup(name)
			Expect(err).NotTo(HaveOccurred())

			first, err := p.BuildRequest(context.Background(), in)
			Expect(err).NotTo(HaveOccurred())
			second, err := p.BuildRequest(context.Background(), in)
			Expect(err).NotTo(HaveOccurred())

			a, _ := io.ReadAll(first.Body)
			b, _ := io.ReadAll(second.Body)
			Expect(a).To(Equal(b), "provider %s", name)
			Expect(first.URL.String()).To(Equal(second.URL.String()))
		}
	})
})
