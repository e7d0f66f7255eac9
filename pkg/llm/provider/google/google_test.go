package google_test

import (
	"context"
	"encoding/json"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/chatproxy/pkg/llm"
	"github.com/papercomputeco/chatproxy/pkg/llm/provider/google"
)

type parsedBody struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig map[string]float64 `json:"generationConfig"`
}

var _ = Describe("Google Provider", func() {
	var p *google.Provider

	BeforeEach(func() {
		p = google.New("")
	})

	Describe("Name", func() {
		It("returns 'google'", func() {
			Expect(p.Name()).To(Equal("google"))
		})
	})

	Describe("BuildRequest", func() {
		build := func(req *llm.ChatRequest) parsedBody {
			httpReq, err := p.BuildRequest(context.Background(), req)
			Expect(err).NotTo(HaveOccurred())

			raw, err := io.ReadAll(httpReq.Body)
			Expect(err).NotTo(HaveOccurred())

			var body parsedBody
			Expect(json.Unmarshal(raw, &body)).To(Succeed())
			return body
		}

		It("formats each part as '{role}: {content}'", func() {
			body := build(&llm.ChatRequest{
				Provider: "google",
				APIKey:   "g-key",
				Messages: []llm.Message{llm.NewTextMessage("user", "hi")},
			})

			Expect(body.Contents).To(HaveLen(1))
			Expect(body.Contents[0].Parts[0].Text).To(Equal("user: hi"))
		})

		It("flattens every message into a single content entry", func() {
			body := build(&llm.ChatRequest{
				Provider: "google",
				APIKey:   "g-key",
				Messages: []llm.Message{
					llm.NewTextMessage("system", "Be brief."),
					llm.NewTextMessage("user", "hi"),
					llm.NewTextMessage("assistant", "hello"),
				},
			})

			Expect(body.Contents).To(HaveLen(1))
			Expect(body.Contents[0].Role).To(BeEmpty())
			Expect(body.Contents[0].Parts).To(HaveLen(3))
			Expect(body.Contents[0].Parts[0].Text).To(Equal("system: Be brief."))
			Expect(body.Contents[0].Parts[2].Text).To(Equal("assistant: hello"))
		})

		It("renders non-string content as its JSON text", func() {
			req := &llm.ChatRequest{}
			Expect(json.Unmarshal([]byte(
				`{"provider":"google","apiKey":"g-key","messages":[{"role":"user","content":[{"type":"text","text":"hi"}]}]}`,
			), req)).To(Succeed())

			body := build(req)
			Expect(body.Contents[0].Parts[0].Text).To(Equal(`user: [{"type":"text","text":"hi"}]`))
		})

		It("sets generation config", func() {
			body := build(&llm.ChatRequest{
				Provider: "google",
				APIKey:   "g-key",
				Messages: []llm.Message{llm.NewTextMessage("user", "hi")},
			})

			Expect(body.GenerationConfig).To(HaveKeyWithValue("temperature", 0.7))
			Expect(body.GenerationConfig).To(HaveKeyWithValue("maxOutputTokens", 500.0))
		})

		It("puts the default model in the path and the key in the query", func() {
			httpReq, err := p.BuildRequest(context.Background(), &llm.ChatRequest{
				Provider: "google",
				APIKey:   "g-key",
				Messages: []llm.Message{llm.NewTextMessage("user", "hi")},
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(httpReq.URL.String()).To(Equal(
				"https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent?key=g-key",
			))
			Expect(httpReq.Header.Get("Authorization")).To(BeEmpty())
			Expect(httpReq.Header.Get("x-api-key")).To(BeEmpty())
		})

		It("uses an explicit model and escapes the key", func() {
			httpReq, err := p.BuildRequest(context.Background(), &llm.ChatRequest{
				Provider: "google",
				APIKey:   "a&b=c",
				Model:    "gemini-1.5-flash",
				Messages: []llm.Message{llm.NewTextMessage("user", "hi")},
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(httpReq.URL.Path).To(Equal("/v1beta/models/gemini-1.5-flash:generateContent"))
			Expect(httpReq.URL.Query().Get("key")).To(Equal("a&b=c"))
		})
	})
})
