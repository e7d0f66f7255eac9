package llm_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/chatproxy/pkg/llm"
)

func decode(body string) (*llm.ChatRequest, error) {
	req := &llm.ChatRequest{}
	return req, json.Unmarshal([]byte(body), req)
}

var _ = Describe("ChatRequest", func() {
	It("reads the documented keys", func() {
		req, err := decode(`{"provider":"openai","apiKey":"k","model":"gpt-4o","messages":[{"role":"user","content":"hi"}]}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(req.Provider).To(Equal("openai"))
		Expect(req.APIKey).To(Equal("k"))
		Expect(req.Model).To(Equal("gpt-4o"))
		Expect(req.Messages).To(HaveLen(1))
		Expect(req.HasRequiredFields()).To(BeTrue())
	})

	It("ignores keys that differ only in case", func() {
		req, err := decode(`{"PROVIDER":"openai","APIKEY":"k","Messages":[{"role":"user","content":"hi"}],"Model":"x"}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(req.Provider).To(BeEmpty())
		Expect(req.APIKey).To(BeEmpty())
		Expect(req.Messages).To(BeEmpty())
		Expect(req.Model).To(BeEmpty())
		Expect(req.HasRequiredFields()).To(BeFalse())
	})

	It("does not let a case variant override the exact key", func() {
		req, err := decode(`{"apiKey":"right","ApiKey":"wrong"}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(req.APIKey).To(Equal("right"))
	})

	DescribeTable("rejects values of the wrong type",
		func(body string) {
			_, err := decode(body)
			Expect(err).To(HaveOccurred())
		},
		Entry("messages as a string", `{"messages":"hi"}`),
		Entry("provider as a number", `{"provider":1}`),
		Entry("not an object", `[1,2,3]`),
	)

	It("falls back to the given model", func() {
		req := &llm.ChatRequest{}
		Expect(req.ModelOr("gemini-pro")).To(Equal("gemini-pro"))
	})
})

var _ = Describe("Message", func() {
	It("re-encodes a decoded element exactly, extra fields included", func() {
		raw := `{"role":"user","name":"alice","content":[{"type":"text","text":"hi"}]}`
		var msg llm.Message
		Expect(json.Unmarshal([]byte(raw), &msg)).To(Succeed())
		Expect(msg.Role).To(Equal("user"))

		out, err := json.Marshal(msg)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(raw))
	})

	It("accepts elements that carry no usable role", func() {
		var msgs []llm.Message
		Expect(json.Unmarshal([]byte(`[{"role":7,"content":"x"},"bare"]`), &msgs)).To(Succeed())
		Expect(msgs).To(HaveLen(2))
		Expect(msgs[0].Role).To(BeEmpty())
		Expect(msgs[1].Role).To(BeEmpty())

		out, err := json.Marshal(msgs)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(`[{"role":7,"content":"x"},"bare"]`))
	})

	It("reads role by exact key", func() {
		var msg llm.Message
		Expect(json.Unmarshal([]byte(`{"Role":"system","content":"x"}`), &msg)).To(Succeed())
		Expect(msg.IsSystem()).To(BeFalse())
	})

	DescribeTable("Text",
		func(raw, want string) {
			var msg llm.Message
			Expect(json.Unmarshal([]byte(raw), &msg)).To(Succeed())
			Expect(msg.Text()).To(Equal(want))
		},
		Entry("string content", `{"role":"user","content":"hi"}`, "hi"),
		Entry("array content", `{"role":"user","content":[{"type":"text","text":"hi"}]}`, `[{"type":"text","text":"hi"}]`),
		Entry("missing content", `{"role":"user"}`, ""),
	)

	It("encodes messages built in code as role and content", func() {
		out, err := json.Marshal(llm.NewTextMessage("assistant", "hello"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(`{"role":"assistant","content":"hello"}`))
	})
})
