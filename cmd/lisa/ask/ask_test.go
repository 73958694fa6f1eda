package askcmder

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/openai"
	"github.com/CodingWithShahzaib/openai-attorney-chatbot/server"
)

var _ = Describe("Ask Command", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	// startProvider emulates the completions API, answering every call with
	// the given text and capturing the requests it saw.
	startProvider := func(replyText string) (*httptest.Server, *[]openai.ChatRequest) {
		requests := &[]openai.ChatRequest{}
		provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			var req openai.ChatRequest
			_ = json.Unmarshal(body, &req)
			*requests = append(*requests, req)

			resp := openai.ChatResponse{
				Choices: []openai.Choice{{
					Message: openai.Message{Role: openai.RoleAssistant, Content: replyText},
				}},
			}
			_ = json.NewEncoder(w).Encode(resp)
		}))
		DeferCleanup(provider.Close)
		return provider, requests
	}

	// startServer runs a real chat server against the provider and returns
	// its base URL.
	startServer := func(providerURL string) string {
		config := server.DefaultConfig()
		config.OpenAIBaseURL = providerURL
		config.APIKey = "test-key"

		srv, err := server.New(config, zap.NewNop())
		Expect(err).NotTo(HaveOccurred())

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())

		go func() {
			_ = srv.RunWithListener(listener)
		}()

		DeferCleanup(func() {
			srv.Shutdown()
			srv.Close()
		})

		return "http://" + listener.Addr().String()
	}

	It("prints the model's reply", func() {
		provider, _ := startProvider("Here are three attorneys near you.")
		addr := startServer(provider.URL)

		var out bytes.Buffer
		cmd := NewAskCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"--server", addr, "I need a divorce lawyer in Austin, TX"})

		Expect(cmd.ExecuteContext(ctx)).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Here are three attorneys near you."))
	})

	It("targets the transcript-analysis flow with --mode lisa", func() {
		provider, requests := startProvider("Subject: Your custody question")
		addr := startServer(provider.URL)

		var out bytes.Buffer
		cmd := NewAskCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"--server", addr, "--mode", "lisa", "client asked about a custody dispute"})

		Expect(cmd.ExecuteContext(ctx)).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Subject: Your custody question"))

		Expect(*requests).To(HaveLen(1))
		upstream := (*requests)[0].Messages
		Expect(upstream[len(upstream)-1].Content).To(Equal("client asked about a custody dispute"))
	})

	It("reads the question from stdin when given -", func() {
		provider, requests := startProvider("ok")
		addr := startServer(provider.URL)

		var out bytes.Buffer
		cmd := NewAskCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetIn(strings.NewReader("transcript from a file"))
		cmd.SetArgs([]string{"--server", addr, "--mode", "lisa", "-"})

		Expect(cmd.ExecuteContext(ctx)).To(Succeed())

		Expect(*requests).To(HaveLen(1))
		upstream := (*requests)[0].Messages
		Expect(upstream[len(upstream)-1].Content).To(Equal("transcript from a file"))
	})

	It("rejects an unknown mode", func() {
		cmd := NewAskCmd()
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"--mode", "oracle", "hello"})

		err := cmd.ExecuteContext(ctx)
		Expect(err).To(MatchError(ContainSubstring("unknown mode")))
	})

	It("surfaces server failures", func() {
		provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		DeferCleanup(provider.Close)
		addr := startServer(provider.URL)

		cmd := NewAskCmd()
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"--server", addr, "hello"})

		err := cmd.ExecuteContext(ctx)
		Expect(err).To(MatchError(ContainSubstring("502")))
	})
})
