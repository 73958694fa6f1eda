package healthcmder

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/openai"
	"github.com/CodingWithShahzaib/openai-attorney-chatbot/server"
)

var _ = Describe("Health Command", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	// startProvider emulates the completions API. With healthy false every
	// call fails, taking the server to its "down" verdict.
	startProvider := func(healthy bool) *httptest.Server {
		provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !healthy {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			resp := openai.ChatResponse{
				Choices: []openai.Choice{{
					Message: openai.Message{Role: openai.RoleAssistant, Content: "ok"},
				}},
			}
			_ = json.NewEncoder(w).Encode(resp)
		}))
		DeferCleanup(provider.Close)
		return provider
	}

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

	It("reports a healthy provider", func() {
		provider := startProvider(true)
		addr := startServer(provider.URL)

		var out bytes.Buffer
		cmd := NewHealthCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"--server", addr})

		Expect(cmd.ExecuteContext(ctx)).To(Succeed())
		Expect(out.String()).To(ContainSubstring("ok"))
	})

	It("fails when the provider is down", func() {
		provider := startProvider(false)
		addr := startServer(provider.URL)

		cmd := NewHealthCmd()
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"--server", addr})

		err := cmd.ExecuteContext(ctx)
		Expect(err).To(MatchError(ContainSubstring("provider is down")))
	})
})
