package server

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/openai"
	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/prompt"
	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/usage"
)

// ChatRequest is the body both chat endpoints accept.
type ChatRequest struct {
	// Messages is the conversation so far, oldest turn first.
	Messages []openai.Message `json:"messages"`
}

// ChatResponse is the reply both chat endpoints return.
type ChatResponse struct {
	// Message is the model's markdown-formatted reply.
	Message string `json:"message"`

	// Annotations are the provider's search records, passed through verbatim.
	Annotations []openai.Annotation `json:"annotations"`

	// Searched reports whether at least one annotation was attached. It is a
	// display hint; the provider does not guarantee a search behind it.
	Searched bool `json:"searched"`
}

// HealthResponse is the reply of the provider health check.
type HealthResponse struct {
	// Status is "ok", "degraded" (only the fallback model answered),
	// or "down".
	Status string `json:"status"`

	// Model that answered the ping, when one did.
	Model string `json:"model,omitempty"`

	// Error from the last failed attempt, when none did.
	Error string `json:"error,omitempty"`
}

// handleFinderChat serves the guided attorney-finder flow.
func (s *Server) handleFinderChat(c *fiber.Ctx) error {
	return s.handleChat(c, usage.EndpointFinder)
}

// handleLisaChat serves the transcript-analysis flow.
func (s *Server) handleLisaChat(c *fiber.Ctx) error {
	return s.handleChat(c, usage.EndpointLisa)
}

// handleChat parses and validates the conversation, then relays it through
// the given flow. Malformed bodies are rejected here, before anything leaves
// the process.
func (s *Server) handleChat(c *fiber.Ctx, flow string) error {
	var req ChatRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		s.logger.Error("failed to parse request", zap.Error(err), requestIDField(c))
		return c.Status(fiber.StatusBadRequest).JSON(openai.ErrorResponse{Error: "invalid request body"})
	}
	if req.Messages == nil {
		return c.Status(fiber.StatusBadRequest).JSON(openai.ErrorResponse{Error: "messages is required"})
	}

	reply, err := s.relay(c.Context(), flow, req.Messages)
	if err != nil {
		s.logger.Error("upstream request failed", zap.Error(err), requestIDField(c))
		return c.Status(fiber.StatusBadGateway).JSON(openai.ErrorResponse{Error: "upstream request failed"})
	}

	return c.JSON(reply)
}

// relay runs one conversation through a flow: evaluate readiness, assemble
// the outbound turns, call the provider once, record the outcome. The finder
// forwards the whole conversation; the transcript-analysis flow forwards
// only the most recent user turn.
func (s *Server) relay(ctx context.Context, flow string, turns []openai.Message) (*ChatResponse, error) {
	startTime := time.Now()

	verdict := s.classifier.Evaluate(turns)

	var outbound []openai.Message
	switch flow {
	case usage.EndpointLisa:
		baseline := prompt.LisaBaseline
		if verdict.Ready() {
			baseline = prompt.WithSearchDirective(baseline)
		}
		outbound = prompt.Assemble(baseline, prompt.LatestUser(turns))
	default:
		baseline := prompt.FinderBaseline
		if verdict.Ready() {
			baseline = prompt.WithSearchDirective(baseline)
		}
		outbound = prompt.Assemble(baseline, turns)
	}

	s.logger.Debug("relaying conversation",
		zap.String("flow", flow),
		zap.Int("turns", len(turns)),
		zap.Bool("search_now", verdict.Ready()),
	)

	resp, err := s.client.CreateChatCompletion(ctx, &openai.ChatRequest{
		Model:            s.config.Model,
		Messages:         outbound,
		MaxTokens:        s.config.MaxTokens,
		WebSearchOptions: &openai.WebSearchOptions{},
	})

	entry := usage.Entry{
		Timestamp:  time.Now(),
		Endpoint:   flow,
		Model:      s.config.Model,
		Turns:      len(turns),
		DurationMS: time.Since(startTime).Milliseconds(),
		Status:     usage.StatusOK,
	}
	if err != nil {
		entry.Status = usage.StatusError
		s.record(ctx, entry)
		return nil, err
	}

	annotations := resp.Annotations()
	if annotations == nil {
		// keep the JSON field a list, never null
		annotations = []openai.Annotation{}
	}
	entry.Searched = len(annotations) > 0
	entry.Annotations = len(annotations)
	s.record(ctx, entry)

	s.logger.Info("conversation relayed",
		zap.String("flow", flow),
		zap.Int("turns", len(turns)),
		zap.Bool("search_now", verdict.Ready()),
		zap.Bool("searched", entry.Searched),
		zap.String("reply_preview", truncate(resp.Text(), 100)),
		zap.Duration("duration", time.Since(startTime)),
	)

	return &ChatResponse{
		Message:     resp.Text(),
		Annotations: annotations,
		Searched:    len(annotations) > 0,
	}, nil
}

// record appends a usage entry. Ledger failures are logged and swallowed;
// don't fail the request just because bookkeeping failed.
func (s *Server) record(ctx context.Context, entry usage.Entry) {
	if err := s.recorder.Record(ctx, entry); err != nil {
		s.logger.Warn("failed to record usage", zap.Error(err))
	}
}

// handleHealth checks the provider by requesting a one-word completion.
// When the primary model fails it tries the fallback once: "ok" means the
// primary answered, "degraded" means only the fallback did, "down" means
// neither. At most two upstream calls per check.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	startTime := time.Now()

	lastErr := s.ping(c.Context(), s.config.Model)
	if lastErr == nil {
		s.recordHealth(c.Context(), startTime, s.config.Model, usage.StatusOK)
		return c.JSON(HealthResponse{Status: "ok", Model: s.config.Model})
	}

	s.logger.Warn("health check: primary model failed",
		zap.String("model", s.config.Model),
		zap.Error(lastErr),
	)

	if s.config.FallbackModel != "" {
		fallbackErr := s.ping(c.Context(), s.config.FallbackModel)
		if fallbackErr == nil {
			s.recordHealth(c.Context(), startTime, s.config.FallbackModel, usage.StatusOK)
			return c.JSON(HealthResponse{Status: "degraded", Model: s.config.FallbackModel})
		}
		s.logger.Warn("health check: fallback model failed",
			zap.String("model", s.config.FallbackModel),
			zap.Error(fallbackErr),
		)
		lastErr = fallbackErr
	}

	s.recordHealth(c.Context(), startTime, s.config.Model, usage.StatusError)
	return c.Status(fiber.StatusServiceUnavailable).JSON(HealthResponse{
		Status: "down",
		Error:  lastErr.Error(),
	})
}

// ping asks a model for a one-word reply, without web search.
func (s *Server) ping(ctx context.Context, model string) error {
	_, err := s.client.CreateChatCompletion(ctx, &openai.ChatRequest{
		Model: model,
		Messages: []openai.Message{
			{Role: openai.RoleSystem, Content: "Reply with the single word: ok"},
			{Role: openai.RoleUser, Content: "ping"},
		},
		MaxTokens: 16,
	})
	return err
}

func (s *Server) recordHealth(ctx context.Context, startTime time.Time, model, status string) {
	s.record(ctx, usage.Entry{
		Timestamp:  time.Now(),
		Endpoint:   usage.EndpointHealth,
		Model:      model,
		DurationMS: time.Since(startTime).Milliseconds(),
		Status:     status,
	})
}

// handleStats returns the aggregated usage ledger.
func (s *Server) handleStats(c *fiber.Ctx) error {
	summary, err := s.recorder.Summarize(c.Context())
	if err != nil {
		s.logger.Error("failed to summarize usage", zap.Error(err), requestIDField(c))
		return c.Status(fiber.StatusInternalServerError).JSON(openai.ErrorResponse{Error: "failed to summarize usage"})
	}

	return c.JSON(summary)
}

func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
