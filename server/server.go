// Package server implements the attorney chatbot backend: chat endpoints
// that relay conversations to a completions provider with hosted web search
// enabled, a provider health check with a fallback model, a usage summary,
// and the same operations exposed as MCP tools.
package server

import (
	"fmt"
	"net"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/intake"
	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/openai"
	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/usage"
)

// Version identifies the server build to MCP clients.
const Version = "0.1.0"

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// Server relays chat conversations to the completions provider. It is
// stateless between requests: the readiness check re-reads each submitted
// transcript from scratch, and only outcome counters reach the usage ledger,
// never conversation text.
type Server struct {
	config     Config
	logger     *zap.Logger
	client     *openai.Client
	classifier *intake.Classifier
	recorder   usage.Recorder
	mcp        *mcp.Server
	app        *fiber.App
}

// New creates a new Server.
func New(config Config, logger *zap.Logger) (*Server, error) {
	vocab := intake.DefaultVocabulary()
	vocab.LegalTerms = append(vocab.LegalTerms, config.ExtraLegalTerms...)
	classifier, err := intake.NewClassifier(vocab)
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier: %w", err)
	}

	var recorder usage.Recorder
	if config.DBPath != "" {
		recorder, err = usage.NewSqliteRecorder(config.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite recorder: %w", err)
		}
		logger.Info("using SQLite usage ledger", zap.String("path", config.DBPath))
	} else {
		recorder = usage.NewMemoryRecorder()
		logger.Info("using in-memory usage ledger")
	}

	if config.APIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set; the provider will reject upstream calls")
	}

	app := fiber.New(fiber.Config{
		// Disable startup message for cleaner logs
		DisableStartupMessage: true,
	})

	s := &Server{
		config:     config,
		logger:     logger,
		classifier: classifier,
		recorder:   recorder,
		app:        app,
		client: openai.NewClient(openai.ClientConfig{
			BaseURL: config.OpenAIBaseURL,
			APIKey:  config.APIKey,
			Timeout: config.RequestTimeout(),
		}),
	}
	s.mcp = s.newMCPServer()

	app.Use(s.requestID)

	// Register routes
	api := app.Group("/api", cors.New())
	api.Post("/chat", s.handleFinderChat)
	api.Post("/lisa", s.handleLisaChat)
	api.Get("/health", s.handleHealth)
	api.Get("/stats", s.handleStats)

	// Liveness check, no upstream call
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})

	// MCP over streamable HTTP for agent clients
	app.All("/mcp", adaptor.HTTPHandler(s.mcpHandler()))

	return s, nil
}

// Run starts the server on the configured listening address.
func (s *Server) Run() error {
	s.logger.Info("starting chat server",
		zap.String("listen", s.config.ListenAddr),
		zap.String("upstream", s.config.OpenAIBaseURL),
		zap.String("model", s.config.Model),
	)

	return s.app.Listen(s.config.ListenAddr)
}

// RunWithListener starts the server on an existing listener, letting callers
// bind an ephemeral port.
func (s *Server) RunWithListener(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Close releases the server's resources.
func (s *Server) Close() error {
	return s.recorder.Close()
}

// requestID tags every request so log lines and replies can be correlated.
// An identifier supplied by the caller is kept.
func (s *Server) requestID(c *fiber.Ctx) error {
	id := c.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals(requestIDKey, id)
	c.Set(requestIDHeader, id)
	return c.Next()
}

// requestIDField renders the request's correlation id as a log field.
func requestIDField(c *fiber.Ctx) zap.Field {
	id, _ := c.Locals(requestIDKey).(string)
	return zap.String(requestIDKey, id)
}
