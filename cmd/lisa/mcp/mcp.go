package mcpcmder

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/cmd/lisa/apiclient"
	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/logger"
	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/openai"
)

const mcpLongDesc string = `Bridge a running chatbot server to an MCP client over stdio.

Registers find_attorneys and draft_legal_brief tools that forward to the
server's HTTP API. Point an MCP-capable agent at this command, e.g.:

  {"command": "lisa", "args": ["mcp", "--server", "http://localhost:8080"]}

Logs go to stderr; stdout carries the MCP protocol.`

const mcpShortDesc string = "Serve the chatbot tools over MCP stdio"

type mcpCommander struct {
	serverURL string
	debug     bool
}

type findAttorneysArgs struct {
	Query string `json:"query" jsonschema:"the legal issue and the city and state, in one sentence"`
}

type draftBriefArgs struct {
	Transcript string `json:"transcript" jsonschema:"transcript of the conversation to summarize"`
}

func NewMCPCmd() *cobra.Command {
	cmder := &mcpCommander{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: mcpShortDesc,
		Long:  mcpLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&cmder.serverURL, "server", "s", "http://localhost:8080", "Chatbot server URL")
	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")

	return cmd
}

func (c *mcpCommander) run(ctx context.Context) error {
	log := logger.NewStderrLogger(c.debug)
	defer log.Sync()

	client := apiclient.New(c.serverURL)

	ask := func(ctx context.Context, flow, text string) (*mcp.CallToolResult, error) {
		reply, err := client.Ask(ctx, flow, []openai.Message{
			{Role: openai.RoleUser, Content: text},
		})
		if err != nil {
			return nil, err
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: reply.Message}},
		}, nil
	}

	srv := mcp.NewServer(&mcp.Implementation{Name: "lisa-bridge", Version: "0.1.0"}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "find_attorneys",
		Description: "Find licensed attorneys for a legal issue in a location. Returns a markdown list of candidates.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args findAttorneysArgs) (*mcp.CallToolResult, any, error) {
		result, err := ask(ctx, apiclient.FlowFinder, args.Query)
		return result, nil, err
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "draft_legal_brief",
		Description: "Summarize a conversation about a legal matter into a structured legal-information email in markdown.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args draftBriefArgs) (*mcp.CallToolResult, any, error) {
		result, err := ask(ctx, apiclient.FlowLisa, args.Transcript)
		return result, nil, err
	})

	log.Info("mcp bridge listening on stdio", zap.String("server", c.serverURL))

	return srv.Run(ctx, &mcp.StdioTransport{})
}
