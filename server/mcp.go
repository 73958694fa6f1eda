package server

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/openai"
	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/usage"
)

// findAttorneysArgs is the input of the find_attorneys tool.
type findAttorneysArgs struct {
	Query string `json:"query" jsonschema:"the legal issue and the city and state, in one sentence"`
}

// draftBriefArgs is the input of the draft_legal_brief tool.
type draftBriefArgs struct {
	Transcript string `json:"transcript" jsonschema:"transcript of the conversation to summarize"`
}

// newMCPServer exposes both conversation flows as MCP tools so agent clients
// can call them without speaking the HTTP API.
func (s *Server) newMCPServer() *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: "attorney-chatbot", Version: Version}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "find_attorneys",
		Description: "Find licensed attorneys for a legal issue in a location. Returns a markdown list of candidates.",
	}, s.findAttorneysTool)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "draft_legal_brief",
		Description: "Summarize a conversation about a legal matter into a structured legal-information email in markdown.",
	}, s.draftBriefTool)

	return srv
}

// mcpHandler serves the MCP server over streamable HTTP.
func (s *Server) mcpHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
}

func (s *Server) findAttorneysTool(ctx context.Context, req *mcp.CallToolRequest, args findAttorneysArgs) (*mcp.CallToolResult, any, error) {
	reply, err := s.relay(ctx, usage.EndpointFinder, []openai.Message{
		{Role: openai.RoleUser, Content: args.Query},
	})
	if err != nil {
		return nil, nil, err
	}

	return textResult(reply), nil, nil
}

func (s *Server) draftBriefTool(ctx context.Context, req *mcp.CallToolRequest, args draftBriefArgs) (*mcp.CallToolResult, any, error) {
	reply, err := s.relay(ctx, usage.EndpointLisa, []openai.Message{
		{Role: openai.RoleUser, Content: args.Transcript},
	})
	if err != nil {
		return nil, nil, err
	}

	return textResult(reply), nil, nil
}

// textResult wraps a relayed reply as MCP text content.
func textResult(reply *ChatResponse) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: reply.Message}},
	}
}
