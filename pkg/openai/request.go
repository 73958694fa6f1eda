package openai

// ChatRequest represents a chat completion request.
type ChatRequest struct {
	Model    string    `json:"model"`    // Model name (e.g. "gpt-4o-search-preview")
	Messages []Message `json:"messages"` // Instruction set: one system turn, then the conversation

	// MaxTokens caps the length of the generated reply.
	MaxTokens int `json:"max_tokens,omitempty"`

	// WebSearchOptions enables the provider's hosted web search tool when
	// non-nil. An empty value requests search with provider defaults.
	WebSearchOptions *WebSearchOptions `json:"web_search_options,omitempty"`
}

// WebSearchOptions configures the hosted web search tool.
type WebSearchOptions struct {
	SearchContextSize string `json:"search_context_size,omitempty"` // "low", "medium", "high"
}
