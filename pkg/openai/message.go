package openai

// Roles accepted by the chat completions API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single turn in a conversation.
type Message struct {
	Role        string       `json:"role"`                  // "system", "user", "assistant"
	Content     string       `json:"content"`               // The message text
	Annotations []Annotation `json:"annotations,omitempty"` // Search citations attached by the provider (responses only)
}
