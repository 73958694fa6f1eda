package prompt

import (
	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/openai"
)

// Assemble builds the outbound turn sequence: exactly one system turn
// carrying the given instruction text, followed by the conversation turns in
// their original order. System turns supplied by the caller are dropped so
// the instruction text cannot be overridden from outside.
func Assemble(system string, turns []openai.Message) []openai.Message {
	out := make([]openai.Message, 0, len(turns)+1)
	out = append(out, openai.Message{Role: openai.RoleSystem, Content: system})
	for _, turn := range turns {
		if turn.Role == openai.RoleSystem {
			continue
		}
		out = append(out, turn)
	}
	return out
}

// LatestUser returns a sequence holding only the most recent user turn,
// which is all the transcript-analysis flow forwards. The result is empty
// when the conversation has no user turns.
func LatestUser(turns []openai.Message) []openai.Message {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == openai.RoleUser {
			return []openai.Message{turns[i]}
		}
	}
	return nil
}
