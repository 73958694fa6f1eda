package askcmder

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/cmd/lisa/apiclient"
	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/openai"
)

const askLongDesc string = `Ask the attorney chatbot a question.

Sends a single-turn conversation to a running server and prints the model's
markdown reply, rendered for the terminal. With --mode lisa the text is
treated as a transcript to summarize instead. Pass "-" to read the question
from stdin.

Examples:
  lisa ask "I need help with a divorce. I live in Austin, TX"
  lisa ask --mode lisa "client called about a custody dispute in Denver"
  cat transcript.txt | lisa ask --mode lisa -`

const askShortDesc string = "Ask the attorney chatbot a question"

type askCommander struct {
	serverURL string
	mode      string
	plain     bool
}

func NewAskCmd() *cobra.Command {
	cmder := &askCommander{}

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: askShortDesc,
		Long:  askLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&cmder.serverURL, "server", "s", "http://localhost:8080", "Chatbot server URL")
	cmd.Flags().StringVarP(&cmder.mode, "mode", "m", "finder", `Conversation flow: "finder" or "lisa"`)
	cmd.Flags().BoolVar(&cmder.plain, "plain", false, "Print raw markdown without terminal rendering")

	return cmd
}

func (c *askCommander) run(ctx context.Context, cmd *cobra.Command, question string) error {
	var flow string
	switch c.mode {
	case "finder":
		flow = apiclient.FlowFinder
	case "lisa":
		flow = apiclient.FlowLisa
	default:
		return fmt.Errorf(`unknown mode %q (want "finder" or "lisa")`, c.mode)
	}

	if question == "-" {
		stdin, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("could not read stdin: %w", err)
		}
		question = string(stdin)
	}

	client := apiclient.New(c.serverURL)
	reply, err := client.Ask(ctx, flow, []openai.Message{
		{Role: openai.RoleUser, Content: question},
	})
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	out := cmd.OutOrStdout()

	rendered := reply.Message
	if !c.plain && isTerminal(out) {
		if md, err := renderMarkdown(reply.Message); err == nil {
			rendered = md
		}
	}
	fmt.Fprintln(out, rendered)

	if reply.Searched {
		fmt.Fprintf(out, "\n(%d web search annotation(s) attached)\n", len(reply.Annotations))
	}

	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderMarkdown renders for the detected terminal background.
func renderMarkdown(markdown string) (string, error) {
	style := "light"
	if termenv.HasDarkBackground() {
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}

	return renderer.Render(markdown)
}
