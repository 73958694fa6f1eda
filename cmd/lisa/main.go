package main

import (
	"os"

	"github.com/spf13/cobra"

	askcmder "github.com/CodingWithShahzaib/openai-attorney-chatbot/cmd/lisa/ask"
	healthcmder "github.com/CodingWithShahzaib/openai-attorney-chatbot/cmd/lisa/health"
	mcpcmder "github.com/CodingWithShahzaib/openai-attorney-chatbot/cmd/lisa/mcp"
	mergecmder "github.com/CodingWithShahzaib/openai-attorney-chatbot/cmd/lisa/merge"
	statscmder "github.com/CodingWithShahzaib/openai-attorney-chatbot/cmd/lisa/stats"
)

const rootLongDesc string = `lisa is the command-line client for the attorney chatbot server.

It talks to a running server over its HTTP API: ask a question, check
provider health, read usage statistics, or bridge the chatbot tools to an
MCP client over stdio.`

func main() {
	root := &cobra.Command{
		Use:          "lisa",
		Short:        "Client for the attorney chatbot server",
		Long:         rootLongDesc,
		SilenceUsage: true,
	}

	root.AddCommand(askcmder.NewAskCmd())
	root.AddCommand(healthcmder.NewHealthCmd())
	root.AddCommand(statscmder.NewStatsCmd())
	root.AddCommand(mergecmder.NewMergeCmd())
	root.AddCommand(mcpcmder.NewMCPCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
