package statscmder

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/cmd/lisa/apiclient"
)

const statsLongDesc string = `Show a running server's usage summary.

The server keeps an outcome ledger (endpoint, searches, errors, timing);
no conversation text is ever stored or shown.

Examples:
  lisa stats
  lisa stats --server http://192.168.1.42:8080`

const statsShortDesc string = "Show usage statistics"

type statsCommander struct {
	serverURL string
}

func NewStatsCmd() *cobra.Command {
	cmder := &statsCommander{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: statsShortDesc,
		Long:  statsLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd)
		},
	}

	cmd.Flags().StringVarP(&cmder.serverURL, "server", "s", "http://localhost:8080", "Chatbot server URL")

	return cmd
}

func (c *statsCommander) run(ctx context.Context, cmd *cobra.Command) error {
	client := apiclient.New(c.serverURL)

	stats, err := client.Stats(ctx)
	if err != nil {
		return fmt.Errorf("could not fetch stats: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total requests:   %d\n", stats.TotalRequests)
	fmt.Fprintf(out, "Web searches:     %d\n", stats.Searches)
	fmt.Fprintf(out, "Annotations:      %d\n", stats.Annotations)
	fmt.Fprintf(out, "Errors:           %d\n", stats.Errors)
	fmt.Fprintf(out, "Avg duration:     %dms\n", stats.AvgDurationMS)

	if len(stats.ByEndpoint) > 0 {
		endpoints := make([]string, 0, len(stats.ByEndpoint))
		for endpoint := range stats.ByEndpoint {
			endpoints = append(endpoints, endpoint)
		}
		sort.Strings(endpoints)

		fmt.Fprintln(out, "By endpoint:")
		for _, endpoint := range endpoints {
			fmt.Fprintf(out, "  %-8s %d\n", endpoint, stats.ByEndpoint[endpoint])
		}
	}

	return nil
}
