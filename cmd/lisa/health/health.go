package healthcmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/cmd/lisa/apiclient"
)

const healthLongDesc string = `Check a running server's connection to the completions provider.

The server pings its primary model and, when that fails, its fallback model.
"ok" means the primary answered, "degraded" means only the fallback did.
The command exits non-zero when the provider is down.

Examples:
  lisa health
  lisa health --server http://192.168.1.42:8080`

const healthShortDesc string = "Check provider health"

type healthCommander struct {
	serverURL string
}

func NewHealthCmd() *cobra.Command {
	cmder := &healthCommander{}

	cmd := &cobra.Command{
		Use:   "health",
		Short: healthShortDesc,
		Long:  healthLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd)
		},
	}

	cmd.Flags().StringVarP(&cmder.serverURL, "server", "s", "http://localhost:8080", "Chatbot server URL")

	return cmd
}

func (c *healthCommander) run(ctx context.Context, cmd *cobra.Command) error {
	client := apiclient.New(c.serverURL)

	reply, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	switch reply.Status {
	case "ok":
		fmt.Fprintf(cmd.OutOrStdout(), "ok (model %s)\n", reply.Model)
	case "degraded":
		fmt.Fprintf(cmd.OutOrStdout(), "degraded (fallback model %s answered)\n", reply.Model)
	default:
		return fmt.Errorf("provider is down: %s", reply.Error)
	}

	return nil
}
