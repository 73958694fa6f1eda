package mergecmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/usage"
)

const mergeLongDesc string = `Merge usage ledgers into a target SQLite database.

Each server instance keeps its own ledger; merging them produces a single
database for combined reporting. Entries are appended as-is.

Examples:
  lisa merge --db merged.db node1-usage.db node2-usage.db
  lisa merge --db /var/lib/attorneybot/usage.db /backups/usage-monday.db`

const mergeShortDesc string = "Merge usage ledgers"

type mergeCommander struct {
	dbPath string
}

func NewMergeCmd() *cobra.Command {
	cmder := &mergeCommander{}

	cmd := &cobra.Command{
		Use:   "merge [sources...]",
		Short: mergeShortDesc,
		Long:  mergeLongDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd, args)
		},
	}

	cmd.Flags().StringVar(&cmder.dbPath, "db", "usage.db", "Path to target SQLite ledger")

	return cmd
}

func (c *mergeCommander) run(ctx context.Context, cmd *cobra.Command, sources []string) error {
	target, err := usage.NewSqliteRecorder(c.dbPath)
	if err != nil {
		return fmt.Errorf("could not open target ledger %s: %w", c.dbPath, err)
	}
	defer target.Close()

	var total int

	for _, srcPath := range sources {
		source, err := usage.NewSqliteRecorder(srcPath)
		if err != nil {
			return fmt.Errorf("could not open source ledger %s: %w", srcPath, err)
		}

		entries, err := source.Entries(ctx)
		if err != nil {
			source.Close()
			return fmt.Errorf("could not list entries from %s: %w", srcPath, err)
		}

		for _, entry := range entries {
			if err := target.Record(ctx, entry); err != nil {
				source.Close()
				return fmt.Errorf("could not record entry: %w", err)
			}
		}

		total += len(entries)
		source.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d entries\n", srcPath, len(entries))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Merged %d entries from %d sources into %s\n",
		total, len(sources), c.dbPath)

	return nil
}
