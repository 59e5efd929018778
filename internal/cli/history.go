package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orgitcog/froot/internal/store"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded ledger runs, newest first",
		Long: `List the runs recorded in the result ledger, newest first, with the
number of encodings and layers each run recorded. Requires --db.

Example:
  froot history --db results.db --limit 20`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, limit, cmd)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of runs to list")
	return cmd
}

func runHistory(opts *RootOptions, limit int, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if opts.Database == "" {
		return commandError(formatter, ErrCodeLedger, "history requires --db")
	}
	st, err := store.Open(opts.Database)
	if err != nil {
		return commandError(formatter, ErrCodeLedger, err.Error())
	}
	defer st.Close()

	records, err := st.History(cmd.Context(), limit)
	if err != nil {
		return commandError(formatter, ErrCodeLedger, err.Error())
	}

	if opts.Format == "json" {
		return formatter.JSON(historyPayload(records))
	}
	if len(records) == 0 {
		fmt.Fprintln(formatter.Writer, "no recorded runs")
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(formatter.Writer, "%s  %-10s %s  (%d encoding(s), %d layer(s))\n",
			rec.StartedAt, rec.Command, rec.ID, rec.Encodings, rec.Layers)
	}
	return nil
}

// HistoryRecord is one ledger run in the history payload.
type HistoryRecord struct {
	ID        string `json:"id"`
	Command   string `json:"command"`
	StartedAt string `json:"started_at"`
	Encodings int    `json:"encodings"`
	Layers    int    `json:"layers"`
}

func historyPayload(records []store.RunRecord) []HistoryRecord {
	out := make([]HistoryRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, HistoryRecord{
			ID:        rec.ID,
			Command:   rec.Command,
			StartedAt: rec.StartedAt,
			Encodings: rec.Encodings,
			Layers:    rec.Layers,
		})
	}
	return out
}
