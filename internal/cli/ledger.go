package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/rerun/internal/ledger"
)

// LedgerEntry is one record in the JSON dump.
type LedgerEntry struct {
	RunToken string `json:"run_token"`
	Seq      int64  `json:"seq"`
	WidgetID string `json:"widget_id"`
	Label    string `json:"label"`
}

// NewLedgerCommand creates the ledger command.
func NewLedgerCommand(rootOpts *RootOptions) *cobra.Command {
	var runToken string

	cmd := &cobra.Command{
		Use:   "ledger <db>",
		Short: "Dump app-testing ledger records",
		Long: `Dump the widget registrations recorded in an app-testing ledger,
ordered by run token and registration sequence.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedger(rootOpts, args[0], runToken, cmd)
		},
	}

	cmd.Flags().StringVar(&runToken, "run", "", "restrict output to one run token")

	return cmd
}

func runLedger(opts *RootOptions, path, runToken string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(path); err != nil {
		msg := fmt.Sprintf("ledger database not found: %s", path)
		if outErr := formatter.Error("LEDGER_NOT_FOUND", msg); outErr != nil {
			return outErr
		}
		return NewExitError(ExitCommandError, msg)
	}

	store, err := ledger.Open(path)
	if err != nil {
		if outErr := formatter.Error("LEDGER_UNREADABLE", err.Error()); outErr != nil {
			return outErr
		}
		return NewExitError(ExitCommandError, err.Error())
	}
	defer store.Close()

	ctx := cmd.Context()
	var entries []ledger.Entry
	if runToken != "" {
		formatter.VerboseLog("Listing records for run %s", runToken)
		entries, err = store.List(ctx, runToken)
	} else {
		formatter.VerboseLog("Listing all records")
		entries, err = store.ListAll(ctx)
	}
	if err != nil {
		if outErr := formatter.Error("LEDGER_QUERY_FAILED", err.Error()); outErr != nil {
			return outErr
		}
		return NewExitError(ExitCommandError, err.Error())
	}

	if formatter.Format == "json" {
		out := make([]LedgerEntry, len(entries))
		for i, e := range entries {
			out[i] = LedgerEntry{
				RunToken: e.RunToken,
				Seq:      e.Seq,
				WidgetID: e.WidgetID,
				Label:    e.Label,
			}
		}
		return formatter.Success(out)
	}

	if len(entries) == 0 {
		fmt.Fprintln(formatter.Writer, "no records")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(formatter.Writer, "%s  #%d  %s  %s\n", e.RunToken, e.Seq, e.WidgetID, e.Label)
	}
	return nil
}
