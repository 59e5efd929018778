package cli

import (
	"context"
	"log/slog"

	"github.com/orgitcog/froot/internal/store"
)

// openLedger opens the result ledger named by --db. Returns (nil, nil) when
// recording is disabled.
func openLedger(opts *RootOptions) (*store.Store, error) {
	if opts.Database == "" {
		return nil, nil
	}
	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// recordEncoding appends a code/notation pair to the ledger under a fresh
// run. A nil store is a no-op so commands can record unconditionally.
func recordEncoding(ctx context.Context, st *store.Store, command string, code int, notation string, order int) error {
	if st == nil {
		return nil
	}
	run, err := st.BeginRun(ctx, command)
	if err != nil {
		return err
	}
	if err := st.RecordEncoding(ctx, run, code, notation, order); err != nil {
		return err
	}
	slog.Debug("recorded encoding", "run", run.ID, "code", code)
	return nil
}
