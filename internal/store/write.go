package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/orgitcog/froot/internal/canon"
	"github.com/orgitcog/froot/internal/ion"
)

// Run identifies one recording session in the ledger.
type Run struct {
	ID      string
	Command string
}

// BeginRun registers a new run for the given command and returns its
// identifier. UUIDv7 keeps run IDs time-ordered.
func (s *Store) BeginRun(ctx context.Context, command string) (Run, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Run{}, fmt.Errorf("begin run: %w", err)
	}
	run := Run{ID: id.String(), Command: command}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, command) VALUES (?, ?)
	`, run.ID, run.Command)
	if err != nil {
		return Run{}, fmt.Errorf("begin run: %w", err)
	}
	return run, nil
}

// RecordEncoding appends one code/notation pair to the ledger. The Matula
// code is the primary key; re-recording a known code is a no-op, keeping
// writes idempotent.
func (s *Store) RecordEncoding(ctx context.Context, run Run, code int, notation string, nodeCount int) error {
	resultID, err := canon.ResultID(run.Command, notation, map[string]any{
		"code":       code,
		"node_count": nodeCount,
	})
	if err != nil {
		return fmt.Errorf("record encoding: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO encodings (code, notation, node_count, result_id, run_id)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(code) DO NOTHING
	`, code, notation, nodeCount, resultID, run.ID)
	if err != nil {
		return fmt.Errorf("record encoding: %w", err)
	}
	return nil
}

// RecordLayer appends one ion layer record. Layers are keyed by order and
// idempotent like encodings.
func (s *Store) RecordLayer(ctx context.Context, run Run, layer ion.Layer) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO layers (ord, fiber, base, total, max_shell, run_id)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(ord) DO NOTHING
	`, layer.Order, layer.Fiber, layer.Base, layer.Total, layer.MaxShell, run.ID)
	if err != nil {
		return fmt.Errorf("record layer: %w", err)
	}
	return nil
}
