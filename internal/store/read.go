package store

import (
	"context"
	"fmt"

	"github.com/orgitcog/froot/internal/ion"
)

// RunRecord is one ledger run with its recorded row counts.
type RunRecord struct {
	ID        string
	Command   string
	StartedAt string
	Encodings int
	Layers    int
}

// History lists the most recent runs, newest first, up to limit.
func (s *Store) History(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.command, r.started_at,
		       (SELECT COUNT(*) FROM encodings e WHERE e.run_id = r.id),
		       (SELECT COUNT(*) FROM layers l WHERE l.run_id = r.id)
		FROM runs r
		ORDER BY r.started_at DESC, r.id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	records := []RunRecord{}
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.ID, &rec.Command, &rec.StartedAt, &rec.Encodings, &rec.Layers); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}

// Encoding is one recorded code/notation pair.
type Encoding struct {
	Code      int
	Notation  string
	NodeCount int
	ResultID  string
	RunID     string
}

// Encodings returns every recorded encoding in ascending code order.
func (s *Store) Encodings(ctx context.Context) ([]Encoding, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT code, notation, node_count, result_id, run_id
		FROM encodings
		ORDER BY code ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query encodings: %w", err)
	}
	defer rows.Close()

	encodings := []Encoding{}
	for rows.Next() {
		var e Encoding
		if err := rows.Scan(&e.Code, &e.Notation, &e.NodeCount, &e.ResultID, &e.RunID); err != nil {
			return nil, fmt.Errorf("scan encoding: %w", err)
		}
		encodings = append(encodings, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate encodings: %w", err)
	}
	return encodings, nil
}

// Layers returns every recorded layer in ascending order.
func (s *Store) Layers(ctx context.Context) ([]ion.Layer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ord, fiber, base, total, max_shell
		FROM layers
		ORDER BY ord ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query layers: %w", err)
	}
	defer rows.Close()

	layers := []ion.Layer{}
	for rows.Next() {
		var l ion.Layer
		if err := rows.Scan(&l.Order, &l.Fiber, &l.Base, &l.Total, &l.MaxShell); err != nil {
			return nil, fmt.Errorf("scan layer: %w", err)
		}
		layers = append(layers, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate layers: %w", err)
	}
	return layers, nil
}
