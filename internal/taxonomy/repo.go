package taxonomy

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/gymsupervisor/internal/telemetry/tracing"
)

// Repo persists the static move taxonomy so SQL aggregations can join
// entries against body areas. Runtime lookups go through Table.
type Repo struct {
	db    *pgxpool.Pool
	table *Table
}

func NewRepo(db *pgxpool.Pool, table *Table) *Repo {
	return &Repo{
		db:    db,
		table: table,
	}
}

// Setup creates the taxonomy table and upserts the static seed.
// Safe to run repeatedly; re-seeding never duplicates rows.
func (r *Repo) Setup(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.taxonomy.setup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err = r.db.Exec(
		ctx,
		`CREATE TABLE IF NOT EXISTS move_body_areas (
			move_key TEXT PRIMARY KEY,
			display_label TEXT NOT NULL,
			body_area TEXT NOT NULL
		);`,
	); err != nil {
		return fmt.Errorf("create move_body_areas table: %w", err)
	}

	return r.seedMoves(ctx)
}

func (r *Repo) seedMoves(ctx context.Context) error {
	batch := &pgx.Batch{}
	for _, move := range r.table.Moves() {
		batch.Queue(
			`INSERT INTO move_body_areas (move_key, display_label, body_area)
				VALUES ($1, $2, $3)
			ON CONFLICT (move_key) DO UPDATE SET
				display_label = excluded.display_label,
				body_area = excluded.body_area;`,
			move.Key, move.Label, string(move.Area),
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil {
			// the error, if any, already surfaced through Exec below
			_ = closeErr
		}
	}()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("seed move_body_areas: %w", err)
		}
	}

	return nil
}
