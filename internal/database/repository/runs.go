package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Run is one stored allocation: the totals that were split and, when loaded
// with Get, the resulting rows in roster order.
type Run struct {
	ID               string
	UnitTotal        int64
	AmountTotalMinor int64
	AgentCount       int
	CreatedAt        time.Time
	Rows             []RunRow
}

// RunRow is one agent's share within a Run.
type RunRow struct {
	Position    int
	FirstName   string
	LastName    string
	Balance     decimal.Decimal
	Units       int64
	AmountMinor int64
}

// RunRepo handles allocation history.
type RunRepo struct {
	db *sql.DB
}

func NewRunRepo(db *sql.DB) *RunRepo { return &RunRepo{db: db} }

// Insert stores run and its rows atomically.
func (r *RunRepo) Insert(ctx context.Context, run Run) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	created := run.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC().Truncate(time.Second)
	}
	if _, err := tx.ExecContext(ctx, `
	INSERT INTO allocation_runs(id, unit_total, amount_total_minor, agent_count, created_at)
	VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.UnitTotal, run.AmountTotalMinor, len(run.Rows), created); err != nil {
		return err
	}
	for i, row := range run.Rows {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO allocation_rows(run_id, position, first_name, last_name, balance, units, amount_minor)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run.ID, i, row.FirstName, row.LastName, row.Balance.String(), row.Units, row.AmountMinor); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// List returns the most recent runs, newest first, without rows. A
// non-positive limit returns every run.
func (r *RunRepo) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, unit_total, amount_total_minor, agent_count, created_at
	FROM allocation_runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.UnitTotal, &run.AmountTotalMinor, &run.AgentCount, &run.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// Get loads a run with its rows; it returns nil when id is unknown.
func (r *RunRepo) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := r.db.QueryRowContext(ctx, `
	SELECT id, unit_total, amount_total_minor, agent_count, created_at
	FROM allocation_runs WHERE id = ?`, id).
		Scan(&run.ID, &run.UnitTotal, &run.AmountTotalMinor, &run.AgentCount, &run.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
	SELECT position, first_name, last_name, balance, units, amount_minor
	FROM allocation_rows WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var row RunRow
		if err := rows.Scan(&row.Position, &row.FirstName, &row.LastName, &row.Balance, &row.Units, &row.AmountMinor); err != nil {
			return nil, err
		}
		run.Rows = append(run.Rows, row)
	}
	return &run, rows.Err()
}

// DeleteAll clears the history.
func (r *RunRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM allocation_runs`)
	return err
}
