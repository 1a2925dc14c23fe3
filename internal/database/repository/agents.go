package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Agent is one roster entry. Position orders the roster.
type Agent struct {
	ID        string
	Position  int
	FirstName string
	LastName  string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AgentRepo handles the agent roster.
type AgentRepo struct {
	db *sql.DB
}

func NewAgentRepo(db *sql.DB) *AgentRepo { return &AgentRepo{db: db} }

func (r *AgentRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM agents`).Scan(&n)
	return n, err
}

func (r *AgentRepo) List(ctx context.Context) ([]Agent, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, position, first_name, last_name, balance, created_at, updated_at
	FROM agents ORDER BY position, created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Agent
	for rows.Next() {
		var a Agent
		if err := rows.Scan(&a.ID, &a.Position, &a.FirstName, &a.LastName, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ReplaceAll swaps the whole roster for agents in one transaction. Positions
// are renumbered from the slice order; ids must be set by the caller.
func (r *AgentRepo) ReplaceAll(ctx context.Context, agents []Agent) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM agents`); err != nil {
		return err
	}
	now := time.Now().UTC().Truncate(time.Second)
	for i, a := range agents {
		if a.ID == "" {
			return fmt.Errorf("agent at position %d has no id", i)
		}
		created := a.CreatedAt
		if created.IsZero() {
			created = now
		}
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO agents(id, position, first_name, last_name, balance, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, i, a.FirstName, a.LastName, a.Balance.String(), created, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}
