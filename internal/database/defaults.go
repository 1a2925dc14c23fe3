package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jask/riparto/internal/database/repository"
)

// SampleAgents is the example roster shown on first start and restored by the
// reset action. Ids are derived from the names, so repeated seeding is stable.
func SampleAgents() []repository.Agent {
	sample := []struct {
		first, last string
		balance     int64
	}{
		{"Luca", "Bianchi", 500},
		{"Giulia", "Rossi", 300},
		{"Marco", "Verdi", 150},
		{"Sara", "Neri", 50},
	}
	out := make([]repository.Agent, len(sample))
	for i, s := range sample {
		out[i] = repository.Agent{
			ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte("agent:"+s.first+" "+s.last)).String(),
			Position:  i,
			FirstName: s.first,
			LastName:  s.last,
			Balance:   decimal.NewFromInt(s.balance),
		}
	}
	return out
}

// SeedDefaults fills an empty roster with SampleAgents.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	agents := repository.NewAgentRepo(db)
	n, err := agents.Count(ctx)
	if err != nil {
		return fmt.Errorf("count agents: %w", err)
	}
	if n > 0 {
		return nil
	}
	if err := agents.ReplaceAll(ctx, SampleAgents()); err != nil {
		return fmt.Errorf("seed agents: %w", err)
	}
	return nil
}
