// Package testdata builds rosters for tests and benchmarks.
package testdata

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jask/riparto/internal/database/repository"
)

var (
	firstNames = []string{"Luca", "Giulia", "Marco", "Sara", "Paolo", "Chiara", "Andrea", "Elena", "Javier", "Lucía", "Carmen", "Diego"}
	lastNames  = []string{"Bianchi", "Rossi", "Verdi", "Neri", "Russo", "Ferrari", "Esposito", "García", "Martínez", "López", "Sánchez", "Romano"}
)

// Roster returns n agents with random names and non-negative balances of up
// to 10000.00. Roughly one agent in eight has a zero balance.
func Roster(r *rand.Rand, n int) []repository.Agent {
	agents := make([]repository.Agent, n)
	for i := range agents {
		balance := decimal.Zero
		if r.Intn(8) != 0 {
			balance = decimal.New(r.Int63n(1_000_000), -2)
		}
		agents[i] = repository.Agent{
			ID:        uuid.NewString(),
			Position:  i,
			FirstName: firstNames[r.Intn(len(firstNames))],
			LastName:  lastNames[r.Intn(len(lastNames))],
			Balance:   balance,
		}
	}
	return agents
}

// Amount returns a random total between 0 and 100000.00.
func Amount(r *rand.Rand) decimal.Decimal {
	return decimal.New(r.Int63n(10_000_001), -2)
}
