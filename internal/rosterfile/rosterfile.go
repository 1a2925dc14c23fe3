// Package rosterfile reads and writes agent rosters as JSON files, so a
// roster can be moved between machines or kept alongside other records.
package rosterfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/jask/riparto/internal/database/repository"
)

const version = 1

type file struct {
	Version int     `json:"version"`
	Agents  []agent `json:"agents"`
}

type agent struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Balance   decimal.Decimal `json:"balance"`
}

// Save writes agents to path. The file is replaced atomically.
func Save(path string, agents []repository.Agent) error {
	f := file{Version: version, Agents: make([]agent, len(agents))}
	for i, a := range agents {
		f.Agents[i] = agent{FirstName: a.FirstName, LastName: a.LastName, Balance: a.Balance}
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir roster dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	return os.Rename(tmp, path)
}

// Load reads a roster written by Save. Agents come back without ids, in file
// order.
func Load(path string) ([]repository.Agent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode roster %s: %w", path, err)
	}
	if f.Version != version {
		return nil, fmt.Errorf("roster %s: unsupported version %d", path, f.Version)
	}
	agents := make([]repository.Agent, len(f.Agents))
	for i, a := range f.Agents {
		agents[i] = repository.Agent{Position: i, FirstName: a.FirstName, LastName: a.LastName, Balance: a.Balance}
	}
	return agents, nil
}
