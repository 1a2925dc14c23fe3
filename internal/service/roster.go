package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jask/riparto/internal/apportion"
	"github.com/jask/riparto/internal/database"
	"github.com/jask/riparto/internal/database/repository"
	"github.com/jask/riparto/internal/logging"
)

// duplicateRatio is the edit distance, relative to the longer name, under
// which two agents are reported as a likely double entry.
const duplicateRatio = 0.25

// RosterService loads and stores the agent roster. A nil Agents repo makes
// it a pass-through that persists nothing.
type RosterService struct {
	Agents *repository.AgentRepo
	Log    logrus.FieldLogger
}

func (s *RosterService) Load(ctx context.Context) ([]repository.Agent, error) {
	if s.Agents == nil {
		return nil, nil
	}
	agents, err := s.Agents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return agents, nil
}

// Save replaces the stored roster with agents and returns them normalized:
// names trimmed, positions renumbered, new agents given ids.
func (s *RosterService) Save(ctx context.Context, agents []repository.Agent) ([]repository.Agent, error) {
	out := make([]repository.Agent, len(agents))
	for i, a := range agents {
		a.Position = i
		a.FirstName = strings.TrimSpace(a.FirstName)
		a.LastName = strings.TrimSpace(a.LastName)
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		out[i] = a
	}
	if s.Agents == nil {
		return out, nil
	}
	if err := s.Agents.ReplaceAll(ctx, out); err != nil {
		return nil, fmt.Errorf("save agents: %w", err)
	}
	logger(s.Log).WithField("agents", len(out)).Debug("roster saved")
	return out, nil
}

// ResetSample replaces the roster with the sample agents.
func (s *RosterService) ResetSample(ctx context.Context) ([]repository.Agent, error) {
	return s.Save(ctx, database.SampleAgents())
}

// SimilarAgents returns the positions of agents whose full name is within a
// small edit distance of agents[idx]. Blank names never match.
func SimilarAgents(agents []repository.Agent, idx int) []int {
	if idx < 0 || idx >= len(agents) {
		return nil
	}
	target := fullName(agents[idx])
	if target == "" {
		return nil
	}
	var out []int
	for i, a := range agents {
		if i == idx {
			continue
		}
		other := fullName(a)
		if other == "" {
			continue
		}
		longest := max(utf8.RuneCountInString(target), utf8.RuneCountInString(other))
		dist := levenshtein.ComputeDistance(target, other)
		if float64(dist)/float64(longest) < duplicateRatio {
			out = append(out, i)
		}
	}
	return out
}

// Entities converts roster agents to engine input, keeping order.
func Entities(agents []repository.Agent) []apportion.Entity {
	out := make([]apportion.Entity, len(agents))
	for i, a := range agents {
		out[i] = apportion.Entity{FirstName: a.FirstName, LastName: a.LastName, Balance: a.Balance}
	}
	return out
}

func fullName(a repository.Agent) string {
	name := strings.ToLower(strings.TrimSpace(a.FirstName + " " + a.LastName))
	return strings.Join(strings.Fields(name), " ")
}

func logger(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return logging.Discard()
	}
	return l
}
