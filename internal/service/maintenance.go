package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jask/riparto/internal/database"
	"github.com/jask/riparto/internal/database/repository"
)

// MaintenanceService houses destructive actions surfaced through the CLI.
type MaintenanceService struct {
	Agents *repository.AgentRepo
	Runs   *repository.RunRepo
	Log    logrus.FieldLogger
}

// Reset clears the run history and puts the sample roster back in place of
// the stored agents. The schema is kept so the app can continue running.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.Agents == nil || s.Runs == nil {
		return fmt.Errorf("maintenance: repositories not configured")
	}
	if err := s.Runs.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	if err := s.Agents.ReplaceAll(ctx, database.SampleAgents()); err != nil {
		return fmt.Errorf("restore sample roster: %w", err)
	}
	logger(s.Log).Info("database reset to sample roster")
	return nil
}
