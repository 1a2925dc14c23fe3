package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/jask/riparto/internal/cli"
	"github.com/jask/riparto/internal/config"
	"github.com/jask/riparto/internal/database"
	"github.com/jask/riparto/internal/database/repository"
	"github.com/jask/riparto/internal/i18n"
	"github.com/jask/riparto/internal/logging"
	"github.com/jask/riparto/internal/service"
)

// environment is everything a command needs once config, logging and the
// database are up.
type environment struct {
	cfg         config.Config
	log         *logrus.Logger
	roster      *service.RosterService
	allocation  *service.AllocationService
	maintenance *service.MaintenanceService
	closers     []io.Closer
}

func bootstrap(ctx context.Context) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	env := &environment{cfg: cfg}
	log, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	env.log = log
	env.closers = append(env.closers, logCloser)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		env.Close()
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		env.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		env.Close()
		return nil, err
	}
	env.closers = append([]io.Closer{db}, env.closers...)

	if err := database.SeedDefaults(ctx, db); err != nil {
		env.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}

	env.roster = &service.RosterService{Agents: repository.NewAgentRepo(db), Log: log}
	env.allocation = &service.AllocationService{Runs: repository.NewRunRepo(db), Log: log}
	env.maintenance = &service.MaintenanceService{
		Agents: repository.NewAgentRepo(db),
		Runs:   repository.NewRunRepo(db),
		Log:    log,
	}
	log.WithField("db", cfg.Database.Path).Debug("bootstrap complete")
	return env, nil
}

// cliApp wires the environment into a cli.App. Tables go to out and notices
// to errOut; the file logger keeps the diagnostic trail. lang overrides the
// configured language when set.
func (e *environment) cliApp(out, errOut io.Writer, lang string) *cli.App {
	a := cli.New()
	a.Out = out
	a.Log = logging.CommandLine(errOut)
	a.Lang = i18n.ParseLang(e.cfg.UI.Lang)
	if lang != "" {
		a.Lang = i18n.ParseLang(lang)
	}
	a.Roster = e.roster
	a.Allocation = e.allocation
	a.Maintenance = e.maintenance
	return a
}

func (e *environment) Close() error {
	var errs []error
	for _, c := range e.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// withEnvironment bootstraps, runs fn and tears down.
func withEnvironment(ctx context.Context, fn func(env *environment) error) error {
	env, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(env)
}
