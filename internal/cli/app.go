// Package cli implements the non-interactive riparto commands. Each command
// is a method on App; the cobra layer only parses flags.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sirupsen/logrus"

	"github.com/jask/riparto/internal/i18n"
	"github.com/jask/riparto/internal/logging"
	"github.com/jask/riparto/internal/service"
)

// App holds the services and output shared by the commands. Tables go to
// Out; confirmations and notices go through Log.
type App struct {
	Out         io.Writer
	Log         logrus.FieldLogger
	Lang        i18n.Lang
	Roster      *service.RosterService
	Allocation  *service.AllocationService
	Maintenance *service.MaintenanceService
}

// New returns an App writing tables to stdout and notices to stderr.
// Services are attached by the caller once the database is open.
func New() *App {
	return &App{
		Out:  os.Stdout,
		Log:  logging.CommandLine(os.Stderr),
		Lang: i18n.IT,
	}
}

// Error is a failure already worded for the user in App.Lang.
type Error struct {
	Msg string
	Err error
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

func (a *App) localize(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Msg: i18n.ErrorMessage(a.Lang, err), Err: err}
}

func (a *App) t(key string) string { return i18n.T(a.Lang, key) }

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func (a *App) log() logrus.FieldLogger {
	if a.Log == nil {
		return logging.Discard()
	}
	return a.Log
}
