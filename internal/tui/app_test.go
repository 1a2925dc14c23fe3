package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/riparto/internal/config"
	"github.com/jask/riparto/internal/database"
	"github.com/jask/riparto/internal/database/repository"
	"github.com/jask/riparto/internal/service"
)

func testConfig() config.Config {
	return config.Config{
		UI:       config.UIConfig{Lang: "it"},
		Defaults: config.DefaultsConfig{Units: 100, Amount: "1000"},
	}
}

func newTestApp(t *testing.T, services Services) *App {
	t.Helper()
	a := New(context.Background(), testConfig(), services, nil)
	a.input.Cursor.SetMode(cursor.CursorStatic)
	a.saveConfig = func(config.Config) error { return nil }
	return a
}

func newDBServices(t *testing.T) Services {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "riparto.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.SeedDefaults(context.Background(), db))
	return Services{
		Roster:     &service.RosterService{Agents: repository.NewAgentRepo(db)},
		Allocation: &service.AllocationService{Runs: repository.NewRunRepo(db)},
	}
}

func keyPress(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func apply(t *testing.T, a *App, msg tea.Msg) *App {
	t.Helper()
	next, cmd := a.Update(msg)
	got, ok := next.(*App)
	require.True(t, ok, "Update returned %T", next)
	return drain(t, got, cmd)
}

func drain(t *testing.T, a *App, cmd tea.Cmd) *App {
	t.Helper()
	for i := 0; cmd != nil && i < 16; i++ {
		msg := cmd()
		if msg == nil {
			return a
		}
		if _, quit := msg.(tea.QuitMsg); quit {
			return a
		}
		next, nextCmd := a.Update(msg)
		a = next.(*App)
		cmd = nextCmd
	}
	return a
}

func press(t *testing.T, a *App, keys ...string) *App {
	t.Helper()
	for _, k := range keys {
		a = apply(t, a, keyPress(k))
	}
	return a
}

func withSample(t *testing.T, a *App) *App {
	t.Helper()
	return apply(t, a, rosterMsg(database.SampleAgents()))
}

func TestNewUsesConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.UI.Lang = "es"
	cfg.Defaults.Amount = "not money"
	a := New(context.Background(), cfg, Services{}, nil)

	assert.Equal(t, "es", a.lang.String())
	assert.Equal(t, int64(100), a.units)
	assert.True(t, a.amount.IsZero())
	assert.Equal(t, viewMain, a.state)
	assert.Equal(t, focusAgents, a.focus)
}

func TestInitLoadsSeededRoster(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, newDBServices(t))
	a = drain(t, a, a.Init())

	require.Len(t, a.agents, 4)
	assert.Equal(t, "Luca", a.agents[0].FirstName)
	assert.Contains(t, a.View(), "Bianchi")
}

func TestCalculateSample(t *testing.T) {
	t.Parallel()

	a := withSample(t, newTestApp(t, Services{}))
	a = press(t, a, "]", "]")
	require.Equal(t, 2, a.current)

	a = press(t, a, "c")
	require.NotNil(t, a.result)
	require.Len(t, a.result.Rows, 4)
	assert.Equal(t, 0, a.current, "a successful calculation selects the first agent")
	assert.Equal(t, int64(50), a.result.Rows[0].Units)
	assert.Equal(t, int64(100), a.result.Totals.Units)
	assert.Equal(t, int64(100000), a.result.Totals.AmountMinor)
	assert.Equal(t, "Ripartizione calcolata.", a.status)

	view := a.View()
	assert.Contains(t, view, "500,00")
	assert.Contains(t, view, "1.000,00")
	assert.Contains(t, view, "1/4")
}

func TestCalculateErrorsAreLocalized(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Services{})
	a = press(t, a, "c")
	assert.Equal(t, "Aggiungi almeno un agente.", a.status)
	assert.Equal(t, statusErr, a.statusKind)
	assert.Nil(t, a.result)

	a = withSample(t, a)
	a.agents[1].Balance = decimal.NewFromInt(-5)
	a = press(t, a, "L", "c")
	assert.Equal(t, "Saldos negativos no permitidos.", a.status)

	a.agents[1].Balance = decimal.NewFromInt(5)
	a.units = -1
	a = press(t, a, "c")
	assert.Equal(t, "Los totales no pueden ser negativos.", a.status)
}

func TestNavigatorClamps(t *testing.T) {
	t.Parallel()

	a := withSample(t, newTestApp(t, Services{}))
	a = press(t, a, "[")
	assert.Equal(t, 0, a.current)
	a = press(t, a, "]", "]", "]", "]", "]")
	assert.Equal(t, 3, a.current)
	assert.Contains(t, a.View(), "4/4")

	empty := newTestApp(t, Services{})
	empty = press(t, empty, "]", "[")
	assert.Equal(t, 0, empty.current)
	assert.Contains(t, empty.View(), "Nessun agente")
}

func TestClearResults(t *testing.T) {
	t.Parallel()

	a := withSample(t, newTestApp(t, Services{}))
	a = press(t, a, "c", "]", "x")
	assert.Nil(t, a.result)
	assert.Equal(t, 1, a.current)
	assert.Equal(t, "Risultati puliti.", a.status)
}

func TestAddAndRemoveAgent(t *testing.T) {
	t.Parallel()

	a := withSample(t, newTestApp(t, Services{}))
	a = press(t, a, "c", "a")
	require.Len(t, a.agents, 5)
	assert.Equal(t, 4, a.current)
	assert.Equal(t, colFirstName, a.agentCol)
	assert.Nil(t, a.result, "roster changes drop the previous result")
	assert.NotEmpty(t, a.agents[4].ID, "saved agents get an id")

	a = press(t, a, "d")
	require.Len(t, a.agents, 4)
	assert.Equal(t, 3, a.current)
	assert.Equal(t, "Sara", a.agents[3].FirstName)

	for range 4 {
		a = press(t, a, "d")
	}
	assert.Empty(t, a.agents)
	assert.Equal(t, 0, a.current)
	a = press(t, a, "d")
	assert.Empty(t, a.agents)
}

func TestResetSample(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Services{})
	a = press(t, a, "a", "a", "c")
	a = press(t, a, "R")
	require.Len(t, a.agents, 4)
	assert.Equal(t, 0, a.current)
	assert.Nil(t, a.result)
	assert.Equal(t, "Esempio ripristinato.", a.status)
}

func TestEditAgentFields(t *testing.T) {
	t.Parallel()

	a := withSample(t, newTestApp(t, Services{}))
	a = press(t, a, "]", "l", "l", "e")
	require.Equal(t, modalEdit, a.modal)
	assert.Equal(t, "300", a.input.Value())

	a.input.SetValue("1.250,5")
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modalNone, a.modal)
	assert.True(t, a.agents[1].Balance.Equal(decimal.RequireFromString("1250.5")))

	a = press(t, a, "e")
	a.input.SetValue("abc")
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Numero non valido.", a.status)
	assert.True(t, a.agents[1].Balance.Equal(decimal.RequireFromString("1250.5")))

	a = press(t, a, "h", "h", "e")
	a = press(t, a, "q")
	assert.Equal(t, "Giuliaq", a.input.Value(), "keys are typed into the field while editing")
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modalNone, a.modal)
	assert.Equal(t, "Giulia", a.agents[1].FirstName)
}

func TestEditTotals(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Services{})
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusTotals, a.focus)

	a = press(t, a, "e")
	a.input.SetValue("7")
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, int64(7), a.units)

	a = press(t, a, "j", "e")
	assert.Equal(t, "1000.00", a.input.Value())
	a.input.SetValue("12,34")
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, a.amount.Equal(decimal.RequireFromString("12.34")))
}

func TestDuplicateWarning(t *testing.T) {
	t.Parallel()

	a := withSample(t, newTestApp(t, Services{}))
	a = press(t, a, "]", "e")
	a.input.SetValue("Luca")
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a = press(t, a, "l", "e")
	a.input.SetValue("Bianki")
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, statusWarn, a.statusKind)
	assert.Equal(t, "Possibile duplicato di Luca Bianchi", a.status)
}

func TestLanguageTogglePersists(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Services{})
	var saved []config.Config
	a.saveConfig = func(cfg config.Config) error {
		saved = append(saved, cfg)
		return nil
	}

	a = press(t, a, "L")
	require.Len(t, saved, 1)
	assert.Equal(t, "es", saved[0].UI.Lang)
	assert.Equal(t, "Idioma: español", a.status)
	assert.Contains(t, a.View(), "Reparto proporcional")

	a = press(t, a, "L")
	assert.Equal(t, "it", saved[1].UI.Lang)
	assert.Contains(t, a.View(), "Ripartizione proporzionale")
}

func TestHistoryView(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, newDBServices(t))
	a = drain(t, a, a.Init())
	a = press(t, a, "c")
	a.units = 10
	a = press(t, a, "c")

	a = press(t, a, "H")
	require.Equal(t, viewHistory, a.state)
	require.Len(t, a.runs, 2)
	assert.Equal(t, int64(10), a.runs[0].UnitTotal)

	a = press(t, a, "j", "e")
	require.NotNil(t, a.runDetail)
	assert.Equal(t, a.runs[1].ID, a.runDetail.ID)
	assert.Len(t, a.runDetail.Rows, 4)
	assert.True(t, strings.Contains(a.View(), "Storico calcoli"))

	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewMain, a.state)
	assert.Nil(t, a.runDetail)
}

func TestHistoryEmptyWithoutStore(t *testing.T) {
	t.Parallel()

	a := press(t, newTestApp(t, Services{}), "H")
	assert.Contains(t, a.View(), "Nessun calcolo salvato.")
}

func TestQuit(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, Services{})
	_, cmd := a.Update(keyPress("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestRosterSavesDropOlderSnapshots(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	services := newDBServices(t)
	a := withSample(t, newTestApp(t, services))

	older := a.saveRoster()
	a.agents = append(a.agents, repository.Agent{FirstName: "Nuovo", Balance: decimal.NewFromInt(5)})
	newer := a.saveRoster()

	a = apply(t, a, newer())
	assert.Nil(t, older(), "an older snapshot must not overwrite a newer one")

	stored, err := services.Roster.Load(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 5)
	assert.Equal(t, "Nuovo", stored[4].FirstName)
	assert.Equal(t, stored[4].ID, a.agents[4].ID)
}

func TestRosterSavedIgnoresSupersededResult(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	services := newDBServices(t)
	a := withSample(t, newTestApp(t, services))

	a.agents = append(a.agents, repository.Agent{FirstName: "Primo"})
	first := a.saveRoster()
	a.agents = append(a.agents, repository.Agent{FirstName: "Secondo"})
	second := a.saveRoster()

	firstMsg, secondMsg := first(), second()
	require.NotNil(t, firstMsg)
	require.NotNil(t, secondMsg)

	a = apply(t, a, firstMsg)
	assert.Empty(t, a.agents[4].ID)

	a = apply(t, a, secondMsg)
	stored, err := services.Roster.Load(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 6)
	assert.Equal(t, stored[4].ID, a.agents[4].ID)
	assert.Equal(t, stored[5].ID, a.agents[5].ID)
}
