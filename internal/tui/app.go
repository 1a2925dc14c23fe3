package tui

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jask/riparto/internal/config"
	"github.com/jask/riparto/internal/database/repository"
	"github.com/jask/riparto/internal/i18n"
	"github.com/jask/riparto/internal/logging"
	"github.com/jask/riparto/internal/money"
	"github.com/jask/riparto/internal/service"
)

// App is the Bubble Tea model. It owns all presentation state (the roster
// being edited, the selected agent, the last result); the allocation engine
// itself stays stateless.
type App struct {
	ctx        context.Context
	cfg        config.Config
	services   Services
	log        logrus.FieldLogger
	saveConfig func(config.Config) error

	lang  i18n.Lang
	state appState
	focus focusArea
	modal modalState

	units       int64
	amount      decimal.Decimal
	totalsField int

	agents   []repository.Agent
	current  int
	agentCol int
	saveSeq  uint64
	writer   *rosterWriter

	result *service.AllocationResult

	runs      []repository.Run
	runCursor int
	runDetail *repository.Run

	status     string
	statusKind statusKind

	input    textinput.Model
	keys     keyMap
	editKeys editKeyMap
	help     help.Model
	width    int
}

// Services are the application services the views call into.
type Services struct {
	Roster     *service.RosterService
	Allocation *service.AllocationService
}

type appState string

const (
	viewMain    appState = "main"
	viewHistory appState = "history"
)

type focusArea string

const (
	focusTotals focusArea = "totals"
	focusAgents focusArea = "agents"
)

type modalState string

const (
	modalNone modalState = ""
	modalEdit modalState = "edit"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarn
	statusErr
)

const (
	fieldUnits = iota
	fieldAmount
	totalsFieldCount
)

const (
	colFirstName = iota
	colLastName
	colBalance
	agentColCount
)

// messages
type (
	rosterMsg      []repository.Agent
	rosterSavedMsg struct {
		seq    uint64
		agents []repository.Agent
	}
	allocationMsg  service.AllocationResult
	historyMsg     []repository.Run
	runMsg         struct{ run *repository.Run }
	langSavedMsg   struct{}
	errMsg         struct{ error }
)

func New(ctx context.Context, cfg config.Config, services Services, log logrus.FieldLogger) *App {
	if services.Roster == nil {
		services.Roster = &service.RosterService{}
	}
	if services.Allocation == nil {
		services.Allocation = &service.AllocationService{}
	}
	if log == nil {
		log = logging.Discard()
	}
	amount, err := money.Parse(cfg.Defaults.Amount)
	if err != nil {
		log.WithError(err).Warn("ignoring invalid default amount")
		amount = decimal.Zero
	}

	input := textinput.New()
	input.CharLimit = 64
	input.Prompt = "> "

	return &App{
		ctx:        ctx,
		cfg:        cfg,
		services:   services,
		log:        log,
		saveConfig: config.Save,
		lang:       i18n.ParseLang(cfg.UI.Lang),
		state:      viewMain,
		focus:      focusAgents,
		units:      cfg.Defaults.Units,
		amount:     amount,
		input:      input,
		keys:       newKeyMap(),
		editKeys:   newEditKeyMap(),
		help:       help.New(),
		writer:     new(rosterWriter),
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadRoster()
}

func (a *App) loadRoster() tea.Cmd {
	return func() tea.Msg {
		agents, err := a.services.Roster.Load(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return rosterMsg(agents)
	}
}

// rosterWriter serializes roster writes issued by concurrent commands. A
// write tagged older than the last one stored is dropped.
type rosterWriter struct {
	mu      sync.Mutex
	written uint64
}

func (w *rosterWriter) write(seq uint64, fn func() (tea.Msg, error)) tea.Msg {
	w.mu.Lock()
	defer w.mu.Unlock()
	if seq < w.written {
		return nil
	}
	msg, err := fn()
	if err != nil {
		return errMsg{err}
	}
	w.written = seq
	return msg
}

func (a *App) saveRoster() tea.Cmd {
	a.saveSeq++
	seq := a.saveSeq
	snapshot := append([]repository.Agent(nil), a.agents...)
	return func() tea.Msg {
		return a.writer.write(seq, func() (tea.Msg, error) {
			saved, err := a.services.Roster.Save(a.ctx, snapshot)
			if err != nil {
				return nil, err
			}
			return rosterSavedMsg{seq: seq, agents: saved}, nil
		})
	}
}

func (a *App) resetSample() tea.Cmd {
	a.saveSeq++
	seq := a.saveSeq
	return func() tea.Msg {
		return a.writer.write(seq, func() (tea.Msg, error) {
			agents, err := a.services.Roster.ResetSample(a.ctx)
			if err != nil {
				return nil, err
			}
			return rosterMsg(agents), nil
		})
	}
}

func (a *App) calculate() tea.Cmd {
	req := service.AllocationRequest{
		Agents: append([]repository.Agent(nil), a.agents...),
		Units:  a.units,
		Amount: a.amount,
	}
	return func() tea.Msg {
		res, err := a.services.Allocation.Calculate(a.ctx, req)
		if err != nil {
			return errMsg{err}
		}
		return allocationMsg(res)
	}
}

func (a *App) loadHistory() tea.Cmd {
	return func() tea.Msg {
		runs, err := a.services.Allocation.History(a.ctx, 50)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg(runs)
	}
}

func (a *App) loadRun(id string) tea.Cmd {
	return func() tea.Msg {
		run, err := a.services.Allocation.Run(a.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return runMsg{run}
	}
}

func (a *App) toggleLang() tea.Cmd {
	a.lang = a.lang.Toggle()
	a.cfg.UI.Lang = a.lang.String()
	a.setStatus(i18n.T(a.lang, "lang_switched"), statusInfo)
	a.log.WithField("lang", a.lang).Info("language changed")
	cfg := a.cfg
	return func() tea.Msg {
		if err := a.saveConfig(cfg); err != nil {
			return errMsg{err}
		}
		return langSavedMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		if a.modal == modalEdit {
			return a.handleEditKey(m)
		}
		if a.state == viewHistory {
			return a.handleHistoryKey(m)
		}
		return a.handleMainKey(m)
	case rosterMsg:
		a.agents = []repository.Agent(m)
		if a.agentCol >= agentColCount {
			a.agentCol = 0
		}
		a.selectAgent(a.current)
	case rosterSavedMsg:
		// ids only stick once the newest pending save lands
		if m.seq == a.saveSeq {
			a.adoptIDs(m.agents)
		}
	case allocationMsg:
		res := service.AllocationResult(m)
		a.result = &res
		a.setStatus(i18n.T(a.lang, "calc_done"), statusInfo)
		a.selectAgent(0)
	case historyMsg:
		a.runs = []repository.Run(m)
		if a.runCursor >= len(a.runs) {
			a.runCursor = 0
		}
	case runMsg:
		a.runDetail = m.run
	case langSavedMsg:
		return a, nil
	case errMsg:
		a.log.WithError(m.error).Warn("action failed")
		a.setStatus(i18n.ErrorMessage(a.lang, m.error), statusErr)
	default:
		if a.modal == modalEdit {
			var cmd tea.Cmd
			a.input, cmd = a.input.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) handleMainKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Lang):
		return a, a.toggleLang()
	case key.Matches(m, a.keys.History):
		a.state = viewHistory
		a.runDetail = nil
		return a, a.loadHistory()
	case key.Matches(m, a.keys.NextFocus):
		if a.focus == focusTotals {
			a.focus = focusAgents
		} else {
			a.focus = focusTotals
		}
	case key.Matches(m, a.keys.Up):
		if a.focus == focusTotals {
			a.totalsField = max(a.totalsField-1, 0)
		} else {
			a.selectAgent(a.current - 1)
		}
	case key.Matches(m, a.keys.Down):
		if a.focus == focusTotals {
			a.totalsField = min(a.totalsField+1, totalsFieldCount-1)
		} else {
			a.selectAgent(a.current + 1)
		}
	case key.Matches(m, a.keys.Left):
		if a.focus == focusAgents && a.agentCol > 0 {
			a.agentCol--
		}
	case key.Matches(m, a.keys.Right):
		if a.focus == focusAgents && a.agentCol < agentColCount-1 {
			a.agentCol++
		}
	case key.Matches(m, a.keys.Edit):
		return a, a.beginEdit()
	case key.Matches(m, a.keys.Add):
		return a, a.addAgent()
	case key.Matches(m, a.keys.Remove):
		return a, a.removeAgent()
	case key.Matches(m, a.keys.Reset):
		a.result = nil
		a.current = 0
		a.setStatus(i18n.T(a.lang, "sample_restored"), statusInfo)
		return a, a.resetSample()
	case key.Matches(m, a.keys.Calc):
		return a, a.calculate()
	case key.Matches(m, a.keys.Clear):
		a.result = nil
		a.selectAgent(a.current)
		a.setStatus(i18n.T(a.lang, "results_cleared"), statusInfo)
	case key.Matches(m, a.keys.Prev):
		a.selectAgent(a.current - 1)
	case key.Matches(m, a.keys.Next):
		a.selectAgent(a.current + 1)
	}
	return a, nil
}

func (a *App) handleHistoryKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Back), key.Matches(m, a.keys.History):
		a.state = viewMain
		a.runDetail = nil
	case key.Matches(m, a.keys.Up):
		if a.runCursor > 0 {
			a.runCursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.runCursor < len(a.runs)-1 {
			a.runCursor++
		}
	case key.Matches(m, a.keys.Edit):
		if len(a.runs) > 0 {
			return a, a.loadRun(a.runs[a.runCursor].ID)
		}
	case key.Matches(m, a.keys.Lang):
		return a, a.toggleLang()
	}
	return a, nil
}

func (a *App) handleEditKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.editKeys.Cancel):
		a.closeEdit()
		return a, nil
	case key.Matches(m, a.editKeys.Confirm):
		cmd := a.commitEdit()
		a.closeEdit()
		return a, cmd
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	return a, cmd
}

// selectAgent moves the current agent to idx, clamped to the roster.
func (a *App) selectAgent(idx int) {
	if len(a.agents) == 0 {
		a.current = 0
		return
	}
	a.current = max(0, min(idx, len(a.agents)-1))
}

func (a *App) beginEdit() tea.Cmd {
	var value string
	switch a.focus {
	case focusTotals:
		if a.totalsField == fieldUnits {
			value = strconv.FormatInt(a.units, 10)
		} else {
			value = a.amount.StringFixed(2)
		}
	case focusAgents:
		if len(a.agents) == 0 {
			return nil
		}
		ag := a.agents[a.current]
		switch a.agentCol {
		case colFirstName:
			value = ag.FirstName
		case colLastName:
			value = ag.LastName
		case colBalance:
			value = ag.Balance.String()
		}
	}
	a.modal = modalEdit
	a.input.SetValue(value)
	a.input.CursorEnd()
	return a.input.Focus()
}

func (a *App) closeEdit() {
	a.modal = modalNone
	a.input.Blur()
	a.input.SetValue("")
}

// commitEdit applies the edit buffer to the field being edited. Roster edits
// return a save command.
func (a *App) commitEdit() tea.Cmd {
	value := a.input.Value()
	switch a.focus {
	case focusTotals:
		if a.totalsField == fieldUnits {
			n, err := money.ParseUnits(value)
			if err != nil {
				a.setStatus(i18n.T(a.lang, "invalid_number"), statusErr)
				return nil
			}
			a.units = n
			return nil
		}
		d, err := money.Parse(value)
		if err != nil {
			a.setStatus(i18n.T(a.lang, "invalid_number"), statusErr)
			return nil
		}
		a.amount = d
		return nil
	case focusAgents:
		if a.current >= len(a.agents) {
			return nil
		}
		ag := &a.agents[a.current]
		switch a.agentCol {
		case colFirstName:
			ag.FirstName = strings.TrimSpace(value)
		case colLastName:
			ag.LastName = strings.TrimSpace(value)
		case colBalance:
			d, err := money.Parse(value)
			if err != nil {
				a.setStatus(i18n.T(a.lang, "invalid_number"), statusErr)
				return nil
			}
			ag.Balance = d
		}
		a.status = ""
		a.warnDuplicates(a.current)
		return a.saveRoster()
	}
	return nil
}

func (a *App) addAgent() tea.Cmd {
	a.agents = append(a.agents, repository.Agent{Position: len(a.agents), Balance: decimal.Zero})
	a.result = nil
	a.focus = focusAgents
	a.agentCol = colFirstName
	a.selectAgent(len(a.agents) - 1)
	return a.saveRoster()
}

func (a *App) removeAgent() tea.Cmd {
	if len(a.agents) == 0 {
		return nil
	}
	a.agents = append(a.agents[:a.current], a.agents[a.current+1:]...)
	a.result = nil
	a.selectAgent(a.current)
	return a.saveRoster()
}

// adoptIDs copies ids assigned on save back onto the roster being edited.
func (a *App) adoptIDs(saved []repository.Agent) {
	if len(saved) != len(a.agents) {
		return
	}
	for i := range a.agents {
		if a.agents[i].ID == "" {
			a.agents[i].ID = saved[i].ID
		}
		a.agents[i].Position = i
	}
}

func (a *App) warnDuplicates(idx int) {
	similar := service.SimilarAgents(a.agents, idx)
	if len(similar) == 0 {
		return
	}
	other := a.agents[similar[0]]
	name := strings.TrimSpace(other.FirstName + " " + other.LastName)
	a.setStatus(i18n.T(a.lang, "dup_agent")+" "+name, statusWarn)
}

func (a *App) setStatus(s string, kind statusKind) {
	a.status = s
	a.statusKind = kind
}
