package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jask/riparto/internal/database/repository"
	"github.com/jask/riparto/internal/i18n"
	"github.com/jask/riparto/internal/money"
)

func (a *App) View() string {
	var body string
	if a.state == viewHistory {
		body = a.renderHistory()
	} else {
		body = a.renderMain()
	}
	parts := []string{a.renderHeader(), body}
	if a.modal == modalEdit {
		parts = append(parts, modalStyle.Render(a.editLabel()+"\n"+a.input.View()))
	}
	if a.status != "" {
		parts = append(parts, a.renderStatus())
	}
	if a.modal == modalEdit {
		parts = append(parts, a.help.View(a.editKeys))
	} else {
		parts = append(parts, a.help.View(a.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) t(key string) string { return i18n.T(a.lang, key) }

func (a *App) renderHeader() string {
	title := titleStyle.Render(a.t("title"))
	badge := langBadgeStyle.Render(strings.ToUpper(a.lang.String()))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", badge) + "\n" + introStyle.Render(a.t("intro"))
}

func (a *App) sectionTitle(key string, focused bool) string {
	if focused {
		return focusedSectionStyle.Render(a.t(key))
	}
	return sectionStyle.Render(a.t(key))
}

func (a *App) renderMain() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		a.sectionTitle("section_totals", a.focus == focusTotals),
		a.renderTotals(),
		"",
		a.sectionTitle("section_agents", a.focus == focusAgents),
		a.renderAgents(),
		"",
		a.sectionTitle("section_result", false),
		a.renderResult(),
		"",
		a.sectionTitle("section_nav", false),
		a.renderNavigator(),
		"",
	)
}

func (a *App) renderTotals() string {
	tag := a.lang.Tag()
	fields := []struct {
		label string
		value string
	}{
		{a.t("totals_qty"), strconv.FormatInt(a.units, 10)},
		{a.t("totals_amount"), money.Format(tag, a.amount)},
	}
	lines := make([]string, len(fields))
	for i, f := range fields {
		cursor := "  "
		if a.focus == focusTotals && a.totalsField == i {
			cursor = cursorStyle.Render("> ")
		}
		lines[i] = cursor + labelStyle.Render(f.label+": ") + valueStyle.Render(f.value)
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderAgents() string {
	if len(a.agents) == 0 {
		return labelStyle.Render("  " + a.t("nav_empty"))
	}
	tag := a.lang.Tag()
	rows := make([][]string, len(a.agents))
	for i, ag := range a.agents {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			ag.FirstName,
			ag.LastName,
			money.Format(tag, ag.Balance),
		}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(a.t("th_hash"), a.t("th_nome"), a.t("th_cognome"), a.t("th_saldo")).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case row == a.current && a.focus == focusAgents && col == a.agentCol+1:
				return selectedCellStyle
			case row == a.current:
				return selectedRowStyle
			}
			return cellStyle
		})
	return t.String()
}

// hasResult reports whether the last result still lines up with the roster.
func (a *App) hasResult() bool {
	return a.result != nil && len(a.result.Rows) == len(a.agents)
}

func (a *App) renderResult() string {
	if !a.hasResult() {
		return labelStyle.Render("  " + a.t("nav_no_result"))
	}
	tag := a.lang.Tag()
	rows := make([][]string, 0, len(a.result.Rows)+1)
	for i, r := range a.result.Rows {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.FirstName,
			r.LastName,
			money.Format(tag, r.Balance),
			strconv.FormatInt(r.Units, 10),
			money.FormatMinor(tag, r.AmountMinor),
		})
	}
	totals := a.result.Totals
	rows = append(rows, []string{"", a.t("total_label"), "", "",
		strconv.FormatInt(totals.Units, 10), money.FormatMinor(tag, totals.AmountMinor)})
	last := len(rows) - 1

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(a.t("th_hash"), a.t("th_nome"), a.t("th_cognome"), a.t("th_saldo"), a.t("th_qty"), a.t("th_amount")).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case row == last:
				return totalRowStyle
			case row == a.current:
				return selectedRowStyle
			}
			return cellStyle
		})
	return t.String()
}

func (a *App) renderNavigator() string {
	if len(a.agents) == 0 {
		return navBoxStyle.Render(a.t("nav_empty"))
	}
	tag := a.lang.Tag()
	ag := a.agents[a.current]
	name := strings.TrimSpace(ag.FirstName + " " + ag.LastName)
	if name == "" {
		name = "-"
	}
	header := fmt.Sprintf("◀ %s   %d/%d   %s ▶", a.t("nav_prev"), a.current+1, len(a.agents), a.t("nav_next"))
	lines := []string{
		labelStyle.Render(header),
		valueStyle.Render(name),
		labelStyle.Render(a.t("th_saldo")+": ") + valueStyle.Render(money.Format(tag, ag.Balance)),
	}
	if a.hasResult() {
		r := a.result.Rows[a.current]
		lines = append(lines,
			labelStyle.Render(a.t("th_qty")+": ")+valueStyle.Render(strconv.FormatInt(r.Units, 10)),
			labelStyle.Render(a.t("th_amount")+": ")+valueStyle.Render(money.FormatMinor(tag, r.AmountMinor)),
		)
	} else {
		lines = append(lines, labelStyle.Render(a.t("nav_no_result")))
	}
	return navBoxStyle.Render(strings.Join(lines, "\n"))
}

func (a *App) renderHistory() string {
	parts := []string{"", sectionStyle.Render(a.t("history"))}
	if len(a.runs) == 0 {
		parts = append(parts, labelStyle.Render("  "+a.t("history_empty")))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	tag := a.lang.Tag()
	rows := make([][]string, len(a.runs))
	for i, run := range a.runs {
		rows[i] = []string{
			run.CreatedAt.Local().Format("02/01/2006 15:04"),
			strconv.Itoa(run.AgentCount),
			strconv.FormatInt(run.UnitTotal, 10),
			money.FormatMinor(tag, run.AmountTotalMinor),
		}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(a.t("th_date"), a.t("th_agents"), a.t("th_qty"), a.t("th_amount")).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case row == a.runCursor:
				return selectedRowStyle
			}
			return cellStyle
		})
	parts = append(parts, t.String())
	if a.runDetail != nil {
		parts = append(parts, "", renderRunRows(a.lang, a.runDetail.Rows))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderRunRows(lang i18n.Lang, runRows []repository.RunRow) string {
	tag := lang.Tag()
	rows := make([][]string, len(runRows))
	for i, r := range runRows {
		rows[i] = []string{
			strconv.Itoa(r.Position + 1),
			r.FirstName,
			r.LastName,
			money.Format(tag, r.Balance),
			strconv.FormatInt(r.Units, 10),
			money.FormatMinor(tag, r.AmountMinor),
		}
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(i18n.T(lang, "th_hash"), i18n.T(lang, "th_nome"), i18n.T(lang, "th_cognome"),
			i18n.T(lang, "th_saldo"), i18n.T(lang, "th_qty"), i18n.T(lang, "th_amount")).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return cellStyle
		}).
		String()
}

func (a *App) editLabel() string {
	if a.focus == focusTotals {
		if a.totalsField == fieldUnits {
			return a.t("totals_qty")
		}
		return a.t("totals_amount")
	}
	keys := [agentColCount]string{"th_nome", "th_cognome", "th_saldo"}
	return fmt.Sprintf("%s · %s #%d", a.t("edit"), a.t(keys[a.agentCol]), a.current+1)
}

func (a *App) renderStatus() string {
	switch a.statusKind {
	case statusErr:
		return statusErrStyle.Render(a.status)
	case statusWarn:
		return statusWarnStyle.Render(a.status)
	}
	return statusStyle.Render(a.status)
}
