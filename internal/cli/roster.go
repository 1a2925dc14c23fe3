package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jask/riparto/internal/money"
	"github.com/jask/riparto/internal/rosterfile"
)

// ShowRoster prints the stored agents.
func (a *App) ShowRoster(ctx context.Context) error {
	agents, err := a.Roster.Load(ctx)
	if err != nil {
		return err
	}
	if len(agents) == 0 {
		fmt.Fprintln(a.Out, a.t("nav_empty"))
		return nil
	}
	tag := a.Lang.Tag()
	t := newTable(a.t("th_hash"), a.t("th_nome"), a.t("th_cognome"), a.t("th_saldo"))
	for i, ag := range agents {
		t.Row(strconv.Itoa(i+1), ag.FirstName, ag.LastName, money.Format(tag, ag.Balance))
	}
	fmt.Fprintln(a.Out, t.String())
	return nil
}

// ShowHistory prints the most recent stored runs. limit <= 0 prints all of them.
func (a *App) ShowHistory(ctx context.Context, limit int) error {
	runs, err := a.Allocation.History(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(a.Out, a.t("history_empty"))
		return nil
	}
	tag := a.Lang.Tag()
	t := newTable("ID", a.t("th_date"), a.t("th_agents"), a.t("th_qty"), a.t("th_amount"))
	for _, run := range runs {
		t.Row(
			run.ID,
			run.CreatedAt.Local().Format("02/01/2006 15:04"),
			strconv.Itoa(run.AgentCount),
			strconv.FormatInt(run.UnitTotal, 10),
			money.FormatMinor(tag, run.AmountTotalMinor),
		)
	}
	fmt.Fprintln(a.Out, t.String())
	return nil
}

// ExportRoster writes the stored roster to a JSON file.
func (a *App) ExportRoster(ctx context.Context, path string) error {
	agents, err := a.Roster.Load(ctx)
	if err != nil {
		return err
	}
	if err := rosterfile.Save(path, agents); err != nil {
		return err
	}
	a.log().Infof("%s %s (%d)", a.t("roster_saved"), path, len(agents))
	return nil
}

// ImportRoster replaces the stored roster with the agents in a JSON file.
func (a *App) ImportRoster(ctx context.Context, path string) error {
	agents, err := rosterfile.Load(path)
	if err != nil {
		return err
	}
	if _, err := a.Roster.Save(ctx, agents); err != nil {
		return err
	}
	return a.ShowRoster(ctx)
}
