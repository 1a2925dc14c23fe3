package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jask/riparto/internal/database/repository"
	"github.com/jask/riparto/internal/money"
	"github.com/jask/riparto/internal/service"
)

// AllocateParams are the inputs of the allocate command. When Agents is
// empty the stored roster is used.
type AllocateParams struct {
	Units  int64
	Amount decimal.Decimal
	Agents []repository.Agent
	Save   bool
}

// ParseAgentSpec parses "Nome,Cognome,Saldo". The balance takes everything
// after the second comma, so "Ada,Rossi,1.234,50" is accepted.
func ParseAgentSpec(s string) (repository.Agent, error) {
	parts := strings.SplitN(s, ",", 3)
	if len(parts) != 3 {
		return repository.Agent{}, fmt.Errorf("agent %q: want Nome,Cognome,Saldo", s)
	}
	balance, err := money.Parse(parts[2])
	if err != nil {
		return repository.Agent{}, fmt.Errorf("agent %q: %w", s, err)
	}
	return repository.Agent{
		FirstName: strings.TrimSpace(parts[0]),
		LastName:  strings.TrimSpace(parts[1]),
		Balance:   balance,
	}, nil
}

// Allocate runs one allocation and prints the result table.
func (a *App) Allocate(ctx context.Context, p AllocateParams) error {
	agents := p.Agents
	if len(agents) == 0 {
		stored, err := a.Roster.Load(ctx)
		if err != nil {
			return err
		}
		agents = stored
	}

	svc := a.Allocation
	if !p.Save {
		svc = &service.AllocationService{Log: a.Allocation.Log}
	}
	res, err := svc.Calculate(ctx, service.AllocationRequest{Agents: agents, Units: p.Units, Amount: p.Amount})
	if err != nil {
		return a.localize(err)
	}

	tag := a.Lang.Tag()
	t := newTable(a.t("th_hash"), a.t("th_nome"), a.t("th_cognome"), a.t("th_saldo"), a.t("th_qty"), a.t("th_amount"))
	for i, r := range res.Rows {
		t.Row(
			strconv.Itoa(i+1),
			r.FirstName,
			r.LastName,
			money.Format(tag, r.Balance),
			strconv.FormatInt(r.Units, 10),
			money.FormatMinor(tag, r.AmountMinor),
		)
	}
	t.Row("", a.t("total_label"), "", "",
		strconv.FormatInt(res.Totals.Units, 10), money.FormatMinor(tag, res.Totals.AmountMinor))

	fmt.Fprintln(a.Out, t.String())
	if res.RunID != "" {
		a.log().Infof("run %s", res.RunID)
	}
	return nil
}
