package cli

import (
	"context"
	"errors"
	"fmt"
)

var ErrResetNotConfirmed = errors.New("reset deletes every agent and run; pass --yes to confirm")

// Reset wipes the database back to the sample roster. confirm must be true.
func (a *App) Reset(ctx context.Context, confirm bool) error {
	if !confirm {
		return ErrResetNotConfirmed
	}
	if err := a.Maintenance.Reset(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	a.log().Info(a.t("sample_restored"))
	return nil
}
