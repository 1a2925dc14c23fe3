// Package apportion splits integer totals among weighted entities so that the
// parts always sum back to the totals exactly.
package apportion

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// MinorUnitsPerMajor is the number of minor currency units (cents) in one
// major unit.
const MinorUnitsPerMajor = 100

var minorPerMajor = decimal.NewFromInt(MinorUnitsPerMajor)

// Entity is one participant in an allocation. The name fields are carried
// through untouched; only Balance is used as the weight basis.
type Entity struct {
	FirstName string
	LastName  string
	Balance   decimal.Decimal
}

// Row pairs an Entity with its allocated units and minor-unit amount.
type Row struct {
	Entity
	Units       int64
	AmountMinor int64
}

// Amount is the allocated amount in major units.
func (r Row) Amount() decimal.Decimal { return MajorUnits(r.AmountMinor) }

// Totals holds column sums of a set of rows.
type Totals struct {
	Units       int64
	AmountMinor int64
}

// Amount is the summed amount in major units.
func (t Totals) Amount() decimal.Decimal { return MajorUnits(t.AmountMinor) }

// MinorUnits converts a major-unit amount to minor units, rounding half away
// from zero. Amounts whose minor units do not fit in an int64 fail with
// OutOfRange.
func MinorUnits(amount decimal.Decimal) (int64, error) {
	minor := amount.Mul(minorPerMajor).Round(0).BigInt()
	if !minor.IsInt64() {
		return 0, newError(OutOfRange, -1, "amount %s", amount.String())
	}
	return minor.Int64(), nil
}

// MajorUnits converts minor units back to a major-unit amount.
func MajorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// Sum adds up the units and amounts of rows.
func Sum(rows []Row) Totals {
	var t Totals
	for _, r := range rows {
		t.Units += r.Units
		t.AmountMinor += r.AmountMinor
	}
	return t
}

// Allocate splits unitTotal and amountTotal among entities in proportion to
// their balances. Rows come back in input order. When every balance is zero
// the totals are split evenly. An empty entity slice yields an empty result.
//
// The unit and amount columns are distributed independently with the same
// weights, so their rounding residues may land on different entities.
func Allocate(entities []Entity, unitTotal int64, amountTotal decimal.Decimal) ([]Row, error) {
	if unitTotal < 0 {
		return nil, newError(NegativeTotal, -1, "unit total %d", unitTotal)
	}
	if amountTotal.IsNegative() {
		return nil, newError(NegativeTotal, -1, "amount total %s", amountTotal.StringFixed(2))
	}
	for i, e := range entities {
		if e.Balance.IsNegative() {
			return nil, newError(NegativeBalance, i, "balance %s", e.Balance.String())
		}
	}
	if len(entities) == 0 {
		return []Row{}, nil
	}

	amountMinor, err := MinorUnits(amountTotal)
	if err != nil {
		return nil, err
	}
	weights := Weights(entities)

	units, err := Distribute(unitTotal, weights)
	if err != nil {
		return nil, err
	}
	cents, err := Distribute(amountMinor, weights)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(entities))
	for i, e := range entities {
		rows[i] = Row{Entity: e, Units: units[i], AmountMinor: cents[i]}
	}

	got := Sum(rows)
	if got.Units != unitTotal || got.AmountMinor != amountMinor {
		return nil, newError(InternalConsistency, -1,
			"units %d/%d, minor units %d/%d", got.Units, unitTotal, got.AmountMinor, amountMinor)
	}
	return rows, nil
}

// Weights returns each entity's exact share of the summed balance, or 1/N for
// every entity when the sum is zero.
func Weights(entities []Entity) []*big.Rat {
	n := len(entities)
	weights := make([]*big.Rat, n)
	if n == 0 {
		return weights
	}

	sum := decimal.Zero
	for _, e := range entities {
		sum = sum.Add(e.Balance)
	}
	if !sum.IsPositive() {
		for i := range weights {
			weights[i] = big.NewRat(1, int64(n))
		}
		return weights
	}

	total := sum.Rat()
	for i, e := range entities {
		weights[i] = new(big.Rat).Quo(e.Balance.Rat(), total)
	}
	return weights
}
