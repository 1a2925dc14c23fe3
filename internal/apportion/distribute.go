package apportion

import (
	"math/big"
	"slices"
)

// Distribute splits total across len(weights) integer parts using the
// largest-remainder (Hamilton) method. Each part starts at floor(weight*total);
// the units lost to flooring go one each to the parts with the largest
// fractional remainders, lowest index first on ties.
//
// Weights are expected to sum to 1. If they do not, the leftover is clamped to
// [0, N] and the result may not sum to total; Allocate detects that case.
// A nil weight counts as zero.
func Distribute(total int64, weights []*big.Rat) ([]int64, error) {
	if total < 0 {
		return nil, newError(NegativeTotal, -1, "total %d", total)
	}
	for i, w := range weights {
		if w != nil && w.Sign() < 0 {
			return nil, newError(NegativeBalance, i, "weight %s", w.RatString())
		}
	}

	n := len(weights)
	out := make([]int64, n)
	if n == 0 || total == 0 {
		return out, nil
	}

	t := new(big.Rat).SetInt64(total)
	fractions := make([]*big.Rat, n)
	allocated := new(big.Int)
	for i, w := range weights {
		if w == nil {
			fractions[i] = new(big.Rat)
			continue
		}
		raw := new(big.Rat).Mul(w, t)

		// raw is non-negative, so truncating division is the floor.
		base := new(big.Int).Quo(raw.Num(), raw.Denom())
		if !base.IsInt64() {
			return nil, newError(InternalConsistency, i, "share %s overflows", raw.FloatString(2))
		}
		out[i] = base.Int64()
		allocated.Add(allocated, base)
		fractions[i] = raw.Sub(raw, new(big.Rat).SetInt(base))
	}

	leftover := new(big.Int).Sub(big.NewInt(total), allocated)
	switch {
	case leftover.Sign() < 0:
		leftover.SetInt64(0)
	case leftover.Cmp(big.NewInt(int64(n))) > 0:
		leftover.SetInt64(int64(n))
	}
	if leftover.Sign() == 0 {
		return out, nil
	}

	// Stable sort keeps ascending index order among equal remainders.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return fractions[b].Cmp(fractions[a])
	})

	for _, i := range order[:leftover.Int64()] {
		out[i]++
	}
	return out, nil
}
