package apportion

import "fmt"

// Kind classifies an apportionment failure.
type Kind string

const (
	NegativeBalance     Kind = "negative_balance"
	NegativeTotal       Kind = "negative_total"
	EmptyEntitySet      Kind = "empty_entity_set"
	OutOfRange          Kind = "out_of_range"
	InternalConsistency Kind = "internal_consistency"
)

// Fatal reports whether the failure is a defect rather than something the
// user can correct by changing the inputs.
func (k Kind) Fatal() bool { return k == InternalConsistency }

// Error is returned by Distribute and Allocate. Index is the offending entity
// position for NegativeBalance and -1 otherwise.
type Error struct {
	Kind   Kind
	Index  int
	Detail string
}

var (
	ErrNegativeBalance     = &Error{Kind: NegativeBalance, Index: -1}
	ErrNegativeTotal       = &Error{Kind: NegativeTotal, Index: -1}
	ErrEmptyEntitySet      = &Error{Kind: EmptyEntitySet, Index: -1}
	ErrOutOfRange          = &Error{Kind: OutOfRange, Index: -1}
	ErrInternalConsistency = &Error{Kind: InternalConsistency, Index: -1}
)

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case NegativeBalance:
		msg = "negative balances are not allowed"
	case NegativeTotal:
		msg = "totals cannot be negative"
	case EmptyEntitySet:
		msg = "at least one entity is required"
	case OutOfRange:
		msg = "total is too large"
	case InternalConsistency:
		msg = "allocated parts do not sum to the totals (internal error)"
	default:
		msg = string(e.Kind)
	}
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s: entity %d", msg, e.Index)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is matches any *Error of the same Kind, so errors.Is(err, ErrNegativeTotal)
// works regardless of Index or Detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, index int, format string, args ...any) *Error {
	return &Error{Kind: kind, Index: index, Detail: fmt.Sprintf(format, args...)}
}
