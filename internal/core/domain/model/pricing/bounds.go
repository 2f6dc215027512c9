package pricing

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Range is an inclusive interval where a nil side is unbounded.
type Range[T int | float64] struct {
	Min *T
	Max *T
}

// Between returns a range bounded on both sides.
func Between[T int | float64](minValue, maxValue T) Range[T] {
	return Range[T]{Min: &minValue, Max: &maxValue}
}

// AtLeast returns a range with no upper bound.
func AtLeast[T int | float64](minValue T) Range[T] {
	return Range[T]{Min: &minValue}
}

// AtMost returns a range with no lower bound.
func AtMost[T int | float64](maxValue T) Range[T] {
	return Range[T]{Max: &maxValue}
}

// Admits reports whether v lies inside the range.
func (r Range[T]) Admits(v T) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// IsUnbounded reports whether neither side is set.
func (r Range[T]) IsUnbounded() bool {
	return r.Min == nil && r.Max == nil
}

func (r Range[T]) validate(name string) error {
	if r.Min != nil && *r.Min < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("min %v is negative", *r.Min))
	}
	if r.Max != nil && *r.Max < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("max %v is negative", *r.Max))
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("min %v is greater than max %v", *r.Min, *r.Max))
	}
	return nil
}

func (r Range[T]) String() string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("[%v, %v]", *r.Min, *r.Max)
	case r.Min != nil:
		return fmt.Sprintf("[%v, ∞)", *r.Min)
	case r.Max != nil:
		return fmt.Sprintf("(-∞, %v]", *r.Max)
	default:
		return "(-∞, ∞)"
	}
}
