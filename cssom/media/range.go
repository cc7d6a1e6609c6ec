package media

import (
	"io"

	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/tokens"
)

// Bound is one end of a Range.
type Bound[T Value] struct {
	Value     T
	Inclusive bool
}

// Range is an interval of values of a range feature. Each end is optional,
// but at least one of them is present.
type Range[T Value] struct {
	Min maybe.Maybe[Bound[T]]
	Max maybe.Maybe[Bound[T]]
}

// NewRange creates a range from two optional bounds, at least one of which
// has to be present.
func NewRange[T Value](lower, upper maybe.Maybe[Bound[T]]) (Range[T], error) {
	if maybe.IsNothing(lower) && maybe.IsNothing(upper) {
		return Range[T]{}, csserr.New(csserr.EmptyMediaRange, tokens.Location{}, "")
	}
	return Range[T]{Min: lower, Max: upper}, nil
}

// BooleanRange is the range of a feature in boolean context: any value
// greater than zero.
func BooleanRange[T Value]() Range[T] {
	var zero T
	return Range[T]{
		Min: maybe.Just(Bound[T]{Value: zero, Inclusive: false}),
		Max: maybe.Nothing[Bound[T]](),
	}
}

// AtLeast is the range of a min- feature.
func AtLeast[T Value](v T) Range[T] {
	return Range[T]{Min: maybe.Just(Bound[T]{Value: v, Inclusive: true}), Max: maybe.Nothing[Bound[T]]()}
}

// AtMost is the range of a max- feature.
func AtMost[T Value](v T) Range[T] {
	return Range[T]{Min: maybe.Nothing[Bound[T]](), Max: maybe.Just(Bound[T]{Value: v, Inclusive: true})}
}

// Exactly is the range of a feature with a plain value.
func Exactly[T Value](v T) Range[T] {
	b := maybe.Just(Bound[T]{Value: v, Inclusive: true})
	return Range[T]{Min: b, Max: b}
}

// IsBoolean is true for a range in boolean context.
func (r Range[T]) IsBoolean() bool {
	lo, ok := maybe.Value(r.Min)
	return ok && maybe.IsNothing(r.Max) && !lo.Inclusive && lo.Value.IsZero()
}

// writeRange writes a range feature expression, including the parentheses.
func writeRange[T Value](w io.Writer, name string, r Range[T]) error {
	cw := tokens.NewWriter(w)
	cw.Char('(')
	lo, hasMin := maybe.Value(r.Min)
	hi, hasMax := maybe.Value(r.Max)
	switch {
	case r.IsBoolean():
		cw.Text(name)
	case hasMin && hasMax && lo.Inclusive && hi.Inclusive &&
		tokens.CSSString(lo.Value) == tokens.CSSString(hi.Value):
		cw.Text(name)
		cw.Char(':')
		cw.Node(lo.Value)
	case hasMin && !hasMax && lo.Inclusive:
		cw.Text("min-" + name + ":")
		cw.Node(lo.Value)
	case hasMax && !hasMin && hi.Inclusive:
		cw.Text("max-" + name + ":")
		cw.Node(hi.Value)
	case hasMin && hasMax:
		cw.Node(lo.Value)
		cw.Text(lessThan(lo.Inclusive))
		cw.Text(name)
		cw.Text(lessThan(hi.Inclusive))
		cw.Node(hi.Value)
	case hasMin:
		cw.Text(name)
		cw.Char('>')
		cw.Node(lo.Value)
	case hasMax:
		cw.Text(name)
		cw.Char('<')
		cw.Node(hi.Value)
	}
	cw.Char(')')
	return cw.Err()
}

func lessThan(inclusive bool) string {
	if inclusive {
		return "<="
	}
	return "<"
}
