// Package bound implements the directional bound algebra used during
// layout negotiation.
//
// A Bound is a one-sided threshold on an axis. It comes in two kinds:
//
//   - Fixed: an immovable threshold that cannot be overruled
//   - Flexible: a soft threshold that leaves room for expression
//
// An AxisRange pairs a lower and upper Bound for one axis, and an
// Instruction pairs the two axis ranges a director hands to a performer
// before it resolves a placement. Reading a range as [low, high]:
//
//	[Fixed(0),    Fixed(20)]    must start at 0, must end at 20
//	[Fixed(0),    Flexible(20)] must start at 0, may end at or before 20
//	[Flexible(0), Fixed(20)]    may start at 0, must end at 20
//	[Flexible(0), Flexible(20)] anywhere within 0..20
//
// # Resolution
//
// Resolve and ResolveAxis turn bounds plus an incoming candidate value
// into one concrete coordinate. Both are total functions: every kind
// combination has a defined result and none of them can fail.
//
// Note the Fixed/Fixed rule: once the incoming value clears the lower
// threshold, the upper threshold wins outright and the incoming value's
// magnitude is discarded. This is deliberate - a doubly-strict axis
// ignores content size entirely - and differs from the Flexible/Flexible
// rule, which still clamps against the incoming value.
package bound

// Kind discriminates the two bound variants.
type Kind int

const (
	// KindFixed is a strict threshold that cannot be overruled.
	KindFixed Kind = iota
	// KindFlexible is a lenient threshold with room for expression.
	KindFlexible
)

// String returns the kind name for logging and test output.
func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindFlexible:
		return "flexible"
	default:
		return "unknown"
	}
}

// Bound is a one-sided threshold on an axis. The zero value is
// Fixed(0). Bounds are immutable values with no identity.
type Bound struct {
	Kind  Kind
	Value float64
}

// Fixed returns a strict bound at v.
func Fixed(v float64) Bound {
	return Bound{Kind: KindFixed, Value: v}
}

// Flexible returns a lenient bound at v.
func Flexible(v float64) Bound {
	return Bound{Kind: KindFlexible, Value: v}
}

// AxisRange is the lower and upper threshold pair for one axis.
// No ordering between Low.Value and High.Value is enforced; callers
// may construct degenerate ranges and resolution remains total.
type AxisRange struct {
	Low  Bound
	High Bound
}

// Range is shorthand for AxisRange{Low: low, High: high}.
func Range(low, high Bound) AxisRange {
	return AxisRange{Low: low, High: high}
}

// Instruction is what a director hands a performer: one range per axis,
// in absolute coordinates on the shared canvas.
type Instruction struct {
	Horizontal AxisRange
	Vertical   AxisRange
}

// Resolve resolves a single bound against an incoming candidate value.
// A Flexible bound clamps: min(bound, incoming). A Fixed bound wins
// unconditionally and the incoming value is ignored.
func Resolve(b Bound, incoming float64) float64 {
	if b.Kind == KindFlexible {
		return min(b.Value, incoming)
	}
	return b.Value
}

// ResolveAxis resolves a full axis range against an incoming candidate
// value, typically the lower edge carried forward from cursor state
// plus the desired extent. The rule depends on both bound kinds:
//
//	low=Fixed,    high=Fixed:    low.Value if incoming < low.Value, else high.Value
//	low=Fixed,    high=Flexible: low.Value if incoming < low.Value, else min(high.Value, incoming)
//	low=Flexible, high=Flexible: same as the previous case
//	low=Flexible, high=Fixed:    always high.Value
func ResolveAxis(r AxisRange, incoming float64) float64 {
	switch {
	case r.Low.Kind == KindFixed && r.High.Kind == KindFixed:
		if incoming < r.Low.Value {
			return r.Low.Value
		}
		return r.High.Value

	case r.Low.Kind == KindFixed && r.High.Kind == KindFlexible,
		r.Low.Kind == KindFlexible && r.High.Kind == KindFlexible:
		if incoming < r.Low.Value {
			return r.Low.Value
		}
		return min(r.High.Value, incoming)

	default: // low=Flexible, high=Fixed
		return r.High.Value
	}
}
