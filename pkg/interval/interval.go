package interval

import (
	"cmp"
	"fmt"
)

// CompareFn is a three-way comparison over T. It must implement a total
// order: negative when a sorts before b, zero when they are equal,
// positive when a sorts after b.
type CompareFn[T any] func(a, b T) int

// Interval is a closed interval over an ordered domain. The bounds are
// normalized at construction so that lesser <= greater always holds; an
// interval with equal bounds is valid and denotes a single point.
type Interval[T any] struct {
	lesser  T
	greater T
	compare CompareFn[T]
}

// New builds an interval from two bounds, given in either order.
func New[T cmp.Ordered](a, b T) Interval[T] {
	return NewFunc(a, b, cmp.Compare[T])
}

// NewFunc builds an interval over a domain without a natural order,
// using the supplied comparator, e.g. NewFunc(t1, t2, time.Time.Compare).
func NewFunc[T any](a, b T, compare CompareFn[T]) Interval[T] {
	if compare(b, a) < 0 {
		a, b = b, a
	}
	return Interval[T]{lesser: a, greater: b, compare: compare}
}

// Lesser returns the lower bound of x.
func (x Interval[T]) Lesser() T { return x.lesser }

// Greater returns the upper bound of x.
func (x Interval[T]) Greater() T { return x.greater }

// Bounds returns both bounds in (lesser, greater) order, which matches
// the construction order only up to the swap normalization.
func (x Interval[T]) Bounds() (T, T) { return x.lesser, x.greater }

// IsEmpty reports whether x covers a single point.
func (x Interval[T]) IsEmpty() bool { return x.compare(x.lesser, x.greater) == 0 }

func (x Interval[T]) NonEmpty() bool { return !x.IsEmpty() }

func (x Interval[T]) String() string {
	return fmt.Sprintf("%v-%v", x.lesser, x.greater)
}

// Relate computes which of the 13 relations holds between x and that.
//
// The classification walks the four endpoint comparisons top to bottom
// and the first matching case wins. The case order is load-bearing: it
// fixes the answers for single-point intervals on boundaries, e.g. a
// point at the lesser bound of an interval overlaps it rather than
// starting or meeting it. Reordering the cases changes those answers.
func (x Interval[T]) Relate(that Interval[T]) Relation {
	var (
		ll = x.compare(x.lesser, that.lesser)
		lg = x.compare(x.lesser, that.greater)
		gl = x.compare(x.greater, that.lesser)
		gg = x.compare(x.greater, that.greater)
	)
	switch {
	case ll == 0 && gg == 0:
		return Equal
	case gl < 0:
		return Before
	case ll < 0 && gl == 0 && gg < 0:
		return Meets
	case gl == 0:
		return Overlaps
	case ll > 0 && lg == 0 && gg > 0:
		return MetBy
	case lg == 0:
		return OverlappedBy
	case lg > 0:
		return After
	case ll < 0 && gg < 0:
		return Overlaps
	case ll < 0 && gg == 0:
		return FinishedBy
	case ll < 0 && gg > 0:
		return Contains
	case ll == 0 && gg < 0:
		return Starts
	case ll == 0 && gg > 0:
		return StartedBy
	case ll > 0 && gg < 0:
		return During
	case ll > 0 && gg == 0:
		return Finishes
	default: // ll > 0 && gg > 0
		return OverlappedBy
	}
}

// IsBefore reports whether x lies entirely before that.
func (x Interval[T]) IsBefore(that Interval[T]) bool { return x.Relate(that) == Before }

// Meets reports whether x ends exactly where that begins.
func (x Interval[T]) Meets(that Interval[T]) bool { return x.Relate(that) == Meets }

// Overlaps reports whether x overlaps the start of that.
func (x Interval[T]) Overlaps(that Interval[T]) bool { return x.Relate(that) == Overlaps }

// IsFinishedBy reports whether that finishes x.
func (x Interval[T]) IsFinishedBy(that Interval[T]) bool { return x.Relate(that) == FinishedBy }

// Contains reports whether that is inside x, not touching the edges of x.
func (x Interval[T]) Contains(that Interval[T]) bool { return x.Relate(that) == Contains }

// Starts reports whether x begins where that begins and ends inside it.
func (x Interval[T]) Starts(that Interval[T]) bool { return x.Relate(that) == Starts }

// Equal reports whether x and that share both bounds.
func (x Interval[T]) Equal(that Interval[T]) bool { return x.Relate(that) == Equal }

// IsStartedBy reports whether that starts x.
func (x Interval[T]) IsStartedBy(that Interval[T]) bool { return x.Relate(that) == StartedBy }

// IsDuring reports whether x is inside that, not touching the edges of that.
func (x Interval[T]) IsDuring(that Interval[T]) bool { return x.Relate(that) == During }

// Finishes reports whether x ends where that ends and begins inside it.
func (x Interval[T]) Finishes(that Interval[T]) bool { return x.Relate(that) == Finishes }

// IsOverlappedBy reports whether that overlaps the start of x.
func (x Interval[T]) IsOverlappedBy(that Interval[T]) bool { return x.Relate(that) == OverlappedBy }

// IsMetBy reports whether that ends exactly where x begins.
func (x Interval[T]) IsMetBy(that Interval[T]) bool { return x.Relate(that) == MetBy }

// IsAfter reports whether x lies entirely after that.
func (x Interval[T]) IsAfter(that Interval[T]) bool { return x.Relate(that) == After }
