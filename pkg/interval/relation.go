package interval

import "fmt"

// Relation describes how one interval is positioned relative to another,
// following Allen's interval algebra: for any ordered pair of intervals
// exactly one of the 13 relations holds.
type Relation uint8

const (
	Before Relation = iota
	Meets
	Overlaps
	FinishedBy
	Contains
	Starts
	Equal
	StartedBy
	During
	Finishes
	OverlappedBy
	MetBy
	After
)

var relationStrings = [...]string{
	Before:       "before",
	Meets:        "meets",
	Overlaps:     "overlaps",
	FinishedBy:   "finishedBy",
	Contains:     "contains",
	Starts:       "starts",
	Equal:        "equal",
	StartedBy:    "startedBy",
	During:       "during",
	Finishes:     "finishes",
	OverlappedBy: "overlappedBy",
	MetBy:        "metBy",
	After:        "after",
}

func (r Relation) String() string {
	if int(r) >= len(relationStrings) {
		return fmt.Sprintf("relation(%d)", uint8(r))
	}
	return relationStrings[r]
}

var invertedRelations = [...]Relation{
	Before:       After,
	Meets:        MetBy,
	Overlaps:     OverlappedBy,
	FinishedBy:   Finishes,
	Contains:     During,
	Starts:       StartedBy,
	Equal:        Equal,
	StartedBy:    Starts,
	During:       Contains,
	Finishes:     FinishedBy,
	OverlappedBy: Overlaps,
	MetBy:        Meets,
	After:        Before,
}

// Invert returns the relation that holds between y and x, given the one
// that holds between x and y: x.Relate(y).Invert() == y.Relate(x).
// Inversion is an involution, r.Invert().Invert() == r.
func (r Relation) Invert() Relation {
	return invertedRelations[r]
}
