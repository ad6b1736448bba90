package predicate

import "fmt"

// Kind classifies the intersection of one triangle pair. The set is
// closed: consumers switch over all four cases and panic on anything
// else, so a new case cannot slip past a degeneracy-handling site.
type Kind int

const (
	KindNone Kind = iota
	KindPoint
	KindSegment
	KindArea
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindPoint:
		return "Point"
	case KindSegment:
		return "Segment"
	case KindArea:
		return "Area"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
