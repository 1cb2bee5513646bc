package mesh

import (
	"errors"
	"fmt"
)

// ErrDegenerateEdge is returned when an edge is built from a single vertex.
var ErrDegenerateEdge = errors.New("edge endpoints must be distinct")

// EdgeKey identifies an edge by its two endpoints, independent of their order.
// It is comparable and used as a map key while building connectivity.
type EdgeKey struct {
	Min VertexIndex
	Max VertexIndex
}

// NewEdgeKey returns the key for the edge joining a and b.
func NewEdgeKey(a, b VertexIndex) (EdgeKey, error) {
	switch {
	case a < b:
		return EdgeKey{Min: a, Max: b}, nil
	case a > b:
		return EdgeKey{Min: b, Max: a}, nil
	default:
		return EdgeKey{}, fmt.Errorf("%w: (%d, %d)", ErrDegenerateEdge, a, b)
	}
}

// String returns the key as "(min, max)".
func (k EdgeKey) String() string {
	return fmt.Sprintf("(%d, %d)", k.Min, k.Max)
}
