package mesh

import (
	"fmt"
	"iter"
)

// circulationState is the position of a circulator in its walk.
type circulationState uint8

const (
	// Nothing yielded yet.
	stateBegin circulationState = iota
	// Walking counter-clockwise from the start triangle.
	stateCCW
	// A boundary was hit; retracing the CCW jumps back to the start triangle.
	stateRebound
	// Walking clockwise from the start triangle towards the other boundary.
	stateCW
	stateDone
)

// ringWalk moves from triangle to triangle around a central vertex.
//
// Crossing the edge between the center and the local vertex after it
// (Neighbors[Next[l]]) turns counter-clockwise; crossing the edge between the
// center and the vertex before it (Neighbors[Previous[l]]) turns clockwise.
type ringWalk struct {
	mesh   *Mesh
	center VertexIndex
	start  TriangleIndex
	cur    TriangleIndex
	state  circulationState
	jumps  int  // CCW jumps not yet retraced
	open   bool // a boundary was reached
	moves  int
	limit  int
}

func newRingWalk(m *Mesh, center VertexIndex) ringWalk {
	v := m.VertexData(center)
	if !v.HasIncidentTriangle() {
		panic(fmt.Sprintf("mesh: cannot circulate vertex %d without an incident triangle", center))
	}
	start := v.IncidentTriangle
	m.checkTriangle(start)
	w := ringWalk{
		mesh:   m,
		center: center,
		start:  start,
		cur:    start,
		// Every triangle is visited at most twice (once CCW, once retracing).
		limit: 2*len(m.triangles) + 2,
	}
	w.local(start)
	return w
}

// local returns the local index of the center in triangle t.
func (w *ringWalk) local(t TriangleIndex) int {
	l := w.mesh.triangles[t].VertexLocalIndex(w.center)
	if l < 0 {
		panic(fmt.Sprintf("mesh: vertex %d is not in triangle %d", w.center, t))
	}
	return l
}

func (w *ringWalk) ccwNeighbor() TriangleIndex {
	return w.mesh.triangles[w.cur].Neighbors[Next[w.local(w.cur)]]
}

func (w *ringWalk) cwNeighbor() TriangleIndex {
	return w.mesh.triangles[w.cur].Neighbors[Previous[w.local(w.cur)]]
}

// moveTo makes t current. It returns false once the walk has made more moves
// than the mesh could need, which only happens on corrupted neighbor data.
func (w *ringWalk) moveTo(t TriangleIndex) bool {
	w.moves++
	if w.moves > w.limit || int(t) >= len(w.mesh.triangles) {
		w.state = stateDone
		return false
	}
	w.cur = t
	return true
}

// advanceCCW performs one CCW step. It returns true when it moved to a new
// triangle; otherwise the state is now stateRebound or stateDone.
func (w *ringWalk) advanceCCW() bool {
	nb := w.ccwNeighbor()
	switch {
	case nb == NoTriangle:
		w.open = true
		w.state = stateRebound
		return false
	case nb == w.start:
		w.state = stateDone
		return false
	}
	if !w.moveTo(nb) {
		return false
	}
	w.jumps++
	return true
}

// rebound retraces one CCW jump. It returns true once the start triangle is
// current again, switching to stateCW.
func (w *ringWalk) rebound() bool {
	if w.jumps == 0 {
		w.state = stateCW
		return true
	}
	nb := w.cwNeighbor()
	if nb == NoTriangle {
		w.state = stateDone
		return false
	}
	if w.moveTo(nb) {
		w.jumps--
	}
	return false
}

// advanceCW performs one CW step. It returns false at the far boundary.
func (w *ringWalk) advanceCW() bool {
	nb := w.cwNeighbor()
	if nb == NoTriangle {
		w.state = stateDone
		return false
	}
	return w.moveTo(nb)
}

// TriangleCirculator enumerates the triangles around a vertex, once each:
// counter-clockwise from the vertex's incident triangle, then, if a boundary
// is met, clockwise from the incident triangle to the other boundary.
// A circulator is single-pass.
type TriangleCirculator struct {
	walk ringWalk
}

// NewTriangleCirculator returns a circulator around v.
// It panics if v has no incident triangle.
func NewTriangleCirculator(m *Mesh, v VertexIndex) *TriangleCirculator {
	return &TriangleCirculator{walk: newRingWalk(m, v)}
}

// Next returns the next triangle, or false when the circulation is complete.
func (c *TriangleCirculator) Next() (TriangleIndex, bool) {
	w := &c.walk
	for {
		switch w.state {
		case stateBegin:
			w.state = stateCCW
			return w.cur, true
		case stateCCW:
			if w.advanceCCW() {
				return w.cur, true
			}
		case stateRebound:
			if w.rebound() && w.advanceCW() {
				return w.cur, true
			}
		case stateCW:
			if w.advanceCW() {
				return w.cur, true
			}
		default:
			return NoTriangle, false
		}
	}
}

// Open reports whether the circulation has met a boundary so far.
// After Next returned false it tells whether the ring is open.
func (c *TriangleCirculator) Open() bool {
	return c.walk.open
}

// VertexCirculator enumerates the vertices sharing an edge with a central
// vertex, once each, in the same order as TriangleCirculator.
// A circulator is single-pass.
type VertexCirculator struct {
	walk ringWalk
}

// NewVertexCirculator returns a circulator around v.
// It panics if v has no incident triangle.
func NewVertexCirculator(m *Mesh, v VertexIndex) *VertexCirculator {
	return &VertexCirculator{walk: newRingWalk(m, v)}
}

// Next returns the next neighbor vertex, or false when the circulation is complete.
func (c *VertexCirculator) Next() (VertexIndex, bool) {
	w := &c.walk
	for {
		switch w.state {
		case stateBegin:
			w.state = stateCCW
			return c.current(), true
		case stateCCW:
			if w.advanceCCW() {
				return c.current(), true
			}
		case stateRebound:
			// The start triangle yields its second neighbor when the walk
			// turns clockwise.
			if w.rebound() {
				return c.current(), true
			}
		case stateCW:
			if w.advanceCW() {
				return c.current(), true
			}
		default:
			return NoVertex, false
		}
	}
}

// Open reports whether the circulation has met a boundary so far.
func (c *VertexCirculator) Open() bool {
	return c.walk.open
}

// current returns the neighbor vertex of the current triangle: the one before
// the center while walking CCW, the one after it while walking CW.
func (c *VertexCirculator) current() VertexIndex {
	w := &c.walk
	tri := &w.mesh.triangles[w.cur]
	l := w.local(w.cur)
	if w.state == stateCW {
		return tri.Vertices[Next[l]]
	}
	return tri.Vertices[Previous[l]]
}

// TrianglesAroundVertex returns the triangles around v in circulation order.
// Each range creates a fresh circulator. It panics if v is out of range or
// has no incident triangle.
func (m *Mesh) TrianglesAroundVertex(v VertexIndex) iter.Seq[TriangleIndex] {
	m.checkCirculable(v)
	return func(yield func(TriangleIndex) bool) {
		c := NewTriangleCirculator(m, v)
		for t, ok := c.Next(); ok; t, ok = c.Next() {
			if !yield(t) {
				return
			}
		}
	}
}

// VerticesAroundVertex returns the one-ring vertices of v in circulation
// order. Each range creates a fresh circulator. It panics if v is out of
// range or has no incident triangle.
func (m *Mesh) VerticesAroundVertex(v VertexIndex) iter.Seq[VertexIndex] {
	m.checkCirculable(v)
	return func(yield func(VertexIndex) bool) {
		c := NewVertexCirculator(m, v)
		for n, ok := c.Next(); ok; n, ok = c.Next() {
			if !yield(n) {
				return
			}
		}
	}
}

// IsBoundaryVertex reports whether the triangles around v form an open ring.
// A vertex without an incident triangle is not on a boundary.
func (m *Mesh) IsBoundaryVertex(v VertexIndex) bool {
	if !m.VertexData(v).HasIncidentTriangle() {
		return false
	}
	c := NewTriangleCirculator(m, v)
	for _, ok := c.Next(); ok; _, ok = c.Next() {
	}
	return c.Open()
}

// Valence returns the number of triangles around v.
func (m *Mesh) Valence(v VertexIndex) int {
	if !m.VertexData(v).HasIncidentTriangle() {
		return 0
	}
	n := 0
	for range m.TrianglesAroundVertex(v) {
		n++
	}
	return n
}

func (m *Mesh) checkCirculable(v VertexIndex) {
	if !m.VertexData(v).HasIncidentTriangle() {
		panic(fmt.Sprintf("mesh: cannot circulate vertex %d without an incident triangle", v))
	}
}
