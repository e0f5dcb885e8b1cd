package simplify

import (
	"math"

	"mesh-simplifier/internal/mesh"
)

// engine drives the iterative minimum-cost edge-collapse loop over one mesh.
type engine struct {
	m             *mesh.Mesh
	originalFaces int // live face count before the loop, also the iteration cap
	targetFaces   int
	liveFaces     int
	collapses     int
}

// minCostEdge linearly scans all live edges for the cheapest collapse.
// Ties resolve to the first edge in construction order, keeping runs
// deterministic. Edges whose endpoint died outside the local refresh
// neighborhood are tombstoned lazily here, so a consumed endpoint can never
// be selected. Returns -1 when no edge has a finite cost.
func (en *engine) minCostEdge() int {
	m := en.m
	best := math.Inf(1)
	bestIdx := -1
	for ei := range m.Edges {
		e := &m.Edges[ei]
		if e.Deleted {
			continue
		}
		if m.Vertices[e.V0].Deleted || m.Vertices[e.V1].Deleted {
			e.Deleted = true
			e.Cost = math.Inf(1)
			continue
		}
		if e.Cost < best {
			best = e.Cost
			bestIdx = ei
		}
	}
	return bestIdx
}

// run executes the collapse loop until the target face count is reached,
// no collapsible edge remains, or the safety cap of one iteration per
// original face trips. Exhaustion is a normal outcome, not a fault.
// onCollapse is invoked after every applied collapse.
func (en *engine) run(onCollapse func(done int)) Status {
	for iter := 0; en.liveFaces > en.targetFaces && iter < en.originalFaces; iter++ {
		ei := en.minCostEdge()
		if ei < 0 {
			return StatusExhausted
		}
		en.collapse(ei)
		en.collapses++
		if onCollapse != nil {
			onCollapse(en.collapses)
		}
	}
	if en.liveFaces > en.targetFaces {
		return StatusExhausted
	}
	return StatusTargetReached
}

// collapse applies edge ei: V0 survives and absorbs V1. Never fails —
// edges were built from validated faces, so indices are always in range.
func (en *engine) collapse(ei int) {
	m := en.m
	e := &m.Edges[ei]
	i0, i1 := e.V0, e.V1
	v0 := &m.Vertices[i0]
	v1 := &m.Vertices[i1]

	// Survivor moves to the cached collapse target and absorbs the
	// consumed vertex's accumulated error.
	v0.Position = e.Target
	v0.Q = v0.Q.Add(v1.Q)

	// Faces spanning both endpoints become degenerate under substitution.
	// Tombstone them before remapping so they are not reprocessed below.
	for _, fi := range v1.Faces {
		f := &m.Faces[fi]
		if f.Deleted {
			continue
		}
		if f.HasVertex(i0) {
			f.Deleted = true
			en.liveFaces--
		}
	}

	// Remap the remaining live faces of the consumed vertex onto the
	// survivor, refreshing their cached geometry.
	for _, fi := range v1.Faces {
		f := &m.Faces[fi]
		if f.Deleted {
			continue
		}
		f.ReplaceVertex(i1, i0)
		m.RefreshFace(fi)
		m.AttachFace(i0, fi)
	}

	v1.Deleted = true
	e.Deleted = true
	e.Cost = math.Inf(1)

	en.refreshAround(i0)
}

// refreshAround recomputes costs locally after a collapse: every edge
// incident to any vertex touched by the survivor's live faces is
// re-evaluated, and edges whose other endpoint is now dead are tombstoned
// in the same pass.
func (en *engine) refreshAround(i0 int) {
	m := en.m

	touched := map[int]struct{}{i0: {}}
	for _, fi := range m.Vertices[i0].Faces {
		f := &m.Faces[fi]
		if f.Deleted {
			continue
		}
		for _, vi := range f.V {
			touched[vi] = struct{}{}
		}
	}

	done := make(map[int]struct{})
	for vi := range touched {
		for _, ej := range m.Vertices[vi].Edges {
			if _, ok := done[ej]; ok {
				continue
			}
			done[ej] = struct{}{}

			e := &m.Edges[ej]
			if e.Deleted {
				continue
			}
			if m.Vertices[e.V0].Deleted || m.Vertices[e.V1].Deleted {
				e.Deleted = true
				e.Cost = math.Inf(1)
				continue
			}
			evalEdge(m, ej)
		}
	}
}
