package simplify

import (
	"math"

	"mesh-simplifier/internal/mesh"
)

// boundaryPenalty scales the cost of edges bordering fewer than two live
// faces, so collapses prefer interior edges and the open rim keeps its shape
// longer.
const boundaryPenalty = 10.0

// evalEdge recomputes the cached collapse target and cost of edge ei.
//
// The target is the arithmetic midpoint of the endpoints rather than the
// quadric-optimal point (which would need a 3×3 solve); see DESIGN.md. The
// cost is the combined endpoint quadric evaluated at that target, scaled by
// boundaryPenalty for boundary edges. Edges with a consumed endpoint get
// cost +Inf, the never-select sentinel.
func evalEdge(m *mesh.Mesh, ei int) {
	e := &m.Edges[ei]
	v0 := &m.Vertices[e.V0]
	v1 := &m.Vertices[e.V1]

	if v0.Deleted || v1.Deleted {
		e.Cost = math.Inf(1)
		return
	}

	q := v0.Q.Add(v1.Q)
	e.Target = v0.Position.Mid(v1.Position)
	cost := q.EvalAt(e.Target)
	if m.LiveEdgeFaces(ei) < 2 {
		cost *= boundaryPenalty
	}
	e.Cost = cost
}

// evalAllEdges seeds every edge's cost after topology construction.
func evalAllEdges(m *mesh.Mesh) {
	for ei := range m.Edges {
		evalEdge(m, ei)
	}
}
