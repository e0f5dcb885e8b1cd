// Package simplify reduces triangle meshes by iterative edge collapse
// guided by Garland–Heckbert error quadrics. One Run call owns all of its
// state: concurrent simplification of different meshes is safe because
// nothing is shared between invocations. A started run always executes to
// completion — there is no mid-loop cancellation signal.
package simplify

import (
	"fmt"
	"math"

	"mesh-simplifier/internal/mesh"
)

// minFaces is the hard floor on the target face count; the loop never aims
// below it.
const minFaces = 4

// Status tells how a run terminated. Both values are successful outcomes.
type Status int

const (
	// StatusTargetReached means the requested face count was met.
	StatusTargetReached Status = iota
	// StatusExhausted means no further edge was collapsible before the
	// target; the result carries a smaller-than-requested reduction.
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusTargetReached:
		return "target reached"
	case StatusExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Report is one best-effort progress push. Progress is in [0,1]; Log carries
// optional detail for host-side logging.
type Report struct {
	Progress float64
	Message  string
	Log      string
}

// Options configures one simplification run.
type Options struct {
	// TargetReduction is the requested fraction of faces to remove,
	// in [0,1]. Values outside the range are clamped.
	TargetReduction float64

	// Progress, when set, is called synchronously at roughly 5%, 10%,
	// 20% and 30% of the planned collapses and every 100 collapses
	// thereafter. It must not retain the Report.
	Progress func(Report)
}

// Result is the output of a successful run.
type Result struct {
	// Positions is the simplified mesh as a flat stride-9 triangle soup,
	// mirroring the input format.
	Positions []float64

	// OriginalFaceCount is the face count after extraction-time filtering
	// of degenerate triangles; all reported counts are relative to it.
	OriginalFaceCount int

	SimplifiedFaceCount int

	// DroppedInputFaces counts source triangles discarded during
	// extraction (repeated-vertex triangles).
	DroppedInputFaces int

	CollapseCount int

	Status Status
}

// progressMilestones are the early fractions of planned collapses at which
// a Report is pushed; afterwards one is pushed every reportEvery collapses.
var progressMilestones = [...]float64{0.05, 0.10, 0.20, 0.30}

const reportEvery = 100

// Run simplifies a flat stride-9 triangle soup, removing roughly
// TargetReduction of its faces while minimizing quadric error. The input
// shape is validated here, at the engine boundary; the core stages assume
// it. Run always prefers returning a best-effort mesh over failing: an
// early stop by exhaustion is a success with Status set accordingly.
func Run(positions []float64, opts Options) (*Result, error) {
	if len(positions)%9 != 0 {
		return nil, fmt.Errorf("simplify: input length %d is not a whole number of stride-9 triangles", len(positions))
	}

	reduction := opts.TargetReduction
	if reduction < 0 {
		reduction = 0
	}
	if reduction > 1 {
		reduction = 1
	}

	m := mesh.FromPositions(positions)
	original := len(m.Faces)

	res := &Result{
		OriginalFaceCount: original,
		DroppedInputFaces: m.DroppedFaces,
		Status:            StatusTargetReached,
	}
	if original == 0 {
		res.Positions = []float64{}
		return res, nil
	}

	m.BuildEdges()
	accumulateQuadrics(m)
	evalAllEdges(m)

	target := int(math.Floor(float64(original) * (1 - reduction)))
	if target < minFaces {
		target = minFaces
	}

	en := &engine{
		m:             m,
		originalFaces: original,
		targetFaces:   target,
		liveFaces:     original,
	}

	planned := original - target
	if planned < 1 {
		planned = 1
	}
	nextMilestone := 0
	onCollapse := func(done int) {
		if opts.Progress == nil {
			return
		}
		p := float64(done) / float64(planned)
		if p > 1 {
			p = 1
		}
		emit := false
		for nextMilestone < len(progressMilestones) && p >= progressMilestones[nextMilestone] {
			nextMilestone++
			emit = true
		}
		if done%reportEvery == 0 {
			emit = true
		}
		if emit {
			opts.Progress(Report{
				Progress: p,
				Message:  fmt.Sprintf("collapsed %d/%d edges", done, planned),
				Log:      fmt.Sprintf("%d live faces, target %d", en.liveFaces, target),
			})
		}
	}

	res.Status = en.run(onCollapse)
	res.CollapseCount = en.collapses
	res.Positions = m.Positions()
	res.SimplifiedFaceCount = en.liveFaces

	if opts.Progress != nil {
		msg := fmt.Sprintf("simplified %d -> %d faces", original, en.liveFaces)
		if res.Status == StatusExhausted {
			msg += " (no further edge collapsible)"
		}
		log := ""
		if m.DroppedFaces > 0 {
			log = fmt.Sprintf("dropped %d degenerate input triangles", m.DroppedFaces)
		}
		opts.Progress(Report{Progress: 1, Message: msg, Log: log})
	}

	return res, nil
}
