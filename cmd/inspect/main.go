package main

import (
	"flag"
	"fmt"
	"os"

	"mesh-simplifier/internal/mesh"
	"mesh-simplifier/internal/task"
)

// inspect prints extraction and topology statistics for one job file,
// without simplifying.
func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: inspect <job.json>")
		os.Exit(1)
	}

	job, err := task.ReadJob(flag.Arg(0), 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(job.Positions)%9 != 0 {
		fmt.Fprintf(os.Stderr, "Error: input length %d is not a whole number of stride-9 triangles\n", len(job.Positions))
		os.Exit(1)
	}

	m := mesh.FromPositions(job.Positions)
	m.BuildEdges()

	boundary := 0
	for ei := range m.Edges {
		if m.LiveEdgeFaces(ei) < 2 {
			boundary++
		}
	}

	fmt.Printf("Input:          %s\n", flag.Arg(0))
	fmt.Printf("Source tris:    %d\n", len(job.Positions)/9)
	fmt.Printf("Dropped tris:   %d (repeated-vertex)\n", m.DroppedFaces)
	fmt.Printf("Faces:          %d\n", len(m.Faces))
	fmt.Printf("Welded verts:   %d (from %d source verts)\n", len(m.Vertices), len(job.Positions)/3)
	fmt.Printf("Edges:          %d\n", len(m.Edges))
	fmt.Printf("Boundary edges: %d\n", boundary)
}
