package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mesh-simplifier/internal/preview"
	"mesh-simplifier/internal/task"
)

// preview renders one job file's geometry to a WebP image.
func main() {
	size := flag.Int("size", 256, "Output image size in pixels")
	supersample := flag.Int("supersample", 2, "Supersampling factor")
	output := flag.String("output", "", "Output .webp path (default: input name + .webp)")
	def := preview.DefaultView()
	yaw := flag.Float64("yaw", def.Yaw, "Camera yaw in degrees")
	pitch := flag.Float64("pitch", def.Pitch, "Camera pitch in degrees")
	roll := flag.Float64("roll", def.Roll, "Frame roll in degrees")

	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: preview [flags] <job.json>")
		os.Exit(1)
	}

	job, err := task.ReadJob(flag.Arg(0), 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := *output
	if out == "" {
		base := flag.Arg(0)
		out = strings.TrimSuffix(base, filepath.Ext(base)) + ".webp"
	}

	view := preview.View{Yaw: *yaw, Pitch: *pitch, Roll: *roll}
	img := preview.RenderWith(view, job.Positions, *size, *supersample)
	if err := preview.WriteWebP(out, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d triangles)\n", out, len(job.Positions)/9)
}
