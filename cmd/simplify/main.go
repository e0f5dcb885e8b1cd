package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mesh-simplifier/internal/config"
	"mesh-simplifier/internal/preview"
	"mesh-simplifier/internal/task"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	input := flag.String("input", "", "Job JSON file or directory of job files")
	outputDir := flag.String("output", "", "Output directory (default: simplified)")
	reduction := flag.Float64("reduction", 0, "Default target reduction 0-1 (default: 0.5)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	doPreview := flag.Bool("preview", false, "Write before/after WebP previews")
	verbose := flag.Bool("v", false, "Print per-job progress messages")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:        *input,
		OutputDir:       *outputDir,
		TargetReduction: *reduction,
		Workers:         *workers,
		Preview:         *doPreview,
	})

	if cfg.InputDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no input. Use -input flag or config.json.")
		os.Exit(1)
	}

	// Load jobs
	jobs, err := loadJobs(cfg.InputDir, cfg.TargetReduction)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading jobs: %v\n", err)
		os.Exit(1)
	}
	if len(jobs) == 0 {
		fmt.Println("No jobs to run.")
		os.Exit(0)
	}

	fmt.Printf("Mesh Simplifier (quadric edge collapse)\n")
	fmt.Printf("Jobs: %d, Workers: %d, Reduction: %.2f\n", len(jobs), cfg.Workers, cfg.TargetReduction)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	taskCfg := task.Config{
		Workers: cfg.Workers,
		Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		Retries: cfg.Retries,
	}
	if *verbose {
		taskCfg.OnProgress = func(p task.Progress) {
			line := fmt.Sprintf("  %s: %3.0f%% %s", p.JobID, p.Progress*100, p.Message)
			if p.Log != "" {
				line += " (" + p.Log + ")"
			}
			fmt.Println(line)
		}
	}

	results := task.Run(taskCfg, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Write outputs + manifest
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	success, failed := 0, 0
	var failures []task.Result
	manifest := make([]task.ManifestEntry, 0, len(results))

	for i, r := range results {
		entry := task.ManifestEntry{
			ID:                  r.ID,
			Input:               jobs[i].ID + ".json",
			OriginalFaceCount:   r.OriginalFaceCount,
			SimplifiedFaceCount: r.SimplifiedFaceCount,
			Success:             r.Success,
			Error:               r.Error,
		}

		if !r.Success {
			failed++
			failures = append(failures, r)
			manifest = append(manifest, entry)
			continue
		}
		success++

		outPath := filepath.Join(cfg.OutputDir, r.ID+".json")
		if err := task.WriteResult(outPath, r); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: write %s: %v\n", outPath, err)
		}
		entry.Output = r.ID + ".json"

		if cfg.Preview {
			beforePath := filepath.Join(cfg.OutputDir, r.ID+".before.webp")
			afterPath := filepath.Join(cfg.OutputDir, r.ID+".after.webp")
			before := preview.Render(jobs[i].Positions, cfg.RenderSize, cfg.Supersample)
			after := preview.Render(r.Positions, cfg.RenderSize, cfg.Supersample)
			if err := preview.WriteWebP(beforePath, before); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
			if err := preview.WriteWebP(afterPath, after); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			} else {
				entry.Preview = r.ID + ".after.webp"
			}
		}

		manifest = append(manifest, entry)
	}

	fmt.Printf("Simplified: %d/%d\n", success, len(jobs))

	if len(failures) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(failures) < limit {
			limit = len(failures)
		}
		for _, r := range failures[:limit] {
			fmt.Printf("  %s: %s\n", r.ID, r.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := task.WriteManifest(manifestPath, manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// loadJobs accepts either a single job file or a directory of them.
func loadJobs(input string, defaultReduction float64) ([]task.Job, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return task.ReadJobDir(input, defaultReduction)
	}
	if !strings.HasSuffix(input, ".json") {
		return nil, fmt.Errorf("input %s is not a .json job file", input)
	}
	job, err := task.ReadJob(input, defaultReduction)
	if err != nil {
		return nil, err
	}
	return []task.Job{job}, nil
}
