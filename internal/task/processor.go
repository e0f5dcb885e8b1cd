// Package task is the host-side manager that runs simplification jobs on a
// worker pool. It owns everything the engine deliberately does not: request
// validation, per-job timeout, retries and priority scheduling. Progress
// messages are forwarded through a caller-supplied callback, so the package
// assumes no particular transport.
package task

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"mesh-simplifier/internal/simplify"
)

// DefaultTimeout bounds one simplification attempt. 120s comfortably covers
// the intended workload sizes.
const DefaultTimeout = 120 * time.Second

// DefaultRetries is the number of extra attempts after a failed one.
const DefaultRetries = 2

// Config holds shared settings for a batch run.
type Config struct {
	Workers    int
	Timeout    time.Duration
	Retries    int            // extra attempts after a failure; 0 means DefaultRetries, negative disables retries
	OnProgress func(Progress) // optional, called from worker goroutines
	Quiet      bool           // suppress the periodic rate printout
}

// Job is one simplification request.
type Job struct {
	ID              string
	Positions       []float64 // flat stride-9 triangle soup
	TargetReduction float64   // fraction of faces to remove, in [0,1]
	Priority        int       // higher runs earlier
}

// Progress is a forwarded engine report tagged with its job.
type Progress struct {
	JobID    string
	Progress float64
	Message  string
	Log      string
}

// Result holds the outcome of one job: either the simplified geometry or a
// single terminal error string. No partial results are delivered on failure.
type Result struct {
	ID                  string
	Positions           []float64
	OriginalFaceCount   int
	SimplifiedFaceCount int
	DroppedInputFaces   int
	Success             bool
	Error               string
	Attempts            int
	Elapsed             time.Duration
}

// Run processes all jobs using a worker pool, dispatching higher-priority
// jobs first (stable within equal priority). Results are returned in the
// order of the jobs slice.
func Run(cfg Config, jobs []Job) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries == 0 {
		cfg.Retries = DefaultRetries
	} else if cfg.Retries < 0 {
		cfg.Retries = 0
	}

	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 && !cfg.Quiet {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f jobs/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Priority order: higher first, stable for equal priorities.
	order := make([]int, total)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return jobs[order[a]].Priority > jobs[order[b]].Priority
	})

	jobChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for _, idx := range order {
		jobChan <- idx
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, job Job) Result {
	res := Result{ID: job.ID}

	if len(job.Positions)%9 != 0 {
		res.Error = fmt.Sprintf("input length %d is not a whole number of stride-9 triangles", len(job.Positions))
		return res
	}
	if job.TargetReduction < 0 || job.TargetReduction > 1 {
		res.Error = fmt.Sprintf("targetReduction %.4f outside [0,1]", job.TargetReduction)
		return res
	}

	start := time.Now()
	for attempt := 0; attempt <= cfg.Retries; attempt++ {
		res = runOnce(cfg, job)
		res.Attempts = attempt + 1
		if res.Success {
			break
		}
	}
	res.Elapsed = time.Since(start)
	return res
}

// runOnce executes a single attempt under the configured timeout. The engine
// has no mid-loop cancellation, so a timed-out attempt is abandoned: its
// goroutine runs to completion in the background and the result is dropped.
func runOnce(cfg Config, job Job) Result {
	type outcome struct {
		r   *simplify.Result
		err error
	}
	ch := make(chan outcome, 1)

	go func() {
		r, err := simplify.Run(job.Positions, simplify.Options{
			TargetReduction: job.TargetReduction,
			Progress: func(rep simplify.Report) {
				if cfg.OnProgress != nil {
					cfg.OnProgress(Progress{
						JobID:    job.ID,
						Progress: rep.Progress,
						Message:  rep.Message,
						Log:      rep.Log,
					})
				}
			},
		})
		ch <- outcome{r: r, err: err}
	}()

	timer := time.NewTimer(cfg.Timeout)
	defer timer.Stop()

	select {
	case o := <-ch:
		if o.err != nil {
			return Result{ID: job.ID, Error: o.err.Error()}
		}
		return Result{
			ID:                  job.ID,
			Positions:           o.r.Positions,
			OriginalFaceCount:   o.r.OriginalFaceCount,
			SimplifiedFaceCount: o.r.SimplifiedFaceCount,
			DroppedInputFaces:   o.r.DroppedInputFaces,
			Success:             true,
		}
	case <-timer.C:
		return Result{ID: job.ID, Error: fmt.Sprintf("timed out after %s", cfg.Timeout)}
	}
}
