package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// jobFile is the on-disk request format: the engine's input contract
// serialized as JSON.
type jobFile struct {
	Positions       []float64 `json:"positions"`
	TargetReduction *float64  `json:"targetReduction,omitempty"`
	Priority        int       `json:"priority,omitempty"`
}

// resultFile mirrors the success output contract.
type resultFile struct {
	Positions           []float64 `json:"positions"`
	OriginalFaceCount   int       `json:"originalFaceCount"`
	SimplifiedFaceCount int       `json:"simplifiedFaceCount"`
}

// ReadJob parses one job JSON file. The job ID is the file name without
// extension. defaultReduction applies when the file does not set one.
func ReadJob(path string, defaultReduction float64) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("task: read %s: %w", path, err)
	}

	var jf jobFile
	if err := json.Unmarshal(data, &jf); err != nil {
		return Job{}, fmt.Errorf("task: parse %s: %w", path, err)
	}

	reduction := defaultReduction
	if jf.TargetReduction != nil {
		reduction = *jf.TargetReduction
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	return Job{
		ID:              id,
		Positions:       jf.Positions,
		TargetReduction: reduction,
		Priority:        jf.Priority,
	}, nil
}

// ReadJobDir loads every .json job file in a directory, sorted by name for
// a stable order.
func ReadJobDir(dir string, defaultReduction float64) ([]Job, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("task: read dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	jobs := make([]Job, 0, len(names))
	for _, name := range names {
		job, err := ReadJob(filepath.Join(dir, name), defaultReduction)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// WriteResult writes a successful result as JSON, creating parent
// directories as needed.
func WriteResult(path string, res Result) error {
	rf := resultFile{
		Positions:           res.Positions,
		OriginalFaceCount:   res.OriginalFaceCount,
		SimplifiedFaceCount: res.SimplifiedFaceCount,
	}
	data, err := json.Marshal(rf)
	if err != nil {
		return fmt.Errorf("task: marshal result %s: %w", res.ID, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("task: mkdir %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, data, 0644)
}
