package task

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestReadJob(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chair.json")
	writeFile(t, path, `{"positions":[0,0,0,1,0,0,0,1,0],"targetReduction":0.75,"priority":3}`)

	job, err := ReadJob(path, 0.5)
	if err != nil {
		t.Fatalf("ReadJob: %v", err)
	}
	if job.ID != "chair" {
		t.Errorf("ID = %q, want %q", job.ID, "chair")
	}
	if len(job.Positions) != 9 {
		t.Errorf("Positions = %d floats, want 9", len(job.Positions))
	}
	if job.TargetReduction != 0.75 {
		t.Errorf("TargetReduction = %v, want 0.75", job.TargetReduction)
	}
	if job.Priority != 3 {
		t.Errorf("Priority = %d, want 3", job.Priority)
	}
}

func TestReadJobDefaultReduction(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.json")
	writeFile(t, path, `{"positions":[0,0,0,1,0,0,0,1,0]}`)

	job, err := ReadJob(path, 0.4)
	if err != nil {
		t.Fatalf("ReadJob: %v", err)
	}
	if job.TargetReduction != 0.4 {
		t.Errorf("TargetReduction = %v, want the 0.4 default", job.TargetReduction)
	}
}

func TestReadJobErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadJob(filepath.Join(dir, "missing.json"), 0.5); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	writeFile(t, bad, `{"positions": not json`)
	if _, err := ReadJob(bad, 0.5); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestReadJobDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.json"), `{"positions":[]}`)
	writeFile(t, filepath.Join(dir, "a.json"), `{"positions":[]}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignore me")

	jobs, err := ReadJobDir(dir, 0.5)
	if err != nil {
		t.Fatalf("ReadJobDir: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("jobs = %d, want 2", len(jobs))
	}
	if jobs[0].ID != "a" || jobs[1].ID != "b" {
		t.Errorf("order = [%q, %q], want name-sorted [a, b]", jobs[0].ID, jobs[1].ID)
	}
}

func TestWriteResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "nested", "chair.json")

	err := WriteResult(path, Result{
		ID:                  "chair",
		Positions:           []float64{0, 0, 0, 1, 0, 0, 0, 1, 0},
		OriginalFaceCount:   12,
		SimplifiedFaceCount: 1,
		Success:             true,
	})
	if err != nil {
		t.Fatalf("WriteResult: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var rf struct {
		Positions           []float64 `json:"positions"`
		OriginalFaceCount   int       `json:"originalFaceCount"`
		SimplifiedFaceCount int       `json:"simplifiedFaceCount"`
	}
	if err := json.Unmarshal(data, &rf); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rf.Positions) != 9 || rf.OriginalFaceCount != 12 || rf.SimplifiedFaceCount != 1 {
		t.Errorf("round trip mismatch: %+v", rf)
	}
}
