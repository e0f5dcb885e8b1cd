package task

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one job in the output manifest.
type ManifestEntry struct {
	ID                  string `json:"id"`
	Input               string `json:"input"`
	Output              string `json:"output"`
	Preview             string `json:"preview,omitempty"`
	OriginalFaceCount   int    `json:"original_face_count"`
	SimplifiedFaceCount int    `json:"simplified_face_count"`
	Success             bool   `json:"success"`
	Error               string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json to the output directory.
func WriteManifest(path string, entries []ManifestEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("task: marshal manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
