package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered scene in the output manifest.
type ManifestEntry struct {
	Scene     string `json:"scene"`
	Image     string `json:"image"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Workers   int    `json:"workers"`
	Samples   int    `json:"samples_per_pixel"`
	Rays      int64  `json:"rays"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

// WriteManifest writes successful results to path. Image paths are stored
// relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Scene:     r.Scene,
			Image:     relTo(dir, r.Path),
			Thumbnail: relTo(dir, r.Thumbnail),
			Workers:   r.Stats.Workers,
			Samples:   r.Stats.Samples,
			Rays:      r.Stats.Rays(),
			ElapsedMS: r.Stats.Elapsed.Milliseconds(),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func relTo(dir, path string) string {
	if path == "" {
		return ""
	}
	if rel, err := filepath.Rel(dir, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}
