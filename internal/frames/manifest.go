package frames

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame int     `json:"frame"`
	T     float64 `json:"t"`
	Image string  `json:"image"`
}

// Manifest describes a rendered sequence.
type Manifest struct {
	Frames int             `json:"frames"`
	Size   int             `json:"size"`
	Images []ManifestEntry `json:"images"`
}

// WriteManifest writes manifest.json for a completed sequence.
func WriteManifest(path string, cfg Config, results []Result) error {
	m := Manifest{
		Frames: cfg.Frames,
		Size:   cfg.RenderSize,
	}
	for _, r := range results {
		if !r.Success {
			continue
		}
		t := 0.0
		if cfg.Frames > 1 {
			t = float64(r.Frame) / float64(cfg.Frames-1)
		}
		m.Images = append(m.Images, ManifestEntry{
			Frame: r.Frame,
			T:     t,
			Image: FrameName(r.Frame),
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
