package frames

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"quatview/internal/postprocess"
	"quatview/internal/raster"
	"quatview/internal/rotmath"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a sequence run.
type Config struct {
	OutputDir   string
	Mesh        raster.Mesh
	Texture     *image.NRGBA // nil renders the base color
	From, To    rotmath.Quat[float64]
	Frames      int
	RenderSize  int
	Supersample int
	Workers     int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// Run renders the spherical interpolation sequence from cfg.From to
// cfg.To using a worker pool, one WebP file per frame.
func Run(cfg Config) []Result {
	total := cfg.Frames
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
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool. At least one worker, or the send loop below would
	// block forever on a channel nobody drains.
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, idx int) Result {
	t := 0.0
	if cfg.Frames > 1 {
		t = float64(idx) / float64(cfg.Frames-1)
	}
	q := cfg.From.SphericalInterpolate(cfg.To, t)

	img := raster.RenderOrientation(q, cfg.Mesh, cfg.Texture, cfg.RenderSize, cfg.Supersample)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	outPath := filepath.Join(cfg.OutputDir, FrameName(idx))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Frame: idx, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: idx, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: idx, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: idx, Path: outPath, Success: true}
}

// FrameName returns the file name for frame idx.
func FrameName(idx int) string {
	return fmt.Sprintf("frame_%03d.webp", idx)
}
