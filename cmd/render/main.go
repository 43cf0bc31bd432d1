package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"quatview/internal/config"
	"quatview/internal/frames"
	"quatview/internal/raster"
	"quatview/internal/rotmath"
	"quatview/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	fromStr := flag.String("from", "0,0,0", "Start Euler angles in degrees, comma separated")
	toStr := flag.String("to", "0,120,45", "End Euler angles in degrees, comma separated")
	order := flag.String("order", "", "Rotation order: XYZ, XZY, YXZ, YZX, ZXY or ZYX")
	frameCount := flag.Int("frames", 0, "Number of frames to render (default: 16)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	texPath := flag.String("texture", "", "Optional TGA/JPEG/PNG texture for the cube")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Texture:   *texPath,
		Order:     *order,
		Size:      *size,
		Frames:    *frameCount,
		Workers:   *workers,
	})

	rotOrder, err := rotmath.ParseOrder(cfg.Order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fromEuler, err := parseEuler(*fromStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
		os.Exit(1)
	}
	toEuler, err := parseEuler(*toStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
		os.Exit(1)
	}

	var tex *image.NRGBA
	if cfg.TexturePath != "" {
		tex, err = texture.Load(cfg.TexturePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Orientation sequence → WebP\n")
	fmt.Printf("Order: %s, From: %s°, To: %s°\n", rotOrder, *fromStr, *toStr)
	fmt.Printf("Frames: %d, Size: %d, Workers: %d\n", cfg.Frames, cfg.RenderSize, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	seqCfg := frames.Config{
		OutputDir:   cfg.OutputDir,
		Mesh:        raster.CubeMesh(),
		Texture:     tex,
		From:        rotmath.FromEuler(fromEuler, rotOrder),
		To:          rotmath.FromEuler(toEuler, rotOrder),
		Frames:      cfg.Frames,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}

	results := frames.Run(seqCfg)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			fmt.Printf("  frame %d: %s\n", r.Frame, r.Error)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := frames.WriteManifest(manifestPath, seqCfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// parseEuler parses "x,y,z" in degrees into a radian vector.
func parseEuler(s string) (rotmath.Vec3[float64], error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return rotmath.Vec3[float64]{}, fmt.Errorf("want 3 comma-separated angles, got %q", s)
	}
	var e rotmath.Vec3[float64]
	for i, p := range parts {
		deg, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return rotmath.Vec3[float64]{}, fmt.Errorf("angle %d: %w", i, err)
		}
		e[i] = rotmath.Deg2Rad(deg)
	}
	return e, nil
}
