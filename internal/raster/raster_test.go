package raster

import (
	"testing"

	"quatview/internal/rotmath"
)

func TestCubeMesh(t *testing.T) {
	m := CubeMesh()
	if got := len(m.Verts); got != 24 {
		t.Fatalf("got %d verts, want 24", got)
	}
	if got := len(m.Tris); got != 12 {
		t.Fatalf("got %d tris, want 12", got)
	}
	if len(m.UVs) != len(m.Verts) {
		t.Fatalf("got %d UVs for %d verts", len(m.UVs), len(m.Verts))
	}

	// Every vertex sits on the unit cube surface.
	for i, v := range m.Verts {
		for axis := 0; axis < 3; axis++ {
			if v[axis] < -0.5-1e-12 || v[axis] > 0.5+1e-12 {
				t.Errorf("vert %d component %d = %v out of range", i, axis, v[axis])
			}
		}
		onFace := false
		for axis := 0; axis < 3; axis++ {
			if v[axis] == 0.5 || v[axis] == -0.5 {
				onFace = true
			}
		}
		if !onFace {
			t.Errorf("vert %d = %v not on a face", i, v)
		}
	}

	for ti, tri := range m.Tris {
		for _, vi := range tri {
			if vi < 0 || vi >= len(m.Verts) {
				t.Fatalf("tri %d references vert %d", ti, vi)
			}
		}
	}
}

func TestRenderOrientationCoversCenter(t *testing.T) {
	img := RenderOrientation(rotmath.Identity[float64](), CubeMesh(), nil, 64, 1)

	b := img.Bounds()
	if b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("got bounds %v, want 64x64", b)
	}

	// The cube faces the camera dead on; the center pixel must be opaque.
	i := img.PixOffset(32, 32)
	if img.Pix[i+3] != 255 {
		t.Errorf("center pixel alpha = %d, want 255", img.Pix[i+3])
	}

	// Corners stay outside the projected cube.
	for _, p := range [][2]int{{1, 1}, {62, 1}, {1, 62}, {62, 62}} {
		i := img.PixOffset(p[0], p[1])
		if img.Pix[i+3] != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, img.Pix[i+3])
		}
	}
}

func TestRenderOrientationSupersample(t *testing.T) {
	img := RenderOrientation(rotmath.Identity[float64](), CubeMesh(), nil, 32, 2)
	if got := img.Bounds().Dx(); got != 64 {
		t.Fatalf("supersampled width = %d, want 64", got)
	}
}

func TestRenderOrientationRotates(t *testing.T) {
	// A cube rotated 45° about Y projects wider than the face-on cube:
	// the corner column of the face-on render is empty, the rotated one
	// reaches further out horizontally at the midline.
	q := rotmath.FromEuler(rotmath.Vec3[float64]{0, 0.7853981633974483, 0}, rotmath.OrderXYZ)
	flat := RenderOrientation(rotmath.Identity[float64](), CubeMesh(), nil, 64, 1)
	spun := RenderOrientation(q, CubeMesh(), nil, 64, 1)

	width := func(img []uint8, y int) int {
		n := 0
		for x := 0; x < 64; x++ {
			if img[(y*64+x)*4+3] != 0 {
				n++
			}
		}
		return n
	}
	if wf, ws := width(flat.Pix, 32), width(spun.Pix, 32); ws <= wf {
		t.Errorf("rotated midline width %d should exceed face-on width %d", ws, wf)
	}
}

func TestRenderOrientationEmptyMesh(t *testing.T) {
	img := RenderOrientation(rotmath.Identity[float64](), Mesh{}, nil, 16, 2)
	if got := img.Bounds().Dx(); got != 32 {
		t.Fatalf("empty mesh image width = %d, want 32", got)
	}
	for _, p := range img.Pix {
		if p != 0 {
			t.Fatal("empty mesh should render fully transparent")
		}
	}
}
