package raster

import (
	"image"

	"quatview/internal/rotmath"
)

// Base color used for untextured meshes.
const (
	baseR uint8 = 160
	baseG uint8 = 160
	baseB uint8 = 170
)

// RenderOrientation renders mesh rotated by q into a square NRGBA image
// of size·supersample pixels on a side, orthographically projected.
//
// The projection scale is fixed from the mesh's circumradius rather than
// the rotated bounding box, so consecutive frames of an interpolation
// sequence share one scale and the mesh does not appear to breathe.
func RenderOrientation(
	q rotmath.Quat[float64],
	mesh Mesh,
	tex *image.NRGBA,
	size int,
	supersample int,
) *image.NRGBA {
	renderSize := size * supersample
	if len(mesh.Verts) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	}

	rot := q.Normal().ToMat3()

	radius := 0.0
	for _, v := range mesh.Verts {
		if l := v.Len(); l > radius {
			radius = l
		}
	}
	if radius < 0.001 {
		radius = 0.001
	}

	margin := 16 * supersample
	scale := float64(renderSize-2*margin) / (2 * radius)
	half := float64(renderSize) / 2

	px := make([]float64, len(mesh.Verts))
	py := make([]float64, len(mesh.Verts))
	pz := make([]float64, len(mesh.Verts))
	for i, v := range mesh.Verts {
		tv := rot.MulVec3(v)
		px[i] = half + tv[0]*scale
		py[i] = half - tv[1]*scale // screen Y grows downward
		pz[i] = tv[2] * scale
	}

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	for _, tri := range mesh.Tris {
		FillTriangle(fb, px, py, pz, mesh.UVs, tri, tex, baseR, baseG, baseB, &lc)
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)
	return img
}
