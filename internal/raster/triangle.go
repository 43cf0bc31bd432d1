package raster

import (
	"image"
	"math"

	"quatview/internal/rotmath"
)

// FillTriangle rasterizes one projected triangle with texture mapping,
// z-buffer, and flat per-face shading through the sRGB → linear → ACES
// pipeline. px/py/pz hold the projected vertex positions; vi indexes
// the vertices and their UVs. A nil texture falls back to the base color.
//
// Hot path: no allocations in the pixel loop.
func FillTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	uvs [][2]float64,
	vi [3]int,
	tex *image.NRGBA,
	baseR, baseG, baseB uint8,
	lc *LightConfig,
) {
	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	hasUV := tex != nil
	var u0, v0, u1, v1, u2, v2 float64
	if hasUV {
		u0, v0 = uvs[vi[0]][0], uvs[vi[0]][1]
		u1, v1 = uvs[vi[1]][0], uvs[vi[1]][1]
		u2, v2 = uvs[vi[2]][0], uvs[vi[2]][1]
	}

	// Face normal for flat shading.
	e1 := rotmath.Vec3[float64]{x1 - x0, y1 - y0, z1 - z0}
	e2 := rotmath.Vec3[float64]{x2 - x0, y2 - y0, z2 - z0}
	normal := e1.Cross(e2)
	if normal.Len() < 1e-8 {
		return // degenerate triangle
	}
	shade := lc.ComputeShade(normal.Normalize())

	// Clipped bounding box.
	size := fb.Width
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX >= size {
		maxX = size - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup.
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	exposure := lc.Exposure
	invGamma := lc.InvGamma

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * size
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb := baseR, baseG, baseB
			var ca uint8 = 255
			if hasUV {
				u := w0*u0 + w1*u1 + w2*u2
				v := w0*v0 + w1*v1 + w2*v2
				cr, cg, cb, ca = SampleTexture(tex, u, v)
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			// sRGB decode (LUT), shade, tone map, re-encode.
			fr := math.Pow(ACESTonemap(srgbToLinear[cr]*shade*exposure), invGamma)
			fg := math.Pow(ACESTonemap(srgbToLinear[cg]*shade*exposure), invGamma)
			fbl := math.Pow(ACESTonemap(srgbToLinear[cb]*shade*exposure), invGamma)

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(fr * 255)
			fb.Color[pxIdx+1] = clamp255(fg * 255)
			fb.Color[pxIdx+2] = clamp255(fbl * 255)
			fb.Color[pxIdx+3] = ca
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
