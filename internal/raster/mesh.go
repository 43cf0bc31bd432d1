package raster

import "quatview/internal/rotmath"

// Mesh is a triangle mesh with one UV per vertex, ready for rasterization.
type Mesh struct {
	Verts []rotmath.Vec3[float64]
	UVs   [][2]float64
	Tris  [][3]int
}

// CubeMesh returns a unit cube centered on the origin: four vertices and
// two triangles per face, each face mapped to the full texture. Faces do
// not share vertices so every face carries its own UVs.
func CubeMesh() Mesh {
	normals := []rotmath.Vec3[float64]{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}

	var m Mesh
	for _, n := range normals {
		// For an axis-aligned normal this cyclic shuffle is perpendicular.
		u := rotmath.Vec3[float64]{n[1], n[2], n[0]}
		v := n.Cross(u)
		c := n.Scale(0.5)

		base := len(m.Verts)
		m.Verts = append(m.Verts,
			c.Sub(u.Scale(0.5)).Sub(v.Scale(0.5)),
			c.Add(u.Scale(0.5)).Sub(v.Scale(0.5)),
			c.Add(u.Scale(0.5)).Add(v.Scale(0.5)),
			c.Sub(u.Scale(0.5)).Add(v.Scale(0.5)),
		)
		m.UVs = append(m.UVs,
			[2]float64{0, 0}, [2]float64{1, 0},
			[2]float64{1, 1}, [2]float64{0, 1},
		)
		m.Tris = append(m.Tris,
			[3]int{base, base + 1, base + 2},
			[3]int{base, base + 2, base + 3},
		)
	}
	return m
}
