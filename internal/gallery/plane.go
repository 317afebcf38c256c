// Package gallery implements the shatter-transition image gallery core:
// the per-face animation builder, slide entities, the transition state
// machine, and the pointer-drag scrub controller.
package gallery

import (
	m "github.com/Faultbox/shardgallery/pkg/math"
)

// Plane is a triangulated rectangle centered on the origin in the XY
// plane. It is a non-indexed triangle soup: three vertices per face so
// every face can carry its own animation attributes.
type Plane struct {
	Width     float32
	Height    float32
	Positions []m.Vec3     // absolute vertex positions, 3 per face
	UVs       [][2]float32 // texture coordinates, 3 per face
}

// FaceCount returns the number of triangular faces.
func (p *Plane) FaceCount() int {
	return len(p.Positions) / 3
}

// Triangulate subdivides a width x height rectangle into segX x segY
// cells of two triangles each.
func Triangulate(width, height float32, segX, segY int) *Plane {
	if segX < 1 {
		segX = 1
	}
	if segY < 1 {
		segY = 1
	}

	cellW := width / float32(segX)
	cellH := height / float32(segY)

	faces := segX * segY * 2
	p := &Plane{
		Width:     width,
		Height:    height,
		Positions: make([]m.Vec3, 0, faces*3),
		UVs:       make([][2]float32, 0, faces*3),
	}

	corner := func(ix, iy int) (m.Vec3, [2]float32) {
		x := -width/2 + float32(ix)*cellW
		y := -height/2 + float32(iy)*cellH
		u := float32(ix) / float32(segX)
		v := float32(iy) / float32(segY)
		return m.Vec3{X: x, Y: y}, [2]float32{u, v}
	}

	for iy := 0; iy < segY; iy++ {
		for ix := 0; ix < segX; ix++ {
			p00, t00 := corner(ix, iy)
			p10, t10 := corner(ix+1, iy)
			p01, t01 := corner(ix, iy+1)
			p11, t11 := corner(ix+1, iy+1)

			// Two counter-clockwise triangles per cell
			p.Positions = append(p.Positions, p00, p10, p11)
			p.UVs = append(p.UVs, t00, t10, t11)
			p.Positions = append(p.Positions, p00, p11, p01)
			p.UVs = append(p.UVs, t00, t11, t01)
		}
	}

	return p
}
