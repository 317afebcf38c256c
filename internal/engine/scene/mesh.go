package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shardgallery/internal/engine/texture"
	"github.com/Faultbox/shardgallery/internal/gallery"
)

// floatsPerVertex is the interleaved layout: position(3) + uv(2) +
// centroid(3) + control0(3) + control1(3) + timing(2).
const floatsPerVertex = 16

// ShatterMesh is the GL-side mesh of one slide: one interleaved VBO of
// per-vertex animation attributes plus the slide texture. It implements
// gallery.Mesh.
type ShatterMesh struct {
	scene       *Scene
	vao         uint32
	vbo         uint32
	vertexCount int32

	tex      *texture.Texture
	pending  *texture.Image // decoded image awaiting GPU upload
	time     float32
	phase    gallery.Phase
	released bool
}

func newShatterMesh(s *Scene) *ShatterMesh {
	m := &ShatterMesh{scene: s}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	return m
}

// Upload (re)uploads the face set's per-vertex animation attributes.
func (m *ShatterMesh) Upload(set *gallery.FaceSet) {
	verts := make([]float32, 0, len(set.Positions)*floatsPerVertex)
	for f := range set.Faces {
		a := &set.Faces[f]
		for corner := 0; corner < 3; corner++ {
			i := f*3 + corner
			p := set.Positions[i]
			uv := set.UVs[i]
			verts = append(verts,
				p.X, p.Y, p.Z,
				uv[0], uv[1],
				a.Centroid.X, a.Centroid.Y, a.Centroid.Z,
				a.Control0.X, a.Control0.Y, a.Control0.Z,
				a.Control1.X, a.Control1.Y, a.Control1.Z,
				a.Delay, a.Duration,
			)
		}
	}
	m.vertexCount = int32(len(verts) / floatsPerVertex)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	offsets := []struct {
		size   int32
		offset uintptr
	}{
		{3, 0},      // aPosition
		{2, 3 * 4},  // aUV
		{3, 5 * 4},  // aCentroid
		{3, 8 * 4},  // aControl0
		{3, 11 * 4}, // aControl1
		{2, 14 * 4}, // aTiming
	}
	for loc, attr := range offsets {
		gl.VertexAttribPointerWithOffset(uint32(loc), attr.size, gl.FLOAT, false, stride, attr.offset)
		gl.EnableVertexAttribArray(uint32(loc))
	}
	gl.BindVertexArray(0)
}

// SetTexture stores the decoded image; the GPU upload happens on the
// next draw so callers never need a current GL context.
func (m *ShatterMesh) SetTexture(img *texture.Image) {
	m.pending = img
}

// SetState pushes the per-frame uniforms.
func (m *ShatterMesh) SetState(time float32, phase gallery.Phase) {
	m.time = time
	m.phase = phase
}

func (m *ShatterMesh) draw(locTime, locPhase, locTexture int32) {
	if m.vertexCount == 0 {
		return
	}

	if m.pending != nil {
		if m.tex != nil {
			m.tex.Destroy()
		}
		m.tex = texture.Upload(m.pending)
		m.pending = nil
	}
	if m.tex == nil {
		return
	}

	gl.Uniform1f(locTime, m.time)
	phase := float32(0)
	if m.phase == gallery.PhaseOut {
		phase = 1
	}
	gl.Uniform1f(locPhase, phase)

	m.tex.Bind(0)
	gl.Uniform1i(locTexture, 0)

	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	gl.BindVertexArray(0)
}

// Release frees GPU resources and removes the mesh from its scene.
func (m *ShatterMesh) Release() {
	if m.released {
		return
	}
	m.released = true

	m.scene.remove(m)
	if m.tex != nil {
		m.tex.Destroy()
		m.tex = nil
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}
