// Package scene renders shatter meshes with a fixed orthographic camera.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shardgallery/internal/engine/scene/shaders"
	"github.com/Faultbox/shardgallery/internal/engine/shader"
	"github.com/Faultbox/shardgallery/internal/gallery"
	m "github.com/Faultbox/shardgallery/pkg/math"
)

// viewHalfHeight is half the vertical extent of the world visible on
// screen. Plane sizes from the gallery config are expressed in the
// same units, so a 60-unit-tall slide fills three quarters of the view.
const viewHalfHeight = 40.0

// Scene owns the shatter shader program and the set of live meshes.
// All methods must run on the thread holding the GL context.
type Scene struct {
	program     uint32
	locViewProj int32
	locTime     int32
	locPhase    int32
	locTexture  int32

	viewProj m.Mat4
	meshes   []*ShatterMesh
}

// New compiles the shatter program. The GL context must be current.
func New(width, height int) (*Scene, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("OpenGL init failed: %w", err)
	}

	program, err := shader.CompileProgram(shaders.ShatterVertexShader, shaders.ShatterFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("shatter shader: %w", err)
	}

	// Every uniform is required by the shatter pass; a missing one means
	// the embedded sources and this file drifted apart.
	s := &Scene{
		program:     program,
		locViewProj: shader.MustGetUniform(program, "uViewProj"),
		locTime:     shader.MustGetUniform(program, "uTime"),
		locPhase:    shader.MustGetUniform(program, "uPhase"),
		locTexture:  shader.MustGetUniform(program, "uTexture"),
	}
	s.Resize(width, height)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0.05, 0.05, 0.07, 1.0)

	return s, nil
}

// NewMesh creates a mesh registered with the scene's draw list. It
// satisfies gallery.MeshFactory.
func (s *Scene) NewMesh() (gallery.Mesh, error) {
	mesh := newShatterMesh(s)
	s.meshes = append(s.meshes, mesh)
	return mesh, nil
}

// Resize updates the viewport and the orthographic projection,
// keeping the world height constant and widening with aspect ratio.
func (s *Scene) Resize(width, height int) {
	if height <= 0 {
		height = 1
	}
	gl.Viewport(0, 0, int32(width), int32(height))

	aspect := float32(width) / float32(height)
	halfW := float32(viewHalfHeight) * aspect
	s.viewProj = m.Ortho(-halfW, halfW, -viewHalfHeight, viewHalfHeight, -200, 200)
}

// Render clears the frame and draws every live mesh, outgoing before
// incoming so the assembling slide composites on top.
func (s *Scene) Render() {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.locViewProj, 1, false, s.viewProj.Ptr())

	for _, mesh := range s.meshes {
		mesh.draw(s.locTime, s.locPhase, s.locTexture)
	}
}

func (s *Scene) remove(mesh *ShatterMesh) {
	for i, mm := range s.meshes {
		if mm == mesh {
			s.meshes = append(s.meshes[:i], s.meshes[i+1:]...)
			return
		}
	}
}

// Destroy releases all meshes and the shader program.
func (s *Scene) Destroy() {
	for len(s.meshes) > 0 {
		s.meshes[0].Release()
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}
