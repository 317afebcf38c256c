package gallery

import (
	"math/rand"

	"github.com/Faultbox/shardgallery/internal/engine/texture"
	"github.com/Faultbox/shardgallery/internal/engine/timeline"
)

// Mesh is the render collaborator a slide drives. The GL implementation
// lives in internal/engine/scene; tests use fakes.
type Mesh interface {
	// Upload (re)uploads the per-vertex animation attributes.
	Upload(set *FaceSet)
	// SetTexture binds decoded image data for sampling.
	SetTexture(img *texture.Image)
	// SetState pushes the per-frame uniforms (time scalar, phase).
	SetState(time float32, phase Phase)
	// Release frees GPU resources.
	Release()
}

// MeshFactory creates a mesh registered with the render stage.
type MeshFactory func() (Mesh, error)

// Slide owns one animated image plane: an immutable face set, a mutable
// time scalar in [0, TotalDuration] and a phase.
type Slide struct {
	plane    *Plane
	faces    *FaceSet
	mesh     Mesh
	rng      *rand.Rand
	time     float32
	phase    Phase
	released bool
}

// NewSlide builds a slide's geometry and animation attributes for the
// given plane dimensions and phase, and uploads them to a new mesh.
func NewSlide(width, height float32, segX, segY int, phase Phase, newMesh MeshFactory, rng *rand.Rand) (*Slide, error) {
	mesh, err := newMesh()
	if err != nil {
		return nil, err
	}

	plane := Triangulate(width, height, segX, segY)
	s := &Slide{
		plane: plane,
		faces: BuildFaceSet(plane, phase, rng),
		mesh:  mesh,
		rng:   rng,
		phase: phase,
	}
	mesh.Upload(s.faces)
	mesh.SetState(s.time, s.phase)
	return s, nil
}

// Faces returns the slide's animation attributes.
func (s *Slide) Faces() *FaceSet {
	return s.faces
}

// TotalDuration returns the animation-time length of the slide.
func (s *Slide) TotalDuration() float32 {
	return TotalDuration()
}

// SetTexture binds a decoded image for sampling.
func (s *Slide) SetTexture(img *texture.Image) {
	s.mesh.SetTexture(img)
}

// Time returns the animation time scalar.
func (s *Slide) Time() float32 {
	return s.time
}

// SetTime drives the animation. This is the only per-frame mutation.
func (s *Slide) SetTime(t float32) {
	s.time = t
	s.mesh.SetState(s.time, s.phase)
}

// Phase returns the slide's current phase.
func (s *Slide) Phase() Phase {
	return s.phase
}

// SetPhase flips the slide between in and out, rebuilding the face
// attributes for the new phase (delay layout and control directions
// differ between phases). The caller resets time separately.
func (s *Slide) SetPhase(p Phase) {
	if p == s.phase {
		return
	}
	s.phase = p
	s.faces = BuildFaceSet(s.plane, p, s.rng)
	s.mesh.Upload(s.faces)
	s.mesh.SetState(s.time, s.phase)
}

// Transition returns a tween animating time linearly from 0 to
// TotalDuration over the given wall-clock duration in seconds.
func (s *Slide) Transition(duration float32) *timeline.Tween {
	return timeline.NewTween(s.SetTime, 0, s.TotalDuration(), duration, timeline.EaseLinear)
}

// Release frees the slide's GPU resources. Safe to call once; repeated
// calls are no-ops.
func (s *Slide) Release() {
	if s.released {
		return
	}
	s.released = true
	s.mesh.Release()
}
