package gallery

import (
	gomath "math"
	"math/rand"

	"github.com/Faultbox/shardgallery/internal/engine/timeline"
	m "github.com/Faultbox/shardgallery/pkg/math"
)

// Phase is the direction a slide animates: into view or out of view.
type Phase int

const (
	PhaseIn Phase = iota
	PhaseOut
)

func (p Phase) String() string {
	if p == PhaseOut {
		return "out"
	}
	return "in"
}

// Animation timing constants. Every face must satisfy
// delay + duration <= TotalDuration(), which holds because the per-face
// jitter is bounded by stretch.
const (
	minDuration = 0.8
	maxDuration = 1.2
	maxDelayX   = 0.9
	maxDelayY   = 0.125
	stretch     = 0.11
)

// TotalDuration returns the animation-time length every face fits inside.
// It depends only on the timing constants, never on per-face randomness.
func TotalDuration() float32 {
	return maxDuration + maxDelayX + maxDelayY + stretch
}

// FaceAttrib holds the animation parameters of one face, shared by its
// three vertices. The flight curve is a closed loop: StartPoint and
// EndPoint both equal Centroid, with the two control points pulling the
// face away from its rest position mid-flight.
type FaceAttrib struct {
	Delay      float32
	Duration   float32
	StartPoint m.Vec3
	Control0   m.Vec3
	Control1   m.Vec3
	EndPoint   m.Vec3
	Centroid   m.Vec3
}

// Progress evaluates the eased animation progress of this face at the
// given global time: 0 before the face starts, 1 once it has finished,
// monotonic non-decreasing in between.
func (a *FaceAttrib) Progress(time float32) float32 {
	local := m.Clamp(time-a.Delay, 0, a.Duration)
	return timeline.EaseInOutCubic(local / a.Duration)
}

// FaceSet is the output of the animation builder: per-face attributes
// plus vertex positions rewritten relative to each face's centroid.
type FaceSet struct {
	Width     float32
	Height    float32
	Phase     Phase
	Faces     []FaceAttrib
	Positions []m.Vec3     // centroid-relative, 3 per face
	UVs       [][2]float32 // 3 per face
}

// BuildFaceSet converts a triangulated plane into a field of
// independently timed, independently curved faces for the given phase.
// The rng is injected so generation is reproducible.
func BuildFaceSet(p *Plane, phase Phase, rng *rand.Rand) *FaceSet {
	set := &FaceSet{
		Width:     p.Width,
		Height:    p.Height,
		Phase:     phase,
		Faces:     make([]FaceAttrib, p.FaceCount()),
		Positions: make([]m.Vec3, len(p.Positions)),
		UVs:       p.UVs,
	}

	for f := range set.Faces {
		i := f * 3
		v0, v1, v2 := p.Positions[i], p.Positions[i+1], p.Positions[i+2]
		centroid := v0.Add(v1).Add(v2).Scale(1.0 / 3.0)

		duration := randRange(rng, minDuration, maxDuration)

		delayX := mapLinear(centroid.X, -p.Width/2, p.Width/2, 0, maxDelayX)

		absY := float32(gomath.Abs(float64(centroid.Y)))
		var delayY float32
		if phase == PhaseIn {
			// Faces near the vertical center delay least on entry
			delayY = mapLinear(absY, 0, p.Height/2, 0, maxDelayY)
		} else {
			// and most on exit. The reversed range drives the shape
			// of the effect.
			delayY = mapLinear(absY, 0, p.Height/2, maxDelayY, 0)
		}

		delay := delayX + delayY + rng.Float32()*stretch

		sign := float32(1)
		if centroid.Y < 0 {
			sign = -1
		}

		c0 := m.Vec3{
			X: randRange(rng, 0.1, 0.3) * 50,
			Y: sign * randRange(rng, 0.1, 0.3) * 70,
			Z: spread(rng, 20),
		}
		c1 := m.Vec3{
			X: randRange(rng, 0.3, 0.6) * 50,
			Y: -sign * randRange(rng, 0.3, 0.6) * 70,
			Z: spread(rng, 20),
		}

		var control0, control1 m.Vec3
		if phase == PhaseIn {
			control0 = centroid.Sub(c0)
			control1 = centroid.Sub(c1)
		} else {
			control0 = centroid.Add(c0)
			control1 = centroid.Add(c1)
		}

		set.Faces[f] = FaceAttrib{
			Delay:      delay,
			Duration:   duration,
			StartPoint: centroid,
			Control0:   control0,
			Control1:   control1,
			EndPoint:   centroid,
			Centroid:   centroid,
		}

		// Local geometry is centroid-pivoted
		set.Positions[i] = v0.Sub(centroid)
		set.Positions[i+1] = v1.Sub(centroid)
		set.Positions[i+2] = v2.Sub(centroid)
	}

	return set
}

// VertexPosition evaluates the world position of a face corner at the
// given global time. This mirrors the GLSL vertex shader and defines the
// numeric contract the render stage must preserve.
func (s *FaceSet) VertexPosition(face, corner int, time float32) m.Vec3 {
	a := &s.Faces[face]
	progress := a.Progress(time)

	scale := progress
	if s.Phase == PhaseOut {
		scale = 1 - progress
	}

	flight := m.CubicBezier(a.StartPoint, a.Control0, a.Control1, a.EndPoint, progress)
	return flight.Add(s.Positions[face*3+corner].Scale(scale))
}

func mapLinear(v, a1, a2, b1, b2 float32) float32 {
	return b1 + (v-a1)*(b2-b1)/(a2-a1)
}

func randRange(rng *rand.Rand, min, max float32) float32 {
	return min + rng.Float32()*(max-min)
}

// spread returns a uniform random value in [-extent/2, extent/2].
func spread(rng *rand.Rand, extent float32) float32 {
	return (rng.Float32() - 0.5) * extent
}
