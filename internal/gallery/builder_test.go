package gallery

import (
	gomath "math"
	"math/rand"
	"testing"
)

func almostEqual(a, b, eps float32) bool {
	return float32(gomath.Abs(float64(a-b))) <= eps
}

func TestTriangulateFaceCount(t *testing.T) {
	p := Triangulate(100, 60, 4, 3)
	if got, want := p.FaceCount(), 4*3*2; got != want {
		t.Errorf("FaceCount() = %d, want %d", got, want)
	}
	if len(p.Positions) != len(p.UVs) {
		t.Errorf("positions/UVs length mismatch: %d vs %d", len(p.Positions), len(p.UVs))
	}
}

func TestTriangulateCentered(t *testing.T) {
	p := Triangulate(10, 6, 2, 2)
	for i, pos := range p.Positions {
		if pos.X < -5 || pos.X > 5 || pos.Y < -3 || pos.Y > 3 {
			t.Fatalf("vertex %d = %v outside centered bounds", i, pos)
		}
	}
}

func TestTriangulateUVRange(t *testing.T) {
	p := Triangulate(10, 6, 3, 3)
	for i, uv := range p.UVs {
		if uv[0] < 0 || uv[0] > 1 || uv[1] < 0 || uv[1] > 1 {
			t.Fatalf("uv %d = %v outside [0,1]", i, uv)
		}
	}
}

func TestTotalDurationConstant(t *testing.T) {
	// maxDuration + maxDelayX + maxDelayY + stretch; independent of
	// per-face randomness.
	if got := TotalDuration(); !almostEqual(got, 2.335, 1e-6) {
		t.Errorf("TotalDuration() = %v, want 2.335", got)
	}
}

func TestFaceTimingBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := Triangulate(100, 60, 10, 10)

	for _, phase := range []Phase{PhaseIn, PhaseOut} {
		set := BuildFaceSet(p, phase, rng)
		for i, a := range set.Faces {
			if a.Delay < 0 {
				t.Fatalf("phase %v face %d: delay %v < 0", phase, i, a.Delay)
			}
			if a.Duration <= 0 {
				t.Fatalf("phase %v face %d: duration %v <= 0", phase, i, a.Duration)
			}
			if a.Duration < minDuration || a.Duration > maxDuration {
				t.Fatalf("phase %v face %d: duration %v outside [%v,%v]", phase, i, a.Duration, float32(minDuration), float32(maxDuration))
			}
			if a.Delay+a.Duration > TotalDuration()+1e-5 {
				t.Fatalf("phase %v face %d: delay+duration %v exceeds total %v", phase, i, a.Delay+a.Duration, TotalDuration())
			}
		}
	}
}

func TestDelayLayout(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	p := Triangulate(100, 60, 8, 8)

	for _, phase := range []Phase{PhaseIn, PhaseOut} {
		set := BuildFaceSet(p, phase, rng)
		for i, a := range set.Faces {
			cx, cy := a.Centroid.X, a.Centroid.Y

			expectedX := mapLinear(cx, -50, 50, 0, maxDelayX)
			absY := float32(gomath.Abs(float64(cy)))
			var expectedY float32
			if phase == PhaseIn {
				expectedY = mapLinear(absY, 0, 30, 0, maxDelayY)
			} else {
				expectedY = mapLinear(absY, 0, 30, maxDelayY, 0)
			}

			// What remains after the positional delays is the per-face
			// jitter, bounded by stretch.
			jitter := a.Delay - expectedX - expectedY
			if jitter < -1e-5 || jitter > stretch+1e-5 {
				t.Fatalf("phase %v face %d: jitter %v outside [0,%v]", phase, i, jitter, float32(stretch))
			}
		}
	}
}

func TestClosedLoopCurve(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	set := BuildFaceSet(Triangulate(100, 60, 6, 6), PhaseIn, rng)

	for i, a := range set.Faces {
		if a.StartPoint != a.Centroid || a.EndPoint != a.Centroid {
			t.Fatalf("face %d: start/end %v/%v must equal centroid %v", i, a.StartPoint, a.EndPoint, a.Centroid)
		}
	}
}

func TestControlPointDirections(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	p := Triangulate(100, 60, 6, 6)

	for _, phase := range []Phase{PhaseIn, PhaseOut} {
		set := BuildFaceSet(p, phase, rng)
		for i, a := range set.Faces {
			// Recover the raw offsets: in-phase controls sit at
			// centroid-offset, out-phase at centroid+offset.
			var off0, off1 [3]float32
			if phase == PhaseIn {
				d0, d1 := a.Centroid.Sub(a.Control0), a.Centroid.Sub(a.Control1)
				off0 = [3]float32{d0.X, d0.Y, d0.Z}
				off1 = [3]float32{d1.X, d1.Y, d1.Z}
			} else {
				d0, d1 := a.Control0.Sub(a.Centroid), a.Control1.Sub(a.Centroid)
				off0 = [3]float32{d0.X, d0.Y, d0.Z}
				off1 = [3]float32{d1.X, d1.Y, d1.Z}
			}

			if off0[0] < 5-1e-3 || off0[0] > 15+1e-3 {
				t.Fatalf("phase %v face %d: control0 X offset %v outside [5,15]", phase, i, off0[0])
			}
			if off1[0] < 15-1e-3 || off1[0] > 30+1e-3 {
				t.Fatalf("phase %v face %d: control1 X offset %v outside [15,30]", phase, i, off1[0])
			}

			sign := float32(1)
			if a.Centroid.Y < 0 {
				sign = -1
			}
			if off0[1]*sign < 7-1e-3 || off0[1]*sign > 21+1e-3 {
				t.Fatalf("phase %v face %d: control0 Y offset %v not matching-sign in [7,21]", phase, i, off0[1])
			}
			if off1[1]*-sign < 21-1e-3 || off1[1]*-sign > 42+1e-3 {
				t.Fatalf("phase %v face %d: control1 Y offset %v not opposite-sign in [21,42]", phase, i, off1[1])
			}

			if off0[2] < -10-1e-3 || off0[2] > 10+1e-3 {
				t.Fatalf("phase %v face %d: control0 Z spread %v outside [-10,10]", phase, i, off0[2])
			}
		}
	}
}

func TestCentroidRelativePositions(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	set := BuildFaceSet(Triangulate(100, 60, 6, 6), PhaseIn, rng)

	for f := 0; f < len(set.Faces); f++ {
		sum := set.Positions[f*3].Add(set.Positions[f*3+1]).Add(set.Positions[f*3+2])
		if !almostEqual(sum.Length(), 0, 1e-3) {
			t.Fatalf("face %d: centroid-relative corners sum to %v, want ~0", f, sum)
		}
	}
}

func TestBuildReproducibleWithSeed(t *testing.T) {
	p := Triangulate(100, 60, 4, 4)
	a := BuildFaceSet(p, PhaseIn, rand.New(rand.NewSource(42)))
	b := BuildFaceSet(p, PhaseIn, rand.New(rand.NewSource(42)))

	for i := range a.Faces {
		if a.Faces[i] != b.Faces[i] {
			t.Fatalf("face %d differs across identical seeds", i)
		}
	}
}

func TestProgressContract(t *testing.T) {
	a := FaceAttrib{Delay: 0.5, Duration: 1.0}

	if got := a.Progress(0); got != 0 {
		t.Errorf("Progress before delay = %v, want 0", got)
	}
	if got := a.Progress(0.5); got != 0 {
		t.Errorf("Progress at delay = %v, want 0", got)
	}
	if got := a.Progress(1.5); got != 1 {
		t.Errorf("Progress at delay+duration = %v, want 1", got)
	}
	if got := a.Progress(10); got != 1 {
		t.Errorf("Progress after end = %v, want 1", got)
	}

	prev := float32(-1)
	for i := 0; i <= 100; i++ {
		p := a.Progress(0.5 + float32(i)/100)
		if p < prev {
			t.Fatalf("Progress not monotonic at step %d: %v < %v", i, p, prev)
		}
		prev = p
	}
}

func TestVertexPositionAtRest(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	p := Triangulate(100, 60, 4, 4)

	// Fully animated in: every vertex is back at its absolute rest
	// position (centroid + relative offset).
	in := BuildFaceSet(p, PhaseIn, rng)
	for f := range in.Faces {
		for corner := 0; corner < 3; corner++ {
			got := in.VertexPosition(f, corner, TotalDuration())
			want := in.Faces[f].Centroid.Add(in.Positions[f*3+corner])
			if !almostEqual(got.Distance(want), 0, 1e-3) {
				t.Fatalf("in face %d corner %d: %v, want %v", f, corner, got, want)
			}
		}
	}

	// Fully animated out: the face has collapsed onto its centroid.
	out := BuildFaceSet(p, PhaseOut, rng)
	for f := range out.Faces {
		got := out.VertexPosition(f, 0, TotalDuration())
		if !almostEqual(got.Distance(out.Faces[f].Centroid), 0, 1e-3) {
			t.Fatalf("out face %d: %v, want centroid %v", f, got, out.Faces[f].Centroid)
		}
	}
}
