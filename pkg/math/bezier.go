package math

// Lerp returns the linear interpolation between a and b at t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CubicBezier evaluates a cubic Bezier curve with anchors p0/p3 and
// control points p1/p2 at parameter t in [0,1].
func CubicBezier(p0, p1, p2, p3 Vec3, t float32) Vec3 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Vec3{
		b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
		b0*p0.Z + b1*p1.Z + b2*p2.Z + b3*p3.Z,
	}
}
