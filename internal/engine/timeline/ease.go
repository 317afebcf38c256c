// Package timeline provides tween and timeline playback primitives driven
// by the frame loop. A timeline composes tweens at start offsets, can be
// paused, resumed, or scrubbed by overriding its progress, and reports
// completion exactly once.
package timeline

// Ease maps linear progress [0,1] to eased progress [0,1].
type Ease func(t float32) float32

// EaseLinear leaves progress unchanged.
func EaseLinear(t float32) float32 { return t }

// EaseInOutCubic is the standard two-piece cubic ease.
func EaseInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// EaseOutCubic decelerates toward the end.
func EaseOutCubic(t float32) float32 {
	u := t - 1
	return u*u*u + 1
}
