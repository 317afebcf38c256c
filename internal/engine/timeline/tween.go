package timeline

// Tween animates a scalar from one value to another over a duration,
// delivering each value through an apply callback. It holds no clock of
// its own; a Timeline seeks it.
type Tween struct {
	apply    func(float32)
	from     float32
	to       float32
	duration float32 // seconds
	ease     Ease
}

// NewTween creates a tween. duration must be positive; ease defaults to
// EaseLinear when nil.
func NewTween(apply func(float32), from, to, duration float32, ease Ease) *Tween {
	if ease == nil {
		ease = EaseLinear
	}
	return &Tween{
		apply:    apply,
		from:     from,
		to:       to,
		duration: duration,
		ease:     ease,
	}
}

// Duration returns the tween's length in seconds.
func (tw *Tween) Duration() float32 {
	return tw.duration
}

// Seek applies the tween value for the given local elapsed time, clamped
// to the tween's span.
func (tw *Tween) Seek(elapsed float32) {
	t := elapsed / tw.duration
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	tw.apply(tw.from + (tw.to-tw.from)*tw.ease(t))
}
