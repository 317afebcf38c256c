package timeline

type entry struct {
	tween  *Tween
	offset float32
}

// Timeline composes tweens at start offsets into one playback handle.
// It is advanced by Runner.Update from the frame loop; progress can be
// queried or overridden at any time (scrubbing).
type Timeline struct {
	entries    []entry
	elapsed    float32
	total      float32
	paused     bool
	done       bool
	onComplete func()
}

// New creates an empty timeline. onComplete may be nil; it fires exactly
// once, when the timeline first reaches its end while playing.
func New(onComplete func()) *Timeline {
	return &Timeline{onComplete: onComplete}
}

// Add schedules a tween to start at the given offset from timeline start.
// Tweens added at the same offset run simultaneously.
func (tl *Timeline) Add(tw *Tween, offset float32) {
	tl.entries = append(tl.entries, entry{tween: tw, offset: offset})
	if end := offset + tw.Duration(); end > tl.total {
		tl.total = end
	}
}

// Update advances the timeline by dt seconds and applies all tweens.
// Paused or completed timelines do not advance.
func (tl *Timeline) Update(dt float32) {
	if tl.paused || tl.done {
		return
	}
	tl.elapsed += dt
	if tl.elapsed > tl.total {
		tl.elapsed = tl.total
	}
	tl.seek()
	if tl.elapsed >= tl.total {
		tl.done = true
		if tl.onComplete != nil {
			tl.onComplete()
		}
	}
}

func (tl *Timeline) seek() {
	for _, e := range tl.entries {
		e.tween.Seek(tl.elapsed - e.offset)
	}
}

// Pause stops the timeline from advancing.
func (tl *Timeline) Pause() { tl.paused = true }

// Play resumes a paused timeline.
func (tl *Timeline) Play() { tl.paused = false }

// Paused reports whether the timeline is paused.
func (tl *Timeline) Paused() bool { return tl.paused }

// Done reports whether the timeline has completed.
func (tl *Timeline) Done() bool { return tl.done }

// Progress returns overall playback progress in [0,1].
func (tl *Timeline) Progress() float32 {
	if tl.total <= 0 {
		return 1
	}
	return tl.elapsed / tl.total
}

// SetProgress seeks the timeline to the given progress, clamped to [0,1],
// and applies all tweens. Completion only fires from Update, so a
// scrubbed timeline finishes on its next playing tick.
func (tl *Timeline) SetProgress(p float32) {
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	tl.elapsed = p * tl.total
	tl.seek()
}
