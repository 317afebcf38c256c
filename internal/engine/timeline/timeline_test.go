package timeline

import (
	"testing"
)

func TestEaseInOutCubicEndpoints(t *testing.T) {
	if got := EaseInOutCubic(0); got != 0 {
		t.Errorf("EaseInOutCubic(0) = %v, want 0", got)
	}
	if got := EaseInOutCubic(1); got != 1 {
		t.Errorf("EaseInOutCubic(1) = %v, want 1", got)
	}
	if got := EaseInOutCubic(0.5); got != 0.5 {
		t.Errorf("EaseInOutCubic(0.5) = %v, want 0.5", got)
	}
}

func TestEaseInOutCubicMonotonic(t *testing.T) {
	prev := float32(-1)
	for i := 0; i <= 100; i++ {
		v := EaseInOutCubic(float32(i) / 100)
		if v < prev {
			t.Fatalf("EaseInOutCubic not monotonic at t=%d/100: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestTweenSeekClamps(t *testing.T) {
	var got float32
	tw := NewTween(func(v float32) { got = v }, 0, 10, 2, nil)

	tw.Seek(-1)
	if got != 0 {
		t.Errorf("Seek(-1) applied %v, want 0", got)
	}
	tw.Seek(1)
	if got != 5 {
		t.Errorf("Seek(1) applied %v, want 5", got)
	}
	tw.Seek(5)
	if got != 10 {
		t.Errorf("Seek(5) applied %v, want 10", got)
	}
}

func TestTimelineSimultaneousTweens(t *testing.T) {
	var a, b float32
	tl := New(nil)
	tl.Add(NewTween(func(v float32) { a = v }, 0, 1, 2, nil), 0)
	tl.Add(NewTween(func(v float32) { b = v }, 0, 4, 2, nil), 0)

	tl.Update(1)
	if a != 0.5 || b != 2 {
		t.Errorf("after 1s: a=%v b=%v, want 0.5 and 2", a, b)
	}
}

func TestTimelineOffsetDelaysTween(t *testing.T) {
	var v float32
	tl := New(nil)
	tl.Add(NewTween(func(x float32) { v = x }, 0, 1, 1, nil), 0.5)

	tl.Update(0.25)
	if v != 0 {
		t.Errorf("tween ran before its offset: %v", v)
	}
	tl.Update(0.75)
	if v != 0.5 {
		t.Errorf("after 1s total: %v, want 0.5", v)
	}
}

func TestTimelineCompletesOnce(t *testing.T) {
	completions := 0
	tl := New(func() { completions++ })
	tl.Add(NewTween(func(float32) {}, 0, 1, 1, nil), 0)

	tl.Update(0.6)
	tl.Update(0.6)
	tl.Update(0.6)

	if completions != 1 {
		t.Errorf("onComplete fired %d times, want 1", completions)
	}
	if !tl.Done() {
		t.Error("timeline should be done")
	}
}

func TestTimelinePauseBlocksAdvance(t *testing.T) {
	var v float32
	tl := New(nil)
	tl.Add(NewTween(func(x float32) { v = x }, 0, 1, 1, nil), 0)

	tl.Update(0.5)
	tl.Pause()
	tl.Update(0.5)
	if v != 0.5 {
		t.Errorf("paused timeline advanced: %v", v)
	}
	tl.Play()
	tl.Update(0.5)
	if v != 1 {
		t.Errorf("resumed timeline at %v, want 1", v)
	}
}

func TestTimelineSetProgressClamps(t *testing.T) {
	var v float32
	tl := New(nil)
	tl.Add(NewTween(func(x float32) { v = x }, 0, 10, 2, nil), 0)

	tl.SetProgress(0.25)
	if v != 2.5 {
		t.Errorf("SetProgress(0.25) applied %v, want 2.5", v)
	}
	tl.SetProgress(42)
	if tl.Progress() != 1 {
		t.Errorf("Progress() = %v after overshoot, want 1", tl.Progress())
	}
	tl.SetProgress(-3)
	if tl.Progress() != 0 {
		t.Errorf("Progress() = %v after undershoot, want 0", tl.Progress())
	}
}

func TestSetProgressDoesNotComplete(t *testing.T) {
	completions := 0
	tl := New(func() { completions++ })
	tl.Add(NewTween(func(float32) {}, 0, 1, 1, nil), 0)

	tl.SetProgress(1)
	if completions != 0 {
		t.Error("scrubbing to the end must not fire completion")
	}
	tl.Update(0)
	if completions != 1 {
		t.Errorf("completion after tick = %d, want 1", completions)
	}
}

func TestRunnerDropsFinished(t *testing.T) {
	r := NewRunner()
	tl := New(nil)
	tl.Add(NewTween(func(float32) {}, 0, 1, 1, nil), 0)
	r.Add(tl)

	r.Update(0.5)
	if r.Len() != 1 {
		t.Fatalf("runner dropped an unfinished timeline")
	}
	r.Update(0.6)
	if r.Len() != 0 {
		t.Errorf("runner kept a finished timeline, len=%d", r.Len())
	}
}
