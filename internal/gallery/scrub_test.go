package gallery

import (
	"context"
	"fmt"
	"testing"
)

func TestScrubBelowThresholdDoesNothing(t *testing.T) {
	c, runner, _, _ := newTestController(t, 3)
	s := NewScrub(c)

	s.Press(0)
	s.Move(context.Background(), 20)
	if c.IsTransitioning() {
		t.Error("movement below threshold started a transition")
	}
	s.Release()
	if runner.Len() != 0 {
		t.Error("no timeline expected")
	}
}

func TestScrubDrivesTransition(t *testing.T) {
	c, _, _, _ := newTestController(t, 3)
	s := NewScrub(c)

	// Scenario C: press at 0, drag to +40 crosses the threshold.
	s.Press(0)
	s.Move(context.Background(), 40)

	if !c.IsTransitioning() {
		t.Fatal("crossing the threshold must start a transition")
	}
	tl := c.ActiveTimeline()
	if tl == nil {
		t.Fatal("no active timeline")
	}
	if !tl.Paused() {
		t.Error("handle must be paused while the pointer is held")
	}
	if tl.Progress() != 0 {
		t.Errorf("threshold move scrubbed progress to %v, want 0", tl.Progress())
	}

	// Incremental +10 maps to 10 x 0.001 = 0.01 progress.
	s.Move(context.Background(), 50)
	if !almostEqual(tl.Progress(), 0.01, 1e-5) {
		t.Errorf("progress = %v, want 0.01", tl.Progress())
	}

	// Release resumes playback from the left-off progress.
	s.Release()
	if tl.Paused() {
		t.Error("release must resume the handle")
	}
	if !almostEqual(tl.Progress(), 0.01, 1e-5) {
		t.Errorf("release changed progress to %v", tl.Progress())
	}
}

func TestScrubLeftwardDragGoesPrevious(t *testing.T) {
	c, _, _, _ := newTestController(t, 3)
	s := NewScrub(c)

	s.Press(100)
	s.Move(context.Background(), 60) // total -40

	if !c.IsTransitioning() {
		t.Fatal("expected a previous transition")
	}
	tl := c.ActiveTimeline()

	// Leftward drag still increases progress for previous.
	s.Move(context.Background(), 50) // dx -10
	if !almostEqual(tl.Progress(), 0.01, 1e-5) {
		t.Errorf("progress = %v, want 0.01", tl.Progress())
	}
	s.Release()
}

func TestScrubProgressClamped(t *testing.T) {
	c, _, _, _ := newTestController(t, 3)
	s := NewScrub(c)

	s.Press(0)
	s.Move(context.Background(), 40)
	tl := c.ActiveTimeline()

	// Arbitrarily large drag input stays inside [0,1].
	s.Move(context.Background(), 1e7)
	if tl.Progress() != 1 {
		t.Errorf("progress = %v after huge drag, want 1", tl.Progress())
	}
	s.Move(context.Background(), -1e7)
	if tl.Progress() != 0 {
		t.Errorf("progress = %v after huge reverse drag, want 0", tl.Progress())
	}
	s.Release()
}

func TestScrubHijacksRunningTransition(t *testing.T) {
	c, runner, _, _ := newTestController(t, 3)
	s := NewScrub(c)

	c.Next(context.Background())
	runner.Update(0.5)
	tl := c.ActiveTimeline()
	start := tl.Progress()

	// Pressing mid-flight pauses and binds without the drag threshold.
	s.Press(0)
	if !tl.Paused() {
		t.Fatal("press must pause a running transition")
	}

	s.Move(context.Background(), 5)
	if !almostEqual(tl.Progress(), start+0.005, 1e-5) {
		t.Errorf("progress = %v, want %v", tl.Progress(), start+0.005)
	}
	if c.next == nil {
		t.Error("hijacking must not replace the in-flight transition")
	}

	s.Release()
	if tl.Paused() {
		t.Error("release must resume")
	}
	finish(t, runner)
	if c.Index() != 1 {
		t.Errorf("index = %d after resumed completion, want 1", c.Index())
	}
}

func TestScrubNeverStacksTransitions(t *testing.T) {
	c, runner, tracker, _ := newTestController(t, 3)
	s := NewScrub(c)

	s.Press(0)
	s.Move(context.Background(), 40)
	meshes := len(tracker.meshes)

	// Keep dragging well past the threshold repeatedly; the controller
	// guard means no second transition may appear.
	s.Move(context.Background(), 200)
	s.Move(context.Background(), 400)
	if len(tracker.meshes) != meshes {
		t.Error("scrubbing created a second transition")
	}
	if runner.Len() != 1 {
		t.Errorf("%d timelines active, want 1", runner.Len())
	}
	s.Release()
}

func TestScrubFailedNavigationLeavesDisplayUntouched(t *testing.T) {
	c, runner, tracker, loader := newTestController(t, 3)
	s := NewScrub(c)

	c.Next(context.Background())
	finish(t, runner)
	stale := c.ActiveTimeline()
	current := tracker.meshes[1]

	loader.failAt[2] = fmt.Errorf("torn file")

	// The threshold drag triggers next(), whose texture load fails. The
	// gesture must not fall back to the finished handle: scrubbing it
	// would rewind the slide still on screen.
	s.Press(0)
	s.Move(context.Background(), 40)
	s.Move(context.Background(), 440)

	if c.IsTransitioning() {
		t.Error("failed load left the in-flight flag set")
	}
	if stale.Progress() != 1 {
		t.Errorf("finished handle progress = %v, want untouched 1", stale.Progress())
	}
	if !almostEqual(current.time, TotalDuration(), 1e-5) {
		t.Errorf("displayed slide time = %v, want %v", current.time, TotalDuration())
	}
	s.Release()

	// Once the image loads again the same gesture works normally.
	delete(loader.failAt, 2)
	s.Press(0)
	s.Move(context.Background(), 40)
	if !c.IsTransitioning() {
		t.Fatal("recovered load did not start a transition")
	}
	if tl := c.ActiveTimeline(); tl == stale || !tl.Paused() {
		t.Error("recovered gesture must bind a fresh paused handle")
	}
	s.Release()
}

func TestScrubReleaseWithoutPress(t *testing.T) {
	c, _, _, _ := newTestController(t, 3)
	s := NewScrub(c)
	// Must not panic or touch anything.
	s.Release()
	s.Move(context.Background(), 50)
	if c.IsTransitioning() {
		t.Error("move without press started a transition")
	}
}
