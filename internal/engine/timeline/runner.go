package timeline

// Runner ticks active timelines once per frame and discards completed
// ones. All access happens on the render loop goroutine.
type Runner struct {
	active []*Timeline
}

// NewRunner creates an empty runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Add registers a timeline for per-frame updates.
func (r *Runner) Add(tl *Timeline) {
	r.active = append(r.active, tl)
}

// Update advances all active timelines by dt seconds. Completed timelines
// are dropped after their tick so onComplete callbacks run exactly once.
func (r *Runner) Update(dt float32) {
	keep := r.active[:0]
	for _, tl := range r.active {
		tl.Update(dt)
		if !tl.Done() {
			keep = append(keep, tl)
		}
	}
	r.active = keep
}

// Len returns the number of timelines still running.
func (r *Runner) Len() int {
	return len(r.active)
}
