package gallery

import (
	"context"
	"math/rand"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/shardgallery/internal/engine/texture"
	"github.com/Faultbox/shardgallery/internal/engine/timeline"
)

// Loader supplies decoded images by index.
type Loader interface {
	Len() int
	Load(ctx context.Context, index int) (*texture.Image, error)
}

// Options configures a Controller.
type Options struct {
	MaxPlaneWidth      float32 // aspect-preserving fit bounds
	MaxPlaneHeight     float32
	SegmentsX          int
	SegmentsY          int
	TransitionDuration float32 // wall-clock seconds per transition
	TransitionDelay    float32 // start offset applied to both tweens
	PreloadRadius      int
}

// Controller is the gallery state machine. Outside a transition exactly
// one slide is current; during one, the outgoing and incoming slides
// coexist until the combined timeline completes and promotes the next
// slide. At most one transition is in flight; navigation requests that
// arrive while one is running are dropped, never queued.
//
// All state mutation happens on the render-loop goroutine. Only the
// texture cache is shared with background preloads and is mutex-guarded;
// cache writes are idempotent, so racing loads of the same index are
// harmless.
type Controller struct {
	opts    Options
	loader  Loader
	newMesh MeshFactory
	runner  *timeline.Runner
	rng     *rand.Rand
	log     *zap.Logger

	mu    sync.Mutex
	cache map[int]*texture.Image

	index         int
	current       *Slide
	next          *Slide
	transitioning bool
	active        *timeline.Timeline
}

// NewController builds the controller and shows the first image fully
// assembled (phase in, time at its end). Returns ErrNoImages when the
// loader is empty.
func NewController(ctx context.Context, opts Options, loader Loader, newMesh MeshFactory, runner *timeline.Runner, rng *rand.Rand, log *zap.Logger) (*Controller, error) {
	if loader.Len() < 1 {
		return nil, ErrNoImages
	}

	c := &Controller{
		opts:    opts,
		loader:  loader,
		newMesh: newMesh,
		runner:  runner,
		rng:     rng,
		log:     log,
		cache:   make(map[int]*texture.Image),
	}

	img, err := c.texture(ctx, 0)
	if err != nil {
		return nil, err
	}

	slide, err := c.buildSlide(img, PhaseIn)
	if err != nil {
		return nil, err
	}
	slide.SetTime(slide.TotalDuration())
	c.current = slide

	log.Info("gallery initialized", zap.Int("images", loader.Len()))
	return c, nil
}

// Index returns the index of the displayed image.
func (c *Controller) Index() int {
	return c.index
}

// IsTransitioning reports whether a transition is in flight.
func (c *Controller) IsTransitioning() bool {
	return c.transitioning
}

// ActiveTimeline returns the playback handle of the most recent
// transition, or nil before the first one. The scrub controller pauses,
// resumes and seeks through it.
func (c *Controller) ActiveTimeline() *timeline.Timeline {
	return c.active
}

// Next advances to the following image with modular wraparound. The
// returned channel settles with the transition result. Requests made
// while a transition is in flight, or with fewer than two images, are
// dropped silently and settle immediately.
func (c *Controller) Next(ctx context.Context) <-chan error {
	return c.navigate(ctx, +1)
}

// Previous goes back one image with modular wraparound; same drop
// semantics as Next.
func (c *Controller) Previous(ctx context.Context) <-chan error {
	return c.navigate(ctx, -1)
}

func (c *Controller) navigate(ctx context.Context, step int) <-chan error {
	if c.loader.Len() < 2 {
		return settled(nil)
	}
	n := c.loader.Len()
	return c.TransitionTo(ctx, (c.index+step+n)%n)
}

// TransitionTo starts a transition to the given image index. It loads
// the target texture if not cached (a failure settles the channel with
// a LoadError and leaves the gallery unlocked), then runs both slides'
// tweens on one combined timeline starting at the same offset. On
// completion the superseded slide's resources are released exactly once.
func (c *Controller) TransitionTo(ctx context.Context, target int) <-chan error {
	if c.transitioning || target == c.index || target < 0 || target >= c.loader.Len() {
		return settled(nil)
	}

	c.transitioning = true

	img, err := c.texture(ctx, target)
	if err != nil {
		// Clear the in-flight flag so the gallery is not left locked.
		c.transitioning = false
		c.log.Error("transition aborted", zap.Int("target", target), zap.Error(err))
		return settled(err)
	}

	incoming, err := c.buildSlide(img, PhaseIn)
	if err != nil {
		c.transitioning = false
		return settled(err)
	}
	incoming.SetTime(0)

	outgoing := c.current
	outgoing.SetPhase(PhaseOut)
	outgoing.SetTime(0)

	done := make(chan error, 1)
	tl := timeline.New(func() {
		outgoing.Release()
		c.current = incoming
		c.next = nil
		c.index = target
		c.transitioning = false
		c.log.Debug("transition complete", zap.Int("index", target))
		done <- nil
		close(done)
	})

	// Both tweens start at the same offset: the outgoing shatter and the
	// incoming reassembly overlap rather than running in sequence.
	tl.Add(outgoing.Transition(c.opts.TransitionDuration), c.opts.TransitionDelay)
	tl.Add(incoming.Transition(c.opts.TransitionDuration), c.opts.TransitionDelay)

	c.next = incoming
	c.active = tl
	c.runner.Add(tl)

	c.log.Debug("transition started", zap.Int("from", c.index), zap.Int("to", target))
	return done
}

// PreloadAround loads the textures within radius of centerIndex (wrapped,
// excluding the center itself) in the background. Individual failures
// are logged and swallowed; it returns once every attempted load has
// settled.
func (c *Controller) PreloadAround(ctx context.Context, centerIndex, radius int) error {
	n := c.loader.Len()
	if n < 2 || radius < 1 {
		return nil
	}

	seen := map[int]bool{centerIndex: true}
	g, ctx := errgroup.WithContext(ctx)

	for off := -radius; off <= radius; off++ {
		if off == 0 {
			continue
		}
		idx := ((centerIndex+off)%n + n) % n
		if seen[idx] {
			continue
		}
		seen[idx] = true

		if c.cached(idx) {
			continue
		}

		g.Go(func() error {
			if _, err := c.texture(ctx, idx); err != nil {
				c.log.Warn("preload failed", zap.Int("index", idx), zap.Error(err))
			}
			return nil
		})
	}

	return g.Wait()
}

// Reset returns to the first image. From any index other than 0 it
// performs exactly one forward wraparound transition into index 0, never
// an instantaneous jump.
func (c *Controller) Reset(ctx context.Context) <-chan error {
	if c.index == 0 || c.transitioning || c.loader.Len() < 2 {
		return settled(nil)
	}
	c.index = c.loader.Len() - 1
	return c.Next(ctx)
}

// TogglePause toggles the active playback handle between paused and
// playing. No-op when no transition has run yet.
func (c *Controller) TogglePause() {
	if c.active == nil {
		return
	}
	if c.active.Paused() {
		c.active.Play()
	} else {
		c.active.Pause()
	}
}

// texture returns the cached image for idx, loading and caching it on
// miss. Entries are never invalidated once set.
func (c *Controller) texture(ctx context.Context, idx int) (*texture.Image, error) {
	c.mu.Lock()
	img, ok := c.cache[idx]
	c.mu.Unlock()
	if ok {
		return img, nil
	}

	img, err := c.loader.Load(ctx, idx)
	if err != nil {
		return nil, &LoadError{Index: idx, Err: err}
	}

	c.mu.Lock()
	c.cache[idx] = img
	c.mu.Unlock()
	return img, nil
}

func (c *Controller) cached(idx int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.cache[idx]
	return ok
}

// buildSlide creates a slide sized to the image's aspect ratio within
// the configured plane bounds and binds the texture.
func (c *Controller) buildSlide(img *texture.Image, phase Phase) (*Slide, error) {
	w := c.opts.MaxPlaneWidth
	h := w / img.AspectRatio()
	if h > c.opts.MaxPlaneHeight {
		h = c.opts.MaxPlaneHeight
		w = h * img.AspectRatio()
	}

	s, err := NewSlide(w, h, c.opts.SegmentsX, c.opts.SegmentsY, phase, c.newMesh, c.rng)
	if err != nil {
		return nil, err
	}
	s.SetTexture(img)
	return s, nil
}

// settled returns a channel that immediately yields err and closes.
func settled(err error) <-chan error {
	ch := make(chan error, 1)
	ch <- err
	close(ch)
	return ch
}
