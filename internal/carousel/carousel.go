package carousel

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Frame is what the presentation layer needs to draw one state.
type Frame struct {
	FocusedIndex  int
	PageCount     int
	OffsetPercent float64 // translation of the page strip, in percent of its width
	LiveOffset    float64 // extra drag offset in input units, added after OffsetPercent
	Pending       Direction
	Dragging      bool
}

// Carousel owns the interaction state of one page carousel and routes
// input events through the gesture pipeline.
//
// A Carousel is driven by a single event source and is not safe for
// concurrent use. Separate instances share nothing.
type Carousel struct {
	id       string
	state    State
	params   Params
	width    float64
	observer Observer
	log      *logrus.Entry
}

// Option configures a Carousel
type Option func(*Carousel)

// WithParams overrides the default gesture tuning
func WithParams(p Params) Option {
	return func(c *Carousel) { c.params = p }
}

// WithObserver sets the page-turn/threshold observer
func WithObserver(o Observer) Option {
	return func(c *Carousel) { c.observer = o }
}

// WithContainerWidth sets the width the threshold is computed from
func WithContainerWidth(w float64) Option {
	return func(c *Carousel) { c.width = w }
}

// WithLogger attaches a logger; the default discards everything
func WithLogger(l *logrus.Logger) Option {
	return func(c *Carousel) {
		if l != nil {
			c.log = l.WithField("carousel", c.id)
		}
	}
}

// New creates a carousel over pageCount pages, focused on the first one.
func New(pageCount int, opts ...Option) (*Carousel, error) {
	st, err := NewState(pageCount)
	if err != nil {
		return nil, err
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Carousel{
		id:       uuid.NewString(),
		state:    st,
		params:   DefaultParams(),
		observer: NopObserver{},
	}
	c.log = discard.WithField("carousel", c.id)

	for _, opt := range opts {
		opt(c)
	}
	if err := c.params.Validate(); err != nil {
		return nil, err
	}
	if c.observer == nil {
		c.observer = NopObserver{}
	}

	c.log.WithFields(logrus.Fields{
		"pages":    pageCount,
		"damping":  c.params.Damping,
		"divisor":  c.params.ThresholdDivisor,
		"on_begin": c.params.BeginPolicy.String(),
	}).Debug("carousel created")
	return c, nil
}

// ID returns the instance id used in logs and events
func (c *Carousel) ID() string {
	return c.id
}

// State returns a copy of the current interaction state
func (c *Carousel) State() State {
	return c.state
}

// Params returns the gesture tuning in use
func (c *Carousel) Params() Params {
	return c.params
}

// ContainerWidth returns the width used for threshold checks
func (c *Carousel) ContainerWidth() float64 {
	return c.width
}

// SetContainerWidth updates the width used for threshold checks
func (c *Carousel) SetContainerWidth(w float64) {
	c.width = w
}

// Begin starts a gesture at p
func (c *Carousel) Begin(p Point) {
	wasDragging := c.state.Dragging()
	c.state = Begin(c.state, p, c.params.BeginPolicy)
	if wasDragging {
		c.log.WithField("policy", c.params.BeginPolicy.String()).Debug("press during active gesture")
		return
	}
	c.log.WithFields(logrus.Fields{"x": p.X, "y": p.Y}).Debug("gesture begin")
}

// Move feeds a pointer position into the active gesture. It reports
// whether the move was taken as a horizontal swipe; when false the host
// keeps its default handling.
func (c *Carousel) Move(p Point) bool {
	if !c.state.Dragging() {
		c.log.Debug("move without active gesture")
		return false
	}
	next, handled := Move(c.state, p, c.width, c.params, c.loggingObserver())
	c.state = next
	return handled
}

// End releases the active gesture, committing its pending direction
func (c *Carousel) End() {
	if !c.state.Dragging() {
		return
	}
	pending := c.state.PendingDirection
	c.state = EndGesture(c.state, c.loggingObserver())
	c.log.WithFields(logrus.Fields{
		"pending": pending.String(),
		"focused": c.state.FocusedIndex,
	}).Debug("gesture end")
}

// Cancel drops the active gesture without committing
func (c *Carousel) Cancel() {
	if c.state.Dragging() {
		c.log.Debug("gesture cancelled")
	}
	c.state = End(c.state)
}

// Increment moves focus by one page, bypassing the gesture pipeline
func (c *Carousel) Increment(by Direction) bool {
	next, ok := Increment(c.state, by, c.loggingObserver())
	c.state = next
	return ok
}

// Advance focuses the next page
func (c *Carousel) Advance() bool {
	return c.Increment(DirectionForward)
}

// Retreat focuses the previous page
func (c *Carousel) Retreat() bool {
	return c.Increment(DirectionBack)
}

// JumpTo focuses an absolute 1-based page
func (c *Carousel) JumpTo(index int) bool {
	next, ok := JumpTo(c.state, index, c.loggingObserver())
	c.state = next
	return ok
}

// SetPageCount swaps the page set size, clamping focus and dropping any
// active gesture
func (c *Carousel) SetPageCount(n int) error {
	next, err := Resize(c.state, n)
	if err != nil {
		return err
	}
	if next.FocusedIndex != c.state.FocusedIndex {
		c.log.WithFields(logrus.Fields{"from": c.state.FocusedIndex, "to": next.FocusedIndex}).Info("focus clamped after page set change")
	}
	c.state = next
	return nil
}

// View returns the render targets for the current state
func (c *Carousel) View() Frame {
	return Frame{
		FocusedIndex:  c.state.FocusedIndex,
		PageCount:     c.state.PageCount,
		OffsetPercent: CurrentOffsetFraction(c.state),
		LiveOffset:    c.state.LiveOffset,
		Pending:       c.state.PendingDirection,
		Dragging:      c.state.Dragging(),
	}
}

func (c *Carousel) loggingObserver() Observer {
	return ObserverFuncs{
		PageTurn: func(newIndex int) {
			c.log.WithField("page", newIndex).Info("page turn")
			c.observer.OnPageTurn(newIndex)
		},
		Threshold: func(dir Direction) {
			c.log.WithField("direction", dir.String()).Debug("threshold crossed")
			c.observer.OnThreshold(dir)
		},
	}
}
