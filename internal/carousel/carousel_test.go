package carousel

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCarousel(t *testing.T, pages int, rec *recorder, opts ...Option) *Carousel {
	t.Helper()
	opts = append([]Option{WithContainerWidth(700), WithObserver(rec)}, opts...)
	c, err := New(pages, opts...)
	require.NoError(t, err)
	return c
}

func drag(c *Carousel, from Point, dxs ...float64) {
	c.Begin(from)
	for _, dx := range dxs {
		c.Move(Point{X: from.X + dx, Y: from.Y})
	}
	c.End()
}

func TestNewValidates(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrNoPages)

	_, err = New(3, WithParams(Params{Damping: 1.5, ThresholdDivisor: 3.5}))
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = New(3, WithParams(Params{Damping: 0.5, ThresholdDivisor: 0}))
	assert.ErrorIs(t, err, ErrInvalidParams)

	c, err := New(3, WithObserver(nil))
	require.NoError(t, err)
	assert.NotPanics(t, func() { c.Advance() }, "a missing observer means no notification")
}

func TestCarouselLeftDragTurnsToNextPage(t *testing.T) {
	rec := &recorder{}
	c := newTestCarousel(t, 3, rec)

	drag(c, Point{X: 400, Y: 10}, -50, -150, -250)

	assert.Equal(t, []Direction{DirectionForward}, rec.thresholds)
	assert.Equal(t, []int{2}, rec.turns)
	st := c.State()
	assert.Equal(t, 2, st.FocusedIndex)
	assert.Zero(t, st.LiveOffset)
	assert.False(t, st.Dragging())
}

func TestCarouselRightDragOnFirstPageSnapsBack(t *testing.T) {
	rec := &recorder{}
	c := newTestCarousel(t, 3, rec)

	c.Begin(Point{X: 100})
	c.Move(Point{X: 150})
	c.Move(Point{X: 250})
	assert.InDelta(t, 52.5, c.View().LiveOffset, 1e-9, "overscroll is damped")
	c.Move(Point{X: 350})
	assert.Equal(t, DirectionBack, c.View().Pending)
	c.End()

	assert.Equal(t, []Direction{DirectionBack}, rec.thresholds)
	assert.Empty(t, rec.turns)
	assert.Equal(t, 1, c.State().FocusedIndex)
	assert.Zero(t, c.View().LiveOffset)
}

func TestCarouselPastLastPageIsNoOp(t *testing.T) {
	rec := &recorder{}
	c := newTestCarousel(t, 3, rec)
	require.True(t, c.JumpTo(3))
	rec.turns = nil

	drag(c, Point{X: 500}, -260)

	assert.Equal(t, 3, c.State().FocusedIndex)
	assert.Empty(t, rec.turns)
	assert.Equal(t, []Direction{DirectionForward}, rec.thresholds)
}

func TestCarouselRightDragTurnsBack(t *testing.T) {
	rec := &recorder{}
	c := newTestCarousel(t, 5, rec)
	c.JumpTo(3)
	rec.turns = nil

	drag(c, Point{X: 100}, 120, 240)

	assert.Equal(t, 2, c.State().FocusedIndex)
	assert.Equal(t, []int{2}, rec.turns)
}

func TestCarouselKeyboardBypassesGesture(t *testing.T) {
	rec := &recorder{}
	c := newTestCarousel(t, 2, rec)

	assert.False(t, c.Retreat())
	assert.True(t, c.Advance())
	assert.False(t, c.Advance())
	assert.True(t, c.Retreat())

	assert.Equal(t, []int{2, 1}, rec.turns)
	assert.Empty(t, rec.thresholds)
}

func TestCarouselEndTwice(t *testing.T) {
	rec := &recorder{}
	c := newTestCarousel(t, 3, rec)
	c.Begin(Point{X: 500})
	c.Move(Point{X: 100})

	c.End()
	first := c.State()
	c.End()

	assert.Equal(t, first, c.State())
	assert.Equal(t, []int{2}, rec.turns)
}

func TestCarouselMoveWithoutBegin(t *testing.T) {
	rec := &recorder{}
	c := newTestCarousel(t, 3, rec)

	assert.False(t, c.Move(Point{X: 900}))
	assert.Equal(t, 1, c.State().FocusedIndex)
	assert.Zero(t, c.View().LiveOffset)
	assert.Empty(t, rec.thresholds)
}

func TestCarouselDiagonalNotHandled(t *testing.T) {
	rec := &recorder{}
	c := newTestCarousel(t, 3, rec)
	c.Begin(Point{X: 0, Y: 0})
	before := c.State()

	assert.False(t, c.Move(Point{X: 10, Y: 40}))
	assert.Equal(t, before, c.State())
}

func TestCarouselCancel(t *testing.T) {
	rec := &recorder{}
	c := newTestCarousel(t, 3, rec)
	c.Begin(Point{X: 500})
	c.Move(Point{X: 100})

	c.Cancel()

	assert.False(t, c.State().Dragging())
	assert.Equal(t, 1, c.State().FocusedIndex)
	assert.Empty(t, rec.turns)
}

func TestCarouselSetPageCount(t *testing.T) {
	rec := &recorder{}
	c := newTestCarousel(t, 5, rec)
	c.JumpTo(5)
	rec.turns = nil

	require.NoError(t, c.SetPageCount(2))
	assert.Equal(t, 2, c.State().FocusedIndex)
	assert.Empty(t, rec.turns, "clamping is not a page turn")

	assert.ErrorIs(t, c.SetPageCount(0), ErrNoPages)
	assert.Equal(t, 2, c.State().PageCount)
}

func TestCarouselView(t *testing.T) {
	c := newTestCarousel(t, 4, &recorder{})
	c.JumpTo(2)
	c.Begin(Point{X: 300})
	c.Move(Point{X: 260})

	f := c.View()
	assert.Equal(t, 25.0, f.OffsetPercent)
	assert.Equal(t, -40.0, f.LiveOffset)
	assert.True(t, f.Dragging)
	assert.Equal(t, 2, f.FocusedIndex)
	assert.Equal(t, 4, f.PageCount)
}

func TestCarouselInstancesAreIsolated(t *testing.T) {
	a := newTestCarousel(t, 3, &recorder{})
	b := newTestCarousel(t, 3, &recorder{})

	a.Begin(Point{X: 500})
	a.Move(Point{X: 100})
	a.End()

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, a.State().FocusedIndex)
	assert.Equal(t, 1, b.State().FocusedIndex)
}

func TestCarouselLogsWithInstanceID(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	c := newTestCarousel(t, 3, &recorder{}, WithLogger(logger))
	c.Advance()

	assert.Contains(t, buf.String(), `"carousel":"`+c.ID()+`"`)
	assert.Contains(t, buf.String(), "page turn")
}
