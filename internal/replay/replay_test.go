package replay

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageswipe/internal/carousel"
)

const swipeScript = `
pages = 3
width = 700

[[event]]
kind = "press"
x = 300
y = 100

[[event]]
kind = "move"
x = 250
y = 100

[[event]]
kind = "move"
x = 150
y = 100

[[event]]
kind = "move"
x = 50
y = 100

[[event]]
kind = "release"
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(swipeScript))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Pages)
	assert.Equal(t, 700.0, s.Width)
	require.Len(t, s.Events, 5)
	assert.Equal(t, Event{Kind: "move", X: 150, Y: 100}, s.Events[2])
}

func TestParseRejectsUnknownKind(t *testing.T) {
	_, err := Parse([]byte("pages = 1\n[[event]]\nkind = \"fling\"\n"))
	require.ErrorIs(t, err, ErrUnknownEvent)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunSwipe(t *testing.T) {
	s, err := Parse([]byte(swipeScript))
	require.NoError(t, err)

	steps, err := Run(s, carousel.DefaultParams(), nil)
	require.NoError(t, err)
	require.Len(t, steps, 5)

	// Threshold is 700/3.5 = 200
	assert.Equal(t, carousel.DirectionNone, steps[1].Frame.Pending)
	assert.Equal(t, carousel.DirectionNone, steps[2].Frame.Pending)
	assert.Equal(t, carousel.DirectionForward, steps[3].Frame.Pending)
	assert.Equal(t, []carousel.Direction{carousel.DirectionForward}, steps[3].Thresholds)
	assert.Equal(t, -250.0, steps[3].Frame.LiveOffset)

	last := steps[4]
	assert.Equal(t, []int{2}, last.Turns)
	assert.Equal(t, 2, last.Frame.FocusedIndex)
	assert.False(t, last.Frame.Dragging)
	assert.Zero(t, last.Frame.LiveOffset)
}

func TestRunKeysAndResize(t *testing.T) {
	s := Script{Pages: 3, Width: 100, Events: []Event{
		{Kind: KindNext},
		{Kind: KindNext},
		{Kind: KindNext},
		{Kind: KindJump, Index: 1},
		{Kind: KindResize, Width: 35},
		{Kind: KindPress, X: 50},
		{Kind: KindMove, X: 40},
		{Kind: KindRelease},
	}}

	steps, err := Run(s, carousel.DefaultParams(), nil)
	require.NoError(t, err)

	assert.Equal(t, []int{2}, steps[0].Turns)
	assert.Equal(t, []int{3}, steps[1].Turns)
	assert.Empty(t, steps[2].Turns, "no page past the last")
	assert.Equal(t, 3, steps[2].Frame.FocusedIndex)
	assert.Equal(t, []int{1}, steps[3].Turns)
	// 35/3.5 = 10, so a 10 unit drag commits
	assert.Equal(t, []int{2}, steps[7].Turns)
}

func TestRunRejectsEmptyCarousel(t *testing.T) {
	_, err := Run(Script{Pages: 0, Width: 100}, carousel.DefaultParams(), nil)
	require.ErrorIs(t, err, carousel.ErrNoPages)
}

func TestRunDiagonalMoveNotHandled(t *testing.T) {
	s := Script{Pages: 2, Width: 100, Events: []Event{
		{Kind: KindPress, X: 10, Y: 10},
		{Kind: KindMove, X: 15, Y: 40},
	}}
	steps, err := Run(s, carousel.DefaultParams(), nil)
	require.NoError(t, err)
	assert.False(t, steps[1].Handled)
	assert.Zero(t, steps[1].Frame.LiveOffset)
}

func TestPrint(t *testing.T) {
	s, err := Parse([]byte(swipeScript))
	require.NoError(t, err)
	steps, err := Run(s, carousel.DefaultParams(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, steps))
	out := buf.String()
	assert.Contains(t, out, "PENDING")
	assert.Contains(t, out, "press 300,100")
	assert.Contains(t, out, "threshold forward")
	assert.Contains(t, out, "turn 2")
	assert.Contains(t, out, "2/3")
}
