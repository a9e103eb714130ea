// Package replay drives a headless carousel from a scripted list of
// pointer and key events and reports the frame after each one.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"pageswipe/internal/carousel"
	"pageswipe/internal/ui/input"
	"pageswipe/internal/ui/input/types"
)

// ErrUnknownEvent is returned for an event kind the runner does not know
var ErrUnknownEvent = errors.New("unknown event kind")

// Event kinds
const (
	KindPress   = "press"
	KindMove    = "move"
	KindRelease = "release"
	KindCancel  = "cancel"
	KindNext    = "next"
	KindPrev    = "prev"
	KindJump    = "jump"
	KindResize  = "resize"
)

// Event is one scripted input
type Event struct {
	Kind  string  `toml:"kind"`
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Index int     `toml:"index"` // jump target; 0 or less counts from the end
	Width float64 `toml:"width"` // resize only
}

// Script is a replay file
type Script struct {
	Pages  int     `toml:"pages"`
	Width  float64 `toml:"width"`
	Events []Event `toml:"event"`
}

// Parse decodes a TOML script
func Parse(data []byte) (Script, error) {
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parse replay script: %w", err)
	}
	for i, ev := range s.Events {
		if _, err := ev.action(); err != nil && !strings.EqualFold(ev.Kind, KindResize) {
			return Script{}, fmt.Errorf("event %d: %w", i+1, err)
		}
	}
	return s, nil
}

// Load reads and parses a script file
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read replay script: %w", err)
	}
	return Parse(data)
}

func (e Event) action() (types.Action, error) {
	p := carousel.Point{X: e.X, Y: e.Y}
	switch strings.ToLower(e.Kind) {
	case KindPress:
		return types.PressAction{Point: p}, nil
	case KindMove:
		return types.DragAction{Point: p}, nil
	case KindRelease:
		return types.ReleaseAction{}, nil
	case KindCancel:
		return types.CancelGestureAction{}, nil
	case KindNext:
		return types.NavigateAction{By: carousel.DirectionForward}, nil
	case KindPrev:
		return types.NavigateAction{By: carousel.DirectionBack}, nil
	case KindJump:
		return types.JumpAction{Index: e.Index}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, e.Kind)
}

// Step is the outcome of one event
type Step struct {
	Event      Event
	Handled    bool
	Frame      carousel.Frame
	Turns      []int
	Thresholds []carousel.Direction
}

// Run replays s against a fresh carousel
func Run(s Script, params carousel.Params, log *logrus.Logger) ([]Step, error) {
	var cur *Step
	obs := carousel.ObserverFuncs{
		PageTurn:  func(i int) { cur.Turns = append(cur.Turns, i) },
		Threshold: func(d carousel.Direction) { cur.Thresholds = append(cur.Thresholds, d) },
	}

	c, err := carousel.New(s.Pages,
		carousel.WithParams(params),
		carousel.WithObserver(obs),
		carousel.WithContainerWidth(s.Width),
		carousel.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	steps := make([]Step, 0, len(s.Events))
	for i, ev := range s.Events {
		steps = append(steps, Step{Event: ev})
		cur = &steps[len(steps)-1]

		if strings.EqualFold(ev.Kind, KindResize) {
			c.SetContainerWidth(ev.Width)
			cur.Handled = true
		} else {
			action, err := ev.action()
			if err != nil {
				return steps[:len(steps)-1], fmt.Errorf("event %d: %w", i+1, err)
			}
			cur.Handled = input.Dispatch(c, action)
		}
		cur.Frame = c.View()
	}
	return steps, nil
}

// Print writes steps as a table
func Print(w io.Writer, steps []Step) error {
	rows := make([][]string, 0, len(steps))
	for i, st := range steps {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			describe(st.Event),
			strconv.FormatBool(st.Handled),
			fmt.Sprintf("%d/%d", st.Frame.FocusedIndex, st.Frame.PageCount),
			strconv.FormatFloat(st.Frame.OffsetPercent, 'f', 2, 64),
			strconv.FormatFloat(st.Frame.LiveOffset, 'f', 2, 64),
			st.Frame.Pending.String(),
			notes(st),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "EVENT", "HANDLED", "PAGE", "OFFSET%", "LIVE", "PENDING", "NOTIFY").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func describe(e Event) string {
	switch strings.ToLower(e.Kind) {
	case KindPress, KindMove:
		return fmt.Sprintf("%s %g,%g", e.Kind, e.X, e.Y)
	case KindJump:
		return fmt.Sprintf("jump %d", e.Index)
	case KindResize:
		return fmt.Sprintf("resize %g", e.Width)
	}
	return e.Kind
}

func notes(st Step) string {
	var parts []string
	for _, d := range st.Thresholds {
		parts = append(parts, "threshold "+d.String())
	}
	for _, i := range st.Turns {
		parts = append(parts, "turn "+strconv.Itoa(i))
	}
	return strings.Join(parts, ", ")
}
