package visualization

import (
	"context"
	"fmt"
	"io"

	"github.com/Readm/csma_slotsim/visual"
)

// ConsoleVisualizer writes each published replay frame as one text line,
// standing in for a desktop GUI in a headless-first tool. It has no
// operator input of its own, so NextCommand/WaitCommand always report
// none; control still flows through the ordinary /api/control path.
type ConsoleVisualizer struct {
	w        io.Writer
	headless bool
}

// NewConsoleVisualizer creates a visualizer that writes to w.
func NewConsoleVisualizer(w io.Writer) *ConsoleVisualizer {
	return &ConsoleVisualizer{w: w}
}

func (c *ConsoleVisualizer) SetHeadless(headless bool) { c.headless = headless }
func (c *ConsoleVisualizer) IsHeadless() bool          { return c.headless }

// PublishFrame writes frame's default string form. The replay player passes
// a ReplayFrame value; the visualizer accepts any type so it depends only on
// visual, never on the web package's frame types.
func (c *ConsoleVisualizer) PublishFrame(frame any) {
	fmt.Fprintf(c.w, "%v\n", frame)
}

func (c *ConsoleVisualizer) NextCommand() (visual.ControlCommand, bool) {
	return visual.ControlCommand{Type: visual.CommandNone}, false
}

func (c *ConsoleVisualizer) WaitCommand(ctx context.Context) (visual.ControlCommand, bool) {
	select {
	case <-ctx.Done():
		return visual.ControlCommand{Type: visual.CommandNone}, false
	default:
		return visual.ControlCommand{Type: visual.CommandNone}, false
	}
}
