package grid

import (
	"context"
	"fmt"

	"github.com/reusee/intcode/intvm"
)

// Controller drives a robot across an unbounded grid, asking the machine what to paint and
// where to turn.
type Controller struct {
	VM       *intvm.VM
	Panels   map[Point]Color
	Position Point
	Facing   Direction
	Steps    int
}

func NewController(vm *intvm.VM, start Color) *Controller {
	c := &Controller{
		VM:     vm,
		Panels: make(map[Point]Color),
		Facing: Up,
	}
	if start != Black {
		c.Panels[c.Position] = start
	}
	return c
}

// Color reports the color of p; cells never painted are black.
func (c *Controller) Color(p Point) Color {
	return c.Panels[p]
}

// Painted counts the distinct cells holding a color.
func (c *Controller) Painted() int {
	return len(c.Panels)
}

// Run feeds the current cell color, then applies a paint and a turn, until the machine halts.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.VM.PushInput(int64(c.Color(c.Position)))

		paint, halted, err := c.next()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
		if paint != int64(Black) && paint != int64(White) {
			return fmt.Errorf("step %d, value %d: %w", c.Steps, paint, ErrBadColor)
		}

		c.Panels[c.Position] = Color(paint)

		turn, halted, err := c.next()
		if err != nil {
			return err
		}
		if halted {
			return fmt.Errorf("step %d: %w", c.Steps, ErrTruncated)
		}
		facing, ok := c.Facing.Turn(turn)
		if !ok {
			return fmt.Errorf("step %d, value %d: %w", c.Steps, turn, ErrBadTurn)
		}

		c.Facing = facing
		c.Position = c.Position.Add(c.Facing.Step())
		c.Steps++
	}
}

func (c *Controller) next() (value int64, halted bool, err error) {
	interrupt, err := c.VM.Resume()
	if err != nil {
		return 0, false, fmt.Errorf("step %d: %w", c.Steps, err)
	}
	switch {
	case interrupt.Halt:
		return 0, true, nil
	case interrupt.Input:
		return 0, false, fmt.Errorf("step %d: %w", c.Steps, ErrStalled)
	}
	return interrupt.Value, false, nil
}
