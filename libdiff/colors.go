package libdiff

import (
	"fmt"

	"github.com/fatih/color"
)

// Colors maps diff operations to sprint functions.
type Colors struct {
	Default func(...any) string
	Map     map[Op]func(...any) string
}

// NewColors returns the default diff colors. They are applied even when
// stdout is not a terminal; callers decide whether to use colors at all.
func NewColors() *Colors {
	return &Colors{
		Default: fmt.Sprint,
		Map: map[Op]func(...any) string{
			Delete: forced(color.New(color.FgRed)),
			Insert: forced(color.New(color.FgGreen)),
		},
	}
}

func forced(c *color.Color) func(...any) string {
	c.EnableColor()
	return c.SprintFunc()
}

func (c *Colors) Sprint(op Op, s string) string {
	if f, ok := c.Map[op]; ok {
		return f(s)
	}
	return c.Default(s)
}
