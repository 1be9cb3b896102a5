package scan

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/dekarrin/llkrt/tables"
)

// Context holds a scanner's active mode and mode stack (§4.2 of the
// runtime's scanning contract). The mode stack is backed by
// emirpasic/gods's arraystack, the LIFO member of the same container
// family the pack's lr/tables builds on.
type Context struct {
	modes   []tables.ScannerMode
	current int
	stack   *arraystack.Stack
}

// NewContext builds a Context over the given modes. Scanning always begins
// in mode 0 with an empty mode stack.
func NewContext(modes []tables.ScannerMode) *Context {
	return &Context{
		modes:   modes,
		current: 0,
		stack:   arraystack.New(),
	}
}

// CurrentMode returns the index of the active mode.
func (c *Context) CurrentMode() int {
	return c.current
}

// CurrentDFA returns the DFA of the active mode.
func (c *Context) CurrentDFA() tables.DFA {
	return c.modes[c.current].DFA
}

// HandleModeTransition looks up the first ModeTransition entry of the
// current mode whose TokenType matches tokenType and applies its action:
// ModeSetMode switches the current mode; ModePushMode pushes the current
// mode then switches; ModePopMode pops into the current mode, silently
// doing nothing if the stack is empty. If no matching entry is found, the
// mode is left unchanged.
func (c *Context) HandleModeTransition(tokenType int) {
	mode := c.modes[c.current]

	for _, mt := range mode.ModeTransitions {
		if mt.TokenType != tokenType {
			continue
		}

		switch mt.Action.Kind {
		case tables.ModeSetMode:
			c.current = mt.Action.Target
		case tables.ModePushMode:
			c.stack.Push(c.current)
			c.current = mt.Action.Target
		case tables.ModePopMode:
			if top, ok := c.stack.Pop(); ok {
				c.current = top.(int)
			}
		}
		return
	}
}
