// Package router keeps the stack of open screens and resolves named
// destinations into new screens on request.
package router

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/nrqlkit/nrqltutor/internal/screen"
	"github.com/nrqlkit/nrqltutor/internal/ui/toast"
)

// OpenStackedMsg stacks the screen built by the destination registered as
// Destination, passing State to its builder.
type OpenStackedMsg struct {
	Destination string
	State       any
}

// PopScreenMsg closes the active screen. The root screen is never closed.
type PopScreenMsg struct{}

// Destination builds a screen from the state carried by OpenStackedMsg.
type Destination func(state any) (screen.Screen, error)

type Router struct {
	stack []screen.Screen
	dests map[string]Destination
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}, dests: map[string]Destination{}}
}

// Register binds id to d. A later call with the same id wins.
func (r *Router) Register(id string, d Destination) { r.dests[id] = d }

func (r *Router) Depth() int { return len(r.stack) }

func (r *Router) Active() screen.Screen {
	if n := len(r.stack); n > 0 {
		return r.stack[n-1]
	}
	return nil
}

func (r *Router) push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

func (r *Router) pop() tea.Cmd {
	n := len(r.stack)
	if n < 2 {
		return nil
	}
	top := r.stack[n-1]
	r.stack[n-1] = nil
	r.stack = r.stack[:n-1]
	if c, ok := top.(screen.Closer); ok {
		c.Close()
	}
	return nil
}

func (r *Router) open(id string, state any) tea.Cmd {
	build, ok := r.dests[id]
	if !ok {
		return toast.Show(fmt.Sprintf("Unknown destination %q", id), toast.Critical)
	}
	s, err := build(state)
	if err != nil {
		return toast.Show(fmt.Sprintf("Cannot open %s: %v", id, err), toast.Critical)
	}
	return r.push(s)
}

// isInput reports whether msg came from the keyboard or mouse. Input belongs
// to the active screen alone.
func isInput(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg, tea.PasteMsg, tea.PasteStartMsg, tea.PasteEndMsg:
		return true
	}
	return false
}

// Update handles navigation messages itself. Input goes to the active
// screen. Anything else, such as query results and poll ticks, reaches every
// screen on the stack so covered screens stay current.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case OpenStackedMsg:
		return r.open(msg.Destination, msg.State)
	case PopScreenMsg:
		return r.pop()
	}
	n := len(r.stack)
	if n == 0 {
		return nil
	}
	if isInput(msg) {
		next, cmd := r.stack[n-1].Update(msg)
		r.stack[n-1] = next
		return cmd
	}
	cmds := make([]tea.Cmd, 0, n)
	for i, s := range r.stack {
		next, cmd := s.Update(msg)
		r.stack[i] = next
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (r *Router) View(width, height int) string {
	if s := r.Active(); s != nil {
		return s.View(width, height)
	}
	return ""
}
