package commands

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/esh/core/engine"
	"github.com/josephlewis42/esh/core/parser"
	"github.com/josephlewis42/esh/core/vos"
)

// ErrUnsupported is returned for commands no group handles.
var ErrUnsupported = errors.New("unsupported command")

// Session is the interactive shell the builtins run inside.
type Session interface {
	// Exit asks the read-eval loop to stop after the current line.
	Exit()
	// History returns the lines entered so far, oldest first.
	History() []string
}

// Handler executes the commands of one group.
type Handler interface {
	Execute(id parser.CommandID, flags parser.Flags, args []string, ec *engine.Context) error
}

// HandlerGroup runs the builtins that belong to a single group.
type HandlerGroup struct {
	Group parser.Group

	dispatcher *Dispatcher
}

var _ Handler = (*HandlerGroup)(nil)

// Execute implements Handler. Failures are written to the context's error
// stream as "<command>: <message>" and returned.
func (h *HandlerGroup) Execute(id parser.CommandID, flags parser.Flags, args []string, ec *engine.Context) error {
	builtin, ok := LookupBuiltin(id)
	if !ok || parser.GroupOf(id) != h.Group {
		ec.Errorf("%s: %v", id, ErrUnsupported)
		return ErrUnsupported
	}

	if flags.Has(parser.FlagHelp) {
		builtin.PrintHelp(ec.Output())
		return nil
	}

	call := &Call{
		OS:      h.dispatcher.OS,
		Ctx:     ec,
		Flags:   flags,
		Args:    args,
		Session: h.dispatcher.Session,
		Color:   ColorPrinter{Mode: h.dispatcher.Color, ctx: ec},
	}
	if err := builtin.Run(call); err != nil {
		var already *reportedError
		if !errors.As(err, &already) {
			ec.Errorf("%s: %v", id, err)
		}
		return err
	}
	return nil
}

// Dispatcher routes resolved commands to their group's handler.
type Dispatcher struct {
	OS      vos.VOS
	Session Session
	// Color is the color mode: always, auto or never.
	Color string

	handlers map[parser.Group]Handler
}

var _ engine.Dispatcher = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher with the five builtin groups.
func NewDispatcher(virtOS vos.VOS, session Session) *Dispatcher {
	d := &Dispatcher{
		OS:       virtOS,
		Session:  session,
		Color:    ColorAuto,
		handlers: make(map[parser.Group]Handler),
	}
	for _, group := range []parser.Group{
		parser.GroupFileIO,
		parser.GroupProcess,
		parser.GroupEnvironment,
		parser.GroupShell,
		parser.GroupSystem,
	} {
		d.handlers[group] = &HandlerGroup{Group: group, dispatcher: d}
	}
	return d
}

// Dispatch implements engine.Dispatcher.
func (d *Dispatcher) Dispatch(id parser.CommandID, flags parser.Flags, args []string, ec *engine.Context) error {
	handler, ok := d.handlers[parser.GroupOf(id)]
	if !ok {
		err := fmt.Errorf("%s: %w", id, ErrUnsupported)
		ec.Errorf("esh: %v", err)
		return err
	}
	return handler.Execute(id, flags, args, ec)
}
