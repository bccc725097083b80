package commands

import (
	"bytes"
	"testing"

	"github.com/josephlewis42/esh/core/engine"
	"github.com/josephlewis42/esh/core/parser"
	"github.com/josephlewis42/esh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestDispatcher_unknownGroup(t *testing.T) {
	var out bytes.Buffer
	ec := engine.NewContext(nil, &out, &out)
	d := NewDispatcher(vostest.NewDeterministicOS(), &fakeSession{})

	err := d.Dispatch(parser.Unresolved, 0, nil, ec)

	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, "esh: unresolved: unsupported command\n", out.String())
}

func TestHandlerGroup_wrongGroup(t *testing.T) {
	var out bytes.Buffer
	ec := engine.NewContext(nil, &out, &out)
	d := NewDispatcher(vostest.NewDeterministicOS(), &fakeSession{})
	handler := &HandlerGroup{Group: parser.GroupSystem, dispatcher: d}

	err := handler.Execute(parser.CmdLs, 0, nil, ec)

	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, "ls: unsupported command\n", out.String())
}

func TestHandlerGroup_helpSkipsRun(t *testing.T) {
	var out bytes.Buffer
	ec := engine.NewContext(nil, &out, &out)
	session := &fakeSession{}
	d := NewDispatcher(vostest.NewDeterministicOS(), session)

	err := d.Dispatch(parser.CmdExit, parser.FlagHelp, nil, ec)

	assert.NoError(t, err)
	assert.False(t, session.exited)
	assert.Contains(t, out.String(), "usage: exit\nExit the shell.\n")
}

func TestDispatcher_colorAlways(t *testing.T) {
	sh := newTestShell(t, map[string]string{"docs/readme.md": "x"})
	sh.Executor.Dispatcher.(*Dispatcher).Color = ColorAlways

	out, err := sh.Run(t, "ls > listing.txt")

	assert.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "\x1b[34;1mdocs\x1b[0m  \x1b[97mlisting.txt\x1b[0m\n", sh.ReadFile(t, "listing.txt"))
}
