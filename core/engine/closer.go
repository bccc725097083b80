package engine

import (
	"io"
	"sync"
)

// onceCloser closes the wrapped closer at most once.
type onceCloser struct {
	once sync.Once
	c    io.Closer
	err  error
}

func (o *onceCloser) Close() error {
	o.once.Do(func() {
		o.err = o.c.Close()
	})
	return o.err
}

// closerList tracks handles that must be released on every exit path.
type closerList struct {
	closers []*onceCloser
}

// add tracks c and returns a closer that may be closed early.
func (l *closerList) add(c io.Closer) io.Closer {
	oc := &onceCloser{c: c}
	l.closers = append(l.closers, oc)
	return oc
}

// Close releases every tracked handle that hasn't been closed yet.
func (l *closerList) Close() error {
	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
