package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// reportedError marks a failure the builtin already wrote to the error
// stream itself.
type reportedError struct {
	err error
}

func (r *reportedError) Error() string {
	return r.err.Error()
}

func (r *reportedError) Unwrap() error {
	return r.err
}

func reported(err error) error {
	return &reportedError{err: err}
}

// unwrapPathError drops the operation and path from filesystem errors,
// builtins print the path themselves.
func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err
	}
	return err
}

// pathError formats err as "NAME: reason".
func pathError(name string, err error) error {
	return fmt.Errorf("%s: %w", name, unwrapPathError(err))
}
