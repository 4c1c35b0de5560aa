// Package checkpoint decorates errors with the file and line of the call
// site, building something similar to a stack trace out of plain wrapped
// errors. Every error attached to a checkpoint stays visible to errors.Is
// and errors.As.
package checkpoint

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
)

// From wraps err in a checkpoint carrying the caller's position.
// It returns nil if err is nil.
func From(err error) error {
	// io.EOF and io.ErrUnexpectedEOF must stay comparable by ==.
	// https://github.com/golang/go/issues/39155
	if err == nil || err == io.EOF || err == io.ErrUnexpectedEOF {
		return err
	}

	return newCheckpoint(err, nil)
}

// Wrap attaches kind to prev and records the caller's position. kind is
// meant to be a predeclared sentinel so that callers can match it with
// errors.Is while prev keeps the underlying cause:
//
//	var ErrReadDir = errors.New("could not read the directory")
//
//	func readDir() error {
//		if err := doRead(); err != nil {
//			return checkpoint.Wrap(err, ErrReadDir)
//		}
//		...
//	}
//
// Wrap returns nil if prev is nil, so it can wrap a function's result
// unconditionally.
func Wrap(prev, kind error) error {
	if prev == io.EOF {
		return io.EOF
	}
	if prev == nil {
		return nil
	}

	return newCheckpoint(kind, prev)
}

func newCheckpoint(err, prev error) error {
	// Skip the exported wrapper and this helper.
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "unknown", 0
	}

	return &checkpoint{
		err:  err,
		prev: prev,
		file: filepath.Base(file),
		line: line,
	}
}

type checkpoint struct {
	err  error
	prev error

	file string
	line int
}

func (c *checkpoint) Error() string {
	switch {
	case c.err == nil:
		return fmt.Sprintf("%s:%d: %v", c.file, c.line, c.prev)
	case c.prev == nil:
		return fmt.Sprintf("%s:%d: %v", c.file, c.line, c.err)
	}
	return fmt.Sprintf("%s:%d: %v: %v", c.file, c.line, c.err, c.prev)
}

func (c *checkpoint) Unwrap() error {
	if c.prev != nil {
		return c.prev
	}
	return c.err
}

func (c *checkpoint) Is(target error) bool {
	return c.err != nil && errors.Is(c.err, target)
}

func (c *checkpoint) As(target interface{}) bool {
	return c.err != nil && errors.As(c.err, target)
}
