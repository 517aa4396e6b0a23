package codegen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupported    = errors.New("unsupported construct")
	ErrNotImplemented = errors.New("not implemented")
	ErrUnresolved     = errors.New("unresolved type reference")
	ErrDuplicate      = errors.New("duplicate definition")
	ErrDependency     = errors.New("depends on a failed object")
	ErrConfig         = errors.New("invalid generator config")
)

// ObjectError is a failure to generate one schema object in one unit.
type ObjectError struct {
	Unit   string
	Object string
	Err    error
}

func (e *ObjectError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Unit, e.Object, e.Err)
}

func (e *ObjectError) Unwrap() error {
	return e.Err
}

// Diagnostics collects every object failure of a run.
type Diagnostics []*ObjectError

func (d Diagnostics) Error() string {
	lines := make([]string, len(d))
	for i, e := range d {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// Err returns d as an error, or nil when nothing failed.
func (d Diagnostics) Err() error {
	if len(d) == 0 {
		return nil
	}
	return d
}

// Unwrap lets errors.Is see the individual causes.
func (d Diagnostics) Unwrap() []error {
	errs := make([]error, len(d))
	for i, e := range d {
		errs[i] = e
	}
	return errs
}
