// File: metaopt/errors.go
package metaopt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotRegistered is returned by the singleton registry when a class name
// has never been registered.
var ErrNotRegistered = errors.New("singleton class not registered")

// AttributeError is returned by deep attribute lookup when a name is found
// neither in the pending namespace nor in any base class and no default was
// supplied.
type AttributeError struct {
	Class string
	Name  string
}

func (e *AttributeError) Error() string {
	if e.Class == "" {
		return fmt.Sprintf("attribute %q not found", e.Name)
	}
	return fmt.Sprintf("class %s has no attribute %q", e.Class, e.Name)
}

// UnknownOptionsError is returned when a Meta block references options with
// no matching spec. Options holds every offending name, sorted alphabetically.
type UnknownOptionsError struct {
	Class   string
	Options []string
}

func (e *UnknownOptionsError) Error() string {
	return fmt.Sprintf("Meta block for %s got unknown option(s): %s",
		e.Class, strings.Join(e.Options, ", "))
}

// InvalidOptionValueError is returned when an option's validation hook
// rejects the resolved value.
type InvalidOptionValueError struct {
	Class  string
	Option string
	Value  any
	Err    error
}

func (e *InvalidOptionValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid value for meta option %q on %s: %v",
			e.Option, e.Class, e.Err)
	}
	return fmt.Sprintf("invalid value %v (type %T) for meta option %q on %s",
		e.Value, e.Value, e.Option, e.Class)
}

func (e *InvalidOptionValueError) Unwrap() error { return e.Err }

// DuplicateOptionError signals a programming error: two specs in one factory
// share a name. Resolution aborts immediately.
type DuplicateOptionError struct {
	Class  string
	Option string
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("duplicate meta option %q while resolving %s", e.Option, e.Class)
}

// NamingConventionError is returned by the protected-member guard when a
// declared member name does not start with the protected prefix.
type NamingConventionError struct {
	Class  string
	Member string
}

func (e *NamingConventionError) Error() string {
	return fmt.Sprintf("%s.%s must be protected (rename to %s._%s)",
		e.Class, e.Member, e.Class, e.Member)
}
