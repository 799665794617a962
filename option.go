// File: metaopt/option.go
package metaopt

import (
	"fmt"
)

// ValueFunc overrides the standard resolution of one option. block is the
// class's own Meta block (nil when absent), parent the nearest ancestor's
// resolved options (nil when absent).
type ValueFunc func(block *Block, parent *Options, d *Descriptor) any

// CheckFunc validates the resolved value for one option. A non-nil error
// aborts resolution and surfaces as an *InvalidOptionValueError.
type CheckFunc func(value any, d *Descriptor) error

// ContributeFunc lets an option mutate the pending class after resolution,
// e.g. writing a normalized flag back into the namespace.
type ContributeFunc func(d *Descriptor, value any)

// Option is the schema for one recognized Meta option: a name, a default,
// whether the value is inherited from the nearest ancestor, and optional
// hooks. An option named "_" is resolved and checked but never stored.
type Option struct {
	Name    string
	Default any
	Inherit bool

	Value      ValueFunc
	Check      CheckFunc
	Contribute ContributeFunc
}

// resolve computes the final value for this option: the Value hook when set,
// otherwise default, then inherited parent value, then the block's own value,
// later sources overriding earlier ones.
func (o Option) resolve(block *Block, parent *Options, d *Descriptor) any {
	if o.Value != nil {
		return o.Value(block, parent, d)
	}
	return resolveOption(o.Name, o.Default, o.Inherit, block, parent)
}

// resolveOption is the standard precedence ladder, also usable from custom
// Value hooks that only override part of the behavior.
func resolveOption(name string, def any, inherit bool, block *Block, parent *Options) any {
	value := def
	if inherit && parent != nil {
		if v, ok := parent.Get(name); ok {
			value = v
		}
	}
	if block != nil {
		if v, ok := block.Get(name); ok {
			value = v
		}
	}
	return value
}

func (o Option) String() string {
	return fmt.Sprintf("<Option name=%q default=%v inherit=%t>", o.Name, o.Default, o.Inherit)
}

// AbstractOption returns the spec for the "abstract" option. The namespace
// flag wins over the Meta block; only bool values pass validation; after
// resolution the flag is rewritten so flag and option always agree.
func AbstractOption() Option {
	return Option{
		Name:    "abstract",
		Default: false,
		Value: func(block *Block, parent *Options, d *Descriptor) any {
			if v, ok := d.Namespace.Get(AbstractFlag); ok {
				b, isBool := v.(bool)
				return isBool && b
			}
			return resolveOption("abstract", false, false, block, parent)
		},
		Check: func(value any, d *Descriptor) error {
			if _, isBool := value.(bool); !isBool {
				return fmt.Errorf("abstract must be a bool, got %T", value)
			}
			return nil
		},
		Contribute: func(d *Descriptor, value any) {
			b, _ := value.(bool)
			d.Namespace.Set(AbstractFlag, b)
		},
	}
}
