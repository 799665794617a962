// File: metaopt/convenience.go
package metaopt

import "fmt"

// BuildClass builds a class with a single call: name, bases, Meta block, and
// default options factory. This is the recommended entry point when the full
// builder surface isn't needed.
func BuildClass(name string, bases []*Class, block *Block, factory OptionsFactory) (*Class, error) {
	return NewClassBuilder(name).
		WithBases(bases...).
		WithMeta(block).
		WithFactory(factory).
		Build()
}

// MustBuildClass is like BuildClass but panics on error.
func MustBuildClass(name string, bases []*Class, block *Block, factory OptionsFactory) *Class {
	cls, err := BuildClass(name, bases, block, factory)
	if err != nil {
		panic(fmt.Sprintf("class build failed: %v", err))
	}
	return cls
}

// Resolve applies the factory selected for d (via the FactoryAttr lookup,
// falling back to def) and returns the resolved options. Exposed for hosts
// that manage descriptors themselves instead of using ClassBuilder.
func Resolve(d *Descriptor, def OptionsFactory) (*Options, error) {
	return Apply(d, def, "")
}
