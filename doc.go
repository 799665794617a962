// File: metaopt/doc.go

// Package metaopt provides declarative class-construction helpers: typed,
// inheritable, validated meta options resolved over a class hierarchy, a
// two-phase class builder, a protected-member naming guard, and a
// process-wide singleton registry.
//
// Features:
//   - Ordered meta option specs with defaults, inheritance, and validation hooks
//   - Resolution precedence: own Meta block > inherited value > default
//   - Unknown-key detection listing every offending option, sorted
//   - Per-subtree options factory selection via deep attribute lookup
//   - Deep attribute lookup over a pending namespace plus base classes
//   - Fluent ClassBuilder with validators (Build / MustBuild)
//   - TOML ingestion of Meta blocks (declaration order preserved)
//   - Struct decoding of resolved options via mapstructure
//   - Thread-safe singleton registry with designation and derived lookup
//
// Quick Start:
//
//	factory := func() *metaopt.Options {
//	    return metaopt.NewOptions(
//	        metaopt.AbstractOption(),
//	        metaopt.Option{Name: "table", Default: "", Inherit: true},
//	    )
//	}
//
//	base, err := metaopt.NewClassBuilder("Model").
//	    WithModule("app.models").
//	    WithFactory(factory).
//	    WithAbstract().
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	user, err := metaopt.NewClassBuilder("User").
//	    WithBases(base).
//	    WithMeta(metaopt.NewBlock().Set("table", "users")).
//	    Build()
//
//	table, _ := user.Meta().String("table") // "users"
//
// Resolution Precedence (highest to lowest):
//  1. The class's own Meta block
//  2. The nearest ancestor's resolved value (only for Inherit options)
//  3. The option default
//
// Thread Safety:
// Class building and option resolution operate on one descriptor at a time
// and hold no shared state. The singleton Registry is guarded by a single
// mutex and is safe for concurrent use.
package metaopt
