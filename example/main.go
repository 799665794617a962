// FILE: metaopt/example/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"

	"metaopt"
)

// modelFactory recognizes the option set shared by every model class.
func modelFactory() *metaopt.Options {
	return metaopt.NewOptions(
		metaopt.AbstractOption(),
		metaopt.Option{Name: "table", Default: "", Inherit: false},
		metaopt.Option{Name: "pk", Default: "id", Inherit: true},
		metaopt.Option{Name: "lazy", Default: true, Inherit: true},
	)
}

func main() {
	// =========================================================================
	// PART 1: AN ABSTRACT BASE CLASS WITH A META OPTIONS FACTORY
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Building the abstract Model base class...")

	model, err := metaopt.NewClassBuilder("Model").
		WithModule("app.models").
		WithFactory(modelFactory).
		WithAbstract().
		Build()
	if err != nil {
		log.Fatalf("❌ Failed to build Model: %v", err)
	}
	log.Printf("✅ Built %s, options: %s", model.QualifiedName(), model.Meta().Debug())

	// =========================================================================
	// PART 2: A SUBCLASS WITH ITS OWN META BLOCK, PARSED FROM TOML
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Building User with a TOML Meta block...")

	block, err := metaopt.ParseBlock([]byte(`
table = "users"
lazy = false
`))
	if err != nil {
		log.Fatalf("❌ Failed to parse Meta block: %v", err)
	}

	user, err := metaopt.NewClassBuilder("User").
		WithModule("app.models").
		WithBases(model).
		WithMeta(block).
		Build()
	if err != nil {
		log.Fatalf("❌ Failed to build User: %v", err)
	}

	table, _ := user.Meta().String("table")
	pk, _ := user.Meta().String("pk")
	lazy, _ := user.Meta().Bool("lazy")
	abstract, _ := user.Meta().Bool("abstract")
	log.Printf("✅ Built %s: table=%q pk=%q lazy=%t abstract=%t",
		user.QualifiedName(), table, pk, lazy, abstract)

	// Decode the resolved options into a typed struct.
	var settings struct {
		Table string `meta:"table"`
		PK    string `meta:"pk"`
		Lazy  bool   `meta:"lazy"`
	}
	if err := user.Meta().Scan(&settings); err != nil {
		log.Fatalf("❌ Failed to scan options: %v", err)
	}
	log.Printf("   Scanned into struct: %+v", settings)

	// =========================================================================
	// PART 3: THE SINGLETON REGISTRY
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Singleton registry with a designated subclass...")

	registry := metaopt.NewRegistry().
		WithLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())

	type app struct{ name string }

	must(registry.Register("App", "", func() any { return &app{name: "App"} }))
	must(registry.Register("CustomApp", "App", func() any { return &app{name: "CustomApp"} }))
	must(registry.SetSingletonClass("App", "CustomApp"))

	instance, err := registry.Instance("App")
	if err != nil {
		log.Fatalf("❌ Failed to obtain singleton: %v", err)
	}
	log.Printf("✅ Obtained singleton: %s", instance.(*app).name)

	// A late designation is dropped with a warning and the instance survives.
	must(registry.Register("LateApp", "CustomApp", func() any { return &app{name: "LateApp"} }))
	must(registry.SetSingletonClass("App", "LateApp"))

	again, _ := registry.Instance("App")
	fmt.Printf("Same instance after late designation: %t\n", instance == again)
}

func must(err error) {
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
}
