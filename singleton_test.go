// FILE: metaopt/singleton_test.go
package metaopt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type singletonFixture struct{ name string }

func registerChain(t *testing.T, r *Registry, names ...string) {
	t.Helper()
	parent := ""
	for _, name := range names {
		name := name
		require.NoError(t, r.Register(name, parent, func() any {
			return &singletonFixture{name: name}
		}))
		parent = name
	}
}

// TestRegistryRegister tests singleton class registration
func TestRegistryRegister(t *testing.T) {
	t.Run("DuplicateName", func(t *testing.T) {
		r := NewRegistry()
		registerChain(t, r, "Single")
		err := r.Register("Single", "", func() any { return nil })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("UnknownParent", func(t *testing.T) {
		r := NewRegistry()
		err := r.Register("Second", "Single", func() any { return nil })
		require.ErrorIs(t, err, ErrNotRegistered)
	})

	t.Run("MissingConstructor", func(t *testing.T) {
		r := NewRegistry()
		require.Error(t, r.Register("Single", "", nil))
		require.Error(t, r.Register("", "", func() any { return nil }))
	})
}

// TestRegistryInstance tests per-class singleton instantiation
func TestRegistryInstance(t *testing.T) {
	t.Run("SameInstanceEveryCall", func(t *testing.T) {
		r := NewRegistry()
		registerChain(t, r, "Single")

		first, err := r.Instance("Single")
		require.NoError(t, err)
		second, err := r.Instance("Single")
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("SubclassesAreIndependentWithoutDesignation", func(t *testing.T) {
		r := NewRegistry()
		registerChain(t, r, "Single", "Second")

		single, err := r.Instance("Single")
		require.NoError(t, err)
		second, err := r.Instance("Second")
		require.NoError(t, err)

		assert.NotSame(t, single, second)
		assert.Equal(t, "Single", single.(*singletonFixture).name)
		assert.Equal(t, "Second", second.(*singletonFixture).name)
	})

	t.Run("NotRegistered", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.Instance("Nope")
		require.ErrorIs(t, err, ErrNotRegistered)
	})

	t.Run("InstanceIfExists", func(t *testing.T) {
		r := NewRegistry()
		registerChain(t, r, "Single")

		_, ok := r.InstanceIfExists("Single")
		assert.False(t, ok)

		created, err := r.Instance("Single")
		require.NoError(t, err)

		existing, ok := r.InstanceIfExists("Single")
		require.True(t, ok)
		assert.Same(t, created, existing)
	})
}

// TestSetSingletonClass tests designation across the hierarchy
func TestSetSingletonClass(t *testing.T) {
	t.Run("RootObtainsDesignatedSubclass", func(t *testing.T) {
		r := NewRegistry()
		registerChain(t, r, "Single", "Second")
		require.NoError(t, r.SetSingletonClass("Single", "Second"))

		single, err := r.Instance("Single")
		require.NoError(t, err)
		assert.Equal(t, "Second", single.(*singletonFixture).name)

		second, err := r.Instance("Second")
		require.NoError(t, err)
		assert.Same(t, single, second)
	})

	t.Run("MidChainDesignationReachesRoot", func(t *testing.T) {
		r := NewRegistry()
		registerChain(t, r, "Single", "Second", "Third")
		require.NoError(t, r.SetSingletonClass("Second", "Third"))

		single, err := r.Instance("Single")
		require.NoError(t, err)
		assert.Equal(t, "Third", single.(*singletonFixture).name)

		second, _ := r.Instance("Second")
		third, _ := r.Instance("Third")
		assert.Same(t, single, second)
		assert.Same(t, single, third)
	})

	t.Run("NotASubclass", func(t *testing.T) {
		r := NewRegistry()
		registerChain(t, r, "Single", "Second")
		registerChain(t, r, "Other")

		err := r.SetSingletonClass("Single", "Other")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a subclass")
	})

	t.Run("UnknownNames", func(t *testing.T) {
		r := NewRegistry()
		registerChain(t, r, "Single")
		require.ErrorIs(t, r.SetSingletonClass("Nope", "Single"), ErrNotRegistered)
		require.ErrorIs(t, r.SetSingletonClass("Single", "Nope"), ErrNotRegistered)
	})

	t.Run("LateDesignationWarnsAndKeepsInstance", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRegistry().WithLogger(zerolog.New(&buf))
		registerChain(t, r, "Single", "Second", "Third")
		require.NoError(t, r.SetSingletonClass("Single", "Second"))

		single, err := r.Instance("Single")
		require.NoError(t, err)
		assert.Equal(t, "Second", single.(*singletonFixture).name)

		// Too late: an instance already exists for Single.
		require.NoError(t, r.SetSingletonClass("Single", "Third"))

		warnings := 0
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.Contains(line, `"level":"warn"`) {
				warnings++
				assert.Contains(t, line, "an instance of the singleton Single has already been created")
				assert.Contains(t, line, "set Third earlier")
			}
		}
		assert.Equal(t, 1, warnings)

		again, err := r.Instance("Single")
		require.NoError(t, err)
		assert.Same(t, single, again)
		assert.Equal(t, "Second", again.(*singletonFixture).name)
	})
}

// TestDerivedInstance tests the subclassable variant
func TestDerivedInstance(t *testing.T) {
	t.Run("WalksFirstRegisteredChain", func(t *testing.T) {
		r := NewRegistry()
		registerChain(t, r, "Single", "Second", "Third")

		derived, err := r.DerivedInstance("Single")
		require.NoError(t, err)
		assert.Equal(t, "Third", derived.(*singletonFixture).name)

		// The most derived class caches the instance for its own lookups too.
		third, err := r.Instance("Third")
		require.NoError(t, err)
		assert.Same(t, derived, third)
	})

	t.Run("FirstRegisteredChildWins", func(t *testing.T) {
		r := NewRegistry()
		registerChain(t, r, "Single")
		require.NoError(t, r.Register("A", "Single", func() any { return &singletonFixture{name: "A"} }))
		require.NoError(t, r.Register("B", "Single", func() any { return &singletonFixture{name: "B"} }))

		derived, err := r.DerivedInstance("Single")
		require.NoError(t, err)
		assert.Equal(t, "A", derived.(*singletonFixture).name)
	})

	t.Run("DesignationOverridesWalk", func(t *testing.T) {
		r := NewRegistry()
		registerChain(t, r, "Single", "Second", "Third")
		require.NoError(t, r.SetSingletonClass("Single", "Second"))

		derived, err := r.DerivedInstance("Single")
		require.NoError(t, err)
		assert.Equal(t, "Second", derived.(*singletonFixture).name)
	})

	t.Run("NoSubclasses", func(t *testing.T) {
		r := NewRegistry()
		registerChain(t, r, "Single")

		derived, err := r.DerivedInstance("Single")
		require.NoError(t, err)
		assert.Equal(t, "Single", derived.(*singletonFixture).name)
	})
}

// TestDefaultRegistry smoke-tests the package-level helpers
func TestDefaultRegistry(t *testing.T) {
	require.NoError(t, RegisterSingleton("metaopt_test.Root", "", func() any {
		return &singletonFixture{name: "Root"}
	}))
	require.NoError(t, RegisterSingleton("metaopt_test.Leaf", "metaopt_test.Root", func() any {
		return &singletonFixture{name: "Leaf"}
	}))
	require.NoError(t, SetSingletonClass("metaopt_test.Root", "metaopt_test.Leaf"))

	instance, err := Singleton("metaopt_test.Root")
	require.NoError(t, err)
	assert.Equal(t, "Leaf", instance.(*singletonFixture).name)

	derived, err := DerivedSingleton("metaopt_test.Root")
	require.NoError(t, err)
	assert.Same(t, instance, derived)

	_, err = Singleton("metaopt_test.Unknown")
	require.ErrorIs(t, err, ErrNotRegistered)
}
