// File: metaopt/namespace.go
package metaopt

// Namespace is the mutable attribute mapping of a class under construction.
// Insertion order is preserved so option hooks and the naming guard observe
// members in declaration order.
type Namespace struct {
	keys   []string
	values map[string]any
}

// NewNamespace creates an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{values: make(map[string]any)}
}

// Set stores a value under key, keeping the key's original position if it
// already exists. Returns the namespace for chaining.
func (ns *Namespace) Set(key string, value any) *Namespace {
	if _, exists := ns.values[key]; !exists {
		ns.keys = append(ns.keys, key)
	}
	ns.values[key] = value
	return ns
}

// Get retrieves the value stored under key.
func (ns *Namespace) Get(key string) (any, bool) {
	v, ok := ns.values[key]
	return v, ok
}

// Has reports whether key is present.
func (ns *Namespace) Has(key string) bool {
	_, ok := ns.values[key]
	return ok
}

// Delete removes key and its value. Deleting an absent key is a no-op.
func (ns *Namespace) Delete(key string) {
	if _, exists := ns.values[key]; !exists {
		return
	}
	delete(ns.values, key)
	for i, k := range ns.keys {
		if k == key {
			ns.keys = append(ns.keys[:i], ns.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (ns *Namespace) Keys() []string {
	keys := make([]string, len(ns.keys))
	copy(keys, ns.keys)
	return keys
}

// Len returns the number of stored keys.
func (ns *Namespace) Len() int {
	return len(ns.keys)
}

// Clone returns a shallow copy of the namespace.
func (ns *Namespace) Clone() *Namespace {
	clone := NewNamespace()
	for _, key := range ns.keys {
		clone.Set(key, ns.values[key])
	}
	return clone
}
