// File: metaopt/block.go
package metaopt

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Block is the raw, user-declared Meta block for one class: ordered option
// name to value pairs, consumed once during resolution and then replaced by
// the resolved *Options in the namespace.
type Block struct {
	keys   []string
	values map[string]any
}

// NewBlock creates an empty Meta block.
func NewBlock() *Block {
	return &Block{values: make(map[string]any)}
}

// Set stores a value under name, keeping the original position for existing
// names. Returns the block for chaining.
func (b *Block) Set(name string, value any) *Block {
	if _, exists := b.values[name]; !exists {
		b.keys = append(b.keys, name)
	}
	b.values[name] = value
	return b
}

// Get retrieves the raw value declared under name.
func (b *Block) Get(name string) (any, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Has reports whether name is declared.
func (b *Block) Has(name string) bool {
	_, ok := b.values[name]
	return ok
}

// Keys returns the declared names in declaration order.
func (b *Block) Keys() []string {
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)
	return keys
}

// Len returns the number of declared names.
func (b *Block) Len() int {
	return len(b.keys)
}

func (b *Block) String() string {
	return fmt.Sprintf("<Block options=%v>", b.keys)
}

// ParseBlock decodes a TOML document into a Meta block, preserving document
// order of the top-level keys. Nested tables become map values under their
// top-level key. The caller supplies the bytes; no file access happens here.
func ParseBlock(data []byte) (*Block, error) {
	raw := make(map[string]any)
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse meta block: %w", err)
	}

	block := NewBlock()
	for _, key := range md.Keys() {
		// md.Keys reports every key including those inside tables and dotted
		// keys; the first segment names the option, first appearance sets the
		// position.
		name := key[0]
		if block.Has(name) {
			continue
		}
		if value, exists := raw[name]; exists {
			block.Set(name, value)
		}
	}
	return block, nil
}
