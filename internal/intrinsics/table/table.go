// Package table holds the Identifier Table: the ordered list of intrinsic
// names indexed by intrinsic ID.
package table

import (
	"errors"
	"fmt"
	"iter"
)

// Sentinel is the name stored at ID 0. It does not name a real intrinsic.
const Sentinel = "not_intrinsic"

var (
	ErrMissingSentinel = errors.New("first entry must be " + Sentinel)
	ErrEmptyName       = errors.New("empty intrinsic name")
	ErrDuplicateName   = errors.New("duplicate intrinsic name")
)

// Table is an immutable, ordered sequence of intrinsic names. The position
// of a name is its intrinsic ID.
type Table struct {
	names []string
}

// New validates names and returns a Table holding a private copy of them.
// An empty slice yields an empty table. Otherwise names[0] must be the
// sentinel and every other entry must be non-empty and unique.
func New(names []string) (*Table, error) {
	if len(names) == 0 {
		return &Table{}, nil
	}
	if names[0] != Sentinel {
		return nil, fmt.Errorf("invalid intrinsic table: %w (got %q)", ErrMissingSentinel, names[0])
	}

	seen := make(map[string]int, len(names))
	for id, name := range names {
		if name == "" {
			return nil, fmt.Errorf("invalid intrinsic table: %w at index %d", ErrEmptyName, id)
		}
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("invalid intrinsic table: %w %q at index %d (first seen at %d)", ErrDuplicateName, name, id, prev)
		}
		seen[name] = id
	}

	return &Table{names: append([]string(nil), names...)}, nil
}

// Default returns the table built from the generated LLVM name list.
func Default() *Table {
	t, err := New(generatedNames)
	if err != nil {
		// names_gen.go is broken
		panic(err)
	}
	return t
}

// Len returns the number of entries. A nil *Table is empty.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Names yields every name in ID order, the sentinel included. A nil *Table
// yields nothing.
func (t *Table) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		if t == nil {
			return
		}
		for _, name := range t.names {
			if !yield(name) {
				return
			}
		}
	}
}
