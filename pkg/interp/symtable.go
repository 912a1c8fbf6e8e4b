package interp

import (
	"fmt"
	"sort"
	"strings"
)

// Type is the declared type of a symbol. The language has exactly one.
type Type int

const TypeInt Type = iota

func (t Type) String() string {
	if t == TypeInt {
		return "int"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// SymbolTable maps declared variable names to their types. The language has a
// single flat global scope, so there is no scope stack: one table covers the
// whole program.
type SymbolTable struct {
	symbols map[string]Type
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]Type)}
}

// Declare records name with the given type. It reports whether the name was
// new; false means name was already declared and the table is unchanged.
func (s *SymbolTable) Declare(name string, typ Type) bool {
	if _, ok := s.symbols[name]; ok {
		return false
	}
	s.symbols[name] = typ
	return true
}

// IsDeclared reports whether name has been declared.
func (s *SymbolTable) IsDeclared(name string) bool {
	_, ok := s.symbols[name]
	return ok
}

// Lookup returns the type of name and whether it was found.
func (s *SymbolTable) Lookup(name string) (Type, bool) {
	typ, ok := s.symbols[name]
	return typ, ok
}

// Len returns the number of declared names.
func (s *SymbolTable) Len() int {
	return len(s.symbols)
}

// Names returns all declared names in sorted order.
func (s *SymbolTable) Names() []string {
	names := make([]string, 0, len(s.symbols))
	for name := range s.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns a deterministically ordered dump of the table.
func (s *SymbolTable) String() string {
	if len(s.symbols) == 0 {
		return "Symbols: (empty)\n"
	}
	var sb strings.Builder
	sb.WriteString("Symbols:\n")
	for _, name := range s.Names() {
		fmt.Fprintf(&sb, "  %-20s %s\n", name, s.symbols[name])
	}
	return sb.String()
}
