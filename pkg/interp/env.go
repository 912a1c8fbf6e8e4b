package interp

// Environment is the runtime store: one int64 slot per declared name. It is
// built from a validated symbol table with every slot at 0, so a variable
// read before its first assignment yields 0 rather than an error.
type Environment struct {
	values map[string]int64
}

// NewEnvironment allocates a slot for every name in syms, initialized to 0.
func NewEnvironment(syms *SymbolTable) *Environment {
	values := make(map[string]int64, syms.Len())
	for _, name := range syms.Names() {
		values[name] = 0
	}
	return &Environment{values: values}
}

// Get returns the value of name and whether a slot for it exists.
func (e *Environment) Get(name string) (int64, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Set stores v into name's slot. It reports whether the slot exists; it never
// creates one, since the slots are fixed by the declarations.
func (e *Environment) Set(name string, v int64) bool {
	if _, ok := e.values[name]; !ok {
		return false
	}
	e.values[name] = v
	return true
}
