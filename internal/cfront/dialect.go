package cfront

// Dialect configures the parser for one C-family shading language.
type Dialect struct {
	// Builtins are function names emitted as their own opcode instead of
	// a call.
	Builtins map[string]bool

	// Methods are member function names emitted as their own opcode with
	// the receiver as the first source operand.
	Methods map[string]bool

	// Void lists builtins and methods that produce no value. Their
	// statement calls are emitted without a destination.
	Void map[string]bool

	// Types are the names that construct a value when called.
	Types map[string]bool

	// Templated names take a <...> argument list before their call
	// arguments or declarator.
	Templated map[string]bool

	// Qualifiers precede the type in local declarations.
	Qualifiers map[string]bool

	// Attributes drops [[...]] attribute lists.
	Attributes bool

	// Templates allows <...> argument lists on type names in declarations.
	Templates bool
}

// Set builds a lookup set from names.
func Set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
