package lispy

// Env is a lexical environment frame with an outer link. Lookups walk
// outward; frames never reference their children, so a call frame is
// reclaimed when the call returns unless a closure captured it.
type Env struct {
	table map[string]Value
	outer *Env
}

// NewEnv creates a new lexical frame with the given enclosing frame
// (which may be nil for a root).
func NewEnv(outer *Env) *Env {
	return &Env{table: make(map[string]Value), outer: outer}
}

// NewCallEnv creates the frame for a procedure call: parameter names zipped
// against argument values, enclosed by the procedure's captured environment.
// A count mismatch is an arity error.
func NewCallEnv(params []string, args []Value, outer *Env) (*Env, error) {
	if len(args) != len(params) {
		return nil, errf(ErrArity, "procedure expects %d arguments, got %d", len(params), len(args))
	}
	env := NewEnv(outer)
	for i, name := range params {
		env.table[name] = args[i]
	}
	return env, nil
}

// Define binds name to v in this frame, shadowing any outer binding.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Set updates the nearest existing binding of name to v, walking outward.
// If no visible frame binds name, Set fails (it never implicitly defines).
func (e *Env) Set(name string, v Value) error {
	if _, ok := e.table[name]; ok {
		e.table[name] = v
		return nil
	}
	if e.outer != nil {
		return e.outer.Set(name, v)
	}
	return errf(ErrName, "undefined variable: %s", name)
}

// Get retrieves the nearest visible binding for name, walking outward.
func (e *Env) Get(name string) (Value, error) {
	if v, ok := e.table[name]; ok {
		return v, nil
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return Value{}, errf(ErrName, "undefined variable: %s", name)
}
