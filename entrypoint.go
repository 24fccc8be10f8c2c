package tezos

// Parameter is one argument slot of an entry point.
type Parameter struct {
	// Name comes from a type or field annotation; empty when unannotated.
	Name string

	// Type is the Michelson type, with wrapped types rendered as
	// "option (int)" or "map (string) (nat)".
	Type string
}

// EntryPoint is one invocable branch of a contract's parameter type.
// EntryPoint is immutable and safe for concurrent use.
type EntryPoint struct {
	name       string
	parameters []Parameter
	template   Expr
}

// Invocation is an entry point name paired with the argument value to send to it.
type Invocation struct {
	EntryPoint string
	Value      string
}

// Name returns the entry point name derived from annotations, possibly
// dot-prefixed by an enclosing or annotation. Empty when unannotated.
func (e *EntryPoint) Name() string {
	return e.name
}

// Parameters returns a copy of the ordered parameter list.
func (e *EntryPoint) Parameters() []Parameter {
	params := make([]Parameter, len(e.parameters))
	copy(params, e.parameters)
	return params
}

// Template returns the invocation template.
func (e *EntryPoint) Template() Expr {
	return e.template
}

// Structure returns the invocation template with a ParamPlaceholder for
// every parameter, e.g. "(Left (Pair $PARAM $PARAM))".
func (e *EntryPoint) Structure() string {
	return render(e.template, nil)
}

// InvocationString substitutes args, in parameter order, into the template
// and returns the full Left/Right/Pair expression.
func (e *EntryPoint) InvocationString(args ...string) (string, error) {
	if len(args) != len(e.parameters) {
		return "", &ArityError{EntryPoint: e.name, Expected: len(e.parameters), Got: len(args)}
	}
	return render(e.template, args), nil
}

// MustInvocationString is like InvocationString but panics on error.
func (e *EntryPoint) MustInvocationString(args ...string) string {
	s, err := e.InvocationString(args...)
	if err != nil {
		panic(err)
	}
	return s
}

// InvocationPair builds the invocation and strips the outer Left/Right
// wrappers, pairing the remaining value with the entry point name.
func (e *EntryPoint) InvocationPair(args ...string) (Invocation, error) {
	if len(args) != len(e.parameters) {
		return Invocation{}, &ArityError{EntryPoint: e.name, Expected: len(e.parameters), Got: len(args)}
	}

	expr := e.template
	for wrapped := true; wrapped; {
		switch branch := expr.(type) {
		case LeftExpr:
			expr = branch.Inner
		case RightExpr:
			expr = branch.Inner
		default:
			wrapped = false
		}
	}
	return Invocation{EntryPoint: e.name, Value: render(expr, args)}, nil
}

// FindEntryPoint returns the entry point with the given name.
func FindEntryPoint(entryPoints []*EntryPoint, name string) (*EntryPoint, bool) {
	for _, ep := range entryPoints {
		if ep.name == name {
			return ep, true
		}
	}
	return nil, false
}

// EntryPointNames returns the names of all entry points in order.
func EntryPointNames(entryPoints []*EntryPoint) []string {
	names := make([]string, len(entryPoints))
	for i, ep := range entryPoints {
		names[i] = ep.name
	}
	return names
}
