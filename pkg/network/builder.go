package network

import "fmt"

// Builder incrementally assembles a Network, checking for duplicate names,
// unknown/re-assigned update functions, and variable-count overflow.
type Builder struct {
	names     []string
	updates   map[Variable]func(State) bool
	finalized bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{updates: make(map[Variable]func(State) bool)}
}

// MakeVariable registers a new variable with the given name and returns its
// handle. It fails if the name is already used or the network would exceed
// MaxVars variables.
func (b *Builder) MakeVariable(name string) (Variable, error) {
	if b.finalized {
		return 0, &BuilderError{Kind: ErrAlreadyFinalized}
	}
	if len(b.names) >= MaxVars {
		return 0, &BuilderError{Kind: ErrTooManyVariables}
	}
	for _, existing := range b.names {
		if existing == name {
			return 0, &BuilderError{Kind: ErrDuplicateName, Name: name}
		}
	}
	v := Variable(len(b.names))
	b.names = append(b.names, name)
	return v, nil
}

// SetUpdate assigns the pure update function fv : State -> bool to
// variable v. It fails if v was not created by this builder or already has
// a function assigned.
func (b *Builder) SetUpdate(v Variable, f func(State) bool) error {
	if b.finalized {
		return &BuilderError{Kind: ErrAlreadyFinalized}
	}
	if int(v) >= len(b.names) {
		return &BuilderError{Kind: ErrUnknownVariable, Name: b.nameOf(v)}
	}
	if _, ok := b.updates[v]; ok {
		return &BuilderError{Kind: ErrAlreadyAssigned, Name: b.names[v]}
	}
	b.updates[v] = f
	return nil
}

// Build finalizes the network. It fails if any registered variable is
// missing an update function.
func (b *Builder) Build() (*Network, error) {
	if b.finalized {
		return nil, &BuilderError{Kind: ErrAlreadyFinalized}
	}
	functions := make([]func(State) bool, len(b.names))
	for i, name := range b.names {
		f, ok := b.updates[Variable(i)]
		if !ok {
			return nil, &BuilderError{Kind: ErrMissingUpdate, Name: name}
		}
		functions[i] = f
	}
	b.finalized = true
	return &Network{updateFunctions: functions}, nil
}

func (b *Builder) nameOf(v Variable) string {
	if int(v) < len(b.names) {
		return b.names[v]
	}
	return fmt.Sprintf("#%d", v)
}
