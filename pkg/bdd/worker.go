package bdd

// Worker manipulates BDDs over a fixed, named set of variables. BDDs
// themselves carry no reference back to the Worker that built them; all
// operations (construction, negation, apply) are implemented as Worker
// methods so the variable-name table has somewhere to live.
type Worker struct {
	numVars   uint32
	varNames  []string
	nameIndex map[string]uint32
}

// NewWorker returns a Worker over the given, ordered variable names.
func NewWorker(names []string) *Worker {
	nameIndex := make(map[string]uint32, len(names))
	for i, n := range names {
		nameIndex[n] = uint32(i)
	}
	return &Worker{numVars: uint32(len(names)), varNames: names, nameIndex: nameIndex}
}

// NewAnonymousWorker returns a Worker over n variables named "0".."n-1".
func NewAnonymousWorker(n uint32) *Worker {
	names := make([]string, n)
	for i := range names {
		names[i] = itoa(i)
	}
	return NewWorker(names)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [10]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}

// NumVars returns the variable count this Worker operates over.
func (w *Worker) NumVars() uint32 {
	return w.numVars
}

// VarNames returns the Worker's variable names in index order.
func (w *Worker) VarNames() []string {
	return w.varNames
}

// MkFalse returns the BDD for the constant false formula.
func (w *Worker) MkFalse() BDD {
	return BDD{mkZero(w.numVars)}
}

// MkTrue returns the BDD for the constant true formula.
func (w *Worker) MkTrue() BDD {
	return BDD{mkZero(w.numVars), mkOne(w.numVars)}
}

// MkVar returns the BDD for the formula x, where x is the variable at
// varIndex.
func (w *Worker) MkVar(varIndex uint32) (BDD, error) {
	if varIndex >= w.numVars {
		return nil, &VariableError{Index: varIndex, NumVars: w.numVars}
	}
	return BDD{
		mkZero(w.numVars), mkOne(w.numVars),
		{Var: varIndex, Low: 0, High: 1},
	}, nil
}

// MkNotVar returns the BDD for the formula !x, where x is the variable at
// varIndex. Low/High are swapped relative to MkVar so the node directly
// encodes negation, rather than MkVar's low=0/high=1 shape.
func (w *Worker) MkNotVar(varIndex uint32) (BDD, error) {
	if varIndex >= w.numVars {
		return nil, &VariableError{Index: varIndex, NumVars: w.numVars}
	}
	return BDD{
		mkZero(w.numVars), mkOne(w.numVars),
		{Var: varIndex, Low: 1, High: 0},
	}, nil
}

// MkNamedVar resolves name through the Worker's name table and calls MkVar.
func (w *Worker) MkNamedVar(name string) (BDD, error) {
	idx, ok := w.nameIndex[name]
	if !ok {
		return nil, &VariableError{Name: name}
	}
	return w.MkVar(idx)
}

// MkNotNamedVar resolves name through the Worker's name table and calls
// MkNotVar.
func (w *Worker) MkNotNamedVar(name string) (BDD, error) {
	idx, ok := w.nameIndex[name]
	if !ok {
		return nil, &VariableError{Name: name}
	}
	return w.MkNotVar(idx)
}
