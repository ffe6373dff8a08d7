package network

import "iter"

// Network is an immutable, ordered vector of pure update functions, one per
// variable. Two calls to Successor with the same arguments always return
// the same result.
type Network struct {
	updateFunctions []func(State) bool
}

// VarCount returns the number of variables N.
func (n *Network) VarCount() int {
	return len(n.updateFunctions)
}

// StateCount returns 2^N, the number of distinct states. It is a uint64 so
// that N=32 does not overflow.
func (n *Network) StateCount() uint64 {
	return uint64(1) << uint(n.VarCount())
}

// States yields every state in [0, 2^N) exactly once, in ascending order.
func (n *Network) States() iter.Seq[State] {
	count := n.StateCount()
	return func(yield func(State) bool) {
		for s := uint64(0); s < count; s++ {
			if !yield(State(s)) {
				return
			}
		}
	}
}

// Variables yields every variable index in [0, N), in ascending order.
func (n *Network) Variables() iter.Seq[Variable] {
	count := n.VarCount()
	return func(yield func(Variable) bool) {
		for v := 0; v < count; v++ {
			if !yield(Variable(v)) {
				return
			}
		}
	}
}

// Successor returns the v-successor of state s: flip(s, v) if
// bit(s,v) != fv(s), or ok=false if s is a v-fixpoint.
func (n *Network) Successor(s State, v Variable) (State, bool) {
	target := n.updateFunctions[v](s)
	if s.Bit(v) == target {
		return 0, false
	}
	return s.Flip(v), true
}
