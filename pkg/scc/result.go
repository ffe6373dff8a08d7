// Package scc implements strongly-connected-component decomposition of a
// Boolean network's asynchronous state-transition graph: a sequential
// path-based engine (Sequential) and a lock-free parallel engine
// (Parallel) that share no mutable state beyond an atomic union-find and
// an atomic dead-bitset.
package scc

import "github.com/biodivine/bnscc/pkg/network"

// finder is the read side of a union-find, satisfied by both
// unionfind.HashRanked and unionfind.Atomic. Result is built against this
// minimal interface instead of copying every element's root into a map, so
// that a Result holds no per-state data beyond the union-find itself;
// ComponentSizes builds its map on each call.
type finder interface {
	FindRoot(uint32) uint32
}

// Result reports the outcome of an SCC run: every state belongs to exactly
// one component at termination, identified by its union-find root. A
// component is non-trivial if more than one state maps to the same root.
type Result struct {
	stateCount uint64
	uf         finder
}

// Root returns the representative state of s's component.
func (r Result) Root(s network.State) network.State {
	return network.State(r.uf.FindRoot(uint32(s)))
}

// ComponentSizes returns, for every non-trivial component, the number of
// states it contains, keyed by the component's representative state.
func (r Result) ComponentSizes() map[network.State]int {
	sizes := make(map[network.State]int)
	for s := uint64(0); s < r.stateCount; s++ {
		root := network.State(r.uf.FindRoot(uint32(s)))
		sizes[root]++
	}
	for root, size := range sizes {
		if size < 2 {
			delete(sizes, root)
		}
	}
	return sizes
}

// NonTrivialCount returns the number of non-trivial (size >= 2) components.
func (r Result) NonTrivialCount() int {
	return len(r.ComponentSizes())
}
