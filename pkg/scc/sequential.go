package scc

import (
	"github.com/biodivine/bnscc/pkg/bitset"
	"github.com/biodivine/bnscc/pkg/network"
	"github.com/biodivine/bnscc/pkg/unionfind"
)

// sequentialSeed is the fixed seed used to derive the hash-rank tie-break,
// so runs stay reproducible.
const sequentialSeed = 1234567890

// frame is one level of the explicit DFS stack: a state together with the
// next variable index to try, descending from VarCount()-1 to 0.
type frame struct {
	state   network.State
	nextVar int
}

// Stats reports exploration counters for a completed run, useful for
// progress logging in cmd/bnscc.
type Stats struct {
	Explored      uint64
	Iterations    uint64
	MaxStackDepth int
}

// Sequential runs Dijkstra's path-based SCC algorithm over net using a
// hash-ranked union-find with FRESH/DEAD sentinel payloads.
func Sequential(net *network.Network) (Result, Stats) {
	sets := unionfind.NewHashRanked(int(net.StateCount()), sequentialSeed)
	dead := bitset.New(int(net.StateCount()))
	var stack []frame
	var stats Stats

	for root := range net.States() {
		if dead.IsSet(int(root)) {
			continue
		}

		sets.SetPayload(uint32(root), 0)
		stack = append(stack, frame{state: root, nextVar: net.VarCount() - 1})
		stats.Explored++

		for len(stack) > 0 {
			stats.Iterations++
			top := &stack[len(stack)-1]

			if top.nextVar < 0 {
				// Iterator exhausted: pop.
				s := top.state
				stack = stack[:len(stack)-1]
				if sets.Payload(uint32(s)) == uint32(len(stack)) {
					sets.SetPayload(uint32(s), unionfind.Dead)
					dead.Flip(int(s))
				}
				continue
			}

			v := network.Variable(top.nextVar)
			top.nextVar--

			t, ok := net.Successor(top.state, v)
			if !ok {
				continue
			}

			payload := sets.Payload(uint32(t))
			switch payload {
			case unionfind.Fresh:
				sets.SetPayload(uint32(t), uint32(len(stack)))
				stack = append(stack, frame{state: t, nextVar: net.VarCount() - 1})
				stats.Explored++
				if len(stack) > stats.MaxStackDepth {
					stats.MaxStackDepth = len(stack)
				}
			case unionfind.Dead:
				// Nothing to do: t's component is already closed.
			default:
				mergeDownward(sets, stack, t)
			}
		}
	}

	return Result{stateCount: net.StateCount(), uf: sets}, stats
}

// mergeDownward implements the "virtual pop" cycle merge: walk down the
// stack from the top, unioning every frame not already in t's set, using
// each frame's recorded stack-position payload as a back-pointer to skip
// already-merged spans in amortised O(alpha).
func mergeDownward(sets *unionfind.HashRanked, stack []frame, t network.State) {
	k := len(stack) - 1
	for sets.FindRoot(uint32(stack[k].state)) != sets.FindRoot(uint32(t)) {
		kPrime := int(sets.Payload(uint32(stack[k].state)))
		sets.Union(uint32(stack[kPrime].state), uint32(t))
		k = kPrime - 1
	}
}
