package scc

import (
	"sync"
	"sync/atomic"

	"github.com/biodivine/bnscc/pkg/bitset"
	"github.com/biodivine/bnscc/pkg/network"
	"github.com/biodivine/bnscc/pkg/unionfind"
)

// sharedSeed is the fixed seed shared by the global atomic union-find and
// every worker's private union-find, so runs stay reproducible.
const sharedSeed = 1234567890

// Progress, if non-nil, is invoked once per worker when it finishes
// enumerating its share of the state space. It is purely a logging hook:
// no synchronization in the algorithm depends on it.
type Progress func(workerID int, stats Stats)

// Parallel runs p independent workers over net, each a private Sequential-
// style DFS, sharing only a lock-free atomic union-find and an atomic
// dead-bitset used to prune vertices whose component another worker has
// already closed. There are no channels, locks, or condition variables:
// workers never wait on one another and make forward progress between CAS
// attempts only.
func Parallel(net *network.Network, p int, progress Progress) Result {
	if p < 1 {
		p = 1
	}

	stateCount := net.StateCount()
	globalSets := unionfind.NewAtomic(int(stateCount), sharedSeed)
	globalDead := bitset.NewAtomic(int(stateCount))

	var nextWorkerID atomic.Uint32
	var wg sync.WaitGroup
	wg.Add(p)
	for i := 0; i < p; i++ {
		go func() {
			defer wg.Done()
			workerID := nextWorkerID.Add(1) - 1
			key := uint64(workerID) * (stateCount / uint64(p))
			stats := runWorker(net, key, globalSets, globalDead)
			if progress != nil {
				progress(int(workerID), stats)
			}
		}()
	}
	wg.Wait()

	return Result{stateCount: stateCount, uf: globalSets}
}

// runWorker runs one worker's private DFS, offset by key into the state
// space, pruning against the shared global structures at every one of the
// three points that need it: before pushing a candidate
// root, before continuing a stack-top frame, and before pushing a newly
// discovered target.
func runWorker(net *network.Network, key uint64, globalSets *unionfind.Atomic, globalDead *bitset.Atomic) Stats {
	stateCount := net.StateCount()
	local := unionfind.NewHashRanked(int(stateCount), sharedSeed)
	var stack []frame
	var stats Stats

	for rootSeq := range net.States() {
		root := network.State((uint64(rootSeq) + key) % stateCount)

		if local.Payload(uint32(root)) == unionfind.Dead {
			continue
		}
		if globalDead.IsSet(int(globalSets.FindRoot(uint32(root)))) {
			continue
		}

		stats.Explored++
		local.SetPayload(uint32(root), 0)
		stack = append(stack, frame{state: root, nextVar: net.VarCount() - 1})

		for len(stack) > 0 {
			stats.Iterations++
			top := &stack[len(stack)-1]

			if globalDead.IsSet(int(globalSets.FindRoot(uint32(top.state)))) {
				stack = stack[:len(stack)-1]
				continue
			}

			if top.nextVar < 0 {
				s := top.state
				stack = stack[:len(stack)-1]
				if local.Payload(uint32(s)) == uint32(len(stack)) {
					local.SetPayload(uint32(s), unionfind.Dead)
					globalDead.Set(int(globalSets.FindRoot(uint32(s))))
				}
				continue
			}

			v := network.Variable(top.nextVar)
			top.nextVar--

			t, ok := net.Successor(top.state, v)
			if !ok {
				continue
			}

			globalRootT := globalSets.FindRoot(uint32(t))
			if globalDead.IsSet(int(globalRootT)) {
				continue
			}

			payload := local.Payload(uint32(t))
			if payload == unionfind.Fresh {
				stats.Explored++
				local.SetPayload(uint32(t), uint32(len(stack)))
				stack = append(stack, frame{state: t, nextVar: net.VarCount() - 1})
				if len(stack) > stats.MaxStackDepth {
					stats.MaxStackDepth = len(stack)
				}
			} else if payload != unionfind.Dead {
				mergeDownwardShared(local, globalSets, stack, t)
			}
		}
	}

	return stats
}

// mergeDownwardShared is mergeDownward, extended to additionally perform
// every union in the shared global union-find so that cross-worker
// pruning stays correct.
func mergeDownwardShared(local *unionfind.HashRanked, global *unionfind.Atomic, stack []frame, t network.State) {
	k := len(stack) - 1
	for local.FindRoot(uint32(stack[k].state)) != local.FindRoot(uint32(t)) {
		kPrime := int(local.Payload(uint32(stack[k].state)))
		local.Union(uint32(stack[kPrime].state), uint32(t))
		global.Union(uint32(stack[kPrime].state), uint32(t))
		k = kPrime - 1
	}
}
