package unionfind

import (
	"math/rand/v2"
	"sync/atomic"
)

// Atomic is a lock-free union-find over [0,n) elements with no payload: a
// root is identified by parent[i] == i. It is safe for concurrent Union and
// FindRoot calls from multiple goroutines with no locking, used as the
// shared cross-worker structure in the parallel SCC engine.
type Atomic struct {
	hashMask uint64
	parent   []atomic.Uint32
}

// NewAtomic returns an atomic union-find over n elements, every element
// initially its own root. seed determines the hash-rank tie-break.
func NewAtomic(n int, seed uint64) *Atomic {
	a := &Atomic{
		hashMask: rand.New(rand.NewPCG(seed, seed)).Uint64(),
		parent:   make([]atomic.Uint32, n),
	}
	for i := range a.parent {
		a.parent[i].Store(uint32(i))
	}
	return a
}

// FindRoot returns the representative of i's set. Path halving is applied
// via a best-effort CAS: if a racing update already changed the parent, the
// lost CAS is ignored and the walk continues from the value just observed,
// since competing updates can only ever replace a parent with one of its
// ancestors.
func (a *Atomic) FindRoot(i uint32) uint32 {
	for {
		parent := a.parent[i].Load()
		if parent == i {
			return i
		}
		grandparent := a.parent[parent].Load()
		if grandparent == parent {
			return parent
		}
		a.parent[i].CompareAndSwap(parent, grandparent)
		i = grandparent
	}
}

// Union merges the sets containing a0 and b0. The loser (smaller hashed
// index) is attached under the winner via a CAS that only succeeds while
// the loser is still a root; on failure the whole find+compare is retried.
func (a *Atomic) Union(a0, b0 uint32) {
	for {
		l := a.FindRoot(a0)
		r := a.FindRoot(b0)
		if l == r {
			return
		}
		var winner, loser uint32
		if (uint64(l) ^ a.hashMask) > (uint64(r) ^ a.hashMask) {
			winner, loser = l, r
		} else {
			winner, loser = r, l
		}
		if a.parent[loser].CompareAndSwap(loser, winner) {
			return
		}
	}
}
