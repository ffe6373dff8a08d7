// Package unionfind implements the hash-ranked union-find structures used
// by the SCC engines: a sequential variant carrying one u32 payload per
// set, and a lock-free atomic variant used as the cross-worker shared
// structure.
package unionfind

import (
	"math"
	"math/rand/v2"

	"github.com/biodivine/bnscc/pkg/bitset"
)

// Fresh marks a set that has never been visited by the DFS.
const Fresh uint32 = math.MaxUint32

// Dead marks a set that is a closed SCC; its members are excluded from
// further exploration.
const Dead uint32 = math.MaxUint32 - 1

// HashRanked is a union-find over [0,n) elements with a u32 payload per
// set, stored in the root's parent slot. Ties between roots during Union
// are broken by a seeded hash of the root index rather than a maintained
// rank, so the tree shape is randomized without per-element bookkeeping.
type HashRanked struct {
	hashMask uint64
	isRoot   *bitset.Bitset
	parent   []uint32
}

// NewHashRanked returns a union-find over n elements, every element its
// own root with payload Fresh. seed determines the hash-rank tie-break.
func NewHashRanked(n int, seed uint64) *HashRanked {
	parent := make([]uint32, n)
	for i := range parent {
		parent[i] = Fresh
	}
	return &HashRanked{
		hashMask: rand.New(rand.NewPCG(seed, seed)).Uint64(),
		isRoot:   bitset.NewFull(n),
		parent:   parent,
	}
}

// IsRoot reports whether i is currently its set's representative.
func (u *HashRanked) IsRoot(i uint32) bool {
	return u.isRoot.IsSet(int(i))
}

// FindRoot returns the representative of i's set, compressing the path by
// halving as it walks: every non-root step retargets the current element
// to its grandparent before advancing.
func (u *HashRanked) FindRoot(i uint32) uint32 {
	item := int(i)
	for !u.isRoot.IsSet(item) {
		parent := int(u.parent[item])
		if u.isRoot.IsSet(parent) {
			return uint32(parent)
		}
		grandparent := u.parent[parent]
		u.parent[item] = grandparent
		item = int(grandparent)
	}
	return uint32(item)
}

// Payload returns the u32 payload of the set containing i.
func (u *HashRanked) Payload(i uint32) uint32 {
	root := u.FindRoot(i)
	return u.parent[root]
}

// SetPayload assigns the u32 payload of the set containing i.
func (u *HashRanked) SetPayload(i uint32, payload uint32) {
	root := u.FindRoot(i)
	u.parent[root] = payload
}

// Union merges the sets containing a and b. The root whose hashed index is
// larger absorbs the root whose hashed index is smaller. The merged
// payload is the minimum of the two, except Dead is idempotent: unioning
// anything into a dead set yields Dead (this should not happen in
// practice, since dead sets are never merged into).
func (u *HashRanked) Union(a, b uint32) {
	rootA := u.FindRoot(a)
	rootB := u.FindRoot(b)
	if rootA == rootB {
		return
	}
	merged := minPayload(u.parent[rootA], u.parent[rootB])
	if (uint64(rootA) ^ u.hashMask) > (uint64(rootB) ^ u.hashMask) {
		// attach rootB under rootA, rootA is "bigger"
		u.isRoot.Flip(int(rootB))
		u.parent[rootB] = rootA
		u.parent[rootA] = merged
	} else {
		u.isRoot.Flip(int(rootA))
		u.parent[rootA] = rootB
		u.parent[rootB] = merged
	}
}

func minPayload(a, b uint32) uint32 {
	if a == Dead || b == Dead {
		return Dead
	}
	if a < b {
		return a
	}
	return b
}
