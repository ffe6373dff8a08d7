// Package demo builds small, hard-coded Boolean networks used by the SCC
// and BDD tests and by cmd/bnscc. These are plain Go constructor functions,
// not a textual modelling DSL.
package demo

import "github.com/biodivine/bnscc/pkg/network"

// Toggle builds the 2-variable network from scenario S1:
//
//	a := !a || b
//	b := a || b
//
// Its 4-state graph has one non-trivial SCC {10, 11, 01} of size 3 and one
// trivial fixpoint {00}.
func Toggle() *network.Network {
	b := network.NewBuilder()
	a, err := b.MakeVariable("a")
	must(err)
	bb, err := b.MakeVariable("b")
	must(err)
	must(b.SetUpdate(a, func(s network.State) bool {
		return !s.Bit(a) || s.Bit(bb)
	}))
	must(b.SetUpdate(bb, func(s network.State) bool {
		return s.Bit(a) || s.Bit(bb)
	}))
	net, err := b.Build()
	must(err)
	return net
}

// p53Variables wires up the four variables shared by every p53/Mdm2 demo
// model below: P53, DNA damage, cytoplasmic Mdm2 (M2C), and nuclear Mdm2
// (M2N).
type p53Variables struct {
	p53, dna, m2c, m2n network.Variable
}

func newP53Network() (*network.Builder, p53Variables) {
	b := network.NewBuilder()
	p53, err := b.MakeVariable("P53")
	must(err)
	dna, err := b.MakeVariable("DNA")
	must(err)
	m2c, err := b.MakeVariable("M2C")
	must(err)
	m2n, err := b.MakeVariable("M2N")
	must(err)
	return b, p53Variables{p53: p53, dna: dna, m2c: m2c, m2n: m2n}
}

// Oscillation builds scenario S2's model: p53 and Mdm2 regulate
// each other so that the network oscillates, and DNA damage is sticky
// (DNA := !P53 || DNA). It has at least one non-trivial SCC containing
// alternating M2N/P53 flips.
func Oscillation() *network.Network {
	b, v := newP53Network()
	must(b.SetUpdate(v.p53, func(s network.State) bool {
		return !s.Bit(v.m2n)
	}))
	must(b.SetUpdate(v.m2c, func(s network.State) bool {
		return s.Bit(v.p53)
	}))
	must(b.SetUpdate(v.dna, func(s network.State) bool {
		return !s.Bit(v.p53) || s.Bit(v.dna)
	}))
	must(b.SetUpdate(v.m2n, func(s network.State) bool {
		return s.Bit(v.m2c) || (!s.Bit(v.m2c) && !s.Bit(v.dna) && !s.Bit(v.p53))
	}))
	net, err := b.Build()
	must(err)
	return net
}

// Disorder is the same p53/Mdm2 skeleton without DNA's self-sustaining
// term. It has no fixpoint: 11 of its 16 states form one non-trivial SCC.
func Disorder() *network.Network {
	b, v := newP53Network()
	must(b.SetUpdate(v.p53, func(s network.State) bool {
		return !s.Bit(v.m2n)
	}))
	must(b.SetUpdate(v.m2c, func(s network.State) bool {
		return s.Bit(v.p53)
	}))
	must(b.SetUpdate(v.dna, func(s network.State) bool {
		return !s.Bit(v.p53)
	}))
	must(b.SetUpdate(v.m2n, func(s network.State) bool {
		return s.Bit(v.m2c) || (!s.Bit(v.m2c) && !s.Bit(v.dna) && !s.Bit(v.p53))
	}))
	net, err := b.Build()
	must(err)
	return net
}

// Bistable adds a second disjunct to M2N's update that lets the network
// settle into either of two stable regimes depending on DNA damage.
func Bistable() *network.Network {
	b, v := newP53Network()
	must(b.SetUpdate(v.p53, func(s network.State) bool {
		return !s.Bit(v.m2n)
	}))
	must(b.SetUpdate(v.m2c, func(s network.State) bool {
		return s.Bit(v.p53)
	}))
	must(b.SetUpdate(v.dna, func(s network.State) bool {
		return !s.Bit(v.p53) || s.Bit(v.dna)
	}))
	must(b.SetUpdate(v.m2n, func(s network.State) bool {
		return (s.Bit(v.m2c) && (!s.Bit(v.dna) || !s.Bit(v.p53))) ||
			(!s.Bit(v.m2c) && !s.Bit(v.p53))
	}))
	net, err := b.Build()
	must(err)
	return net
}

// Stable is Bistable's sibling whose M2N update additionally requires
// undamaged DNA in its second disjunct, collapsing the network onto a
// single stable regime.
func Stable() *network.Network {
	b, v := newP53Network()
	must(b.SetUpdate(v.p53, func(s network.State) bool {
		return !s.Bit(v.m2n)
	}))
	must(b.SetUpdate(v.m2c, func(s network.State) bool {
		return s.Bit(v.p53)
	}))
	must(b.SetUpdate(v.dna, func(s network.State) bool {
		return !s.Bit(v.p53) || s.Bit(v.dna)
	}))
	must(b.SetUpdate(v.m2n, func(s network.State) bool {
		return (s.Bit(v.m2c) && (!s.Bit(v.dna) || !s.Bit(v.p53))) ||
			(!s.Bit(v.m2c) && !s.Bit(v.dna) && !s.Bit(v.p53))
	}))
	net, err := b.Build()
	must(err)
	return net
}

// Names returns the registered demo model names, in the order accepted by
// Build, for use by cmd/bnscc's flag help text.
func Names() []string {
	return []string{"toggle", "oscillation", "disorder", "bistable", "stable"}
}

// Build looks up a demo model by name. ok is false for an unknown name.
func Build(name string) (net *network.Network, ok bool) {
	switch name {
	case "toggle":
		return Toggle(), true
	case "oscillation":
		return Oscillation(), true
	case "disorder":
		return Disorder(), true
	case "bistable":
		return Bistable(), true
	case "stable":
		return Stable(), true
	default:
		return nil, false
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
