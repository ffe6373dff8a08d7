package bdd

// TerminalLookup is the short-circuit predicate driving Apply's binary
// operator: given the two nodes currently under consideration, it reports
// the operator's value if it is already determined by these two nodes
// alone, without recursing into their children.
type TerminalLookup func(l, r Node) (value bool, known bool)

type pairKey struct{ l, r uint32 }

type nodeKey struct{ v, low, high uint32 }

// Apply computes a binary Boolean operator over l and r via the classical
// Bryant product construction: an explicit index-pair stack stands in for
// recursion (so arbitrarily deep BDDs never grow the host goroutine's
// stack), a "finished" table memoises already-resolved sub-pairs
// (collapsing the naive exponential blow-up to product-sized work), and a
// "created" table enforces node uniqueness inline, so the result is always
// a canonical reduced BDD with no separate reduce pass.
func (w *Worker) Apply(l, r BDD, tl TerminalLookup) BDD {
	numVars := l.NumVars()

	result := BDD{mkZero(numVars), mkOne(numVars)}
	created := map[nodeKey]uint32{
		{v: numVars, low: 0, high: 0}: 0,
		{v: numVars, low: 1, high: 1}: 1,
	}
	finished := make(map[pairKey]uint32)
	isNotEmpty := false

	// resolve reports the result index for sub-pair (lIdx,rIdx) if it can
	// be determined without pushing more work onto the stack: either via
	// the operator's terminal short-circuit, or a cached finished entry.
	resolve := func(lIdx, rIdx uint32) (idx uint32, ok bool) {
		if value, known := tl(l[lIdx], r[rIdx]); known {
			if value {
				isNotEmpty = true
				return 1, true
			}
			return 0, true
		}
		idx, ok = finished[pairKey{l: lIdx, r: rIdx}]
		return idx, ok
	}

	stack := []pairKey{{l: uint32(l.LastIndex()), r: uint32(r.LastIndex())}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if _, ok := finished[top]; ok {
			stack = stack[:len(stack)-1]
			continue
		}

		ln, rn := l[top.l], r[top.r]

		// Advance both sides on a shared variable; otherwise only the
		// side whose top variable is smaller (closer to the root in this
		// ordering) descends, since the other side's function does not
		// yet depend on that variable.
		var decisionVar uint32
		var leftLow, leftHigh, rightLow, rightHigh uint32
		switch {
		case ln.Var == rn.Var:
			decisionVar = ln.Var
			leftLow, leftHigh = ln.Low, ln.High
			rightLow, rightHigh = rn.Low, rn.High
		case ln.Var < rn.Var:
			decisionVar = ln.Var
			leftLow, leftHigh = ln.Low, ln.High
			rightLow, rightHigh = top.r, top.r
		default:
			decisionVar = rn.Var
			leftLow, leftHigh = top.l, top.l
			rightLow, rightHigh = rn.Low, rn.High
		}

		lowIdx, lowOK := resolve(leftLow, rightLow)
		highIdx, highOK := resolve(leftHigh, rightHigh)

		if lowOK && highOK {
			var nodeIdx uint32
			if lowIdx == highIdx {
				// Both children agree: this node would be a redundant
				// decision, skip it and reduce straight to the child.
				nodeIdx = lowIdx
			} else {
				key := nodeKey{v: decisionVar, low: lowIdx, high: highIdx}
				if existing, ok := created[key]; ok {
					nodeIdx = existing
				} else {
					nodeIdx = uint32(len(result))
					result = append(result, Node{Var: decisionVar, Low: lowIdx, High: highIdx})
					created[key] = nodeIdx
				}
			}
			finished[top] = nodeIdx
			stack = stack[:len(stack)-1]
			continue
		}

		if !lowOK {
			stack = append(stack, pairKey{l: leftLow, r: rightLow})
		}
		if !highOK {
			stack = append(stack, pairKey{l: leftHigh, r: rightHigh})
		}
	}

	if !isNotEmpty {
		return w.MkFalse()
	}
	return result
}

// andTerminal is the short-circuit predicate for conjunction: false as
// soon as either side is the zero node, true once both sides are the one
// node, otherwise undetermined.
func andTerminal(l, r Node) (value bool, known bool) {
	if isZero(l) || isZero(r) {
		return false, true
	}
	if isOne(l) && isOne(r) {
		return true, true
	}
	return false, false
}

func isZero(n Node) bool {
	return n.Low == 0 && n.High == 0
}

func isOne(n Node) bool {
	return n.Low == 1 && n.High == 1
}

// And returns the BDD for l && r.
func (w *Worker) And(l, r BDD) BDD {
	return w.Apply(l, r, andTerminal)
}
