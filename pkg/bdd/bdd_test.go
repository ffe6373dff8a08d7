package bdd

import "testing"

// mkSmallTestBDD is scenario S3's fixture: (x4 && !x3) over 5 variables.
func mkSmallTestBDD() BDD {
	return BDD{
		mkZero(5), mkOne(5),
		{Var: 3, Low: 1, High: 0},
		{Var: 4, Low: 0, High: 2},
	}
}

func TestTerminalNodeInvariants(t *testing.T) {
	one := mkOne(2)
	if one.Low != one.High || one.Low != 1 {
		t.Fatal("one node must be terminal with value 1")
	}
	if one.Var != 2 {
		t.Fatalf("expected var 2, got %d", one.Var)
	}

	zero := mkZero(2)
	if zero.Low != zero.High || zero.Low != 0 {
		t.Fatal("zero node must be terminal with value 0")
	}
}

func TestSmallBDDShape(t *testing.T) {
	b := mkSmallTestBDD()
	if b.Size() != 4 {
		t.Fatalf("expected size 4, got %d", b.Size())
	}
	if b.LastIndex() != 3 {
		t.Fatalf("expected last index 3, got %d", b.LastIndex())
	}
	if b[2].Low != 1 || b[2].High != 0 {
		t.Fatalf("node 2 low/high mismatch: %+v", b[2])
	}
	if b[3].Low != 0 || b[3].High != 2 {
		t.Fatalf("node 3 low/high mismatch: %+v", b[3])
	}
}

// TestMkNotSmallBDD is scenario S3's negation check.
func TestMkNotSmallBDD(t *testing.T) {
	w := NewAnonymousWorker(5)
	b := mkSmallTestBDD()
	got := w.Not(b)

	want := BDD{
		mkZero(5), mkOne(5),
		{Var: 3, Low: 0, High: 1},
		{Var: 4, Low: 1, High: 2},
	}
	assertBDDEqual(t, want, got)
}

// TestMkAndWithNegationIsFalse is scenario S3's satisfiability check and
// the universal property is_false(mk_and(b, mk_not(b))).
func TestMkAndWithNegationIsFalse(t *testing.T) {
	w := NewAnonymousWorker(5)
	b := mkSmallTestBDD()
	notB := w.Not(b)
	got := w.And(b, notB)
	if !got.IsFalse() {
		t.Fatalf("expected mk_and(b, mk_not(b)) to be false, got %+v", got)
	}
}

func TestMkNotMkNotIsIdentity(t *testing.T) {
	w := NewAnonymousWorker(5)
	b := mkSmallTestBDD()
	roundTrip := w.Not(w.Not(b))
	assertBDDEqual(t, b, roundTrip)
}

func TestAndWithTrueIsIdentity(t *testing.T) {
	w := NewAnonymousWorker(5)
	b := mkSmallTestBDD()
	got := w.And(b, w.MkTrue())
	assertBDDEqual(t, b, got)
}

func TestAndWithFalseIsFalse(t *testing.T) {
	w := NewAnonymousWorker(5)
	b := mkSmallTestBDD()
	got := w.And(b, w.MkFalse())
	if !got.IsFalse() {
		t.Fatal("expected mk_and(b, mk_false()) to be false")
	}
}

func TestAndIdempotent(t *testing.T) {
	w := NewAnonymousWorker(5)
	b := mkSmallTestBDD()
	got := w.And(b, b)
	assertBDDEqual(t, b, got)
}

func TestAndCommutative(t *testing.T) {
	w := NewAnonymousWorker(5)
	x4, err := w.MkVar(4)
	if err != nil {
		t.Fatal(err)
	}
	notX3, err := w.MkNotVar(3)
	if err != nil {
		t.Fatal(err)
	}
	ab := w.And(x4, notX3)
	ba := w.And(notX3, x4)
	assertBDDEqual(t, ab, ba)
}

func TestMkVarAndMkNotVarShapes(t *testing.T) {
	w := NewAnonymousWorker(3)
	v, err := w.MkVar(1)
	if err != nil {
		t.Fatal(err)
	}
	if v[2].Low != 0 || v[2].High != 1 {
		t.Fatalf("mk_var shape mismatch: %+v", v[2])
	}
	nv, err := w.MkNotVar(1)
	if err != nil {
		t.Fatal(err)
	}
	if nv[2].Low != 1 || nv[2].High != 0 {
		t.Fatalf("mk_not_var shape mismatch: %+v", nv[2])
	}
}

func TestVariableOutOfRange(t *testing.T) {
	w := NewAnonymousWorker(3)
	if _, err := w.MkVar(5); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestUnknownVariableName(t *testing.T) {
	w := NewWorker([]string{"a", "b"})
	if _, err := w.MkNamedVar("c"); err == nil {
		t.Fatal("expected unknown variable name error")
	}
}

func TestIsFalseIsTrue(t *testing.T) {
	w := NewAnonymousWorker(2)
	if !w.MkFalse().IsFalse() {
		t.Fatal("MkFalse should be false")
	}
	if w.MkFalse().IsTrue() {
		t.Fatal("MkFalse should not be true")
	}
	if !w.MkTrue().IsTrue() {
		t.Fatal("MkTrue should be true")
	}
}

// TestApplyInvariants checks the universal structural invariants for a
// BDD produced by apply: non-terminal nodes have
// low < i, high < i, low != high, and every (var,low,high) is unique.
func TestApplyInvariants(t *testing.T) {
	w := NewAnonymousWorker(5)
	x4, _ := w.MkVar(4)
	notX3, _ := w.MkNotVar(3)
	got := w.And(x4, notX3)

	seen := map[nodeKey]bool{}
	for i := 2; i < len(got); i++ {
		n := got[i]
		if int(n.Low) >= i || int(n.High) >= i {
			t.Fatalf("node %d has a forward pointer: %+v", i, n)
		}
		if n.Low == n.High {
			t.Fatalf("node %d is not reduced: low == high", i)
		}
		key := nodeKey{v: n.Var, low: n.Low, high: n.High}
		if seen[key] {
			t.Fatalf("duplicate (var,low,high) at node %d", i)
		}
		seen[key] = true
	}
}

func assertBDDEqual(t *testing.T, want, got BDD) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("size mismatch: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("node %d mismatch: want %+v, got %+v", i, want[i], got[i])
		}
	}
}
