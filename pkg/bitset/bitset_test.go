package bitset

import (
	"sync"
	"testing"
)

func TestNewEmptyAllClear(t *testing.T) {
	b := New(70)
	for i := 0; i < 70; i++ {
		if b.IsSet(i) {
			t.Fatalf("bit %d should be clear", i)
		}
	}
}

func TestNewFullAllSet(t *testing.T) {
	b := NewFull(70)
	for i := 0; i < 70; i++ {
		if !b.IsSet(i) {
			t.Fatalf("bit %d should be set", i)
		}
	}
}

func TestFlip(t *testing.T) {
	b := New(40)
	b.Flip(5)
	if !b.IsSet(5) {
		t.Fatal("bit 5 should be set after flip")
	}
	b.Flip(5)
	if b.IsSet(5) {
		t.Fatal("bit 5 should be clear after second flip")
	}
}

func TestFlipCrossWordBoundary(t *testing.T) {
	b := New(40)
	b.Flip(31)
	b.Flip(32)
	if !b.IsSet(31) || !b.IsSet(32) {
		t.Fatal("bits 31 and 32 should both be set independently")
	}
	if b.IsSet(33) {
		t.Fatal("bit 33 must remain clear")
	}
}

func TestErase(t *testing.T) {
	b := NewFull(33)
	b.Erase(false)
	for i := 0; i < 33; i++ {
		if b.IsSet(i) {
			t.Fatalf("bit %d should be clear after Erase(false)", i)
		}
	}
	b.Erase(true)
	for i := 0; i < 33; i++ {
		if !b.IsSet(i) {
			t.Fatalf("bit %d should be set after Erase(true)", i)
		}
	}
}

func TestAtomicSetThenIsSet(t *testing.T) {
	a := NewAtomic(64)
	if a.IsSet(40) {
		t.Fatal("bit 40 should start clear")
	}
	a.Set(40)
	if !a.IsSet(40) {
		t.Fatal("bit 40 should be set after Set")
	}
}

func TestAtomicConcurrentSet(t *testing.T) {
	a := NewAtomic(256)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := g; i < 256; i += 8 {
				a.Set(i)
			}
		}(g)
	}
	wg.Wait()
	for i := 0; i < 256; i++ {
		if !a.IsSet(i) {
			t.Fatalf("bit %d should be set after concurrent Set", i)
		}
	}
}

func TestAtomicSetDoesNotClobberSiblingBits(t *testing.T) {
	a := NewAtomic(32)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a.Set(i)
		}(i)
	}
	wg.Wait()
	for i := 0; i < 32; i++ {
		if !a.IsSet(i) {
			t.Fatalf("bit %d lost to a concurrent CAS race", i)
		}
	}
}
