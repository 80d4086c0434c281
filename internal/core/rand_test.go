package core

import (
	"testing"
	"time"
)

func TestSimpleRNGDeterministic(t *testing.T) {
	a := NewSimpleRNG(42)
	b := NewSimpleRNG(42)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("same seed diverged at step %d", i)
		}
	}
}

func TestSimpleRNGRanges(t *testing.T) {
	r := NewSimpleRNG(7)

	for i := 0; i < 1000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, expected [0, 1)", f)
		}
		n := r.Intn(5)
		if n < 0 || n >= 5 {
			t.Fatalf("Intn(5) = %d, expected [0, 5)", n)
		}
	}

	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}

func TestRange(t *testing.T) {
	r := NewSimpleRNG(3)
	for i := 0; i < 200; i++ {
		v := Range(r, 80, 200)
		if v < 80 || v >= 200 {
			t.Fatalf("Range(80, 200) = %v", v)
		}
	}
}

func TestManualClock(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, expected %v", c.Now(), start)
	}

	c.Advance(Millis(250))
	if got := c.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("advanced %v, expected 250ms", got)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.SetDrag(120)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionFire) {
		t.Error("clone lost ActionFire")
	}
	if c.DragX == nil || *c.DragX != 120 {
		t.Error("clone lost drag target")
	}
	if f.Has(ActionFire) || f.DragX != nil {
		t.Error("Clear should drop actions and drag")
	}
}
