package coplot

import (
	"testing"
)

func TestFloatSet(t *testing.T) {
	a := NewFloatSet()
	if !a.Equals(nil) {
		t.Errorf("Got a = %v", a)
	}
	a.Add(17)
	a.Add(-2)
	a.Add(17)
	if !a.Equals([]float64{-2, 17}) {
		t.Errorf("Got a = %v", a)
	}

	if a.Contains(3) {
		t.Errorf("a contains 3")
	}
	if !a.Contains(-2) {
		t.Errorf("a doesn't contain -2")
	}

	a.Add(0)
	if e := a.Elements(); len(e) != 3 || e[0] != -2 || e[1] != 0 || e[2] != 17 {
		t.Errorf("Got elements = %v", e)
	}

	a.Del(0)
	a.Del(99)
	if !a.Equals([]float64{-2, 17}) {
		t.Errorf("Got a = %v", a)
	}
}
