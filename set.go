package coplot

import (
	"sort"
)

// FloatSet is a set of float64 values. It is used to deduplicate fill
// levels and axis break positions, which collapse when a data range is
// degenerate.
type FloatSet map[float64]struct{}

func NewFloatSet() FloatSet {
	return make(FloatSet)
}

// Add adds x to s.
func (s FloatSet) Add(x float64) {
	s[x] = struct{}{}
}

// Del removes x from s.
func (s FloatSet) Del(x float64) {
	delete(s, x)
}

// Contains reports membership of x in s.
func (s FloatSet) Contains(x float64) bool {
	_, ok := s[x]
	return ok
}

// Equals compares s to a slice t.
func (s FloatSet) Equals(t []float64) bool {
	if len(s) != len(t) {
		return false
	}
	for _, x := range t {
		if _, ok := s[x]; !ok {
			return false
		}
	}
	return true
}

// Elements returns the members of s in ascending order.
func (s FloatSet) Elements() []float64 {
	elems := make([]float64, len(s))
	i := 0
	for x := range s {
		elems[i] = x
		i++
	}
	sort.Float64s(elems)
	return elems
}
