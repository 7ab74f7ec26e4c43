package coplot

import (
	"math"
)

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	s := make([]float64, n)
	d := (hi - lo) / float64(n-1)
	for i := range s {
		s[i] = lo + float64(i)*d
	}
	s[n-1] = hi
	return s
}

// Geomspace returns n geometrically spaced values from lo to hi inclusive.
// Both bounds must be positive.
func Geomspace(lo, hi float64, n int) []float64 {
	s := Linspace(math.Log(lo), math.Log(hi), n)
	for i, v := range s {
		s[i] = math.Exp(v)
	}
	if n >= 2 {
		s[0], s[n-1] = lo, hi
	}
	return s
}

// LinearLevels computes n evenly spaced levels spanning [lo,hi], the
// way matplotlib's LinearLocator does. Degenerate spans collapse to a
// single level.
func LinearLevels(lo, hi float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	set := NewFloatSet()
	for _, v := range Linspace(lo, hi, n) {
		set.Add(v)
	}
	return set.Elements()
}

// LogLevels computes levels at integer powers of base covering [lo,hi].
// If more than max powers are needed, every k-th power is kept so that at
// most max levels remain.
func LogLevels(lo, hi, base float64, max int) []float64 {
	if lo <= 0 || hi <= 0 || base <= 1 {
		return nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	klo := int(math.Floor(math.Log(lo) / math.Log(base)))
	khi := int(math.Ceil(math.Log(hi) / math.Log(base)))
	stride := 1
	if max > 1 {
		for (khi-klo)/stride+1 > max {
			stride++
		}
	}
	set := NewFloatSet()
	for k := klo; k <= khi; k += stride {
		set.Add(math.Pow(base, float64(k)))
	}
	return set.Elements()
}

// dropNonFinite removes pairs where either value is infinite or NaN.
func dropNonFinite(x, y []float64) (fx, fy []float64) {
	fx = make([]float64, 0, len(x))
	fy = make([]float64, 0, len(y))
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		if isFinite(x[i]) && isFinite(y[i]) {
			fx = append(fx, x[i])
			fy = append(fy, y[i])
		}
	}
	return fx, fy
}

// dropNonFinite1 removes infinite and NaN values from a single series.
func dropNonFinite1(x []float64) []float64 {
	fx := make([]float64, 0, len(x))
	for _, v := range x {
		if isFinite(v) {
			fx = append(fx, v)
		}
	}
	return fx
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// apply maps f over a copy of x. A nil f returns x unchanged.
func apply(f func(float64) float64, x []float64) []float64 {
	if f == nil {
		return x
	}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = f(v)
	}
	return y
}

// broadcast pads a list of strings to length n. A single element is
// repeated, missing entries are filled with def.
func broadcast(vals []string, n int, def string) []string {
	out := make([]string, n)
	for i := range out {
		switch {
		case len(vals) == 1:
			out[i] = vals[0]
		case i < len(vals):
			out[i] = vals[i]
		default:
			out[i] = def
		}
	}
	return out
}

// gridMinMax scans a value grid for its finite extent.
func gridMinMax(z [][]float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(+1), math.Inf(-1)
	for _, col := range z {
		for _, v := range col {
			if !isFinite(v) {
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi, lo <= hi
}
