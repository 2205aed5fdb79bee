package timeline

// Clamp bounds value to [lo, hi] as min(max(lo, value), hi). The
// composition is unconditional: when lo > hi the result is hi.
func Clamp(lo, value, hi float64) float64 {
	if value < lo {
		value = lo
	}
	if value > hi {
		value = hi
	}
	return value
}
