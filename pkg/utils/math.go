package utils

// Clamp restricts v to the closed range [lo, hi].
// When lo > hi the lower bound wins, so a field narrower than the
// object pins it to the origin.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampInt is Clamp for integers.
func ClampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Scale maps v from a span of size from onto a span of size to.
func Scale(v, from, to float64) float64 {
	if from == 0 {
		return 0
	}
	return v * to / from
}
