package math

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 limits x to [0, 1].
func Clamp01(x float32) float32 {
	return Clamp(x, 0, 1)
}

// ClampInt limits n to [lo, hi].
func ClampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Lerp interpolates from a to b by t without clamping t.
// Lerp(a, b, 1) is exactly b.
func Lerp(a, b, t float32) float32 {
	if t == 1 {
		return b
	}
	return a + (b-a)*t
}
