package anim

// Linear is the identity easing function
func Linear(t float64) float64 {
	return t
}

// EaseInOutCubic accelerates through the first half and decelerates
// through the second
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	d := 2*t - 2
	return 1 + d*d*d/2
}

// Smoothstep is the classic hermite interpolation easing
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
