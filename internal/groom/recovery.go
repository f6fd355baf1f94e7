package groom

import "github.com/Faultbox/furgroom/pkg/math"

// recovery is the linear fade used by brush and split after release.
type recovery struct {
	timer float32
}

func (r *recovery) reset() {
	r.timer = 0
}

// step advances the timer and returns the faded strength and whether the
// fade has finished. A non-positive duration finishes immediately.
func (r *recovery) step(dt, duration, strength float32) (float32, bool) {
	r.timer += dt

	factor := float32(1)
	if duration > 0 {
		factor = math.Clamp01(r.timer / duration)
	}

	if factor >= 1 {
		return 0, true
	}
	return math.Lerp(strength, 0, factor), false
}
