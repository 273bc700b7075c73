package gui

// Roll animation timing in ticks
const (
	shakeTicks  = 36
	settleTicks = 12
)

// cupTilts cycles while the cup shakes
var cupTilts = []float64{-0.14, -0.05, 0.06, 0.13}

// rollAnimation tracks the cup shake and the dice settling after a roll
type rollAnimation struct {
	tick   int
	rolled bool
}

// step advances the animation one tick and reports whether the shake
// just finished, which is the moment the roll lands
func (r *rollAnimation) step() bool {
	r.tick++
	if r.tick >= shakeTicks && !r.rolled {
		r.rolled = true
		return true
	}
	return false
}

// done reports whether the animation has fully played out
func (r *rollAnimation) done() bool {
	return r.tick >= shakeTicks+settleTicks
}

// shaking reports whether the cup is still rattling
func (r *rollAnimation) shaking() bool {
	return r.tick < shakeTicks
}

// tilt is the cup angle for the current tick
func (r *rollAnimation) tilt() float64 {
	return cupTilts[(r.tick/3)%len(cupTilts)]
}

// settleScale grows the landed dice back to full size
func (r *rollAnimation) settleScale() float64 {
	if r.tick <= shakeTicks {
		return 0.7
	}

	progress := float64(r.tick-shakeTicks) / float64(settleTicks)
	if progress > 1 {
		progress = 1
	}

	return 0.7 + 0.3*progress
}
