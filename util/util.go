package util

// MaskIf returns mask when b holds, 0 otherwise. Handy for building
// button masks from per-button polls.
func MaskIf(b bool, mask uint32) uint32 {
	if b {
		return mask
	}
	return 0
}

type TickCounter struct {
	current, target uint
}

func NewTickCounter(target uint) *TickCounter {
	return &TickCounter{target: target}
}

func (tc *TickCounter) Tick(tick uint) bool {
	posedge := false
	tc.current += tick
	if tc.current > tc.target {
		tc.current -= tc.target
		posedge = true
	}
	return posedge
}
