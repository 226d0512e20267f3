package wheel

// Phase is the interaction state of a Picker.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}
