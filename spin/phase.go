package spin

// Phase is the controller state; deceleration happens inside Spinning
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSpinning
	PhaseAligning
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseSpinning:
		return "Spinning"
	case PhaseAligning:
		return "Aligning"
	case PhaseSettling:
		return "Settling"
	default:
		return "Unknown"
	}
}

// validTransitions is the complete phase graph
var validTransitions = map[Phase][]Phase{
	PhaseIdle:     {PhaseSpinning},
	PhaseSpinning: {PhaseAligning},
	PhaseAligning: {PhaseSettling},
	PhaseSettling: {PhaseIdle},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
