package combat

// Phase is the arena's run state.
type Phase int

const (
	// PhaseRunning advances the simulation every frame.
	PhaseRunning Phase = iota
	// PhaseAwaitingChoice holds the world while a level-up offer is open.
	PhaseAwaitingChoice
	// PhasePaused holds the world until the player resumes.
	PhasePaused
	// PhaseGameOver is terminal.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseAwaitingChoice:
		return "awaiting_choice"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome results.
const (
	ResultDefeat   = "defeat"
	ResultSurvived = "survived"
)
