package engine

// Phase is the game state machine position
//
//	Idle ──Start──▶ Running ──ball lost──▶ Ended ──Start──▶ Running
//	                   │
//	                   └──last block──▶ Cleared ──Start (rebuilds wall)──▶ Running
//
// Only Running advances the simulation
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
	PhaseCleared
)

var phaseNames = [...]string{
	PhaseIdle:    "idle",
	PhaseRunning: "running",
	PhaseEnded:   "ended",
	PhaseCleared: "cleared",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Simulating reports whether ticks advance the game in this phase
func (p Phase) Simulating() bool {
	return p == PhaseRunning
}
