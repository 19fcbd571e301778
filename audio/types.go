package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundWallBounce   SoundType = iota // Ball off a side or the top edge
	SoundPaddleBounce                  // Ball off the paddle
	SoundBreak                         // Block destroyed
	SoundLose                          // Ball passed the paddle
	SoundCleared                       // Last block destroyed
	soundTypeCount
)

var soundNames = [...]string{
	SoundWallBounce:   "wall_bounce",
	SoundPaddleBounce: "paddle_bounce",
	SoundBreak:        "break",
	SoundLose:         "lose",
	SoundCleared:      "cleared",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}
