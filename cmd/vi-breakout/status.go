package main

import (
	"github.com/lixenwraith/vi-breakout/constants"
	"github.com/lixenwraith/vi-breakout/engine"
)

// statusText returns the hint shown under the board for the game's phase
func statusText(game *engine.Game, muted bool) string {
	var text string
	switch game.Phase() {
	case engine.PhaseRunning:
		text = constants.StatusTextRunning
	case engine.PhaseEnded:
		if game.GameOver() {
			text = constants.StatusTextOver
		} else {
			text = constants.StatusTextEnded
		}
	case engine.PhaseCleared:
		text = constants.StatusTextCleared
	default:
		text = constants.StatusTextIdle
	}
	if muted {
		text += constants.StatusMutedSuffix
	}
	return text
}
