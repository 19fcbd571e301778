package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable runes, matched case-insensitively for letters
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlS:  IntentToggleMute,
			tcell.KeyEnter:  IntentStart,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
		},
		Runes: map[rune]Intent{
			'q': IntentQuit,
			'm': IntentToggleMute,
			's': IntentStart,
			' ': IntentStart,
			'a': IntentLeft,
			'h': IntentLeft,
			'd': IntentRight,
			'l': IntentRight,
		},
	}
}

// Lookup resolves a key event to an intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	return kt.LookupKey(ev.Key(), ev.Rune())
}

// LookupKey resolves a key and rune pair to an intent
func (kt *KeyTable) LookupKey(key tcell.Key, r rune) Intent {
	if key != tcell.KeyRune {
		return kt.SpecialKeys[key]
	}
	if in, ok := kt.Runes[r]; ok {
		return in
	}
	if r >= 'A' && r <= 'Z' {
		return kt.Runes[r+('a'-'A')]
	}
	return IntentNone
}
