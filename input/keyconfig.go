package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Key names for keys that are not a single printable rune
var specialKeyNames = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
	"ctrl+s": tcell.KeyCtrlS,
}

// Rune aliases for keys that can't be bare single-char YAML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// Apply overlays bindings (key name to action name) onto the table
// Returns error on unknown action or key names; the table is unchanged on error
func (kt *KeyTable) Apply(bindings map[string]string) error {
	type special struct {
		key    tcell.Key
		intent Intent
	}
	type runeBinding struct {
		r      rune
		intent Intent
	}
	var specials []special
	var runes []runeBinding

	for keyName, action := range bindings {
		intent, ok := intentNames[strings.ToLower(action)]
		if !ok {
			return fmt.Errorf("key %q: unknown action %q", keyName, action)
		}

		name := strings.ToLower(keyName)
		if k, ok := specialKeyNames[name]; ok {
			specials = append(specials, special{k, intent})
			continue
		}
		if r, ok := runeAliases[name]; ok {
			runes = append(runes, runeBinding{r, intent})
			continue
		}
		if utf8.RuneCountInString(keyName) == 1 {
			r, _ := utf8.DecodeRuneInString(keyName)
			// Letters are stored lowercase so shifted presses resolve too
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			runes = append(runes, runeBinding{r, intent})
			continue
		}
		return fmt.Errorf("unknown key name %q", keyName)
	}

	for _, s := range specials {
		if s.intent == IntentNone {
			delete(kt.SpecialKeys, s.key)
			continue
		}
		kt.SpecialKeys[s.key] = s.intent
	}
	for _, rb := range runes {
		if rb.intent == IntentNone {
			delete(kt.Runes, rb.r)
			continue
		}
		kt.Runes[rb.r] = rb.intent
	}
	return nil
}

// LoadKeyTable returns the default table with bindings applied
func LoadKeyTable(bindings map[string]string) (*KeyTable, error) {
	kt := DefaultKeyTable()
	if err := kt.Apply(bindings); err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	return kt, nil
}
