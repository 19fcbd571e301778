package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultKeyTable(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentRight},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), IntentLeft},
		{"D uppercase", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), IntentRight},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), IntentStart},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentStart},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentStart},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"m", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyBindings(t *testing.T) {
	kt, err := LoadKeyTable(map[string]string{
		"j":      "left",
		"k":      "right",
		"q":      "none",
		"space":  "none",
		"ctrl+q": "quit",
		"Up":     "start",
	})
	if err != nil {
		t.Fatalf("LoadKeyTable: %v", err)
	}

	checks := []struct {
		key  tcell.Key
		r    rune
		want Intent
	}{
		{tcell.KeyRune, 'j', IntentLeft},
		{tcell.KeyRune, 'k', IntentRight},
		{tcell.KeyRune, 'q', IntentNone},
		{tcell.KeyRune, ' ', IntentNone},
		{tcell.KeyCtrlQ, 0, IntentQuit},
		{tcell.KeyUp, 0, IntentStart},
		{tcell.KeyRune, 'a', IntentLeft}, // defaults survive
	}
	for _, c := range checks {
		if got := kt.LookupKey(c.key, c.r); got != c.want {
			t.Errorf("LookupKey(%v, %q) = %v, want %v", c.key, c.r, got, c.want)
		}
	}
}

func TestApplyUppercaseLetters(t *testing.T) {
	kt, err := LoadKeyTable(map[string]string{
		"A": "none",
		"J": "left",
	})
	if err != nil {
		t.Fatalf("LoadKeyTable: %v", err)
	}

	checks := []struct {
		r    rune
		want Intent
	}{
		{'a', IntentNone},
		{'A', IntentNone},
		{'j', IntentLeft},
		{'J', IntentLeft},
	}
	for _, c := range checks {
		if got := kt.LookupKey(tcell.KeyRune, c.r); got != c.want {
			t.Errorf("LookupKey(%q) = %v, want %v", c.r, got, c.want)
		}
	}
	if _, ok := kt.Runes['J']; ok {
		t.Error("uppercase binding stored under 'J'")
	}
}

func TestApplyRejects(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
	}{
		{"unknown action", map[string]string{"j": "jump"}},
		{"unknown key", map[string]string{"f13": "left"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kt := DefaultKeyTable()
			if err := kt.Apply(tt.bindings); err == nil {
				t.Fatal("expected error")
			}
			if kt.LookupKey(tcell.KeyRune, 'a') != IntentLeft {
				t.Error("failed Apply modified the table")
			}
		})
	}
}

func TestIntentDirection(t *testing.T) {
	if IntentLeft.Direction() != -1 || IntentRight.Direction() != 1 || IntentStart.Direction() != 0 {
		t.Error("unexpected directions")
	}
	if IntentToggleMute.String() != "toggle_mute" {
		t.Errorf("String = %q", IntentToggleMute.String())
	}
}
