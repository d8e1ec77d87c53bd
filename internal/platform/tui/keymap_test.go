package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	testCases := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space runs", tea.KeyMsg{Type: tea.KeySpace}, core.ActionRunToggle, false},
		{"n steps", runeKey("n"), core.ActionStep, false},
		{"dot steps", runeKey("."), core.ActionStep, false},
		{"r randomizes", runeKey("r"), core.ActionRandomize, false},
		{"c clears", runeKey("c"), core.ActionClear, false},
		{"enter toggles", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionToggleCell, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim down", runeKey("j"), core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"vim right", runeKey("l"), core.ActionRight, false},
		{"g glider", runeKey("g"), core.ActionGlider, false},
		{"p pulsar", runeKey("p"), core.ActionPulsar, false},
		{"plus faster", runeKey("+"), core.ActionFaster, false},
		{"minus slower", runeKey("-"), core.ActionSlower, false},
		{"ctrl+s screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, false},
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tc.msg.String(), action, tc.action)
			}
			if quit != tc.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tc.msg.String(), quit, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("g"), &frame) {
		t.Error("g should not quit")
	}
	if !frame.Has(core.ActionGlider) {
		t.Error("frame should contain Glider")
	}

	km.MapKeyToFrame(runeKey("z"), &frame)
	if len(frame.Actions) != 1 {
		t.Errorf("unbound key should not add actions, got %v", frame.Actions)
	}
}
