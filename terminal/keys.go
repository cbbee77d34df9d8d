package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/host"
)

// Action is what the loop does in response to an input event
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionCopy
	ActionResize
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionCopy:
		return "Copy"
	case ActionResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Command keys; these cannot be bound to paddles
const (
	KeyQuit  host.Key = "q"
	KeyPause host.Key = "space"
	KeyCopy  host.Key = "c"
)

// ReservedKeys lists the command key names
var ReservedKeys = []host.Key{KeyQuit, KeyPause, KeyCopy}

var specialKeyNames = map[tcell.Key]host.Key{
	tcell.KeyUp:    "up",
	tcell.KeyDown:  "down",
	tcell.KeyLeft:  "left",
	tcell.KeyRight: "right",
	tcell.KeyEnter: "enter",
	tcell.KeyTab:   "tab",
	tcell.KeyPgUp:  "pgup",
	tcell.KeyPgDn:  "pgdn",
}

// KeyName converts a tcell key to the lower-case name used by key bindings
// Returns "" for keys that have no name
func KeyName(key tcell.Key, r rune) host.Key {
	if key == tcell.KeyRune {
		if r == ' ' {
			return KeyPause
		}
		return host.Key(strings.ToLower(string(r)))
	}
	return specialKeyNames[key]
}
