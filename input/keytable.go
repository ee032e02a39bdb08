package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to commands
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Command

	// Printable key bindings
	Runes map[rune]Command
}

// DefaultKeyTable returns the default key bindings
// Arrows and z follow the classic layout, hjkl mirror them vi-style
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Command{
			tcell.KeyLeft:   CommandLeft,
			tcell.KeyRight:  CommandRight,
			tcell.KeyDown:   CommandSoftDrop,
			tcell.KeyUp:     CommandRotate,
			tcell.KeyEscape: CommandQuit,
			tcell.KeyCtrlC:  CommandQuit,
			tcell.KeyCtrlQ:  CommandQuit,
		},

		Runes: map[rune]Command{
			'h': CommandLeft,
			'l': CommandRight,
			'j': CommandSoftDrop,
			'k': CommandRotate,
			'z': CommandRotate,
			'q': CommandQuit,
		},
	}
}

// Lookup resolves a key event, returning CommandNone for unbound keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Command {
	if ev == nil {
		return CommandNone
	}
	if ev.Key() == tcell.KeyRune {
		// Some terminals report Ctrl+letter as a modified rune
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if ev.Rune() == 'c' || ev.Rune() == 'q' {
				return CommandQuit
			}
			return CommandNone
		}
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
