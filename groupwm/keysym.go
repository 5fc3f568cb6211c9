package main

// These constants come from /usr/include/X11/keysymdef.h. Printable Latin-1
// keysyms equal their character, and are written as rune literals instead.

import (
	"fmt"

	xp "github.com/BurntSushi/xgb/xproto"
)

const (
	xkTab    = 0xff09
	xkReturn = 0xff0d
	xkEscape = 0xff1b
	xkLeft   = 0xff51
	xkUp     = 0xff52
	xkRight  = 0xff53
	xkDown   = 0xff54
)

func keysymString(keysym xp.Keysym) string {
	switch keysym {
	case ' ':
		return "space"
	case xkTab:
		return "Tab"
	case xkReturn:
		return "Return"
	case xkEscape:
		return "Escape"
	case xkLeft:
		return "Left"
	case xkUp:
		return "Up"
	case xkRight:
		return "Right"
	case xkDown:
		return "Down"
	}
	if 0x20 < keysym && keysym < 0x7f {
		return string(rune(keysym))
	}
	return fmt.Sprintf("0x%04x", uint32(keysym))
}
