package main

import (
	"strings"

	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// windowProps are the client properties read when a window is first managed.
type windowProps struct {
	instance, class string
	name            string
	// types are the _NET_WM_WINDOW_TYPE values, e.g. "dialog".
	types          []string
	transientFor   xp.Window
	fullscreen     bool
	wmDeleteWindow bool
	wmTakeFocus    bool
}

// shouldFloat reports whether a new window should float instead of being
// tiled: dialogs and other auxiliary windows, transients, and anything that
// matches a float rule.
func shouldFloat(c *Config, p windowProps) bool {
	if p.transientFor != 0 {
		return true
	}
	for _, t := range p.types {
		for _, ft := range c.FloatingTypes {
			if t == ft {
				return true
			}
		}
	}
	for _, r := range c.FloatRules {
		if r.WMClass != "" && (r.WMClass == p.instance || r.WMClass == p.class) {
			return true
		}
		if r.WName != "" && r.WName == p.name {
			return true
		}
	}
	return false
}

// readProps fetches xWin's ICCCM and EWMH properties. Missing properties are
// left at their zero value.
func readProps(xWin xp.Window) (p windowProps) {
	if wc, err := icccm.WmClassGet(xUtil, xWin); err == nil {
		p.instance, p.class = wc.Instance, wc.Class
	}
	p.name = windowName(xWin)
	if types, err := ewmh.WmWindowTypeGet(xUtil, xWin); err == nil {
		for _, t := range types {
			p.types = append(p.types, shortWindowType(t))
		}
	}
	if states, err := ewmh.WmStateGet(xUtil, xWin); err == nil {
		for _, st := range states {
			if st == "_NET_WM_STATE_FULLSCREEN" {
				p.fullscreen = true
			}
		}
	}
	if t, err := icccm.WmTransientForGet(xUtil, xWin); err == nil {
		p.transientFor = t
	}
	if protocols, err := icccm.WmProtocolsGet(xUtil, xWin); err == nil {
		for _, proto := range protocols {
			switch proto {
			case "WM_DELETE_WINDOW":
				p.wmDeleteWindow = true
			case "WM_TAKE_FOCUS":
				p.wmTakeFocus = true
			}
		}
	}
	return p
}

// shortWindowType converts "_NET_WM_WINDOW_TYPE_DIALOG" to "dialog".
func shortWindowType(atomName string) string {
	return strings.ToLower(strings.TrimPrefix(atomName, "_NET_WM_WINDOW_TYPE_"))
}

// windowName prefers the UTF-8 _NET_WM_NAME over the legacy WM_NAME.
func windowName(xWin xp.Window) string {
	if name, err := ewmh.WmNameGet(xUtil, xWin); err == nil && name != "" {
		return name
	}
	if name, err := icccm.WmNameGet(xUtil, xWin); err == nil {
		return name
	}
	return ""
}
