package main

import (
	xp "github.com/BurntSushi/xgb/xproto"
)

// drag is the mouse drag in progress, if any.
var drag struct {
	w        *window
	button   xp.Button
	rootX    int16
	rootY    int16
	startPos xp.Rectangle
}

// cleanState removes the lock modifiers and the mouse buttons from an event
// state, leaving the modifiers that key bindings care about.
func cleanState(state uint16) uint16 {
	return state &^ (xp.ModMaskLock | xp.ModMask2) &
		(xp.ModMaskShift | xp.ModMaskControl | xp.ModMask1 | xp.ModMask3 |
			xp.ModMask4 | xp.ModMask5)
}

func handleKeyPress(e xp.KeyPressEvent) {
	state := cleanState(e.State)
	if state&modMask == 0 {
		return
	}
	kc := keyCombo{
		mods:   state &^ modMask,
		keysym: keysyms[e.Detail][0],
	}
	if a := actions[kc]; a.do != nil {
		a.do(screenContaining(e.RootX, e.RootY), a.arg)
	}
}

func handleButtonPress(e xp.ButtonPressEvent) {
	if b := barFor(e.Event); b != nil {
		if name := b.groupAt(e.EventX); name != "" {
			tracker.switchToGroup(screenRuntime{b.screen}, name)
		}
		return
	}
	if w := findXWin(e.Event); w != nil {
		// A plain click on a client, grabbed by grabClicks. Focus the window
		// without raising it, then pass the click on.
		if w.group.screen != nil && w != focusedWindow {
			focus(w)
		}
		check(xp.AllowEventsChecked(xConn, xp.AllowReplayPointer, e.Time))
		return
	}
	if cleanState(e.State)&modMask == 0 {
		return
	}
	w := findXWin(e.Child)
	if w == nil || w.group.screen == nil {
		return
	}
	focus(w)
	switch xp.Button(e.Detail) {
	case buttonRaise:
		if w.floating {
			w.raise()
		}
	case buttonMove, buttonResize:
		if w.fullscreen {
			return
		}
		area := w.group.screen.area()
		if !w.floating {
			w.floating = true
			w.setFloatGeometry(w.rect, area)
			w.group.layout()
		}
		w.raise()
		drag.w = w
		drag.button = xp.Button(e.Detail)
		drag.rootX, drag.rootY = e.RootX, e.RootY
		drag.startPos = w.rect
	}
}

// grabClicks grabs plain clicks on a client window, so that clicking it
// focuses it. Clicks with the modifier key are grabbed on the root window
// instead, and those grabs take precedence.
func grabClicks(xWin xp.Window) {
	check(xp.GrabButtonChecked(xConn, false, xWin, xp.EventMaskButtonPress,
		xp.GrabModeSync, xp.GrabModeAsync, xp.WindowNone, xp.CursorNone,
		xp.ButtonIndexAny, xp.ModMaskAny))
}

func handleButtonRelease(e xp.ButtonReleaseEvent) {
	if drag.w != nil && xp.Button(e.Detail) == drag.button {
		drag.w = nil
	}
}

func handleMotionNotify(e xp.MotionNotifyEvent) {
	w := drag.w
	if w == nil || w.group == nil || w.group.screen == nil {
		drag.w = nil
		return
	}
	dx := int(e.RootX) - int(drag.rootX)
	dy := int(e.RootY) - int(drag.rootY)
	r := dragRect(drag.startPos, drag.button, dx, dy)
	w.setFloatGeometry(r, w.group.screen.area())
	w.configure(r)
}

// dragRect returns the geometry of a window that started at r, after the
// pointer moved by (dx, dy) while dragging with the given button.
func dragRect(r xp.Rectangle, button xp.Button, dx, dy int) xp.Rectangle {
	switch button {
	case buttonMove:
		r.X = int16(int(r.X) + dx)
		r.Y = int16(int(r.Y) + dy)
	case buttonResize:
		w, h := int(r.Width)+dx, int(r.Height)+dy
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		r.Width, r.Height = uint16(w), uint16(h)
	}
	return r
}

func handleEnterNotify(e xp.EnterNotifyEvent) {
	if !conf.FollowMouseFocus || drag.w != nil {
		return
	}
	if e.Mode != xp.NotifyModeNormal {
		return
	}
	w := findXWin(e.Event)
	if w == nil || w.group.screen == nil || w == focusedWindow {
		return
	}
	focus(w)
	barsDirty = true
}
