package main

import (
	"testing"

	xp "github.com/BurntSushi/xgb/xproto"
)

func TestCleanState(t *testing.T) {
	testCases := []struct {
		in, want uint16
	}{
		{xp.ModMask4, xp.ModMask4},
		{xp.ModMask4 | xp.ModMaskLock, xp.ModMask4},
		{xp.ModMask4 | xp.ModMask2 | xp.ModMaskShift, xp.ModMask4 | xp.ModMaskShift},
		{xp.ModMask4 | xp.KeyButMaskButton1, xp.ModMask4},
		{xp.ModMaskControl | xp.ModMask1, xp.ModMaskControl | xp.ModMask1},
	}
	for _, tc := range testCases {
		if got := cleanState(tc.in); got != tc.want {
			t.Errorf("cleanState(%#x): got %#x, want %#x", tc.in, got, tc.want)
		}
	}
}

func TestDragRect(t *testing.T) {
	r := xp.Rectangle{X: 100, Y: 100, Width: 300, Height: 200}
	if got, want := dragRect(r, buttonMove, -20, 35), (xp.Rectangle{X: 80, Y: 135, Width: 300, Height: 200}); got != want {
		t.Errorf("move: got %v, want %v", got, want)
	}
	if got, want := dragRect(r, buttonResize, 50, -10), (xp.Rectangle{X: 100, Y: 100, Width: 350, Height: 190}); got != want {
		t.Errorf("resize: got %v, want %v", got, want)
	}
	if got := dragRect(r, buttonResize, -1000, -1000); got.Width != 1 || got.Height != 1 {
		t.Errorf("resize below 1x1: got %v", got)
	}
}

func TestKeyBindings(t *testing.T) {
	for i := 0; i < numGroups; i++ {
		k := xp.Keysym(groupNames[i])
		if a := actions[keyCombo{0, k}]; a.do == nil || a.arg != groupNames[i:i+1] {
			t.Errorf("mod+%c: not bound to its group", groupNames[i])
		}
		if a := actions[keyCombo{shift, k}]; a.do == nil || a.arg != groupNames[i:i+1] {
			t.Errorf("mod+shift+%c: not bound to its group", groupNames[i])
		}
	}
	for _, kc := range []keyCombo{{shift, xkLeft}, {shift, xkRight}} {
		if a := actions[kc]; a.do == nil {
			t.Errorf("mod+shift+%s: not bound", keysymString(kc.keysym))
		}
	}
	if a := actions[keyCombo{shift, xkLeft}]; a.arg != prev {
		t.Errorf("mod+shift+Left: got arg %v, want prev", a.arg)
	}
}

func TestKeysymString(t *testing.T) {
	for k, want := range map[xp.Keysym]string{
		' ':        "space",
		'q':        "q",
		'7':        "7",
		xkReturn:   "Return",
		xkLeft:     "Left",
		0x1008ff11: "0x1008ff11",
	} {
		if got := keysymString(k); got != want {
			t.Errorf("keysymString(%#x): got %q, want %q", uint32(k), got, want)
		}
	}
}
