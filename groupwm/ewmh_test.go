package main

import "testing"

func TestApplyStateAction(t *testing.T) {
	testCases := []struct {
		action   uint32
		on, want bool
	}{
		{netWMStateRemove, false, false},
		{netWMStateRemove, true, false},
		{netWMStateAdd, false, true},
		{netWMStateAdd, true, true},
		{netWMStateToggle, false, true},
		{netWMStateToggle, true, false},
		{7, true, true},
		{7, false, false},
	}
	for _, tc := range testCases {
		if got := applyStateAction(tc.action, tc.on); got != tc.want {
			t.Errorf("applyStateAction(%d, %t): got %t, want %t", tc.action, tc.on, got, tc.want)
		}
	}
}

func TestFocusOnActivation(t *testing.T) {
	shown := newTestGroup()
	shown.screen = &screen{group: shown}
	hidden := newTestGroup()

	testCases := []struct {
		desc string
		w    *window
		want bool
	}{
		{"displayed group", &window{group: shown}, true},
		{"hidden group", &window{group: hidden}, false},
		{"no group", &window{}, false},
	}
	for _, tc := range testCases {
		if got := focusOnActivation(tc.w); got != tc.want {
			t.Errorf("%s: got %t, want %t", tc.desc, got, tc.want)
		}
	}
}
