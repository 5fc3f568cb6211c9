package main

import (
	"testing"
)

func TestShouldFloat(t *testing.T) {
	c := defaultConfig()
	testCases := []struct {
		desc string
		p    windowProps
		want bool
	}{
		{"plain window", windowProps{instance: "xterm", class: "XTerm", name: "~"}, false},
		{"dialog type", windowProps{class: "Gimp", types: []string{"dialog"}}, true},
		{"normal type", windowProps{class: "Gimp", types: []string{"normal"}}, false},
		{"splash type", windowProps{types: []string{"normal", "splash"}}, true},
		{"transient", windowProps{class: "Firefox", transientFor: 0x400001}, true},
		{"class rule by instance", windowProps{instance: "ssh-askpass", class: "SshAskpass"}, true},
		{"class rule by class", windowProps{instance: "x", class: "makebranch"}, true},
		{"name rule", windowProps{class: "Pinentry", name: "pinentry"}, true},
		{"name is not a class", windowProps{name: "confirm"}, false},
		{"class is not a name", windowProps{class: "branchdialog"}, false},
	}
	for _, tc := range testCases {
		if got := shouldFloat(c, tc.p); got != tc.want {
			t.Errorf("%s: got %t, want %t", tc.desc, got, tc.want)
		}
	}
}

func TestShortWindowType(t *testing.T) {
	for in, want := range map[string]string{
		"_NET_WM_WINDOW_TYPE_DIALOG":       "dialog",
		"_NET_WM_WINDOW_TYPE_NOTIFICATION": "notification",
		"_KDE_NET_WM_WINDOW_TYPE_OVERRIDE": "_kde_net_wm_window_type_override",
	} {
		if got := shortWindowType(in); got != want {
			t.Errorf("%s: got %q, want %q", in, got, want)
		}
	}
}
