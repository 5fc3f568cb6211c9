package main

import (
	xp "github.com/BurntSushi/xgb/xproto"
)

// groupNames are the fixed groups, in order. They are not configurable: the
// key bindings below and the EWMH desktop hints both assume exactly nine.
const groupNames = "123456789"

const numGroups = len(groupNames)

// defaultConfig returns the built-in configuration. A config file, if any, is
// decoded on top of this, so it only needs to list the values it changes.
func defaultConfig() *Config {
	return &Config{
		ModKey:   "mod4",
		Terminal: "terminal",
		Font:     "Noto Sans",
		FontSize: 10,

		BarHeight:   24,
		ClockFormat: "02.01.2006 15:04",

		Colors: Colors{
			Background:          "#222D31",
			Foreground:          "#F8F8F8",
			ForegroundSecondary: "#D8D8D8",
			BorderNormal:        "#595B5B",
			BorderFocus:         "#F9FAF9",
			BorderActive:        "#12876F",
			Urgent:              "#FF0000",
		},

		LayoutTheme: LayoutTheme{
			BorderWidth: 1,
			Margin:      5,
		},

		FloatingTypes: []string{"notification", "toolbar", "splash", "dialog"},
		FloatRules: []FloatRule{
			{WMClass: "confirm"},
			{WMClass: "dialog"},
			{WMClass: "download"},
			{WMClass: "error"},
			{WMClass: "file_progress"},
			{WMClass: "notification"},
			{WMClass: "splash"},
			{WMClass: "toolbar"},
			{WMClass: "confirmreset"}, // gitk
			{WMClass: "makebranch"},   // gitk
			{WMClass: "maketag"},      // gitk
			{WName: "branchdialog"},   // gitk
			{WName: "pinentry"},       // GPG key password entry
			{WMClass: "ssh-askpass"},
		},

		StartupOnce: "~/.config/qtile/startup_once.sh",
		Startup:     "~/.config/qtile/startup.sh",
		SessionMenu: "~/.config/qtile/session_dmenu.sh",

		FollowMouseFocus: true,
		WMName:           "LG3D",
	}
}

// Widget metrics for the status bar, in pixels.
const (
	groupBoxPaddingX = 2
	groupBoxBorder   = 3
	widgetPadding    = 2
	windowNamePad    = 4
	separatorWidth   = 6
)

// Layout tuning.
const (
	monadRatio     = 0.5
	monadRatioMin  = 0.25
	monadRatioMax  = 0.75
	monadRatioStep = 0.05

	tileRatio     = 0.618
	tileRatioStep = 0.05
)

// xSettings is the key/value pairs to announce via the XSETTINGS mechanism,
// picked up by GTK+ programs. Gtk/FontName is filled in from the config.
//
// If this array is empty, then groupwm will not try to own the XSETTINGS
// list, allowing another program such as gnome-settings-daemon to do so.
var xSettings = [...]struct {
	name  string
	value interface{}
}{
	{"Gtk/FontName", ""},
	{"Xft/Antialias", 1},
	{"Xft/DPI", 96 * 1024},
	{"Xft/Hinting", 1},
	{"Xft/HintStyle", "hintslight"},
	{"Xft/RGBA", "none"},
}

// menu names a dmenu invocation. The dmenu flags are built from the colors
// and font in the current config; see dmenuCommand.
type menu int

const (
	menuRun menu = iota
	menuSession
)

// keyCombo is a key press with the modifier key held down. The mods are the
// extra modifiers, in addition to the configured modifier key.
type keyCombo struct {
	mods   uint16
	keysym xp.Keysym
}

const (
	shift   = xp.ModMaskShift
	control = xp.ModMaskControl
)

type action struct {
	do  func(*screen, interface{})
	arg interface{}
}

// actions lists the action to be performed for each key press. The group
// bindings, mod+1..9 and mod+shift+1..9, are added by init.
var actions = map[keyCombo]action{
	// Switch between windows in current stack pane.
	{0, 'k'}: {doLayoutFocus, next},
	{0, 'j'}: {doLayoutFocus, prev},

	// Move windows up or down in current stack.
	{shift, 'k'}: {doLayoutShuffle, next},
	{shift, 'j'}: {doLayoutShuffle, prev},

	{shift, 'l'}:   {doLayoutCommand, cmdGrow},
	{shift, 'h'}:   {doLayoutCommand, cmdShrink},
	{control, 'n'}: {doLayoutCommand, cmdNormalize},
	{control, 'm'}: {doLayoutCommand, cmdMaximize},

	{shift, xkLeft}:  {doAdjacentGroup, prev},
	{shift, xkRight}: {doAdjacentGroup, next},

	{0, ' '}:          {doToggleFloating, nil},
	{shift, ' '}:      {doLayoutCommand, cmdFlip},
	{shift, xkReturn}: {doLayoutCommand, cmdToggleSplit},

	{control, 'l'}: {doExec, []string{"blurlock"}},
	{0, xkTab}:     {doNextLayout, nil},
	{shift, 'q'}:   {doKill, nil},
	{control, 'q'}: {doMenu, menuSession},

	{0, 'm'}: {doExec, []string{"morc_menu"}},
	{0, 's'}: {doTerminal, []string{"-e", "bmenu"}},
	{0, 'r'}: {doMenu, menuRun},

	{0, xkReturn}: {doTerminal, []string(nil)},
	{0, 'w'}:      {doExec, []string{"firefox"}},
	{0, 'f'}:      {doExec, []string{"pcmanfm"}},
	{0, 'e'}:      {doExec, []string{"geany"}},
}

func init() {
	for i := 0; i < numGroups; i++ {
		name := groupNames[i : i+1]
		k := xp.Keysym(groupNames[i])
		actions[keyCombo{0, k}] = action{doSwitchGroup, name}
		actions[keyCombo{shift, k}] = action{doMoveToGroup, name}
	}
}

// Mouse bindings, all with the modifier key held down.
const (
	buttonMove   = xp.ButtonIndex1
	buttonRaise  = xp.ButtonIndex2
	buttonResize = xp.ButtonIndex3
)
