package main

import (
	"log"

	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"
)

// xUtil wraps xConn for the ICCCM and EWMH property helpers. Events are still
// read from xConn directly.
var xUtil *xgbutil.XUtil

// startedProp marks the root window once the startup-once hook has run. Root
// window properties last as long as the X session, so restarting groupwm
// does not run the hook again.
const startedProp = "_GROUPWM_STARTED"

var netSupported = []string{
	"_NET_SUPPORTED",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_WM_NAME",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_DESKTOP",
	"_NET_NUMBER_OF_DESKTOPS",
	"_NET_DESKTOP_NAMES",
	"_NET_CURRENT_DESKTOP",
	"_NET_CLIENT_LIST",
	"_NET_ACTIVE_WINDOW",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_STATE_DEMANDS_ATTENTION",
}

// The actions of a _NET_WM_STATE client message.
const (
	netWMStateRemove = 0
	netWMStateAdd    = 1
	netWMStateToggle = 2
)

// applyStateAction returns a window state flag after a _NET_WM_STATE
// request to remove, add or toggle it.
func applyStateAction(action uint32, on bool) bool {
	switch action {
	case netWMStateRemove:
		return false
	case netWMStateAdd:
		return true
	case netWMStateToggle:
		return !on
	}
	return on
}

// initEWMH announces groupwm to pagers and to programs that check which
// window manager is running. The desktop window doubles as the
// _NET_SUPPORTING_WM_CHECK window.
func initEWMH() {
	var err error
	if xUtil, err = xgbutil.NewConnXgb(xConn); err != nil {
		log.Fatal(err)
	}
	logErr(ewmh.SupportingWmCheckSet(xUtil, rootXWin, desktopXWin))
	logErr(ewmh.SupportingWmCheckSet(xUtil, desktopXWin, desktopXWin))
	logErr(ewmh.WmNameSet(xUtil, desktopXWin, conf.WMName))
	logErr(ewmh.SupportedSet(xUtil, netSupported))

	names := make([]string, numGroups)
	for i, g := range groups {
		names[i] = g.name
	}
	logErr(ewmh.NumberOfDesktopsSet(xUtil, uint(numGroups)))
	logErr(ewmh.DesktopNamesSet(xUtil, names))
}

func logErr(err error) {
	if err != nil {
		log.Println(err)
	}
}

func setCurrentDesktop(g *group) {
	logErr(ewmh.CurrentDesktopSet(xUtil, uint(g.index)))
}

func setWMDesktop(w *window) {
	logErr(ewmh.WmDesktopSet(xUtil, w.xWin, uint(w.group.index)))
}

func setActiveWindow(w *window) {
	xWin := xp.Window(0)
	if w != nil {
		xWin = w.xWin
	}
	logErr(ewmh.ActiveWindowSet(xUtil, xWin))
}

// focusOnActivation is whether a client's request to activate w is granted
// with the keyboard focus. Only windows on a displayed group get it. Others
// are marked urgent instead, and their group is not switched to.
func focusOnActivation(w *window) bool {
	return w.group != nil && w.group.screen != nil
}

// setWMState publishes w's fullscreen and urgent flags as _NET_WM_STATE.
func setWMState(w *window) {
	var states []string
	if w.fullscreen {
		states = append(states, "_NET_WM_STATE_FULLSCREEN")
	}
	if w.urgent {
		states = append(states, "_NET_WM_STATE_DEMANDS_ATTENTION")
	}
	logErr(ewmh.WmStateSet(xUtil, w.xWin, states))
}

// setFullscreen makes w cover its whole screen, bar included, or returns
// it to its layout.
func setFullscreen(w *window, on bool) {
	if w.fullscreen == on {
		return
	}
	w.fullscreen = on
	// Force a reconfigure, since the border width changes too.
	w.rect = xp.Rectangle{}
	setWMState(w)
	w.group.layout()
}

func updateClientList() {
	var xWins []xp.Window
	for _, g := range groups {
		for w := g.dummyWindow.link[next]; w != &g.dummyWindow; w = w.link[next] {
			xWins = append(xWins, w.xWin)
		}
	}
	logErr(ewmh.ClientListSet(xUtil, xWins))
}

// handleClientMessage serves pagers' requests to change the current desktop,
// which go through the group tracker like a key binding would, and clients'
// requests to be activated or to change their state.
func handleClientMessage(e xp.ClientMessageEvent) {
	name, err := xprop.AtomName(xUtil, e.Type)
	if err != nil {
		log.Println(err)
		return
	}
	switch name {
	case "_NET_CURRENT_DESKTOP":
		i := int(e.Data.Data32[0])
		if i < 0 || numGroups <= i {
			return
		}
		tracker.switchToGroup(screenRuntime{pointerScreen()}, groups[i].name)
	case "_NET_ACTIVE_WINDOW":
		w := findXWin(e.Window)
		if w == nil {
			return
		}
		if focusOnActivation(w) {
			focus(w)
			w.group.restack()
		} else if !w.urgent {
			w.urgent = true
			setWMState(w)
			barsDirty = true
		}
	case "_NET_WM_STATE":
		w := findXWin(e.Window)
		if w == nil {
			return
		}
		action := e.Data.Data32[0]
		for _, a := range e.Data.Data32[1:3] {
			if a == 0 {
				continue
			}
			state, err := xprop.AtomName(xUtil, xp.Atom(a))
			if err != nil {
				log.Println(err)
				continue
			}
			switch state {
			case "_NET_WM_STATE_FULLSCREEN":
				setFullscreen(w, applyStateAction(action, w.fullscreen))
			case "_NET_WM_STATE_DEMANDS_ATTENTION":
				w.urgent = applyStateAction(action, w.urgent) && w != focusedWindow
				setWMState(w)
				barsDirty = true
			}
		}
	}
}

// runStartupHooks runs the startup-once script, if this is the first time
// groupwm runs in this X session, and then the startup script.
func runStartupHooks() {
	if _, err := xprop.GetProperty(xUtil, rootXWin, startedProp); err != nil {
		if conf.StartupOnce != "" {
			spawn([]string{expandHome(conf.StartupOnce)})
		}
		logErr(xprop.ChangeProp32(xUtil, rootXWin, startedProp, "CARDINAL", 1))
	}
	if conf.Startup != "" {
		spawn([]string{expandHome(conf.Startup)})
	}
}
