package main

import (
	"log"
	"os"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	xp "github.com/BurntSushi/xgb/xproto"
)

var (
	xConn    *xgb.Conn
	rootXWin xp.Window

	eventTime xp.Timestamp

	// proactiveChan carries X operations that happen of the program's
	// own accord, such as the clock ticking or the config file changing.
	// These are sent to the main goroutine from other goroutines. In
	// comparison, examples of reactive operations are responding to window
	// creation and key presses.
	proactiveChan = make(chan func())

	// barsDirty is set when something that the bars show has changed. The
	// bars are repainted, at most once, after each event.
	barsDirty bool
)

type checker interface {
	Check() error
}

var checkers []checker

func check(c checker) {
	checkers = append(checkers, c)
}

func sendClientMessage(xWin xp.Window, atom xp.Atom) {
	check(xp.SendEventChecked(xConn, false, xWin, xp.EventMaskNoEvent,
		string(xp.ClientMessageEvent{
			Format: 32,
			Window: xWin,
			Type:   atomWMProtocols,
			Data: xp.ClientMessageDataUnionData32New([]uint32{
				uint32(atom),
				uint32(eventTime),
				0,
				0,
				0,
			}),
		}.Bytes()),
	))
}

func handleConfigureRequest(e xp.ConfigureRequestEvent) {
	if w := findXWin(e.Window); w != nil {
		if w.floating && !w.fullscreen && w.group.screen != nil {
			// Floating windows may resize themselves, but stay put.
			r := w.rect
			if e.ValueMask&xp.ConfigWindowWidth != 0 {
				r.Width = e.Width
			}
			if e.ValueMask&xp.ConfigWindowHeight != 0 {
				r.Height = e.Height
			}
			w.setFloatGeometry(r, w.group.screen.area())
			w.configure(r)
		}
		cne := xp.ConfigureNotifyEvent{
			Event:       w.xWin,
			Window:      w.xWin,
			X:           w.rect.X,
			Y:           w.rect.Y,
			Width:       w.rect.Width,
			Height:      w.rect.Height,
			BorderWidth: uint16(w.borderWidth()),
		}
		check(xp.SendEventChecked(xConn, false, w.xWin,
			xp.EventMaskStructureNotify, string(cne.Bytes())))
		return
	}
	passConfigureRequest(e)
}

// passConfigureRequest grants an unmanaged window's request unchanged.
func passConfigureRequest(e xp.ConfigureRequestEvent) {
	fields := [...]struct {
		bit   uint16
		value uint32
	}{
		{xp.ConfigWindowX, uint32(e.X)},
		{xp.ConfigWindowY, uint32(e.Y)},
		{xp.ConfigWindowWidth, uint32(e.Width)},
		{xp.ConfigWindowHeight, uint32(e.Height)},
		{xp.ConfigWindowBorderWidth, uint32(e.BorderWidth)},
		{xp.ConfigWindowSibling, uint32(e.Sibling)},
		{xp.ConfigWindowStackMode, uint32(e.StackMode)},
	}
	mask, values := uint16(0), []uint32(nil)
	for _, f := range fields {
		if e.ValueMask&f.bit != 0 {
			mask |= f.bit
			values = append(values, f.value)
		}
	}
	check(xp.ConfigureWindowChecked(xConn, e.Window, mask, values))
}

func manage(xWin xp.Window, mapRequest bool) {
	w := findXWin(xWin)
	if w == nil {
		p := readProps(xWin)
		s := pointerScreen()
		g := s.group
		w = &window{
			xWin:           xWin,
			name:           p.name,
			floating:       shouldFloat(conf, p),
			fullscreen:     p.fullscreen,
			wmDeleteWindow: p.wmDeleteWindow,
			wmTakeFocus:    p.wmTakeFocus,
		}
		if p.transientFor != 0 {
			w.transientFor = findXWin(p.transientFor)
		}
		w.rect = xp.Rectangle{X: offscreenXY, Y: offscreenXY, Width: 1, Height: 1}
		width, height := uint16(640), uint16(480)
		if geom, err := xp.GetGeometry(xConn, xp.Drawable(xWin)).Reply(); err != nil {
			log.Println(err)
		} else {
			width, height = geom.Width, geom.Height
		}
		area := s.area()
		w.setFloatGeometry(center(area, width, height), area)

		previous := g.focused
		if w.transientFor != nil && w.transientFor.group == g {
			previous = w.transientFor
		}
		g.insert(w, previous)

		check(xp.ChangeWindowAttributesChecked(xConn, xWin, xp.CwEventMask,
			[]uint32{xp.EventMaskEnterWindow | xp.EventMaskPropertyChange |
				xp.EventMaskStructureNotify},
		))
		grabClicks(xWin)
		setWMDesktop(w)
		g.focused = w
		g.layout()
		focus(w)
		updateClientList()
	}
	if mapRequest {
		check(xp.MapWindowChecked(xConn, xWin))
	}
	barsDirty = true
}

func unmanage(xWin xp.Window) {
	w := findXWin(xWin)
	if w == nil {
		return
	}
	if w == focusedWindow {
		focusedWindow = nil
	}
	for {
		w1 := findWindow(func(w2 *window) bool { return w2.transientFor == w })
		if w1 == nil {
			break
		}
		w1.transientFor = nil
	}
	g := w.group
	g.remove(w)
	*w = window{}
	g.layout()
	if g.screen != nil {
		focus(g.focused)
	}
	updateClientList()
	barsDirty = true
}

func handlePropertyNotify(e xp.PropertyNotifyEvent) {
	if e.Atom != atomWMName && e.Atom != atomNetWMName {
		return
	}
	if w := findXWin(e.Window); w != nil {
		w.name = windowName(w.xWin)
		barsDirty = true
	}
}

type xEventOrError struct {
	event xgb.Event
	error xgb.Error
}

// run is the window manager proper. configPath is watched for changes; it
// may be empty.
func run(configPath string) {
	var err error
	xConn, err = xgb.NewConn()
	if err != nil {
		log.Fatal(err)
	}
	if err = xinerama.Init(xConn); err != nil {
		log.Fatal(err)
	}
	xSetup := xp.Setup(xConn)
	if len(xSetup.Roots) != 1 {
		log.Fatalf("X setup has unsupported number of roots: %d", len(xSetup.Roots))
	}
	rootXWin = xSetup.Roots[0].Root

	becomeTheWM()
	initAtoms()
	initDesktop(&xSetup.Roots[0])
	initEWMH()
	initKeyboardMapping()
	grabInput()
	initScreens()
	initBars(&xSetup.Roots[0])

	// Manage any existing windows.
	tree, err := xp.QueryTree(xConn, rootXWin).Reply()
	if err != nil {
		log.Fatal(err)
	}
	for _, c := range tree.Children {
		if c == desktopXWin || isBar(c) {
			continue
		}
		attrs, err := xp.GetWindowAttributes(xConn, c).Reply()
		if err != nil {
			continue
		}
		if attrs.OverrideRedirect || attrs.MapState == xp.MapStateUnmapped {
			continue
		}
		manage(c, false)
	}

	runStartupHooks()
	startClock()
	watchConfig(configPath)

	// Process X events.
	eeChan := make(chan xEventOrError)
	go func() {
		for {
			e, err := xConn.WaitForEvent()
			if e == nil && err == nil {
				log.Println("X connection closed")
				os.Exit(1)
			}
			eeChan <- xEventOrError{e, err}
		}
	}()
	for {
		if barsDirty {
			barsDirty = false
			paintBars()
		}
		flushCheckers()

		select {
		case f := <-proactiveChan:
			f()
		case ee := <-eeChan:
			if ee.error != nil {
				log.Println(ee.error)
				continue
			}
			handleEvent(ee.event)
		}
	}
}

func flushCheckers() {
	for _, c := range checkers {
		if err := c.Check(); err != nil {
			log.Println(err)
		}
	}
	clear(checkers)
	checkers = checkers[:0]
}

func handleEvent(ev xgb.Event) {
	switch e := ev.(type) {
	case xp.ButtonPressEvent:
		eventTime = e.Time
		handleButtonPress(e)
	case xp.ButtonReleaseEvent:
		eventTime = e.Time
		handleButtonRelease(e)
	case xp.ClientMessageEvent:
		handleClientMessage(e)
	case xp.ConfigureRequestEvent:
		handleConfigureRequest(e)
	case xp.DestroyNotifyEvent:
		unmanage(e.Window)
	case xp.UnmapNotifyEvent:
		unmanage(e.Window)
	case xp.EnterNotifyEvent:
		eventTime = e.Time
		handleEnterNotify(e)
	case xp.ExposeEvent:
		handleExpose(e)
	case xp.KeyPressEvent:
		eventTime = e.Time
		handleKeyPress(e)
	case xp.KeyReleaseEvent:
		eventTime = e.Time
	case xp.MappingNotifyEvent:
		handleMappingNotify(e)
	case xp.MapRequestEvent:
		manage(e.Window, true)
	case xp.MotionNotifyEvent:
		eventTime = e.Time
		handleMotionNotify(e)
	case xp.PropertyNotifyEvent:
		handlePropertyNotify(e)
	case xp.ConfigureNotifyEvent, xp.CreateNotifyEvent, xp.MapNotifyEvent,
		xp.ReparentNotifyEvent, xp.SelectionClearEvent:
		// No-op.
	default:
		log.Printf("unhandled event: %v", ev)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
