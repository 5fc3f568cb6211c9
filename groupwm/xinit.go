package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/BurntSushi/xgb/xinerama"
	xp "github.com/BurntSushi/xgb/xproto"
)

var (
	atomNetWMName      xp.Atom
	atomWMDeleteWindow xp.Atom
	atomWMName         xp.Atom
	atomWMProtocols    xp.Atom
	atomWMTakeFocus    xp.Atom

	desktopXWin   xp.Window
	desktopWidth  uint16
	desktopHeight uint16

	keysyms [256][2]xp.Keysym
)

const (
	keyLo = 8
	keyHi = 255
)

func becomeTheWM() {
	if err := xp.ChangeWindowAttributesChecked(xConn, rootXWin, xp.CwEventMask, []uint32{
		xp.EventMaskButtonPress |
			xp.EventMaskButtonRelease |
			xp.EventMaskPointerMotion |
			xp.EventMaskSubstructureRedirect |
			xp.EventMaskSubstructureNotify,
	}).Check(); err != nil {
		if _, ok := err.(xp.AccessError); ok {
			log.Fatal("could not become the window manager. Is another window manager running?")
		}
		log.Fatal(err)
	}
}

func initAtoms() {
	atomNetWMName = internAtom("_NET_WM_NAME")
	atomWMDeleteWindow = internAtom("WM_DELETE_WINDOW")
	atomWMName = internAtom("WM_NAME")
	atomWMProtocols = internAtom("WM_PROTOCOLS")
	atomWMTakeFocus = internAtom("WM_TAKE_FOCUS")
}

func internAtom(name string) xp.Atom {
	r, err := xp.InternAtom(xConn, false, uint16(len(name)), name).Reply()
	if err != nil {
		log.Fatal(err)
	}
	return r.Atom
}

// initDesktop creates the desktop window: the background below all other
// windows, the keyboard focus when no window has it, and the owner of the
// XSETTINGS selection.
func initDesktop(xScreen *xp.ScreenInfo) {
	xFont, err := xp.NewFontId(xConn)
	if err != nil {
		log.Fatal(err)
	}
	xCursor, err := xp.NewCursorId(xConn)
	if err != nil {
		log.Fatal(err)
	}
	err = xp.OpenFontChecked(xConn, xFont, uint16(len("cursor")), "cursor").Check()
	if err != nil {
		log.Fatal(err)
	}
	const xcLeftPtr = 68 // XC_left_ptr from cursorfont.h.
	err = xp.CreateGlyphCursorChecked(
		xConn, xCursor, xFont, xFont, xcLeftPtr, xcLeftPtr+1,
		0xffff, 0xffff, 0xffff, 0, 0, 0).Check()
	if err != nil {
		log.Fatal(err)
	}
	err = xp.CloseFontChecked(xConn, xFont).Check()
	if err != nil {
		log.Fatal(err)
	}

	desktopXWin, err = xp.NewWindowId(xConn)
	if err != nil {
		log.Fatal(err)
	}
	desktopWidth = xScreen.WidthInPixels
	desktopHeight = xScreen.HeightInPixels

	if err := xp.CreateWindowChecked(
		xConn, xScreen.RootDepth, desktopXWin, xScreen.Root,
		0, 0, desktopWidth, desktopHeight, 0,
		xp.WindowClassInputOutput,
		xScreen.RootVisual,
		xp.CwBackPixel|xp.CwOverrideRedirect|xp.CwEventMask|xp.CwCursor,
		[]uint32{
			colors.background,
			1,
			xp.EventMaskExposure,
			uint32(xCursor),
		},
	).Check(); err != nil {
		log.Fatal(err)
	}

	if len(xSettings) != 0 {
		initXSettings()
	}

	if err := xp.ConfigureWindowChecked(
		xConn,
		desktopXWin,
		xp.ConfigWindowStackMode,
		[]uint32{
			xp.StackModeBelow,
		},
	).Check(); err != nil {
		log.Fatal(err)
	}

	// The root window gets the cursor too, for the moments before the
	// desktop window is mapped and for screens it does not cover.
	if err := xp.ChangeWindowAttributesChecked(xConn, rootXWin, xp.CwCursor,
		[]uint32{uint32(xCursor)}).Check(); err != nil {
		log.Println(err)
	}

	if err := xp.MapWindowChecked(xConn, desktopXWin).Check(); err != nil {
		log.Fatal(err)
	}
}

func initKeyboardMapping() {
	km, err := xp.GetKeyboardMapping(xConn, keyLo, keyHi-keyLo+1).Reply()
	if err != nil {
		log.Fatal(err)
	}
	n := int(km.KeysymsPerKeycode)
	if n < 2 {
		log.Fatalf("too few keysyms per keycode: %d", n)
	}
	for i := keyLo; i <= keyHi; i++ {
		keysyms[i][0] = km.Keysyms[(i-keyLo)*n+0]
		keysyms[i][1] = km.Keysyms[(i-keyLo)*n+1]
	}
}

// lockMasks are the modifiers that should not affect key and button bindings:
// Caps Lock and (usually) Num Lock.
var lockMasks = [...]uint16{
	0,
	xp.ModMaskLock,
	xp.ModMask2,
	xp.ModMaskLock | xp.ModMask2,
}

// grabInput grabs every bound key and mouse button on the root window.
func grabInput() {
	for kc := range actions {
		keycodes := findKeycodes(kc.keysym)
		if len(keycodes) == 0 {
			log.Printf("no key for %s", keysymString(kc.keysym))
			continue
		}
		for _, keycode := range keycodes {
			for _, lock := range lockMasks {
				check(xp.GrabKeyChecked(xConn, true, rootXWin, modMask|kc.mods|lock,
					keycode, xp.GrabModeAsync, xp.GrabModeAsync))
			}
		}
	}
	for _, b := range [...]xp.Button{buttonMove, buttonRaise, buttonResize} {
		for _, lock := range lockMasks {
			check(xp.GrabButtonChecked(xConn, false, rootXWin,
				xp.EventMaskButtonPress|xp.EventMaskButtonRelease|xp.EventMaskButtonMotion,
				xp.GrabModeAsync, xp.GrabModeAsync, xp.WindowNone, xp.CursorNone,
				byte(b), modMask|lock))
		}
	}
}

func ungrabInput() {
	check(xp.UngrabKeyChecked(xConn, xp.GrabAny, rootXWin, xp.ModMaskAny))
	check(xp.UngrabButtonChecked(xConn, xp.ButtonIndexAny, rootXWin, xp.ModMaskAny))
}

func handleMappingNotify(e xp.MappingNotifyEvent) {
	if e.Request != xp.MappingKeyboard && e.Request != xp.MappingModifier {
		return
	}
	ungrabInput()
	initKeyboardMapping()
	grabInput()
}

// findKeycodes returns the keycodes whose unshifted keysym is keysym. Key
// bindings are matched on the unshifted keysym, so that e.g. shift+1 is
// bound as "1" rather than as "!".
func findKeycodes(keysym xp.Keysym) (keycodes []xp.Keycode) {
	for i := keyLo; i <= keyHi; i++ {
		if keysyms[i][0] == keysym {
			keycodes = append(keycodes, xp.Keycode(i))
		}
	}
	return keycodes
}

func initScreens() {
	xine, err := xinerama.QueryScreens(xConn).Reply()
	if err != nil {
		log.Fatal(err)
	}
	if len(xine.ScreenInfo) > 0 {
		screens = make([]*screen, len(xine.ScreenInfo))
		for i, si := range xine.ScreenInfo {
			screens[i] = &screen{
				rect: xp.Rectangle{
					X:      si.XOrg,
					Y:      si.YOrg,
					Width:  si.Width,
					Height: si.Height,
				},
			}
		}
	} else {
		screens = []*screen{{
			rect: xp.Rectangle{
				X:      0,
				Y:      0,
				Width:  desktopWidth,
				Height: desktopHeight,
			},
		}}
	}
	// Screens beyond the ninth have no group to show, and are ignored.
	if len(screens) > numGroups {
		screens = screens[:numGroups]
	}
	// The first screen shows the first group. Other screens show the
	// following groups, which therefore start out visible.
	for i, s := range screens {
		g := groups[i]
		s.group, g.screen = g, s
		tracker.reveal(g.name)
	}
	setCurrentDesktop(screens[0].group)
}

func initXSettings() {
	a0 := internAtom("_XSETTINGS_S0")
	if err := xp.SetSelectionOwnerChecked(xConn, desktopXWin, a0,
		xp.TimeCurrentTime).Check(); err != nil {
		log.Printf("could not set xsettings: %v", err)
		return
	}
	a1 := internAtom("_XSETTINGS_SETTINGS")
	encoded := makeEncodedXSettings(fmt.Sprintf("%s %d", conf.Font, conf.FontSize))
	if err := xp.ChangePropertyChecked(xConn, xp.PropModeReplace, desktopXWin, a1, a1,
		8, uint32(len(encoded)), encoded).Check(); err != nil {
		log.Printf("could not set xsettings: %v", err)
		return
	}
}

// makeEncodedXSettings encodes xSettings in the XSETTINGS wire format, with
// fontName as the value of Gtk/FontName.
func makeEncodedXSettings(fontName string) []byte {
	b := new(bytes.Buffer)
	b.WriteString("\x00\x00\x00\x00") // Zero means little-endian.
	b.WriteString("\x00\x00\x00\x00") // Serial number.
	writeUint32(b, uint32(len(xSettings)))
	for _, s := range xSettings {
		value := s.value
		if s.name == "Gtk/FontName" {
			value = fontName
		}
		switch value.(type) {
		case int:
			b.WriteString("\x00\x00")
		case string:
			b.WriteString("\x01\x00")
		default:
			log.Fatalf("unsupported XSettings type %T", value)
		}
		writeUint16(b, uint16(len(s.name)))
		b.WriteString(s.name)
		writePadding(b, len(s.name))
		b.WriteString("\x00\x00\x00\x00") // Serial number.
		switch v := value.(type) {
		case int:
			writeUint32(b, uint32(v))
		case string:
			writeUint32(b, uint32(len(v)))
			b.WriteString(v)
			writePadding(b, len(v))
		}
	}
	return b.Bytes()
}

func writePadding(b *bytes.Buffer, n int) {
	if x := n % 4; x != 0 {
		b.WriteString("\x00\x00\x00\x00"[:4-x])
	}
}

func writeUint16(b *bytes.Buffer, u uint16) {
	b.WriteByte(byte(u >> 0))
	b.WriteByte(byte(u >> 8))
}

func writeUint32(b *bytes.Buffer, u uint32) {
	b.WriteByte(byte(u >> 0))
	b.WriteByte(byte(u >> 8))
	b.WriteByte(byte(u >> 16))
	b.WriteByte(byte(u >> 24))
}
