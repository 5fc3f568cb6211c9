package main

import (
	"log"
	"time"
	"unicode/utf8"

	xp "github.com/BurntSushi/xgb/xproto"
)

// bar is the status bar along the top of a screen.
type bar struct {
	screen *screen
	xWin   xp.Window
	rect   xp.Rectangle
	// cells are the widgets as last painted, for mouse hit testing.
	cells []cell
}

type cellKind int

const (
	cellGroup cellKind = iota
	cellSeparator
	cellWindowName
	cellClock
	cellLayout
)

// cell is one widget's slot in a bar, in bar-relative pixels.
type cell struct {
	kind    cellKind
	text    string
	x       int
	width   int
	current bool
	urgent  bool
}

var (
	barGC   xp.Gcontext
	barFont xp.Font

	// fontAscent, fontDescent and fontWidth are the metrics of the bar font.
	// The "fixed" font is monospace, so every glyph is fontWidth wide.
	fontAscent  int
	fontDescent int
	fontWidth   int
)

func measureText(s string) int {
	n := utf8.RuneCountInString(s)
	if n > 255 {
		n = 255
	}
	return n * fontWidth
}

func initBars(xScreen *xp.ScreenInfo) {
	var err error
	barFont, err = xp.NewFontId(xConn)
	if err != nil {
		log.Fatal(err)
	}
	const fontName = "fixed"
	err = xp.OpenFontChecked(xConn, barFont, uint16(len(fontName)), fontName).Check()
	if err != nil {
		log.Fatal(err)
	}
	qf, err := xp.QueryFont(xConn, xp.Fontable(barFont)).Reply()
	if err != nil {
		log.Fatal(err)
	}
	fontAscent = int(qf.FontAscent)
	fontDescent = int(qf.FontDescent)
	fontWidth = int(qf.MaxBounds.CharacterWidth)

	barGC, err = xp.NewGcontextId(xConn)
	if err != nil {
		log.Fatal(err)
	}
	if err := xp.CreateGCChecked(
		xConn,
		barGC,
		xp.Drawable(xScreen.Root),
		xp.GcForeground|xp.GcBackground|xp.GcFont|xp.GcGraphicsExposures,
		[]uint32{
			colors.foreground,
			colors.background,
			uint32(barFont),
			0,
		},
	).Check(); err != nil {
		log.Fatal(err)
	}

	for _, s := range screens {
		xWin, err := xp.NewWindowId(xConn)
		if err != nil {
			log.Fatal(err)
		}
		b := &bar{screen: s, xWin: xWin, rect: barRect(s.rect)}
		if err := xp.CreateWindowChecked(
			xConn, xScreen.RootDepth, xWin, xScreen.Root,
			b.rect.X, b.rect.Y, b.rect.Width, b.rect.Height, 0,
			xp.WindowClassInputOutput,
			xScreen.RootVisual,
			xp.CwBackPixel|xp.CwOverrideRedirect|xp.CwEventMask,
			[]uint32{
				colors.background,
				1,
				xp.EventMaskExposure | xp.EventMaskButtonPress,
			},
		).Check(); err != nil {
			log.Fatal(err)
		}
		if err := xp.MapWindowChecked(xConn, xWin).Check(); err != nil {
			log.Fatal(err)
		}
		s.bar = b
	}
	barsDirty = true
}

// barRect is the bar's geometry for a screen at r.
func barRect(r xp.Rectangle) xp.Rectangle {
	h := uint16(conf.BarHeight)
	if h > r.Height {
		h = r.Height
	}
	return xp.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: h}
}

func barFor(xWin xp.Window) *bar {
	for _, s := range screens {
		if s.bar != nil && s.bar.xWin == xWin {
			return s.bar
		}
	}
	return nil
}

func isBar(xWin xp.Window) bool {
	return barFor(xWin) != nil
}

// resize fits b to a screen at r, after the bar height or colors change.
func (b *bar) resize(r xp.Rectangle) {
	if b == nil {
		return
	}
	b.rect = barRect(r)
	check(xp.ConfigureWindowChecked(xConn, b.xWin,
		xp.ConfigWindowX|xp.ConfigWindowY|xp.ConfigWindowWidth|xp.ConfigWindowHeight,
		[]uint32{
			uint32(uint16(b.rect.X)),
			uint32(uint16(b.rect.Y)),
			uint32(b.rect.Width),
			uint32(b.rect.Height),
		},
	))
	check(xp.ChangeWindowAttributesChecked(xConn, b.xWin, xp.CwBackPixel,
		[]uint32{colors.background}))
}

func paintBars() {
	now := time.Now()
	visible := tracker.names()
	urgent := map[string]bool{}
	for _, g := range groups {
		if g.urgent() {
			urgent[g.name] = true
		}
	}
	for _, s := range screens {
		s.bar.paint(visible, urgent, now)
	}
}

func (b *bar) paint(visible []string, urgent map[string]bool, now time.Time) {
	if b == nil {
		return
	}
	g := b.screen.group
	name := ""
	if g.focused != nil {
		name = g.focused.name
	}
	b.cells = layoutBar(int(b.rect.Width), measureText, visible, urgent, g.name,
		name, now.Format(conf.ClockFormat), g.currentLayout().name())

	h := b.rect.Height
	setForeground(colors.background)
	check(xp.PolyFillRectangleChecked(xConn, xp.Drawable(b.xWin), barGC,
		[]xp.Rectangle{{X: 0, Y: 0, Width: b.rect.Width, Height: h}}))

	for _, c := range b.cells {
		if c.width <= 0 {
			continue
		}
		x := c.x
		fg, bg := colors.foreground, colors.background
		switch c.kind {
		case cellSeparator:
			continue
		case cellGroup:
			x += groupBoxPaddingX + groupBoxBorder
			if c.current {
				bg = colors.borderActive
				setForeground(bg)
				check(xp.PolyFillRectangleChecked(xConn, xp.Drawable(b.xWin), barGC,
					[]xp.Rectangle{{X: int16(c.x), Y: 0, Width: uint16(c.width), Height: h}}))
			} else if c.urgent {
				fg = colors.urgent
			}
		case cellWindowName:
			x += windowNamePad
			fg = colors.foregroundSecondary
		case cellClock:
			x += widgetPadding
		case cellLayout:
			x += widgetPadding
			bg = colors.borderNormal
			setForeground(bg)
			check(xp.PolyFillRectangleChecked(xConn, xp.Drawable(b.xWin), barGC,
				[]xp.Rectangle{{X: int16(c.x), Y: 0, Width: uint16(c.width), Height: h}}))
		}
		drawText(b.xWin, x, baseline(int(h)), fg, bg, c.text)
	}
}

// baseline is the y co-ordinate that vertically centers the bar font in a
// bar of the given height.
func baseline(height int) int {
	return (height-fontAscent-fontDescent)/2 + fontAscent
}

func setForeground(pixel uint32) {
	check(xp.ChangeGCChecked(xConn, barGC, xp.GcForeground, []uint32{pixel}))
}

func drawText(xWin xp.Window, x, y int, fg, bg uint32, text string) {
	if text == "" {
		return
	}
	chars := make([]xp.Char2b, 0, len(text))
	for _, r := range text {
		if len(chars) == 255 {
			break
		}
		if r > 0xffff {
			r = '?'
		}
		chars = append(chars, xp.Char2b{Byte1: byte(r >> 8), Byte2: byte(r)})
	}
	check(xp.ChangeGCChecked(xConn, barGC, xp.GcForeground|xp.GcBackground,
		[]uint32{fg, bg}))
	check(xp.ImageText16Checked(xConn, byte(len(chars)), xp.Drawable(xWin), barGC,
		int16(x), int16(y), chars))
}

func handleExpose(e xp.ExposeEvent) {
	if e.Count != 0 {
		return
	}
	if isBar(e.Window) {
		barsDirty = true
	}
}

// layoutBar places the bar's widgets, left to right, in a bar width pixels
// wide. The group box shows the visible groups in group order, whatever the
// order they became visible in. The window name takes whatever room the other
// widgets leave, and is truncated to fit.
func layoutBar(width int, measure func(string) int, visible []string,
	urgent map[string]bool, current, windowName, clock, layoutName string) []cell {

	cells := make([]cell, 0, len(visible)+5)
	for i := 0; i < numGroups; i++ {
		name := groupNames[i : i+1]
		if !containsName(visible, name) {
			continue
		}
		cells = append(cells, cell{
			kind:    cellGroup,
			text:    name,
			width:   measure(name) + 2*(groupBoxPaddingX+groupBoxBorder),
			current: name == current,
			urgent:  urgent[name],
		})
	}
	cells = append(cells, cell{kind: cellSeparator, width: separatorWidth})
	nameIndex := len(cells)
	cells = append(cells,
		cell{kind: cellWindowName},
		cell{kind: cellClock, text: clock, width: measure(clock) + 2*widgetPadding},
		cell{kind: cellSeparator, width: separatorWidth},
		cell{kind: cellLayout, text: layoutName, width: measure(layoutName) + 2*widgetPadding},
	)

	used := 0
	for _, c := range cells {
		used += c.width
	}
	if room := width - used; room > 0 {
		cells[nameIndex].width = room
		cells[nameIndex].text = truncate(windowName, room-2*windowNamePad, measure)
	}

	x := 0
	for i := range cells {
		cells[i].x = x
		x += cells[i].width
	}
	return cells
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// truncate shortens s, marking the cut with "...", so that it measures no
// more than room pixels.
func truncate(s string, room int, measure func(string) int) string {
	if measure(s) <= room {
		return s
	}
	const ellipsis = "..."
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		if t := string(runes[:n]) + ellipsis; measure(t) <= room {
			return t
		}
	}
	return ""
}

// groupAt returns the name of the group box at x, or "" if there is none.
func (b *bar) groupAt(x int16) string {
	return groupAtX(b.cells, int(x))
}

func groupAtX(cells []cell, x int) string {
	for _, c := range cells {
		if c.kind == cellGroup && c.x <= x && x < c.x+c.width {
			return c.text
		}
	}
	return ""
}

// startClock repaints the bars at the start of every minute.
func startClock() {
	go func() {
		for {
			now := time.Now()
			time.Sleep(now.Truncate(time.Minute).Add(time.Minute).Sub(now))
			proactiveChan <- func() {
				barsDirty = true
			}
		}
	}()
}
