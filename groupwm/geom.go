package main

import (
	"log"

	xp "github.com/BurntSushi/xgb/xproto"
)

type traversal int

const (
	next traversal = iota
	prev
)

// offscreenXY is the most negative X/Y co-ordinate. Windows of groups that
// are not on any screen are moved there instead of being unmapped, so that
// an UnmapNotify always means that the client withdrew the window.
const offscreenXY = -1 << 15

// contains reports whether (x, y) is inside r. The right and bottom edges
// belong to the neighboring screen.
func contains(r xp.Rectangle, x, y int16) bool {
	return r.X <= x && int(x) < int(r.X)+int(r.Width) &&
		r.Y <= y && int(y) < int(r.Y)+int(r.Height)
}

func screenContaining(x, y int16) *screen {
	for _, s := range screens {
		if contains(s.rect, x, y) {
			return s
		}
	}
	return screens[0]
}

// pointerScreen returns the screen under the mouse pointer.
func pointerScreen() *screen {
	p, err := xp.QueryPointer(xConn, rootXWin).Reply()
	if err != nil {
		log.Println(err)
		return screens[0]
	}
	return screenContaining(p.RootX, p.RootY)
}

var (
	screens []*screen
	groups  [numGroups]*group

	// focusedWindow is the window with the keyboard focus, if any.
	focusedWindow *window
)

func init() {
	for i := range groups {
		g := &group{
			index:   i,
			name:    groupNames[i : i+1],
			layouts: newLayouts(),
		}
		g.dummyWindow.link[next] = &g.dummyWindow
		g.dummyWindow.link[prev] = &g.dummyWindow
		groups[i] = g
	}
}

func findWindow(predicate func(*window) bool) *window {
	for _, g := range groups {
		for w := g.dummyWindow.link[next]; w != &g.dummyWindow; w = w.link[next] {
			if predicate(w) {
				return w
			}
		}
	}
	return nil
}

func findXWin(xWin xp.Window) *window {
	return findWindow(func(w *window) bool { return w.xWin == xWin })
}

type screen struct {
	group *group
	rect  xp.Rectangle
	bar   *bar
}

// area is the part of the screen that is not covered by the bar.
func (s *screen) area() xp.Rectangle {
	r := s.rect
	h := uint16(conf.BarHeight)
	if h > r.Height {
		h = r.Height
	}
	r.Y += int16(h)
	r.Height -= h
	return r
}

type group struct {
	index       int
	name        string
	screen      *screen
	focused     *window
	dummyWindow window // The anchor of a doubly-linked list of windows.
	layouts     []layout
	layoutIndex int
}

type window struct {
	link         [2]*window
	group        *group
	transientFor *window
	xWin         xp.Window
	// rect is the window's last configured geometry, in root co-ordinates.
	rect xp.Rectangle
	// floatRect is the geometry of a floating window, relative to the
	// top-left of its screen's area.
	floatRect      xp.Rectangle
	name           string
	floating       bool
	fullscreen     bool
	urgent         bool
	wmDeleteWindow bool
	wmTakeFocus    bool
}

func (g *group) currentLayout() layout {
	return g.layouts[g.layoutIndex]
}

func (g *group) numWindows() (n int) {
	for w := g.dummyWindow.link[next]; w != &g.dummyWindow; w = w.link[next] {
		n++
	}
	return n
}

func (g *group) windows() (ws []*window) {
	for w := g.dummyWindow.link[next]; w != &g.dummyWindow; w = w.link[next] {
		ws = append(ws, w)
	}
	return ws
}

func (g *group) tiled() (ws []*window) {
	for w := g.dummyWindow.link[next]; w != &g.dummyWindow; w = w.link[next] {
		if w.tiled() {
			ws = append(ws, w)
		}
	}
	return ws
}

// tiled is whether the layout places w. Floating and fullscreen windows
// place themselves.
func (w *window) tiled() bool {
	return !w.floating && !w.fullscreen
}

// urgent is whether any of g's windows demands attention.
func (g *group) urgent() bool {
	for w := g.dummyWindow.link[next]; w != &g.dummyWindow; w = w.link[next] {
		if w.urgent {
			return true
		}
	}
	return false
}

// insert links w into g's window list, after previous. A nil previous means
// the end of the list.
func (g *group) insert(w, previous *window) {
	if previous == nil {
		previous = g.dummyWindow.link[prev]
	}
	w.group = g
	w.link[next] = previous.link[next]
	w.link[prev] = previous
	w.link[next].link[prev] = w
	w.link[prev].link[next] = w
}

// remove unlinks w from its group, moving the group's focus to a neighbor.
func (g *group) remove(w *window) {
	if g.focused == w {
		g.focused = nil
		if n := w.link[prev]; n != &g.dummyWindow {
			g.focused = n
		} else if n := w.link[next]; n != &g.dummyWindow {
			g.focused = n
		}
	}
	w.link[next].link[prev] = w.link[prev]
	w.link[prev].link[next] = w.link[next]
	w.link = [2]*window{}
	w.group = nil
}

// layout positions all of g's windows: on its screen if it has one, offscreen
// otherwise.
func (g *group) layout() {
	if g.screen == nil {
		for w := g.dummyWindow.link[next]; w != &g.dummyWindow; w = w.link[next] {
			w.configure(xp.Rectangle{X: offscreenXY, Y: offscreenXY, Width: w.rect.Width, Height: w.rect.Height})
		}
		return
	}
	area := g.screen.area()
	tiled := g.tiled()
	focusedIndex := -1
	for i, w := range tiled {
		if w == g.focused {
			focusedIndex = i
		}
	}
	rects := g.currentLayout().arrange(area, len(tiled), focusedIndex)
	bw := conf.LayoutTheme.BorderWidth
	for i, w := range tiled {
		if rects == nil {
			w.configure(w.floatGeometry(area))
		} else {
			w.configure(inset(rects[i], conf.LayoutTheme.Margin, bw))
		}
	}
	for w := g.dummyWindow.link[next]; w != &g.dummyWindow; w = w.link[next] {
		switch {
		case w.fullscreen:
			w.configure(g.screen.rect)
		case w.floating:
			w.configure(w.floatGeometry(area))
		}
	}
	g.restack()
}

// restack raises the focused window if the layout overlaps windows, and then
// raises the floating windows above the tiled ones.
func (g *group) restack() {
	if g.screen == nil {
		return
	}
	if w := g.focused; w != nil && !w.floating {
		if _, ok := g.currentLayout().(*maxLayout); ok {
			w.raise()
		}
	}
	for w := g.dummyWindow.link[next]; w != &g.dummyWindow; w = w.link[next] {
		if !w.tiled() && w != g.focused {
			w.raise()
		}
	}
	if w := g.focused; w != nil && !w.tiled() {
		w.raise()
	}
}

// floatGeometry is w's floating geometry, placed within area.
func (w *window) floatGeometry(area xp.Rectangle) xp.Rectangle {
	r := w.floatRect
	r.X += area.X
	r.Y += area.Y
	return r
}

// setFloatGeometry records r, in root co-ordinates, as w's floating geometry.
func (w *window) setFloatGeometry(r xp.Rectangle, area xp.Rectangle) {
	r.X -= area.X
	r.Y -= area.Y
	w.floatRect = r
}

func (w *window) raise() {
	check(xp.ConfigureWindowChecked(xConn, w.xWin, xp.ConfigWindowStackMode,
		[]uint32{xp.StackModeAbove}))
}

func (w *window) configure(r xp.Rectangle) {
	if w.rect == r {
		return
	}
	w.rect = r
	var mask uint16
	var values []uint32
	if r.X != offscreenXY {
		mask = xp.ConfigWindowX |
			xp.ConfigWindowY |
			xp.ConfigWindowWidth |
			xp.ConfigWindowHeight |
			xp.ConfigWindowBorderWidth
		values = []uint32{
			uint32(uint16(r.X)),
			uint32(uint16(r.Y)),
			uint32(r.Width),
			uint32(r.Height),
			uint32(w.borderWidth()),
		}
	} else {
		mask = xp.ConfigWindowX | xp.ConfigWindowY
		values = []uint32{
			uint32(uint16(r.X)),
			uint32(uint16(r.Y)),
		}
	}
	check(xp.ConfigureWindowChecked(xConn, w.xWin, mask, values))
}

// borderWidth is 0 for fullscreen windows, so that they cover the screen.
func (w *window) borderWidth() int {
	if w.fullscreen {
		return 0
	}
	return conf.LayoutTheme.BorderWidth
}

// setBorder paints w's border in the focused or normal color.
func (w *window) setBorder(focused bool) {
	pixel := colors.borderNormal
	if focused {
		pixel = colors.borderFocus
	}
	check(xp.ChangeWindowAttributesChecked(xConn, w.xWin, xp.CwBorderPixel,
		[]uint32{pixel}))
}

// moveWindow moves w from its group to g1, placing it after g1's focused
// window and giving it g1's focus.
func moveWindow(w *window, g1 *group) {
	g0 := w.group
	if g0 == g1 {
		return
	}
	g0.remove(w)
	g1.insert(w, g1.focused)
	g1.focused = w
	g0.layout()
	g1.layout()
	if focusedWindow == w && g0.screen != nil {
		focus(g0.focused)
	}
	setWMDesktop(w)
	barsDirty = true
}

// showGroup displays g1 on s. If g1 is already on another screen, the two
// screens swap groups, and the group that moved to the other screen is
// returned. Otherwise it returns nil.
func showGroup(s *screen, g1 *group) (displaced *group) {
	g0 := s.group
	if g0 == g1 {
		return nil
	}
	s1 := g1.screen
	if s1 != nil {
		s1.group, g0.screen = g0, s1
		displaced = g0
	} else {
		g0.screen = nil
	}
	s.group, g1.screen = g1, s
	g1.layout()
	g0.layout()
	focus(g1.focused)
	setCurrentDesktop(g1)
	barsDirty = true
	return displaced
}
