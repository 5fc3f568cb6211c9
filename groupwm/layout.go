package main

import (
	xp "github.com/BurntSushi/xgb/xproto"
)

type layoutCmd int

const (
	cmdGrow layoutCmd = iota
	cmdShrink
	cmdNormalize
	cmdMaximize
	cmdFlip
	cmdToggleSplit
)

// layout arranges a group's tiled windows within an area. arrange returns one
// rectangle per window, in window list order, or nil if the windows keep
// their own geometry. The focused argument is the index of the focused
// window, or -1.
type layout interface {
	name() string
	arrange(area xp.Rectangle, n, focused int) []xp.Rectangle
	command(c layoutCmd)
}

// newLayouts returns a fresh set of layouts, in the order that mod+Tab cycles
// through them. Each group has its own set, so that e.g. growing the main
// pane in one group does not affect another.
func newLayouts() []layout {
	return []layout{
		&maxLayout{},
		&monadTallLayout{ratio: monadRatio},
		&tileLayout{ratio: tileRatio, nmaster: 1, split: true},
		&floatingLayout{},
	}
}

type maxLayout struct{}

func (*maxLayout) name() string { return "max" }

func (*maxLayout) command(layoutCmd) {}

func (*maxLayout) arrange(area xp.Rectangle, n, focused int) []xp.Rectangle {
	r := make([]xp.Rectangle, n)
	for i := range r {
		r[i] = area
	}
	return r
}

// monadTallLayout is a main pane plus a column of secondary windows.
type monadTallLayout struct {
	ratio     float64
	flipped   bool
	maximized bool
}

func (*monadTallLayout) name() string { return "monadtall" }

func (l *monadTallLayout) command(c layoutCmd) {
	switch c {
	case cmdGrow:
		l.ratio = clampRatio(l.ratio + monadRatioStep)
		l.maximized = false
	case cmdShrink:
		l.ratio = clampRatio(l.ratio - monadRatioStep)
		l.maximized = false
	case cmdNormalize:
		l.ratio, l.maximized = monadRatio, false
	case cmdMaximize:
		l.maximized = !l.maximized
	case cmdFlip:
		l.flipped = !l.flipped
	}
}

func (l *monadTallLayout) arrange(area xp.Rectangle, n, focused int) []xp.Rectangle {
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []xp.Rectangle{area}
	}
	ratio := l.ratio
	if l.maximized {
		ratio = monadRatioMax
	}
	main, rest := splitH(area, ratio, l.flipped)
	return append([]xp.Rectangle{main}, splitV(rest, n-1)...)
}

// tileLayout is nmaster windows stacked on one side, the rest on the other.
// When split is false, all windows share a single column.
type tileLayout struct {
	ratio   float64
	nmaster int
	flipped bool
	split   bool
}

func (*tileLayout) name() string { return "tile" }

func (l *tileLayout) command(c layoutCmd) {
	switch c {
	case cmdGrow:
		l.nmaster++
	case cmdShrink:
		if l.nmaster > 1 {
			l.nmaster--
		}
	case cmdNormalize:
		l.ratio, l.nmaster = tileRatio, 1
	case cmdMaximize:
		if l.ratio < 1-tileRatioStep {
			l.ratio = 1 - tileRatioStep
		} else {
			l.ratio = tileRatio
		}
	case cmdFlip:
		l.flipped = !l.flipped
	case cmdToggleSplit:
		l.split = !l.split
	}
}

func (l *tileLayout) arrange(area xp.Rectangle, n, focused int) []xp.Rectangle {
	if n == 0 {
		return nil
	}
	if !l.split || n <= l.nmaster {
		return splitV(area, n)
	}
	masters, slaves := splitH(area, l.ratio, l.flipped)
	return append(splitV(masters, l.nmaster), splitV(slaves, n-l.nmaster)...)
}

type floatingLayout struct{}

func (*floatingLayout) name() string { return "floating" }

func (*floatingLayout) command(layoutCmd) {}

func (*floatingLayout) arrange(xp.Rectangle, int, int) []xp.Rectangle { return nil }

func clampRatio(r float64) float64 {
	if r < monadRatioMin {
		return monadRatioMin
	}
	if r > monadRatioMax {
		return monadRatioMax
	}
	return r
}

// splitH divides r into a left part of the given width ratio and a right part
// of the remainder. If flipped, the two parts swap sides.
func splitH(r xp.Rectangle, ratio float64, flipped bool) (a, b xp.Rectangle) {
	w := int(float64(r.Width)*ratio + 0.5)
	a, b = r, r
	a.Width = uint16(w)
	b.Width = r.Width - uint16(w)
	if flipped {
		a.X = r.X + int16(b.Width)
	} else {
		b.X = r.X + int16(w)
	}
	return a, b
}

// splitV divides r into n rows of (nearly) equal height.
func splitV(r xp.Rectangle, n int) []xp.Rectangle {
	rects := make([]xp.Rectangle, n)
	for i := range rects {
		i0 := (i + 0) * int(r.Height) / n
		i1 := (i + 1) * int(r.Height) / n
		rects[i] = r
		rects[i].Y += int16(i0)
		rects[i].Height = uint16(i1 - i0)
	}
	return rects
}

// inset shrinks r by the margin and the window border on every side, leaving
// at least a 1x1 window.
func inset(r xp.Rectangle, margin, border int) xp.Rectangle {
	d := margin + border
	w, h := int(r.Width)-2*d, int(r.Height)-2*d
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return xp.Rectangle{
		X:      r.X + int16(margin),
		Y:      r.Y + int16(margin),
		Width:  uint16(w),
		Height: uint16(h),
	}
}

// center returns a w x h rectangle centered in area, clipped to it.
func center(area xp.Rectangle, w, h uint16) xp.Rectangle {
	if w > area.Width {
		w = area.Width
	}
	if h > area.Height {
		h = area.Height
	}
	return xp.Rectangle{
		X:      area.X + int16((area.Width-w)/2),
		Y:      area.Y + int16((area.Height-h)/2),
		Width:  w,
		Height: h,
	}
}
