package main

import (
	"reflect"
	"testing"

	xp "github.com/BurntSushi/xgb/xproto"
)

var testArea = xp.Rectangle{X: 0, Y: 24, Width: 1000, Height: 600}

func TestSplitV(t *testing.T) {
	got := splitV(xp.Rectangle{X: 10, Y: 0, Width: 100, Height: 100}, 3)
	want := []xp.Rectangle{
		{X: 10, Y: 0, Width: 100, Height: 33},
		{X: 10, Y: 33, Width: 100, Height: 33},
		{X: 10, Y: 66, Width: 100, Height: 34},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSplitH(t *testing.T) {
	a, b := splitH(testArea, 0.5, false)
	if a != (xp.Rectangle{X: 0, Y: 24, Width: 500, Height: 600}) {
		t.Errorf("left: got %v", a)
	}
	if b != (xp.Rectangle{X: 500, Y: 24, Width: 500, Height: 600}) {
		t.Errorf("right: got %v", b)
	}

	a, b = splitH(testArea, 0.75, true)
	if a != (xp.Rectangle{X: 250, Y: 24, Width: 750, Height: 600}) {
		t.Errorf("flipped main: got %v", a)
	}
	if b != (xp.Rectangle{X: 0, Y: 24, Width: 250, Height: 600}) {
		t.Errorf("flipped rest: got %v", b)
	}
}

func TestMaxLayout(t *testing.T) {
	got := (&maxLayout{}).arrange(testArea, 3, 1)
	if len(got) != 3 {
		t.Fatalf("got %d rects, want 3", len(got))
	}
	for i, r := range got {
		if r != testArea {
			t.Errorf("rect %d: got %v, want %v", i, r, testArea)
		}
	}
}

func TestMonadTallLayout(t *testing.T) {
	l := &monadTallLayout{ratio: monadRatio}
	if got := l.arrange(testArea, 0, -1); got != nil {
		t.Errorf("no windows: got %v", got)
	}
	if got := l.arrange(testArea, 1, 0); !reflect.DeepEqual(got, []xp.Rectangle{testArea}) {
		t.Errorf("one window: got %v", got)
	}

	got := l.arrange(testArea, 3, 0)
	want := []xp.Rectangle{
		{X: 0, Y: 24, Width: 500, Height: 600},
		{X: 500, Y: 24, Width: 500, Height: 300},
		{X: 500, Y: 324, Width: 500, Height: 300},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("three windows: got %v, want %v", got, want)
	}

	for i := 0; i < 10; i++ {
		l.command(cmdGrow)
	}
	if l.ratio != monadRatioMax {
		t.Errorf("grow: ratio %v, want %v", l.ratio, monadRatioMax)
	}
	for i := 0; i < 20; i++ {
		l.command(cmdShrink)
	}
	if l.ratio != monadRatioMin {
		t.Errorf("shrink: ratio %v, want %v", l.ratio, monadRatioMin)
	}
	l.command(cmdNormalize)
	if l.ratio != monadRatio {
		t.Errorf("normalize: ratio %v, want %v", l.ratio, monadRatio)
	}

	l.command(cmdMaximize)
	if got := l.arrange(testArea, 2, 0); got[0].Width != 750 {
		t.Errorf("maximize: main width %d, want 750", got[0].Width)
	}
	l.command(cmdMaximize)
	l.command(cmdFlip)
	if got := l.arrange(testArea, 2, 0); got[0].X != 500 || got[1].X != 0 {
		t.Errorf("flip: got %v", got)
	}
}

func TestTileLayout(t *testing.T) {
	l := &tileLayout{ratio: 0.5, nmaster: 1, split: true}
	got := l.arrange(testArea, 3, 0)
	want := []xp.Rectangle{
		{X: 0, Y: 24, Width: 500, Height: 600},
		{X: 500, Y: 24, Width: 500, Height: 300},
		{X: 500, Y: 324, Width: 500, Height: 300},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("one master: got %v, want %v", got, want)
	}

	l.command(cmdGrow)
	got = l.arrange(testArea, 3, 0)
	want = []xp.Rectangle{
		{X: 0, Y: 24, Width: 500, Height: 300},
		{X: 0, Y: 324, Width: 500, Height: 300},
		{X: 500, Y: 24, Width: 500, Height: 600},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("two masters: got %v, want %v", got, want)
	}

	// With no more windows than masters, they share the whole area.
	if got := l.arrange(testArea, 2, 0); got[0].Width != 1000 || got[1].Width != 1000 {
		t.Errorf("all masters: got %v", got)
	}

	l.command(cmdShrink)
	l.command(cmdShrink)
	if l.nmaster != 1 {
		t.Errorf("nmaster: got %d, want 1", l.nmaster)
	}

	l.command(cmdToggleSplit)
	if got := l.arrange(testArea, 3, 0); !reflect.DeepEqual(got, splitV(testArea, 3)) {
		t.Errorf("unsplit: got %v", got)
	}
}

func TestFloatingLayout(t *testing.T) {
	if got := (&floatingLayout{}).arrange(testArea, 4, 0); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestInset(t *testing.T) {
	got := inset(xp.Rectangle{X: 100, Y: 50, Width: 200, Height: 100}, 5, 1)
	want := xp.Rectangle{X: 105, Y: 55, Width: 188, Height: 88}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := inset(xp.Rectangle{Width: 4, Height: 4}, 5, 1); got.Width != 1 || got.Height != 1 {
		t.Errorf("tiny: got %v", got)
	}
}

func TestCenter(t *testing.T) {
	got := center(testArea, 200, 100)
	want := xp.Rectangle{X: 400, Y: 274, Width: 200, Height: 100}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := center(testArea, 5000, 5000); got != testArea {
		t.Errorf("oversized: got %v, want %v", got, testArea)
	}
}
