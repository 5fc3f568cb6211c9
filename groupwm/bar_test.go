package main

import (
	"reflect"
	"testing"
	"time"
	"unicode/utf8"
)

func measure6(s string) int {
	return 6 * utf8.RuneCountInString(s)
}

func TestLayoutBar(t *testing.T) {
	const width = 800
	cells := layoutBar(width, measure6, []string{"1", "4", "2"}, nil, "4",
		"vim", "19.10.2026 09:30", "max")

	wantKinds := []cellKind{
		cellGroup, cellGroup, cellGroup,
		cellSeparator, cellWindowName, cellClock, cellSeparator, cellLayout,
	}
	if len(cells) != len(wantKinds) {
		t.Fatalf("got %d cells, want %d", len(cells), len(wantKinds))
	}
	x := 0
	for i, c := range cells {
		if c.kind != wantKinds[i] {
			t.Errorf("cell %d: got kind %d, want %d", i, c.kind, wantKinds[i])
		}
		if c.x != x {
			t.Errorf("cell %d: got x %d, want %d", i, c.x, x)
		}
		x += c.width
	}
	if x != width {
		t.Errorf("total width: got %d, want %d", x, width)
	}

	groupWidth := 6 + 2*(groupBoxPaddingX+groupBoxBorder)
	for i, name := range []string{"1", "2", "4"} {
		c := cells[i]
		if c.text != name || c.width != groupWidth {
			t.Errorf("group %d: got %q width %d, want %q width %d", i, c.text, c.width, name, groupWidth)
		}
		if want := name == "4"; c.current != want {
			t.Errorf("group %q: got current %t, want %t", name, c.current, want)
		}
	}
	if got := cells[4].text; got != "vim" {
		t.Errorf("window name: got %q, want %q", got, "vim")
	}
	if got, want := cells[5].width, 6*16+2*widgetPadding; got != want {
		t.Errorf("clock width: got %d, want %d", got, want)
	}
}

func TestLayoutBarGroupOrder(t *testing.T) {
	testCases := []struct {
		visible []string
		want    []string
	}{
		{[]string{"1"}, []string{"1"}},
		{[]string{"1", "5", "4"}, []string{"1", "4", "5"}},
		{[]string{"1", "9", "3", "7", "2"}, []string{"1", "2", "3", "7", "9"}},
	}
	for _, tc := range testCases {
		var got []string
		for _, c := range layoutBar(800, measure6, tc.visible, nil, "1", "", "", "max") {
			if c.kind == cellGroup {
				got = append(got, c.text)
			}
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("visible %q: got group boxes %q, want %q", tc.visible, got, tc.want)
		}
	}
}

func TestLayoutBarUrgent(t *testing.T) {
	urgent := map[string]bool{"3": true}
	cells := layoutBar(800, measure6, []string{"1", "3"}, urgent, "1", "", "", "max")
	if cells[0].urgent || !cells[1].urgent {
		t.Errorf("urgent: got %t, %t, want false, true", cells[0].urgent, cells[1].urgent)
	}
}

func TestLayoutBarTruncatesWindowName(t *testing.T) {
	long := "a very long window title that cannot possibly fit"
	cells := layoutBar(200, measure6, []string{"1"}, nil, "1", long, "12:00", "tile")
	c := cells[2]
	if c.kind != cellWindowName {
		t.Fatalf("cell 2: got kind %d, want window name", c.kind)
	}
	if measure6(c.text) > c.width-2*windowNamePad {
		t.Errorf("window name %q does not fit in %d pixels", c.text, c.width)
	}
	if c.text == long || c.text == "" {
		t.Errorf("window name: got %q, want a truncated title", c.text)
	}
}

func TestLayoutBarTooNarrow(t *testing.T) {
	cells := layoutBar(10, measure6, []string{"1", "2"}, nil, "1", "xterm", "12:00", "max")
	for _, c := range cells {
		if c.kind == cellWindowName && (c.width != 0 || c.text != "") {
			t.Errorf("window name: got %q width %d, want empty", c.text, c.width)
		}
	}
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		s    string
		room int
		want string
	}{
		{"hello", 30, "hello"},
		{"hello", 29, "h..."},
		{"hello", 24, "h..."},
		{"hello", 23, ""},
		{"héllo wörld", 42, "héll..."},
		{"", 0, ""},
	}
	for _, tc := range testCases {
		if got := truncate(tc.s, tc.room, measure6); got != tc.want {
			t.Errorf("truncate(%q, %d): got %q, want %q", tc.s, tc.room, got, tc.want)
		}
	}
}

func TestGroupAtX(t *testing.T) {
	cells := layoutBar(640, measure6, []string{"1", "5"}, nil, "1", "", "", "max")
	w := 6 + 2*(groupBoxPaddingX+groupBoxBorder)
	testCases := []struct {
		x    int
		want string
	}{
		{0, "1"},
		{w - 1, "1"},
		{w, "5"},
		{2*w - 1, "5"},
		{2 * w, ""},
		{639, ""},
		{-1, ""},
	}
	for _, tc := range testCases {
		if got := groupAtX(cells, tc.x); got != tc.want {
			t.Errorf("x=%d: got %q, want %q", tc.x, got, tc.want)
		}
	}
}

func TestClockFormat(t *testing.T) {
	tm := time.Date(2026, time.March, 7, 9, 5, 42, 0, time.UTC)
	if got, want := tm.Format(defaultConfig().ClockFormat), "07.03.2026 09:05"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
