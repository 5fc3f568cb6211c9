package main

import (
	"sync"
)

// groupRuntime is what the group tracker needs from the window manager: which
// group is current, how many windows each group holds, and the two commands
// that change them. Groups are identified by their index.
//
// With several screens, activating a group that another screen shows swaps
// the two screens' groups. activate then returns the group that was pushed
// onto the other screen, or -1.
type groupRuntime interface {
	numGroups() int
	groupName(i int) string
	currentGroup() int
	hasCurrentWindow() bool
	windowCount(i int) int
	moveCurrentWindow(to int)
	activate(i int) (displaced int)
}

// groupTracker maintains the ordered list of visible groups, the ones that the
// bar's group box shows. The first entry is pinned: it is the first group and
// is never removed. A group becomes visible when a window is moved to it or it
// is switched to, and is hidden again when it is left empty.
//
// Each operation holds the lock for its whole read-modify-write cycle,
// including the calls into the groupRuntime, so the runtime must not call back
// into the tracker.
type groupTracker struct {
	mu      sync.Mutex
	visible []string
}

func newGroupTracker(pinned string) *groupTracker {
	return &groupTracker{visible: []string{pinned}}
}

// names returns a copy of the visible group names, in order.
func (t *groupTracker) names() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.visible...)
}

func (t *groupTracker) indexOf(name string) int {
	for i, v := range t.visible {
		if v == name {
			return i
		}
	}
	return -1
}

// reveal makes name visible without any other change. It is for groups that
// are displayed by other means than a switch, such as at startup.
func (t *groupTracker) reveal(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.show(name)
}

func (t *groupTracker) show(name string) {
	if t.indexOf(name) < 0 {
		t.visible = append(t.visible, name)
	}
}

// hideIfEmpty hides group i if it has no windows and is not the pinned group.
func (t *groupTracker) hideIfEmpty(rt groupRuntime, i int) {
	name := rt.groupName(i)
	if rt.windowCount(i) != 0 || name == t.visible[0] {
		return
	}
	if j := t.indexOf(name); j >= 0 {
		t.visible = append(t.visible[:j], t.visible[j+1:]...)
	}
}

// moveWindowToAdjacentGroup moves the current window to the previous or next
// group, wrapping around at either end, and follows it there.
func (t *groupTracker) moveWindowToAdjacentGroup(rt groupRuntime, dir traversal) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !rt.hasCurrentWindow() {
		return
	}
	n := rt.numGroups()
	src := rt.currentGroup()
	dst := (src + 1) % n
	if dir == prev {
		dst = (src + n - 1) % n
	}
	t.transfer(rt, src, dst)
}

// moveWindowToGroup moves the current window to the named group and follows
// it there.
func (t *groupTracker) moveWindowToGroup(rt groupRuntime, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	dst := groupIndex(rt, name)
	if dst < 0 || !rt.hasCurrentWindow() {
		return
	}
	src := rt.currentGroup()
	if src == dst {
		return
	}
	t.transfer(rt, src, dst)
}

// transfer is the common tail of the two window moves. The destination is
// shown before the window arrives, and the source is only considered for
// hiding after the window has left it.
func (t *groupTracker) transfer(rt groupRuntime, src, dst int) {
	t.show(rt.groupName(dst))
	rt.moveCurrentWindow(dst)
	t.hideIfEmpty(rt, src)
	t.activate(rt, dst)
}

// switchToGroup displays the named group, hiding the group being left if it
// is empty.
func (t *groupTracker) switchToGroup(rt groupRuntime, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	dst := groupIndex(rt, name)
	if dst < 0 {
		return
	}
	src := rt.currentGroup()
	if src == dst {
		return
	}
	t.hideIfEmpty(rt, src)
	t.show(name)
	t.activate(rt, dst)
}

// activate displays group i. A group that ends up on another screen is
// shown again, even if it was just hidden for being empty.
func (t *groupTracker) activate(rt groupRuntime, i int) {
	if j := rt.activate(i); j >= 0 {
		t.show(rt.groupName(j))
	}
}

func groupIndex(rt groupRuntime, name string) int {
	for i, n := 0, rt.numGroups(); i < n; i++ {
		if rt.groupName(i) == name {
			return i
		}
	}
	return -1
}
