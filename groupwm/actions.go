package main

import (
	"fmt"
	"log"
	"os/exec"

	xp "github.com/BurntSushi/xgb/xproto"
)

// tracker holds the visible groups for the whole session.
var tracker = newGroupTracker(groupNames[:1])

// screenRuntime is the groupRuntime seen from one screen: its group is the
// current group, and that group's focused window is the current window.
type screenRuntime struct {
	s *screen
}

func (r screenRuntime) numGroups() int         { return numGroups }
func (r screenRuntime) groupName(i int) string { return groups[i].name }
func (r screenRuntime) currentGroup() int      { return r.s.group.index }
func (r screenRuntime) hasCurrentWindow() bool { return r.s.group.focused != nil }
func (r screenRuntime) windowCount(i int) int  { return groups[i].numWindows() }

func (r screenRuntime) moveCurrentWindow(to int) {
	if w := r.s.group.focused; w != nil {
		moveWindow(w, groups[to])
	}
}

func (r screenRuntime) activate(i int) int {
	if g := showGroup(r.s, groups[i]); g != nil {
		return g.index
	}
	return -1
}

func doExec(_ *screen, cmd1 interface{}) {
	cmd, ok := cmd1.([]string)
	if !ok || len(cmd) == 0 {
		return
	}
	spawn(cmd)
}

// spawn starts cmd without waiting for it to finish.
func spawn(cmd []string) {
	go func() {
		c := exec.Command(cmd[0], cmd[1:]...)
		if err := c.Start(); err != nil {
			log.Printf("could not start command %q: %v", cmd, err)
			return
		}
		// Ignore any error from the program itself.
		c.Wait()
	}()
}

func doTerminal(s *screen, args1 interface{}) {
	args, _ := args1.([]string)
	doExec(s, append([]string{conf.Terminal}, args...))
}

func doMenu(s *screen, m1 interface{}) {
	m, ok := m1.(menu)
	if !ok {
		return
	}
	doExec(s, dmenuCommand(conf, m))
}

// dmenuCommand returns the command line for a themed dmenu. The session menu
// is a script that takes dmenu's flags and runs dmenu itself.
func dmenuCommand(c *Config, m menu) []string {
	cmd, prompt := "dmenu_run", "run:"
	if m == menuSession {
		cmd, prompt = expandHome(c.SessionMenu), "session:"
	}
	return []string{
		cmd,
		"-p", prompt,
		"-i",
		"-nb", c.Colors.Background,
		"-nf", c.Colors.Foreground,
		"-sb", c.Colors.BorderActive,
		"-sf", c.Colors.Foreground,
		"-h", fmt.Sprint(c.BarHeight),
		"-fn", fmt.Sprintf("%s-%d", c.Font, c.FontSize),
	}
}

func doSwitchGroup(s *screen, name1 interface{}) {
	if name, ok := name1.(string); ok {
		tracker.switchToGroup(screenRuntime{s}, name)
	}
}

func doMoveToGroup(s *screen, name1 interface{}) {
	if name, ok := name1.(string); ok {
		tracker.moveWindowToGroup(screenRuntime{s}, name)
	}
}

func doAdjacentGroup(s *screen, t1 interface{}) {
	if t, ok := t1.(traversal); ok {
		tracker.moveWindowToAdjacentGroup(screenRuntime{s}, t)
	}
}

// doLayoutFocus focuses the next or previous tiled window.
func doLayoutFocus(s *screen, t1 interface{}) {
	t, ok := t1.(traversal)
	if !ok {
		return
	}
	g := s.group
	if w := adjacentTiled(g, g.focused, t, true); w != nil {
		focus(w)
		g.restack()
	}
}

// adjacentTiled returns the tiled window after (or before) w0 in g's window
// list, optionally wrapping around at the ends. It returns nil if there is no
// such window.
func adjacentTiled(g *group, w0 *window, t traversal, wrap bool) *window {
	dummy := &g.dummyWindow
	if w0 == nil {
		w0 = dummy
	}
	for w1 := w0.link[t]; w1 != w0; w1 = w1.link[t] {
		if w1 == dummy {
			if !wrap {
				return nil
			}
			continue
		}
		if w1.tiled() {
			return w1
		}
	}
	return nil
}

// doLayoutShuffle swaps the focused window with its next or previous tiled
// neighbor, so that it takes the neighbor's place in the layout.
func doLayoutShuffle(s *screen, t1 interface{}) {
	t, ok := t1.(traversal)
	if !ok {
		return
	}
	g := s.group
	w := g.focused
	if w == nil || !w.tiled() {
		return
	}
	n := adjacentTiled(g, w, t, false)
	if n == nil {
		return
	}
	// Unlink w and relink it on the far side of n.
	w.link[next].link[prev] = w.link[prev]
	w.link[prev].link[next] = w.link[next]
	if t == next {
		w.link[next], w.link[prev] = n.link[next], n
	} else {
		w.link[next], w.link[prev] = n, n.link[prev]
	}
	w.link[next].link[prev] = w
	w.link[prev].link[next] = w
	g.layout()
}

func doLayoutCommand(s *screen, c1 interface{}) {
	c, ok := c1.(layoutCmd)
	if !ok {
		return
	}
	s.group.currentLayout().command(c)
	s.group.layout()
}

func doNextLayout(s *screen, _ interface{}) {
	g := s.group
	g.layoutIndex = (g.layoutIndex + 1) % len(g.layouts)
	g.layout()
	barsDirty = true
}

func doToggleFloating(s *screen, _ interface{}) {
	w := s.group.focused
	if w == nil {
		return
	}
	if !w.floating {
		w.setFloatGeometry(w.rect, s.area())
	}
	w.floating = !w.floating
	s.group.layout()
}

func doKill(s *screen, _ interface{}) {
	w := s.group.focused
	if w == nil {
		return
	}
	if w.wmDeleteWindow {
		sendClientMessage(w.xWin, atomWMDeleteWindow)
		return
	}
	check(xp.KillClientChecked(xConn, uint32(w.xWin)))
}

func focus(w *window) {
	if f := focusedWindow; f != nil && f != w && f.group != nil {
		f.setBorder(false)
	}
	focusedWindow = w
	barsDirty = true
	xWin := desktopXWin
	if w != nil {
		w.group.focused = w
		w.setBorder(true)
		if w.urgent {
			w.urgent = false
			setWMState(w)
		}
		xWin = w.xWin
		setActiveWindow(w)
		if w.wmTakeFocus {
			sendClientMessage(xWin, atomWMTakeFocus)
			return
		}
	} else {
		setActiveWindow(nil)
	}
	check(xp.SetInputFocusChecked(xConn, xp.InputFocusParent, xWin, eventTime))
}
