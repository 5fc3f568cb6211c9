/*
Groupwm is a keyboard driven tiling window manager for X11. Windows live in
nine groups, named "1" to "9", and each screen shows one group at a time. A
status bar along the top of each screen lists the groups that are in use.


INSTALLATION

To install groupwm:
	1. Install Go (as per https://go.dev/doc/install or get it from your
	   distribution).
	2. Run "go install github.com/groupwm/groupwm/groupwm@latest".

Groupwm is designed to run from an Xsession session. Add this line to the end
of your ~/.xsession file:
	/path/to/your/groupwm
where the path is wherever "go install" wrote to. Run "go help gopath" for
more information.


USAGE

All keyboard shortcuts involve first holding down the modifier key, which is
the Super (Windows) key by default. Mod and the '1' to '9' keys switch to that
group. Mod and Shift and a number key move the focused window to that group,
and then switch to it. Mod and Shift and the Left or Right arrow keys move the
focused window to the previous or next group, wrapping around between "9" and
"1", and follow it there.

The bar does not list every group. It lists the first group, and any other
group that has been switched to or moved to since it last became empty. A group
that is left behind with no windows drops out of the list, except for the
first group, which is always listed. Clicking on a group in the bar switches to
it.

Each group arranges its windows with one of four layouts: "max", "monadtall",
"tile" and "floating". Mod and the Tab key cycles through them, and the bar
shows the current one at its right edge. Mod and the 'J' or 'K' keys focus the
previous or next window. With Shift, they move the focused window instead.
Mod and Shift and the 'H' or 'L' keys shrink or grow the main pane. Mod and
Control and the 'N' key resets the layout, and Mod and Control and the 'M' key
maximizes the focused window. Mod and Shift and the Space key flips the main
pane to the other side.

Mod and the Space key toggles whether the focused window floats. Dialogs,
splash screens and transient windows float from the start. Floating windows
can be moved by dragging with Mod and the left mouse button, and resized with
Mod and the right mouse button. Mod and the middle mouse button raises a
floating window.

Mod and the Enter key opens a terminal emulator. Mod and the 'R' key opens a
program launcher (dmenu). Mod and Shift and the 'Q' key closes the focused
window. Mod and Control and the 'Q' key opens the session menu, for logging out
or shutting down. Mod and Control and the 'L' key locks the screen.


CUSTOMIZATION

Colors, fonts, the modifier key, the terminal emulator, float rules and
autostart scripts are read from $XDG_CONFIG_HOME/groupwm/config.yaml, which
defaults to ~/.config/groupwm/config.yaml. The file only needs to list the
settings that differ from the defaults; run "groupwm print-config" to see them
all, and "groupwm check-config" to validate an edited file. Groupwm reloads the
file whenever it changes. Key bindings are changed by editing config.go and
re-compiling.

On the first start of an X session, groupwm runs the startup_once script. On
every start, it runs the startup script.


DEVELOPMENT

When working on groupwm, it can be run in a nested X server such as Xephyr.
From the groupwm directory:
	Xephyr :9 2>/dev/null &
	DISPLAY=:9 go run .
*/
package main
