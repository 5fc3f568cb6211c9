package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/fsnotify/fsnotify"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config is the user-adjustable part of groupwm's configuration. The zero
// value is not useful; start from defaultConfig.
type Config struct {
	ModKey   string `yaml:"mod_key"`
	Terminal string `yaml:"terminal"`
	Font     string `yaml:"font"`
	FontSize int    `yaml:"font_size"`

	BarHeight   int    `yaml:"bar_height"`
	ClockFormat string `yaml:"clock_format"`

	Colors      Colors      `yaml:"colors"`
	LayoutTheme LayoutTheme `yaml:"layout_theme"`

	// FloatingTypes are _NET_WM_WINDOW_TYPE values, without the
	// _NET_WM_WINDOW_TYPE_ prefix and in lower case, that always float.
	FloatingTypes []string    `yaml:"floating_types"`
	FloatRules    []FloatRule `yaml:"float_rules"`

	StartupOnce string `yaml:"startup_once"`
	Startup     string `yaml:"startup"`
	SessionMenu string `yaml:"session_menu"`

	FollowMouseFocus bool   `yaml:"follow_mouse_focus"`
	WMName           string `yaml:"wmname"`
}

// Colors are "#RRGGBB" strings.
type Colors struct {
	Background          string `yaml:"background"`
	Foreground          string `yaml:"foreground"`
	ForegroundSecondary string `yaml:"foreground_secondary"`
	BorderNormal        string `yaml:"border_normal"`
	BorderFocus         string `yaml:"border_focus"`
	BorderActive        string `yaml:"border_active"`
	Urgent              string `yaml:"urgent"`
}

type LayoutTheme struct {
	BorderWidth int `yaml:"border_width"`
	Margin      int `yaml:"margin"`
}

// FloatRule matches a window by WM_CLASS or by WM_NAME. Exactly one of the
// two fields is set.
type FloatRule struct {
	WMClass string `yaml:"wmclass,omitempty"`
	WName   string `yaml:"wname,omitempty"`
}

// palette is Colors resolved to 24-bit RGB pixel values.
type palette struct {
	background          uint32
	foreground          uint32
	foregroundSecondary uint32
	borderNormal        uint32
	borderFocus         uint32
	borderActive        uint32
	urgent              uint32
}

var (
	conf    = defaultConfig()
	colors  palette
	modMask uint16
)

func init() {
	var err error
	if colors, err = conf.palette(); err != nil {
		panic(err)
	}
	if modMask, err = parseModifier(conf.ModKey); err != nil {
		panic(err)
	}
}

// defaultConfigPath returns $XDG_CONFIG_HOME/groupwm/config.yaml, or "" if
// there is no home directory to put it under.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "groupwm", "config.yaml")
}

// loadConfig decodes the YAML file at path on top of the defaults. A missing
// file is only an error if mustExist is set.
func loadConfig(path string, mustExist bool) (*Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !mustExist {
			return c, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	if err := decodeConfig(f, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func decodeConfig(r io.Reader, c *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return fmt.Errorf("decode config: %w", err)
	}
	return c.validate()
}

func (c *Config) validate() error {
	var errs []error
	if _, err := parseModifier(c.ModKey); err != nil {
		errs = append(errs, err)
	}
	if c.Terminal == "" {
		errs = append(errs, errors.New("terminal: must not be empty"))
	}
	if c.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font_size: %d is not positive", c.FontSize))
	}
	if c.BarHeight < 8 || c.BarHeight > 128 {
		errs = append(errs, fmt.Errorf("bar_height: %d is outside [8, 128]", c.BarHeight))
	}
	if c.ClockFormat == "" {
		errs = append(errs, errors.New("clock_format: must not be empty"))
	}
	if c.LayoutTheme.BorderWidth < 0 {
		errs = append(errs, fmt.Errorf("layout_theme.border_width: %d is negative", c.LayoutTheme.BorderWidth))
	}
	if c.LayoutTheme.Margin < 0 {
		errs = append(errs, fmt.Errorf("layout_theme.margin: %d is negative", c.LayoutTheme.Margin))
	}
	if _, err := c.palette(); err != nil {
		errs = append(errs, err)
	}
	for i, r := range c.FloatRules {
		if (r.WMClass == "") == (r.WName == "") {
			errs = append(errs, fmt.Errorf("float_rules[%d]: exactly one of wmclass and wname must be set", i))
		}
	}
	return errors.Join(errs...)
}

func (c *Config) palette() (p palette, err error) {
	for _, x := range []struct {
		name string
		src  string
		dst  *uint32
	}{
		{"background", c.Colors.Background, &p.background},
		{"foreground", c.Colors.Foreground, &p.foreground},
		{"foreground_secondary", c.Colors.ForegroundSecondary, &p.foregroundSecondary},
		{"border_normal", c.Colors.BorderNormal, &p.borderNormal},
		{"border_focus", c.Colors.BorderFocus, &p.borderFocus},
		{"border_active", c.Colors.BorderActive, &p.borderActive},
		{"urgent", c.Colors.Urgent, &p.urgent},
	} {
		if *x.dst, err = parseColor(x.src); err != nil {
			return palette{}, fmt.Errorf("colors.%s: %w", x.name, err)
		}
	}
	return p, nil
}

// parseColor converts "#RRGGBB" (or "#RGB") to a 24-bit RGB pixel value.
func parseColor(s string) (uint32, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, err
	}
	r, g, b := c.RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b), nil
}

// parseModifier converts a modifier name, as used by X11 tools such as xmodmap,
// to its mask.
func parseModifier(s string) (uint16, error) {
	switch strings.ToLower(s) {
	case "shift":
		return xp.ModMaskShift, nil
	case "control", "ctrl":
		return xp.ModMaskControl, nil
	case "mod1", "alt":
		return xp.ModMask1, nil
	case "mod2":
		return xp.ModMask2, nil
	case "mod3":
		return xp.ModMask3, nil
	case "mod4", "super":
		return xp.ModMask4, nil
	case "mod5":
		return xp.ModMask5, nil
	}
	return 0, fmt.Errorf("mod_key: unknown modifier %q", s)
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// applyConfig makes c the current configuration. It must run on the main
// goroutine once the X connection is up.
func applyConfig(c *Config) {
	p, err := c.palette()
	if err != nil {
		log.Println(err)
		return
	}
	m, err := parseModifier(c.ModKey)
	if err != nil {
		log.Println(err)
		return
	}
	oldMod := modMask
	conf, colors, modMask = c, p, m
	if modMask != oldMod {
		ungrabInput()
		grabInput()
	}
	for _, s := range screens {
		s.bar.resize(s.rect)
		// Forget the last geometry, so that border width changes are sent
		// even to windows that do not move.
		for _, w := range s.group.windows() {
			w.rect = xp.Rectangle{}
		}
		s.group.layout()
	}
	if focusedWindow != nil {
		focus(focusedWindow)
	}
	barsDirty = true
}

// watchConfig reloads the config file whenever it is written. The directory
// is watched rather than the file, since editors often replace the file
// instead of writing to it.
func watchConfig(path string) {
	if path == "" {
		return
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("could not watch config: %v", err)
		return
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		log.Printf("could not watch config: %v", err)
		watcher.Close()
		return
	}
	go func() {
		defer watcher.Close()
		// Editors tend to emit several events per save.
		var debounce <-chan time.Time
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					debounce = time.After(100 * time.Millisecond)
				}
			case <-debounce:
				debounce = nil
				c, err := loadConfig(path, true)
				if err != nil {
					log.Printf("config not reloaded: %v", err)
					continue
				}
				proactiveChan <- func() {
					applyConfig(c)
					log.Printf("reloaded %s", path)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("watching config: %v", err)
			}
		}
	}()
}
