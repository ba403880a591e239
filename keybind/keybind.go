// Package keybind describes key bindings as sets of chords, such as "ctrl+c"
// or "G", and matches them against tcell key events.
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Keybind is a set of chords triggering one action, plus its help text.
type Keybind struct {
	chords   []chord
	help     Help
	disabled bool
}

// Help is the text shown for a Keybind in help bars.
type Help struct {
	Key  string
	Desc string
}

// Option configures a Keybind.
type Option func(*Keybind)

// NewKeybind returns a Keybind configured by options.
func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

// WithKeys sets the chords of the keybind. Keys that cannot be parsed are
// dropped.
func WithKeys(keys ...string) Option {
	return func(k *Keybind) { k.SetKeys(keys...) }
}

// WithHelp sets the help text.
func WithHelp(key, desc string) Option {
	return func(k *Keybind) { k.SetHelp(key, desc) }
}

// WithDisabled creates the keybind disabled.
func WithDisabled() Option {
	return func(k *Keybind) { k.disabled = true }
}

// Keys returns the chords in their canonical form.
func (k Keybind) Keys() []string {
	keys := make([]string, len(k.chords))
	for i, c := range k.chords {
		keys[i] = c.String()
	}
	return keys
}

func (k *Keybind) SetKeys(keys ...string) {
	k.chords = nil
	for _, key := range keys {
		c, ok := parseChord(key)
		if ok && !slices.Contains(k.chords, c) {
			k.chords = append(k.chords, c)
		}
	}
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Enabled reports whether the keybind matches events and shows in help.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.chords) > 0
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Matches reports whether event triggers any of the enabled keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	c, ok := eventChord(event)
	if !ok {
		return false
	}
	for _, k := range keybinds {
		if !k.disabled && slices.Contains(k.chords, c) {
			return true
		}
	}
	return false
}

// chord is one key with its modifiers. Named keys are lower case; printable
// keys are the character itself, lower cased when a modifier is held.
type chord struct {
	mods tcell.ModMask
	key  string
}

var modifierNames = []struct {
	mod  tcell.ModMask
	name string
}{
	{tcell.ModCtrl, "ctrl"},
	{tcell.ModAlt, "alt"},
	{tcell.ModShift, "shift"},
	{tcell.ModMeta, "meta"},
}

func (c chord) String() string {
	var b strings.Builder
	for _, m := range modifierNames {
		if c.mods&m.mod != 0 {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(c.key)
	return b.String()
}

func newChord(mods tcell.ModMask, key string) chord {
	if mods != 0 && len([]rune(key)) == 1 {
		key = strings.ToLower(key)
	}
	return chord{mods: mods, key: key}
}

var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"del":      "delete",
	"ins":      "insert",
}

// parseChord reads a chord such as "ctrl+x", "PageDown" or "G".
func parseChord(text string) (chord, bool) {
	var mods tcell.ModMask
	key := ""
	for _, part := range strings.Split(strings.TrimSpace(text), "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch strings.ToLower(part) {
		case "ctrl", "control":
			mods |= tcell.ModCtrl
		case "alt":
			mods |= tcell.ModAlt
		case "shift":
			mods |= tcell.ModShift
		case "meta":
			mods |= tcell.ModMeta
		default:
			key = part
		}
	}
	if key == "" {
		return chord{}, false
	}

	if len([]rune(key)) > 1 {
		key = strings.ToLower(key)
		if alias, ok := keyAliases[key]; ok {
			key = alias
		}
	}
	if key == "backtab" {
		mods |= tcell.ModShift
		key = "tab"
	}
	return newChord(mods, key), true
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
}

func eventChord(event *tcell.EventKey) (chord, bool) {
	if event == nil {
		return chord{}, false
	}

	key, mods := event.Key(), event.Modifiers()
	// Enter, tab and backspace share their codes with ctrl keys.
	if name, ok := keyNames[key]; ok {
		return newChord(mods, name), true
	}
	switch {
	case key == tcell.KeyBacktab:
		return newChord(mods|tcell.ModShift, "tab"), true
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		return newChord(tcell.ModCtrl, string(rune('a'+(key-tcell.KeyCtrlA)))), true
	case key == tcell.KeyRune:
		// The rune of a shifted key already is the shifted character.
		return newChord(mods&^tcell.ModShift, string(event.Rune())), true
	}
	return chord{}, false
}
