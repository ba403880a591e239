package help

import (
	"strings"
	"testing"

	. "github.com/fulldump/biff"
	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/hlist"
	"github.com/ayn2op/hlist/keybind"
)

func TestLines_Collapsed(t *testing.T) {
	h := New().SetKeyMap(hlist.DefaultKeyMap())

	AssertEqual(h.Lines(0), []string{"←/h left • →/l right • enter open"})
	AssertEqual(h.Lines(25), []string{"←/h left • →/l right …"})
}

func TestLines_Expanded(t *testing.T) {
	h := New().SetKeyMap(hlist.DefaultKeyMap()).SetExpanded(true)

	lines := h.Lines(0)

	AssertEqual(len(lines), 3)
	AssertEqual(lines[0], "←/h left     pgup page left     home/g first")
	AssertEqual(lines[1], "→/l right    pgdn page right    end/G  last")
	AssertEqual(lines[2], strings.Repeat(" ", 32)+"enter  open")
}

func TestLines_ExpandedTruncated(t *testing.T) {
	h := New().SetKeyMap(hlist.DefaultKeyMap()).SetExpanded(true)

	AssertEqual(h.Lines(20), []string{"←/h left  …", "→/l right"})
	AssertEqual(h.Lines(5), []string{"…"})
}

func TestHeight(t *testing.T) {
	h := New()

	AssertEqual(h.Height(80), 0)

	h.SetKeyMap(hlist.DefaultKeyMap())

	AssertEqual(h.Height(80), 1)

	h.Toggle()

	AssertTrue(h.Expanded())
	AssertEqual(h.Height(80), 3)
}

func TestDraw_SkipsDisabledBindings(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.Init()
	screen.SetSize(40, 1)
	keys := hlist.DefaultKeyMap()
	keys.ScrollLeft = keybind.NewKeybind(keybind.WithKeys("left"), keybind.WithHelp("left", "hidden"), keybind.WithDisabled())
	h := New().SetKeyMap(keys)
	h.SetRect(0, 0, 40, 1)

	h.Draw(screen)

	var b strings.Builder
	for x := 0; x < 40; x++ {
		primary, _, _, _ := screen.GetContent(x, 0)
		b.WriteRune(primary)
	}
	AssertTrue(strings.HasPrefix(b.String(), "→/l right • enter open"))
	AssertFalse(strings.Contains(b.String(), "hidden"))
}
