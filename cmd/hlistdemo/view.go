package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/hlist"
	"github.com/ayn2op/hlist/help"
	"github.com/ayn2op/hlist/keybind"
)

// demoView stacks the list, its scroll indicator, a status line and the help
// bar, top to bottom.
type demoView struct {
	*hlist.Box

	adapter   *hlist.SliceAdapter[string]
	list      *hlist.HorizontalList
	indicator *hlist.ScrollIndicator
	help      *help.Help

	keys   demoKeyMap
	status string
}

type demoKeyMap struct {
	hlist.KeyMap
	Reload keybind.Keybind
	Help   keybind.Keybind
	Quit   keybind.Keybind
}

func (k demoKeyMap) ShortHelp() []keybind.Keybind {
	return append(k.KeyMap.ShortHelp(), k.Help, k.Quit)
}

func (k demoKeyMap) FullHelp() [][]keybind.Keybind {
	return append(k.KeyMap.FullHelp(), []keybind.Keybind{k.Reload, k.Help, k.Quit})
}

func newDemoView(adapter *hlist.SliceAdapter[string]) *demoView {
	v := &demoView{
		Box:       hlist.NewBox(),
		adapter:   adapter,
		list:      hlist.NewHorizontalList(),
		indicator: hlist.NewScrollIndicator(),
		help:      help.New(),
		status:    "drag, fling or scroll the list",
	}
	v.keys = demoKeyMap{
		KeyMap: v.list.KeyMap(),
		Reload: keybind.NewKeybind(keybind.WithKeys("r"), keybind.WithHelp("r", "reload")),
		Help:   keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "help")),
		Quit:   keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
	}
	v.help.SetKeyMap(v.keys)
	v.indicator.SetSource(v.list)

	v.list.SetOnScrollListener(hlist.ScrollFunc(func(list *hlist.HorizontalList, deltaX, firstPosition, firstItemLeft int) {
		v.indicator.OnScroll(list, deltaX, firstPosition, firstItemLeft)
		v.status = fmt.Sprintf("first %d at %d", firstPosition, firstItemLeft)
	}))
	v.list.SetOnItemClickListener(hlist.ItemClickFunc(func(list *hlist.HorizontalList, element hlist.Element, position int, id int64) {
		v.status = fmt.Sprintf("clicked %q (position %d, id %d)", adapter.Items()[position], position, id)
	}))
	return v
}

// reload drops the data and sets it again, which keeps the scroll position
// when ids are stable.
func (v *demoView) reload() {
	items := v.adapter.Items()
	v.adapter.Clear()
	v.adapter.SetItems(items)
	v.status = "reloaded"
}

func (v *demoView) Draw(screen tcell.Screen) {
	v.DrawForSubclass(screen, v)

	x, y, width, height := v.GetInnerRect()
	helpHeight := min(v.help.Height(width), max(height-3, 0))
	listHeight := max(height-2-helpHeight, 0)

	v.list.SetRect(x, y, width, listHeight)
	v.indicator.SetRect(x, y+listHeight, width, 1)
	v.help.SetRect(x, y+height-helpHeight, width, helpHeight)

	v.list.Draw(screen)
	v.indicator.Draw(screen)
	hlist.PrintWithStyle(screen, v.status, x, y+listHeight+1, width, hlist.AlignmentLeft, tcell.StyleDefault.Dim(true))
	v.help.Draw(screen)
}

func (v *demoView) InputHandler(event *tcell.EventKey) hlist.Command {
	switch {
	case keybind.Matches(event, v.keys.Quit):
		return hlist.QuitCommand{}
	case keybind.Matches(event, v.keys.Help):
		v.help.Toggle()
		return hlist.RedrawCommand{}
	case keybind.Matches(event, v.keys.Reload):
		v.reload()
		return hlist.RedrawCommand{}
	}
	return hlist.AppendCommand(v.list.InputHandler(event), hlist.RedrawCommand{})
}

func (v *demoView) MouseHandler(action hlist.MouseAction, event *tcell.EventMouse) (hlist.Primitive, hlist.Command) {
	capture, cmd := v.list.MouseHandler(action, event)
	return capture, hlist.AppendCommand(cmd, hlist.RedrawCommand{})
}

func (v *demoView) HasFocus() bool {
	return v.list.HasFocus()
}

func (v *demoView) Focus(delegate func(p hlist.Primitive)) {
	delegate(v.list)
}
