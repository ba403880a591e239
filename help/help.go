// Package help shows the bindings of a key map, either on one line or
// expanded into one aligned column per binding group.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/hlist"
	"github.com/ayn2op/hlist/keybind"
)

// KeyMap is implemented by key maps that can describe themselves.
// [hlist.KeyMap] is one.
type KeyMap interface {
	// ShortHelp returns the bindings of the one line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns binding groups, one column each.
	FullHelp() [][]keybind.Keybind
}

type Styles struct {
	Key       tcell.Style
	Desc      tcell.Style
	Separator tcell.Style
}

func DefaultStyles() Styles {
	dim := tcell.StyleDefault.Dim(true)
	return Styles{
		Key:       dim,
		Desc:      tcell.StyleDefault,
		Separator: dim,
	}
}

// Help is a primitive drawing the help of a KeyMap.
type Help struct {
	*hlist.Box

	keyMap    KeyMap
	styles    Styles
	expanded  bool
	separator string
	columnGap int
	ellipsis  string
}

// New returns a collapsed help bar.
func New() *Help {
	return &Help{
		Box:       hlist.NewBox(),
		styles:    DefaultStyles(),
		separator: " • ",
		columnGap: 4,
		ellipsis:  string(hlist.SemigraphicsHorizontalEllipsis),
	}
}

func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

func (h *Help) SetStyles(styles Styles) *Help {
	h.styles = styles
	h.MarkDirty()
	return h
}

// SetSeparator sets the text between bindings on the collapsed line.
func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	h.MarkDirty()
	return h
}

// SetExpanded switches between the one line and the column layout.
func (h *Help) SetExpanded(expanded bool) *Help {
	if h.expanded != expanded {
		h.expanded = expanded
		h.MarkDirty()
	}
	return h
}

func (h *Help) Expanded() bool {
	return h.expanded
}

func (h *Help) Toggle() *Help {
	return h.SetExpanded(!h.expanded)
}

// Height returns the number of rows the help needs at width.
func (h *Help) Height(width int) int {
	if h.keyMap == nil {
		return 0
	}
	if !h.expanded {
		return 1
	}
	return max(rows(h.layout(width)), 1)
}

// Lines returns the help laid out for width as plain text, one string per row.
// A width of zero or less does not truncate.
func (h *Help) Lines(width int) []string {
	runs := h.layout(width)
	lines := make([]strings.Builder, rows(runs))
	cursors := make([]int, len(lines))
	for _, r := range runs {
		line := &lines[r.y]
		line.WriteString(strings.Repeat(" ", max(r.x-cursors[r.y], 0)))
		line.WriteString(r.text)
		cursors[r.y] = r.x + hlist.StringWidth(r.text)
	}

	out := make([]string, len(lines))
	for i := range lines {
		out[i] = lines[i].String()
	}
	return out
}

func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)

	x, y, width, height := h.GetInnerRect()
	for _, r := range h.layout(width) {
		if r.y >= height || r.x >= width {
			continue
		}
		hlist.PrintWithStyle(screen, r.text, x+r.x, y+r.y, width-r.x, hlist.AlignmentLeft, r.style)
	}
}

// run is styled text placed at a cell relative to the inner rect.
type run struct {
	x, y  int
	text  string
	style tcell.Style
}

func rows(runs []run) int {
	n := 0
	for _, r := range runs {
		n = max(n, r.y+1)
	}
	return n
}

type entry struct {
	key, desc string
}

func entries(bindings []keybind.Keybind) []entry {
	out := make([]entry, 0, len(bindings))
	for _, k := range bindings {
		help := k.Help()
		if !k.Enabled() || help.Key == "" && help.Desc == "" {
			continue
		}
		out = append(out, entry{key: help.Key, desc: help.Desc})
	}
	return out
}

// width returns the cells e takes with its key padded to keyWidth.
func (e entry) width(keyWidth int) int {
	if e.desc == "" {
		return keyWidth
	}
	if keyWidth == 0 {
		return hlist.StringWidth(e.desc)
	}
	return keyWidth + 1 + hlist.StringWidth(e.desc)
}

func (h *Help) entryRuns(e entry, x, y, keyWidth int) []run {
	runs := make([]run, 0, 2)
	if e.key != "" {
		runs = append(runs, run{x: x, y: y, text: e.key, style: h.styles.Key})
	}
	if e.desc != "" {
		if keyWidth > 0 {
			x += keyWidth + 1
		}
		runs = append(runs, run{x: x, y: y, text: e.desc, style: h.styles.Desc})
	}
	return runs
}

func (h *Help) layout(width int) []run {
	if h.keyMap == nil {
		return nil
	}
	if h.expanded {
		return h.columns(h.keyMap.FullHelp(), width)
	}
	return h.line(h.keyMap.ShortHelp(), width)
}

// fits reports whether something ending at end fits into width.
func fits(end, width int) bool {
	return width <= 0 || end <= width
}

// line places the bindings after each other. Bindings that do not fit are
// replaced by an ellipsis.
func (h *Help) line(bindings []keybind.Keybind, width int) []run {
	var runs []run
	separatorWidth := hlist.StringWidth(h.separator)
	x := 0
	for i, e := range entries(bindings) {
		keyWidth := hlist.StringWidth(e.key)
		start := x
		if i > 0 {
			start += separatorWidth
		}
		if !fits(start+e.width(keyWidth), width) {
			return h.withEllipsis(runs, x, width)
		}
		if i > 0 {
			runs = append(runs, run{x: x, text: h.separator, style: h.styles.Separator})
		}
		runs = append(runs, h.entryRuns(e, start, 0, keyWidth)...)
		x = start + e.width(keyWidth)
	}
	return runs
}

// columns places every group in its own column with aligned descriptions.
// Columns that do not fit are dropped in favour of an ellipsis on the first
// row.
func (h *Help) columns(groups [][]keybind.Keybind, width int) []run {
	var runs []run
	x := 0
	placed := 0
	for _, group := range groups {
		column := entries(group)
		if len(column) == 0 {
			continue
		}
		keyWidth, columnWidth := 0, 0
		for _, e := range column {
			keyWidth = max(keyWidth, hlist.StringWidth(e.key))
		}
		for _, e := range column {
			columnWidth = max(columnWidth, e.width(keyWidth))
		}

		start := x
		if placed > 0 {
			start += h.columnGap
		}
		if !fits(start+columnWidth, width) {
			return h.withEllipsis(runs, x, width)
		}
		for row, e := range column {
			runs = append(runs, h.entryRuns(e, start, row, keyWidth)...)
		}
		x = start + columnWidth
		placed++
	}
	return runs
}

// withEllipsis appends the ellipsis one cell after end on the first row, if it
// fits.
func (h *Help) withEllipsis(runs []run, end, width int) []run {
	if h.ellipsis == "" {
		return runs
	}
	x := end
	if len(runs) > 0 {
		x++
	}
	if !fits(x+hlist.StringWidth(h.ellipsis), width) {
		return runs
	}
	return append(runs, run{x: x, text: h.ellipsis, style: h.styles.Separator})
}
