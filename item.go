package hlist

import "github.com/gdamore/tcell/v2"

// TextItem is an element showing a centered, single line label. Its width
// is the label width plus a padding cell on each side and any border.
type TextItem struct {
	*Box

	label string

	// The item's style, and the one used while highlighted.
	style            tcell.Style
	highlightedStyle tcell.Style

	highlighted bool
}

// NewTextItem returns an item showing label.
func NewTextItem(label string) *TextItem {
	return &TextItem{
		Box:              NewBox(),
		label:            label,
		style:            tcell.StyleDefault.Background(Styles.PrimitiveBackgroundColor).Foreground(Styles.PrimaryTextColor),
		highlightedStyle: tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.PrimaryTextColor),
	}
}

// SetLabel sets the label. A label of a different width makes the owning list
// measure the item again.
func (t *TextItem) SetLabel(label string) *TextItem {
	if t.label == label {
		return t
	}
	if params := t.LayoutParams(); params != nil && StringWidth(label) != StringWidth(t.label) {
		params.ForceLayout()
	}
	t.label = label
	t.MarkDirty()
	return t
}

// GetLabel returns the label.
func (t *TextItem) GetLabel() string {
	return t.label
}

// SetStyle sets the style used when the item is not highlighted.
func (t *TextItem) SetStyle(style tcell.Style) *TextItem {
	if t.style != style {
		t.style = style
		t.MarkDirty()
	}
	return t
}

// SetHighlightedStyle sets the style used while the item is highlighted.
func (t *TextItem) SetHighlightedStyle(style tcell.Style) *TextItem {
	if t.highlightedStyle != style {
		t.highlightedStyle = style
		t.MarkDirty()
	}
	return t
}

// SetHighlighted switches between the normal and the highlighted style.
func (t *TextItem) SetHighlighted(highlighted bool) *TextItem {
	if t.highlighted != highlighted {
		t.highlighted = highlighted
		t.MarkDirty()
	}
	return t
}

// Highlighted reports whether the item is highlighted.
func (t *TextItem) Highlighted() bool {
	return t.highlighted
}

// Width implements [Element].
func (t *TextItem) Width(height int) int {
	width := StringWidth(t.label) + 2
	if t.borders.Has(BordersLeft) {
		width++
	}
	if t.borders.Has(BordersRight) {
		width++
	}
	return width + t.paddingLeft + t.paddingRight
}

// Draw draws this primitive onto the screen.
func (t *TextItem) Draw(screen tcell.Screen) {
	style := t.style
	if t.highlighted {
		style = t.highlightedStyle
	}
	_, background, _ := style.Decompose()
	t.SetBackgroundColor(background)
	t.DrawForSubclass(screen, t)

	x, y, width, height := t.GetInnerRect()
	if width > 0 && height > 0 {
		PrintWithStyle(screen, t.label, x, y+height/2, width, AlignmentCenter, style)
	}
}

var _ Element = &TextItem{}
