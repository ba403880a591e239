package hlist

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// Box is the base of the primitives in this package: a rectangle with a
// background, optional borders, a title and padding. Embedders draw their
// content inside the inner rect.
//
// Box also carries the layout parameters a [HorizontalList] attaches to its
// elements, so any primitive embedding a Box and reporting a width is a valid
// [Element].
type Box struct {
	x, y, width, height int

	// The inner rect is recomputed when innerX is negative.
	innerX, innerY, innerWidth, innerHeight int

	paddingTop, paddingBottom, paddingLeft, paddingRight int

	backgroundColor tcell.Color

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title      string
	titleStyle tcell.Style

	hasFocus bool

	// Set by a HorizontalList while this box is one of its elements.
	layoutParams *LayoutParams

	dirty atomic.Bool
	// Notified when this box goes from clean to dirty, so a list learns about
	// dirty elements without scanning them.
	dirtyParent atomic.Pointer[Box]
}

// NewBox returns a Box without borders.
func NewBox() *Box {
	b := &Box{
		width:           15,
		height:          10,
		innerX:          -1,
		backgroundColor: Styles.PrimitiveBackgroundColor,
		borderSet:       BorderSetPlain(),
		borderStyle:     tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		titleStyle:      tcell.StyleDefault.Foreground(Styles.TitleColor),
	}
	b.dirty.Store(true)
	return b
}

// invalidate drops the cached inner rect and asks for a redraw.
func (b *Box) invalidate() {
	b.innerX = -1
	b.MarkDirty()
}

// SetBorderPadding sets the space between the borders and the content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	if b.paddingTop != top || b.paddingBottom != bottom || b.paddingLeft != left || b.paddingRight != right {
		b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight = top, bottom, left, right
		b.invalidate()
	}
	return b
}

// GetRect returns the position and size of the box.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// SetRect moves and resizes the box.
func (b *Box) SetRect(x, y, width, height int) {
	if b.x != x || b.y != y || b.width != width || b.height != height {
		b.x, b.y, b.width, b.height = x, y, width, height
		b.invalidate()
	}
}

// GetInnerRect returns the rect left for content once borders, the title row
// and padding are taken away. Width and height are never negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	if b.innerX >= 0 {
		return b.innerX, b.innerY, b.innerWidth, b.innerHeight
	}

	x, y, width, height := b.GetRect()
	top, bottom, left, right := b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight
	if b.title != "" || b.borders.Has(BordersTop) {
		top++
	}
	if b.borders.Has(BordersBottom) {
		bottom++
	}
	if b.borders.Has(BordersLeft) {
		left++
	}
	if b.borders.Has(BordersRight) {
		right++
	}
	return x + left, y + top, max(width-left-right, 0), max(height-top-bottom, 0)
}

// LayoutParams returns the parameters a HorizontalList attached to this box,
// or nil if it was never laid out by one.
func (b *Box) LayoutParams() *LayoutParams {
	return b.layoutParams
}

func (b *Box) SetLayoutParams(params *LayoutParams) {
	b.layoutParams = params
}

// IsDirty returns whether the box needs redrawing.
func (b *Box) IsDirty() bool {
	return b.dirty.Load()
}

// MarkDirty marks the box, and the list holding it, as needing a redraw.
func (b *Box) MarkDirty() {
	if b.dirty.Swap(true) {
		return
	}
	if parent := b.dirtyParent.Load(); parent != nil {
		parent.MarkDirty()
	}
}

func (b *Box) MarkClean() {
	b.dirty.Store(false)
}

func (b *Box) setDirtyParent(parent *Box) {
	if parent != nil && parent != b {
		b.dirtyParent.Store(parent)
	}
}

func (b *Box) clearDirtyParent(parent *Box) {
	if parent != nil {
		b.dirtyParent.CompareAndSwap(parent, nil)
	}
}

type dirtyParentSetter interface {
	setDirtyParent(parent *Box)
	clearDirtyParent(parent *Box)
}

// bindDirtyParent makes child report redraws to parent, if it can.
func bindDirtyParent(child Primitive, parent *Box) {
	if setter, ok := child.(dirtyParentSetter); ok && parent != nil {
		setter.setDirtyParent(parent)
	}
}

func unbindDirtyParent(child Primitive, parent *Box) {
	if setter, ok := child.(dirtyParentSetter); ok && parent != nil {
		setter.clearDirtyParent(parent)
	}
}

// InputHandler ignores every key.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// MouseHandler focuses the box when it is clicked.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

// InRect reports whether the screen coordinate lies within the box.
func (b *Box) InRect(x, y int) bool {
	return x >= b.x && x < b.x+b.width && y >= b.y && y < b.y+b.height
}

// InInnerRect reports whether the screen coordinate lies within the inner
// rect.
func (b *Box) InInnerRect(x, y int) bool {
	innerX, innerY, width, height := b.GetInnerRect()
	return x >= innerX && x < innerX+width && y >= innerY && y < innerY+height
}

func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	if b.backgroundColor != color {
		b.backgroundColor = color
		b.borderStyle = b.borderStyle.Background(color)
		b.MarkDirty()
	}
	return b
}

func (b *Box) GetBorders() Borders {
	return b.borders
}

// SetBorders selects the sides that get a border.
func (b *Box) SetBorders(flag Borders) *Box {
	if b.borders != flag {
		b.borders = flag
		b.invalidate()
	}
	return b
}

func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	if b.borderSet != borderSet {
		b.borderSet = borderSet
		b.MarkDirty()
	}
	return b
}

func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	if b.borderStyle != style {
		b.borderStyle = style
		b.MarkDirty()
	}
	return b
}

// SetTitle sets the title drawn on the top row. A title takes a row even
// without a top border.
func (b *Box) SetTitle(title string) *Box {
	if b.title != title {
		b.title = title
		b.invalidate()
	}
	return b
}

func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the background, borders and title of the box on
// behalf of p, the primitive embedding it, and marks the box clean.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	background := tcell.StyleDefault.Background(b.backgroundColor)
	for y := b.y; y < b.y+b.height; y++ {
		for x := b.x; x < b.x+b.width; x++ {
			screen.SetContent(x, y, ' ', nil, background)
		}
	}

	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		style := b.borderStyle
		if p.HasFocus() {
			style = style.Bold(true)
		}
		b.drawBorders(screen, style)
	}

	if b.title != "" && b.width >= 4 {
		style := b.titleStyle.Background(b.backgroundColor)
		_, printed := PrintWithStyle(screen, b.title, b.x+1, b.y, b.width-2, AlignmentCenter, style)
		if printed < StringWidth(b.title) && printed > 0 {
			screen.SetContent(b.x+b.width-2, b.y, SemigraphicsHorizontalEllipsis, nil, style)
		}
	}

	b.innerX = -1
	b.innerX, b.innerY, b.innerWidth, b.innerHeight = b.GetInnerRect()
	b.MarkClean()
}

func (b *Box) drawBorders(screen tcell.Screen, style tcell.Style) {
	left, top := b.x, b.y
	right, bottom := b.x+b.width-1, b.y+b.height-1
	set := b.borderSet

	for x := left + 1; x < right; x++ {
		if b.borders.Has(BordersTop) {
			screen.SetContent(x, top, set.Top, nil, style)
		}
		if b.borders.Has(BordersBottom) {
			screen.SetContent(x, bottom, set.Bottom, nil, style)
		}
	}
	for y := top + 1; y < bottom; y++ {
		if b.borders.Has(BordersLeft) {
			screen.SetContent(left, y, set.Left, nil, style)
		}
		if b.borders.Has(BordersRight) {
			screen.SetContent(right, y, set.Right, nil, style)
		}
	}

	corners := []struct {
		sides Borders
		x, y  int
		r     rune
	}{
		{BordersTop | BordersLeft, left, top, set.TopLeft},
		{BordersTop | BordersRight, right, top, set.TopRight},
		{BordersBottom | BordersLeft, left, bottom, set.BottomLeft},
		{BordersBottom | BordersRight, right, bottom, set.BottomRight},
	}
	for _, c := range corners {
		if b.borders.Has(c.sides) {
			screen.SetContent(c.x, c.y, c.r, nil, style)
		}
	}
}

func (b *Box) Focus(delegate func(p Primitive)) {
	if !b.hasFocus {
		b.hasFocus = true
		b.MarkDirty()
	}
}

func (b *Box) Blur() {
	if b.hasFocus {
		b.hasFocus = false
		b.MarkDirty()
	}
}

func (b *Box) HasFocus() bool {
	return b.hasFocus
}
