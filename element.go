package hlist

// Special values for LayoutParams.Width and LayoutParams.Height.
const (
	// MatchParent makes an element as tall as the list's inner rect.
	MatchParent = -1
	// WrapContent sizes an element from its own measurement.
	WrapContent = -2
)

// Element is one rendered item of a [HorizontalList].
//
// The element's rect is its geometry in list-local cells: the left edge is x,
// the right edge is x+width. Elements are measured through Width and carry the
// list's bookkeeping in their LayoutParams; embedding a [Box] provides the
// latter.
type Element interface {
	Primitive

	// Width returns the preferred width of the element for the given height.
	Width(height int) int

	LayoutParams() *LayoutParams
	SetLayoutParams(params *LayoutParams)
}

// LayoutParams holds the per-element state a HorizontalList needs to lay out
// and recycle an element.
type LayoutParams struct {
	// Width is the exact width in cells, or WrapContent.
	Width int
	// Height is the exact height in cells, or MatchParent.
	Height int

	// The position the element was bound to when it was last scrapped.
	scrappedFromPosition int
	// Set when the element must be measured again before it is reused.
	forceLayout bool
}

// NewLayoutParams returns parameters that wrap the element's width and match
// the list's height.
func NewLayoutParams() *LayoutParams {
	return &LayoutParams{
		Width:  WrapContent,
		Height: MatchParent,
	}
}

// ForceLayout makes the owning list measure the element again the next time
// it is attached.
func (p *LayoutParams) ForceLayout() {
	p.forceLayout = true
}

// IsLayoutRequested reports whether ForceLayout was called since the element
// was last measured.
func (p *LayoutParams) IsLayoutRequested() bool {
	return p.forceLayout
}

func elementLeft(e Element) int {
	x, _, _, _ := e.GetRect()
	return x
}

func elementRight(e Element) int {
	x, _, width, _ := e.GetRect()
	return x + width
}

func elementWidth(e Element) int {
	_, _, width, _ := e.GetRect()
	return width
}

// offsetElement moves e horizontally by dx cells.
func offsetElement(e Element, dx int) {
	if dx == 0 {
		return
	}
	x, y, width, height := e.GetRect()
	e.SetRect(x+dx, y, width, height)
}
