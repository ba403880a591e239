package hlist

import "github.com/gdamore/tcell/v2"

// ScrollLengths are the content and viewport sizes of a scrollable, in any
// unit as long as the offset uses the same.
type ScrollLengths struct {
	ContentLen  int
	ViewportLen int
}

// ScrollSource reports scroll lengths and the current offset.
// [HorizontalList] implements it in items.
type ScrollSource interface {
	ScrollLengths() ScrollLengths
	ScrollOffset() int
}

const eighths = 8

// IndicatorGlyphs defines the track and fractional thumb glyphs of a
// [ScrollIndicator].
type IndicatorGlyphs struct {
	Track rune

	// Thumb glyphs filling 1/8 to 8/8 of a cell from the left.
	ThumbLeft [8]rune
	// Thumb glyphs filling 1/8 to 8/8 of a cell from the right.
	ThumbRight [8]rune
}

// DefaultIndicatorGlyphs returns block element glyphs with 1/8 cell fidelity.
func DefaultIndicatorGlyphs() IndicatorGlyphs {
	return IndicatorGlyphs{
		Track:      BoxDrawingsLightHorizontal,
		ThumbLeft:  [8]rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'},
		ThumbRight: [8]rune{'▕', '🮇', '🮈', '▐', '🮉', '🮊', '🮋', '█'},
	}
}

// UnicodeIndicatorGlyphs returns an approximation using glyphs found in most
// fonts.
func UnicodeIndicatorGlyphs() IndicatorGlyphs {
	return IndicatorGlyphs{
		Track:      BoxDrawingsLightHorizontal,
		ThumbLeft:  [8]rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'},
		ThumbRight: [8]rune{'▕', '▕', '▐', '▐', '▐', '▐', '█', '█'},
	}
}

// ScrollIndicator is a one row horizontal scroll bar. It follows a
// [ScrollSource], usually a [HorizontalList], and redraws when notified
// through [ScrollIndicator.OnScroll].
type ScrollIndicator struct {
	*Box

	source   ScrollSource
	autoHide bool

	trackStyle tcell.Style
	thumbStyle tcell.Style
	glyphs     IndicatorGlyphs
}

// NewScrollIndicator returns an indicator without a source.
func NewScrollIndicator() *ScrollIndicator {
	return &ScrollIndicator{
		Box:        NewBox(),
		autoHide:   true,
		trackStyle: tcell.StyleDefault.Foreground(Styles.GraphicsColor).Dim(true),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.GraphicsColor),
		glyphs:     DefaultIndicatorGlyphs(),
	}
}

// SetSource sets the source the indicator follows.
func (s *ScrollIndicator) SetSource(source ScrollSource) *ScrollIndicator {
	s.source = source
	s.MarkDirty()
	return s
}

// SetAutoHide controls whether the indicator is hidden when there is nothing
// to scroll.
func (s *ScrollIndicator) SetAutoHide(autoHide bool) *ScrollIndicator {
	s.autoHide = autoHide
	return s
}

func (s *ScrollIndicator) SetGlyphs(glyphs IndicatorGlyphs) *ScrollIndicator {
	s.glyphs = glyphs
	return s
}

func (s *ScrollIndicator) SetTrackStyle(style tcell.Style) *ScrollIndicator {
	s.trackStyle = style
	return s
}

func (s *ScrollIndicator) SetThumbStyle(style tcell.Style) *ScrollIndicator {
	s.thumbStyle = style
	return s
}

// OnScroll implements [OnScrollListener].
func (s *ScrollIndicator) OnScroll(list *HorizontalList, deltaX, firstPosition, firstItemLeft int) {
	s.MarkDirty()
}

// thumb is the span of the thumb on the track, in eighths of a cell.
type thumb struct {
	start, end int
}

func thumbSpan(cells, content, viewport, offset int) thumb {
	track := cells * eighths
	content = max(content, 1)
	viewport = min(max(viewport, 1), content)
	scrollable := content - viewport
	if scrollable == 0 {
		return thumb{end: track}
	}
	size := min(max(track*viewport/content, eighths), track)
	start := (track - size) * min(max(offset, 0), scrollable) / scrollable
	return thumb{start: start, end: start + size}
}

// covers returns how many eighths of cell the thumb fills and whether they
// start at the left edge of the cell.
func (t thumb) covers(cell int) (n int, fromLeft bool) {
	left, right := cell*eighths, (cell+1)*eighths
	n = min(t.end, right) - max(t.start, left)
	if n <= 0 {
		return 0, false
	}
	return n, t.start <= left
}

func (s *ScrollIndicator) glyph(n int, fromLeft bool) (rune, tcell.Style) {
	switch {
	case n <= 0:
		return s.glyphs.Track, s.trackStyle
	case fromLeft:
		return s.glyphs.ThumbLeft[n-1], s.thumbStyle
	default:
		return s.glyphs.ThumbRight[n-1], s.thumbStyle
	}
}

// Draw draws the indicator on the first row of its inner rect.
func (s *ScrollIndicator) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)
	if s.source == nil {
		return
	}

	x, y, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	lengths := s.source.ScrollLengths()
	if lengths.ContentLen <= 0 || s.autoHide && lengths.ContentLen <= lengths.ViewportLen {
		return
	}

	t := thumbSpan(width, lengths.ContentLen, lengths.ViewportLen, s.source.ScrollOffset())
	for cell := 0; cell < width; cell++ {
		glyph, style := s.glyph(t.covers(cell))
		screen.SetContent(x+cell, y, glyph, nil, style)
	}
}

var (
	_ Primitive        = &ScrollIndicator{}
	_ OnScrollListener = &ScrollIndicator{}
	_ ScrollSource     = &HorizontalList{}
)
