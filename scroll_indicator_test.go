package hlist

import (
	"testing"

	. "github.com/fulldump/biff"
)

type stubSource struct {
	lengths ScrollLengths
	offset  int
}

func (s stubSource) ScrollLengths() ScrollLengths {
	return s.lengths
}

func (s stubSource) ScrollOffset() int {
	return s.offset
}

func TestThumbSpan(t *testing.T) {
	AssertEqual(thumbSpan(4, 10, 5, 5), thumb{start: 16, end: 32})
	AssertEqual(thumbSpan(4, 10, 5, 99), thumb{start: 16, end: 32})
	AssertEqual(thumbSpan(4, 10, 5, -3), thumb{start: 0, end: 16})

	// Nothing to scroll: the thumb fills the track.
	AssertEqual(thumbSpan(4, 3, 5, 0), thumb{start: 0, end: 32})

	AssertEqual(thumbSpan(0, 10, 5, 5), thumb{})
}

func TestScrollIndicator_FractionalCells(t *testing.T) {
	s := NewScrollIndicator()
	span := thumbSpan(4, 8, 1, 3)

	AssertEqual(span, thumb{start: 10, end: 18})

	glyph, _ := s.glyph(span.covers(0))
	AssertEqual(glyph, s.glyphs.Track)
	glyph, _ = s.glyph(span.covers(1))
	AssertEqual(glyph, s.glyphs.ThumbRight[5])
	glyph, _ = s.glyph(span.covers(2))
	AssertEqual(glyph, s.glyphs.ThumbLeft[1])
	glyph, _ = s.glyph(span.covers(3))
	AssertEqual(glyph, s.glyphs.Track)
}

func TestScrollIndicator_Draw(t *testing.T) {
	screen := newSimulationScreen(4, 1)
	s := NewScrollIndicator().SetSource(stubSource{lengths: ScrollLengths{ContentLen: 10, ViewportLen: 5}, offset: 5})
	s.SetRect(0, 0, 4, 1)

	s.Draw(screen)

	AssertEqual(runeAt(screen, 0, 0), BoxDrawingsLightHorizontal)
	AssertEqual(runeAt(screen, 1, 0), BoxDrawingsLightHorizontal)
	AssertEqual(runeAt(screen, 2, 0), '█')
	AssertEqual(runeAt(screen, 3, 0), '█')
}

func TestScrollIndicator_AutoHide(t *testing.T) {
	screen := newSimulationScreen(4, 1)
	s := NewScrollIndicator().SetSource(stubSource{lengths: ScrollLengths{ContentLen: 3, ViewportLen: 3}})
	s.SetRect(0, 0, 4, 1)

	s.Draw(screen)

	AssertEqual(runeAt(screen, 0, 0), ' ')

	s.SetAutoHide(false)
	s.Draw(screen)

	AssertEqual(runeAt(screen, 0, 0), '█')
}

func TestScrollIndicator_FollowsList(t *testing.T) {
	f := newFixture(8, 100, 300)
	s := NewScrollIndicator().SetSource(f.list)
	f.list.SetOnScrollListener(s)
	s.MarkClean()

	f.list.ScrollBy(-150)

	AssertTrue(s.IsDirty())
	AssertEqual(f.list.ScrollOffset(), 1)
}
