package hlist

// Box drawing and block characters used by the primitives in this package.
const (
	SemigraphicsHorizontalEllipsis rune = '…' // …

	BoxDrawingsLightHorizontal      rune = '─' // ─
	BoxDrawingsLightVertical        rune = '│' // │
	BoxDrawingsLightDownAndRight    rune = '┌' // ┌
	BoxDrawingsLightDownAndLeft     rune = '┐' // ┐
	BoxDrawingsLightUpAndRight      rune = '└' // └
	BoxDrawingsLightUpAndLeft       rune = '┘' // ┘
	BoxDrawingsLightArcDownAndRight rune = '╭' // ╭
	BoxDrawingsLightArcDownAndLeft  rune = '╮' // ╮
	BoxDrawingsLightArcUpAndLeft    rune = '╯' // ╯
	BoxDrawingsLightArcUpAndRight   rune = '╰' // ╰
)

// BorderSet defines the characters used when box borders are drawn.
type BorderSet struct {
	Top         rune
	Bottom      rune
	Left        rune
	Right       rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// BorderSetPlain draws light lines with square corners.
func BorderSetPlain() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightDownAndRight,
		TopRight:    BoxDrawingsLightDownAndLeft,
		BottomLeft:  BoxDrawingsLightUpAndRight,
		BottomRight: BoxDrawingsLightUpAndLeft,
	}
}

// BorderSetRound draws light lines with rounded corners.
func BorderSetRound() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightArcDownAndRight,
		TopRight:    BoxDrawingsLightArcDownAndLeft,
		BottomLeft:  BoxDrawingsLightArcUpAndRight,
		BottomRight: BoxDrawingsLightArcUpAndLeft,
	}
}

// Borders selects the sides of a box that get a border.
type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

// Has reports whether every border in flag is set.
func (b Borders) Has(flag Borders) bool {
	return b&flag == flag
}
