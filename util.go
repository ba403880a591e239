package hlist

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// StringWidth returns the number of cells the given text occupies on screen.
func StringWidth(text string) int {
	return uniseg.StringWidth(text)
}

// dropCells removes leading grapheme clusters until at least cells cells are
// gone and returns the rest with its width.
func dropCells(text string, textWidth, cells int) (string, int) {
	for cells > 0 && text != "" {
		cluster, rest, width, _ := uniseg.FirstGraphemeClusterInString(text, -1)
		if cluster == "" {
			break
		}
		text, textWidth, cells = rest, textWidth-width, cells-width
	}
	return text, textWidth
}

// PrintWithStyle prints one line of text at (x, y) within maxWidth cells.
// Text that does not fit is cut on the right for left alignment, on the
// left for right alignment and on both sides when centered.
//
// It returns the number of bytes of text printed and the cells they took.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	_, totalHeight := screen.Size()
	if maxWidth <= 0 || len(text) == 0 || y < 0 || y >= totalHeight {
		return 0, 0
	}

	textWidth := uniseg.StringWidth(text)
	switch alignment {
	case AlignmentRight:
		text, textWidth = dropCells(text, textWidth, textWidth-maxWidth)
		x += maxWidth - textWidth
	case AlignmentCenter:
		text, textWidth = dropCells(text, textWidth, (textWidth-maxWidth)/2)
		if textWidth < maxWidth {
			x += (maxWidth - textWidth) / 2
		}
	}

	printed, printedWidth := 0, 0
	state := -1
	for text != "" && printedWidth < maxWidth {
		var cluster string
		var width int
		cluster, text, width, state = uniseg.FirstGraphemeClusterInString(text, state)
		if printedWidth+width > maxWidth {
			break
		}
		if width > 0 {
			// Wide clusters own every cell they cover; the leading cell is set
			// last.
			for offset := width - 1; offset > 0; offset-- {
				screen.SetContent(x+printedWidth+offset, y, ' ', nil, style)
			}
			runes := []rune(cluster)
			screen.SetContent(x+printedWidth, y, runes[0], runes[1:], style)
		}
		printed += len(cluster)
		printedWidth += width
	}
	return printed, printedWidth
}
