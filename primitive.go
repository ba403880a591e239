package hlist

import "github.com/gdamore/tcell/v2"

// Primitive is anything the [Application] can lay out, draw and route input
// to. Embedding a [Box] provides everything but the content drawing.
type Primitive interface {
	Draw(screen tcell.Screen)

	GetRect() (x, y, width, height int)
	SetRect(x, y, width, height int)

	// InputHandler is called with key events while the primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler is called with every mouse action. A non-nil capture gets
	// the following actions until it returns nil itself.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (capture Primitive, cmd Command)

	// HasFocus reports whether the primitive or one of its children has focus.
	HasFocus() bool
	// Focus gives the primitive focus. It may pass it on through delegate.
	Focus(delegate func(p Primitive))
	Blur()
}
