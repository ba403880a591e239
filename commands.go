package hlist

// Command is returned by input handlers and carried out by the [Application]
// after the handler returns. A nil Command does nothing.
type Command any

// BatchCommand runs its commands in order.
type BatchCommand []Command

// AppendCommand combines current and next into one command. Batches are
// flattened and nil commands dropped.
func AppendCommand(current, next Command) Command {
	switch {
	case next == nil:
		return current
	case current == nil:
		return next
	}
	return append(flatten(current), flatten(next)...)
}

func flatten(cmd Command) BatchCommand {
	if batch, ok := cmd.(BatchCommand); ok {
		return append(BatchCommand(nil), batch...)
	}
	return BatchCommand{cmd}
}

// SetFocusCommand moves the keyboard focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand asks for a redraw once the event is handled.
type RedrawCommand struct{}

// QuitCommand stops the application.
type QuitCommand struct{}

// ConsumeEventCommand marks the event as handled without any other effect.
type ConsumeEventCommand struct{}
