package pencil

// EventKind enumerates the input events the drawing surface consumes,
// abstracted from the underlying window system.
type EventKind int

const (
	// EventPointerDown is a primary-button press at a device position.
	EventPointerDown EventKind = iota
	// EventPointerMove is a pointer motion at a device position.
	EventPointerMove
	// EventPointerUp is a primary-button release.
	EventPointerUp
	// EventResize is a surface resize in pixels.
	EventResize
	// EventCommand is a user command (clear or quit).
	EventCommand
)

// String returns the kind's name for diagnostics.
func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "pointer-down"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerUp:
		return "pointer-up"
	case EventResize:
		return "resize"
	case EventCommand:
		return "command"
	default:
		return "unknown"
	}
}

// Command is a user command delivered through an EventCommand event.
type Command int

const (
	// CommandClear empties the canvas.
	CommandClear Command = iota
	// CommandQuit requests that the event loop exit.
	CommandQuit
)

// String returns the command's name for diagnostics.
func (c Command) String() string {
	switch c {
	case CommandClear:
		return "clear"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is one input event. X and Y are device pixels for pointer
// events; Width and Height are pixels for resize events; Command is set
// for command events. Unused fields are zero.
type Event struct {
	Kind    EventKind
	X, Y    float64
	Width   int
	Height  int
	Command Command
}

// PointerDown creates a press event at the given device position.
func PointerDown(x, y float64) Event {
	return Event{Kind: EventPointerDown, X: x, Y: y}
}

// PointerMove creates a motion event at the given device position.
func PointerMove(x, y float64) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

// PointerUp creates a release event.
func PointerUp() Event {
	return Event{Kind: EventPointerUp}
}

// Resize creates a resize event with the given pixel dimensions.
func Resize(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// Clear creates a clear command event.
func Clear() Event {
	return Event{Kind: EventCommand, Command: CommandClear}
}

// Quit creates a quit command event.
func Quit() Event {
	return Event{Kind: EventCommand, Command: CommandQuit}
}
