package shared

// EventType distinguishes the input events the game understands.
type EventType int

const (
	EventQuit EventType = iota + 1
	EventKeyDown
	EventKeyUp
)

// Key is a logical key identity, independent of any device encoding.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyQ
	KeyA
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyQ:
		return "q"
	case KeyA:
		return "a"
	}
	return "unknown"
}

// Event is a single input event. Key is only meaningful for key events.
type Event struct {
	Type EventType
	Key  Key
}

// Quit returns a close request.
func Quit() Event { return Event{Type: EventQuit} }

// Press returns a key-down event for k.
func Press(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

// Release returns a key-up event for k.
func Release(k Key) Event { return Event{Type: EventKeyUp, Key: k} }
