// ABOUTME: Input events the session reacts to and the EventSource that carries them
// ABOUTME: One typed bus per capability: keys, pointer (swipe), and resize

package viewer

import "github.com/mauromedda/pdfview-go/internal/eventbus"

// Key is a navigation key. Hosts map their own key codes onto these.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	default:
		return "none"
	}
}

// KeyEvent is a key press.
type KeyEvent struct {
	Key Key
}

// PointerKind distinguishes the two ends of a gesture.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
)

// PointerEvent is a touch or mouse press/release at a position in
// pointer units.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// ResizeEvent reports the new viewport width in pointer units.
type ResizeEvent struct {
	Width int
}

// EventSource publishes host input to subscribers.
type EventSource struct {
	keys     *eventbus.Bus[KeyEvent]
	pointers *eventbus.Bus[PointerEvent]
	resizes  *eventbus.Bus[ResizeEvent]
}

// NewEventSource returns a source with no subscribers.
func NewEventSource() *EventSource {
	return &EventSource{
		keys:     eventbus.New[KeyEvent](),
		pointers: eventbus.New[PointerEvent](),
		resizes:  eventbus.New[ResizeEvent](),
	}
}

// OnKey subscribes to key presses.
func (s *EventSource) OnKey(h func(KeyEvent)) func() { return s.keys.Subscribe(h) }

// OnPointer subscribes to pointer presses and releases.
func (s *EventSource) OnPointer(h func(PointerEvent)) func() { return s.pointers.Subscribe(h) }

// OnResize subscribes to viewport size changes.
func (s *EventSource) OnResize(h func(ResizeEvent)) func() { return s.resizes.Subscribe(h) }

// Key publishes a key press.
func (s *EventSource) Key(k Key) { s.keys.Publish(KeyEvent{Key: k}) }

// Pointer publishes a pointer event.
func (s *EventSource) Pointer(e PointerEvent) { s.pointers.Publish(e) }

// Resize publishes a resize.
func (s *EventSource) Resize(width int) { s.resizes.Publish(ResizeEvent{Width: width}) }

// Subscribers returns the total handler count across all buses.
func (s *EventSource) Subscribers() int {
	return s.keys.Count() + s.pointers.Count() + s.resizes.Count()
}
