package scene

type EventType int

const (
	EventCrystalCollected EventType = iota
	EventMusicStarted
	EventMusicStopped
	EventWallHit
)

type Event struct {
	Type  EventType
	X, Z  float64
	Index int // crystal index for EventCrystalCollected
}

type EventHandler func(Event)

// EventBus delivers events synchronously on the frame thread.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Subscribe is meant to be called during setup, not from the frame path.
func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
