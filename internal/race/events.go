package race

type EventType int

const (
	EventRaceStarted EventType = iota
	EventLapCompleted
	EventRaceFinished
	EventCarReset
	EventRaceReset
)

func (t EventType) String() string {
	switch t {
	case EventRaceStarted:
		return "race_started"
	case EventLapCompleted:
		return "lap_completed"
	case EventRaceFinished:
		return "race_finished"
	case EventCarReset:
		return "car_reset"
	case EventRaceReset:
		return "race_reset"
	default:
		return "unknown"
	}
}

type Event struct {
	Type   EventType
	RaceID string
	Lap    int    // lap the car is now on
	Result Result // set for EventRaceFinished
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventRaceStarted; t <= EventRaceReset; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
