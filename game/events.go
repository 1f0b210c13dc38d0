package game

import "image/color"

// EventKind tags an Event.
type EventKind int

const (
	EventExplosion EventKind = iota
	EventPowerUpSpawn
	EventLaserFired
	EventGameOver
	EventMuzzleFlash
	EventMissileLaunch
	EventWaveComplete
)

func (k EventKind) String() string {
	switch k {
	case EventExplosion:
		return "explosion"
	case EventPowerUpSpawn:
		return "powerup-spawn"
	case EventLaserFired:
		return "laser-fired"
	case EventGameOver:
		return "game-over"
	case EventMuzzleFlash:
		return "muzzle-flash"
	case EventMissileLaunch:
		return "missile-launch"
	case EventWaveComplete:
		return "wave-complete"
	default:
		return "unknown"
	}
}

// Event is an immutable gameplay outcome for the presentation layer.
// Fields a kind does not use are zero.
type Event struct {
	Kind  EventKind
	Pos   Vec2
	Dir   Vec2
	Color color.RGBA
	Count int
	Wave  int
}

// Explosion builds an explosion event.
func Explosion(pos Vec2, c color.RGBA, count int) Event {
	return Event{Kind: EventExplosion, Pos: pos, Color: c, Count: count}
}

// EventQueue is a FIFO of events: append at the back, remove from the front.
type EventQueue struct {
	events []Event
	head   int
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 64)}
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Pop removes and returns the oldest event.
func (q *EventQueue) Pop() (Event, bool) {
	if q.head >= len(q.events) {
		return Event{}, false
	}
	e := q.events[q.head]
	q.head++
	if q.head == len(q.events) {
		q.events = q.events[:0]
		q.head = 0
	}
	return e, true
}

// Drain hands every pending event to fn in order and leaves the queue empty.
func (q *EventQueue) Drain(fn func(Event)) {
	for {
		e, ok := q.Pop()
		if !ok {
			return
		}
		fn(e)
	}
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events) - q.head
}

// Clear drops every pending event.
func (q *EventQueue) Clear() {
	q.events = q.events[:0]
	q.head = 0
}
