// internal/event/event.go
package event

import "slices"

// EventType names something that happened during a frame.
type EventType string

// Event carries a type and an optional payload. See types.go for the payload
// each type uses.
type Event struct {
	Type EventType
	Data any
}

// Listener reacts to events. Calls arrive on the simulation goroutine in the
// middle of a frame.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher fans game events out to listeners synchronously, in the order
// they subscribed. A nil *Dispatcher is valid and drops everything, which
// lets entities run without one in tests.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe adds listener for eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe drops one registration of listener for eventType. Dispatches
// already in progress are unaffected.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	ls := d.listeners[eventType]
	if i := slices.Index(ls, listener); i >= 0 {
		d.listeners[eventType] = slices.Delete(slices.Clone(ls), i, i+1)
	}
}

func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, l := range d.listeners[event.Type] {
		l.OnEvent(event)
	}
}

// Emit is Dispatch for a type and payload.
func (d *Dispatcher) Emit(eventType EventType, data any) {
	d.Dispatch(Event{Type: eventType, Data: data})
}
