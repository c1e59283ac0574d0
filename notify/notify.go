package notify

// Event names a kind of change broadcast by a stateful entity.
type Event string

// Update is published by every stateful entity whenever its state changes.
// Listeners carry no payload and must re-read state from the owner.
const Update Event = "update"

type Handler func()

// Notifier keeps per-event handler lists. Handlers run synchronously in
// registration order and may publish further events while running.
type Notifier struct {
	handlers map[Event][]Handler
}

func (n *Notifier) Subscribe(event Event, handler Handler) {
	if handler == nil {
		return
	}
	if n.handlers == nil {
		n.handlers = make(map[Event][]Handler)
	}
	n.handlers[event] = append(n.handlers[event], handler)
}

// Publish invokes the handlers registered for event. Handlers subscribed
// while the event is being delivered are not called for that delivery.
func (n *Notifier) Publish(event Event) {
	handlers := n.handlers[event]
	for i := 0; i < len(handlers); i++ {
		handlers[i]()
	}
}

// Subscribers returns the number of handlers registered for event.
func (n *Notifier) Subscribers(event Event) int {
	return len(n.handlers[event])
}
