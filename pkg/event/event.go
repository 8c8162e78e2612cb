// Package event provides a small in-process event dispatcher. The order
// service fires order.placed / order.updated; the admin live feed
// subscribes per SSE connection.
package event

import (
	"sync"
)

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}
	subs     = map[string]map[int]chan interface{}{}
	nextSub  int
)

// Listen registers a handler for the given event name.
func Listen(event string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[event] = append(handlers[event], handler)
}

// Subscribe returns a buffered channel that receives every payload fired for
// event, plus a cancel func that must be called when the consumer is done.
// Payloads are dropped (not blocked on) when the subscriber falls behind.
func Subscribe(event string) (<-chan interface{}, func()) {
	mu.Lock()
	defer mu.Unlock()

	if subs[event] == nil {
		subs[event] = map[int]chan interface{}{}
	}
	id := nextSub
	nextSub++

	ch := make(chan interface{}, 16)
	subs[event][id] = ch

	cancel := func() {
		mu.Lock()
		defer mu.Unlock()
		if c, ok := subs[event][id]; ok {
			delete(subs[event], id)
			close(c)
		}
	}
	return ch, cancel
}

// Fire dispatches an event synchronously to all registered listeners and
// subscriber channels.
func Fire(event string, payload interface{}) {
	mu.RLock()
	hs := make([]Handler, len(handlers[event]))
	copy(hs, handlers[event])
	chs := make([]chan interface{}, 0, len(subs[event]))
	for _, c := range subs[event] {
		chs = append(chs, c)
	}
	mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
	for _, c := range chs {
		select {
		case c <- payload:
		default:
		}
	}
}

// FireAsync dispatches the event without waiting for handlers to complete.
func FireAsync(event string, payload interface{}) {
	go Fire(event, payload)
}

// Flush removes all listeners and subscribers (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
	for _, m := range subs {
		for _, c := range m {
			close(c)
		}
	}
	subs = map[string]map[int]chan interface{}{}
}
