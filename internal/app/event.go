package app

import "sync"

// Protocol events are parsed on the dispatch goroutine and queued here; the
// loop thread drains the queue and applies them, so window state has a
// single owner.

type eventKind int

const (
	evPing eventKind = iota
	evSurfaceConfigure
	evToplevelConfigure
	evClose
)

type protoEvent struct {
	kind   eventKind
	serial uint32
	width  int32
	height int32
}

type eventQueue struct {
	mu     sync.Mutex
	events []protoEvent
}

func (q *eventQueue) push(ev protoEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

func (q *eventQueue) drain() []protoEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
