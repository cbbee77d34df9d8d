package events

// Reader is one subscriber's cursor into the mailbox
// Each subscriber owns its Reader; reading does not hide events from other readers
type Reader struct {
	queue  *EventQueue
	wanted map[EventType]struct{}
	gen    uint64
	cursor int
}

// NewReader subscribes to the given event types
func NewReader(queue *EventQueue, types ...EventType) *Reader {
	wanted := make(map[EventType]struct{}, len(types))
	for _, t := range types {
		wanted[t] = struct{}{}
	}
	return &Reader{queue: queue, wanted: wanted}
}

// Read drains the events this reader has not yet seen in the current frame
func (r *Reader) Read() []GameEvent {
	evs, gen, cursor := r.queue.readFrom(r.gen, r.cursor, r.wanted)
	r.gen = gen
	r.cursor = cursor
	return evs
}
