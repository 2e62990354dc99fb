package pipeline

import (
	"sync"
	"time"
)

// Event types published over the bus.
const (
	EventRunStarted     = "run.started"
	EventRunCompleted   = "run.completed"
	EventRunFailed      = "run.failed"
	EventAgentStarted   = "agent.started"
	EventAgentCompleted = "agent.completed"
	EventAgentRetrying  = "agent.retrying"
	EventAgentFailed    = "agent.failed"
)

// Event is one progress notification for a chat's pipeline run.
type Event struct {
	Type      string `json:"type"`
	ChatID    string `json:"chatId"`
	RunID     string `json:"runId"`
	Agent     string `json:"agent,omitempty"`
	Status    string `json:"status,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Bus is an in-process publish/subscribe fanout keyed by chat id. Slow
// subscribers drop events rather than stalling the pipeline.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan Event
}

// NewBus creates an event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]chan Event)}
}

// Subscribe registers a listener for one chat. The returned cancel function
// must be called to release the subscription.
func (b *Bus) Subscribe(chatID string) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[chatID] == nil {
		b.subs[chatID] = make(map[int]chan Event)
	}
	id := b.nextID
	b.nextID++
	ch := make(chan Event, 64)
	b.subs[chatID][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if subs, ok := b.subs[chatID]; ok {
			if c, ok := subs[id]; ok {
				delete(subs, id)
				close(c)
			}
			if len(subs) == 0 {
				delete(b.subs, chatID)
			}
		}
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber of its chat.
func (b *Bus) Publish(ev Event) {
	if ev.Timestamp == 0 {
		ev.Timestamp = time.Now().UnixMilli()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs[ev.ChatID] {
		select {
		case ch <- ev:
		default:
		}
	}
}
