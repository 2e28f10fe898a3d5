package play

import (
	"sync"

	"github.com/robalobadob/devwordle/internal/game"
)

type EventKind string

// Kinds of events. A finishing guess publishes guess and then won or lost.
const (
	EventLetter  EventKind = "letter"
	EventGuess   EventKind = "guess"
	EventInvalid EventKind = "invalid"
	EventWon     EventKind = "won"
	EventLost    EventKind = "lost"
	EventNewGame EventKind = "new_game"
)

// Event tells a presentation layer what just happened so it can schedule
// its own reveal or shake animation.
type Event struct {
	Kind    EventKind
	Session string
	Mode    Mode

	Input  string   // input row after a letter event
	Guess  string   // scored word for guess/won/lost
	Row    game.Row // verdicts for guess/won/lost
	Answer string   // set on lost
	Err    error    // set on invalid
}

// Broadcaster fans events out to subscribers.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber and returns its event channel.
func (b *Broadcaster) Subscribe() chan Event {
	ch := make(chan Event, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Broadcaster) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish delivers an event to all subscribers without blocking.
func (b *Broadcaster) Publish(ev Event) {
	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
			// Drop if the subscriber is lagging; the session is the source of truth.
		}
	}
	b.mu.Unlock()
}
