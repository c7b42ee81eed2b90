// Package events publishes notifications about changes to transactions.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Type string

const (
	TransactionsCreated  Type = "transactions.created"
	TransactionsImported Type = "transactions.imported"
	TransactionsReset    Type = "transactions.reset"
)

// Event is the message published after a successful write.
type Event struct {
	Type      Type      `json:"type"`
	Count     int       `json:"count"`
	IDs       []uint64  `json:"ids"`
	Timestamp time.Time `json:"timestamp"`
}

// New creates an event for the IDs of the affected transactions.
func New(t Type, ids []uint64) Event {
	if ids == nil {
		ids = []uint64{}
	}

	return Event{
		Type:      t,
		Count:     len(ids),
		IDs:       ids,
		Timestamp: time.Now().In(time.UTC),
	}
}

func (e Event) JSON() ([]byte, error) {
	return json.Marshal(e)
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards all events.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

var (
	mu        sync.RWMutex
	publisher Publisher = Nop{}
)

// SetDefault sets the publisher used by Emit and returns the previous one.
func SetDefault(p Publisher) Publisher {
	mu.Lock()
	defer mu.Unlock()

	previous := publisher
	publisher = p
	return previous
}

// Emit publishes the event with the default publisher.
//
// Events are emitted after the write has been committed. A failure to
// publish is logged and does not fail the request.
func Emit(ctx context.Context, e Event) {
	mu.RLock()
	p := publisher
	mu.RUnlock()

	err := p.Publish(ctx, e)
	if err != nil {
		log.Warn().Err(err).Str("type", string(e.Type)).Int("count", e.Count).Msg("could not publish event")
		return
	}

	log.Debug().Str("type", string(e.Type)).Int("count", e.Count).Msg("published event")
}

// Recorder keeps all published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event{}, r.events...)
}
