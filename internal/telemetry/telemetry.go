// Package telemetry records fire-and-forget usage events for the
// current session. The context object is passed explicitly wherever
// events are recorded; there is no package-level state, so the query
// core stays pure and testable. Sink failures are swallowed: telemetry
// must never block the user or touch criteria state.
package telemetry

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"xsearch/internal/models"
)

// Event names recorded by the application.
const (
	EventSessionStarted = "session_started"
	EventQueryGenerated = "query_generated"
	EventFieldTouched   = "field_touched"
	EventCopyPerformed  = "copy_performed"
	EventOpenPerformed  = "open_performed"
)

// Sink receives event records. Implementations may persist them;
// errors are handled (and swallowed) by the Context.
type Sink interface {
	Record(models.EventRecord) error
}

// NopSink discards every event. Used when telemetry is disabled.
type NopSink struct{}

func (NopSink) Record(models.EventRecord) error { return nil }

// EventStore is the storage surface the sqlite store satisfies.
type EventStore interface {
	InsertEvent(models.EventRecord) error
}

// StoreSink persists events to an event store.
type StoreSink struct {
	store EventStore
}

func NewStoreSink(store EventStore) *StoreSink {
	return &StoreSink{store: store}
}

func (s *StoreSink) Record(r models.EventRecord) error {
	return s.store.InsertEvent(r)
}

// Context carries the session ID, per-event counters, and the sink.
type Context struct {
	session string
	sink    Sink
	logger  *log.Logger

	mu     sync.Mutex
	counts map[string]int
	wg     sync.WaitGroup
}

// NewContext creates a telemetry context with a fresh nanoid session ID
// and records the session_started event.
func NewContext(sink Sink, logger *log.Logger) *Context {
	session, err := gonanoid.New()
	if err != nil {
		// Entropy exhaustion is effectively unreachable; fall back to
		// a fixed ID rather than failing startup over bookkeeping.
		logger.Debug("telemetry session id generation failed", "err", err)
		session = "session"
	}

	c := &Context{
		session: session,
		sink:    sink,
		logger:  logger,
		counts:  make(map[string]int),
	}
	c.Record(EventSessionStarted, nil)
	return c
}

// Session returns the session ID.
func (c *Context) Session() string {
	return c.session
}

// Record notes an event. The counter update is synchronous; persistence
// happens on a goroutine and any sink error is logged at debug level
// and dropped.
func (c *Context) Record(name string, attrs map[string]string) {
	c.mu.Lock()
	c.counts[name]++
	c.mu.Unlock()

	rec := models.EventRecord{
		SessionID: c.session,
		Name:      name,
		Attrs:     attrs,
		CreatedAt: time.Now(),
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := c.sink.Record(rec); err != nil {
			c.logger.Debug("telemetry record dropped", "event", name, "err", err)
		}
	}()
}

// Counts returns a snapshot of the session counters.
func (c *Context) Counts() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make(map[string]int, len(c.counts))
	for name, n := range c.counts {
		snapshot[name] = n
	}
	return snapshot
}

// Close waits for in-flight records to finish.
func (c *Context) Close() {
	c.wg.Wait()
}
