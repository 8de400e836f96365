package telemetry

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"xsearch/internal/db"
	"xsearch/internal/models"
)

// memorySink captures records for assertions
type memorySink struct {
	mu      sync.Mutex
	records []models.EventRecord
}

func (s *memorySink) Record(r models.EventRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	return nil
}

func (s *memorySink) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var names []string
	for _, r := range s.records {
		names = append(names, r.Name)
	}
	return names
}

// failingSink always errors, to prove failures are swallowed
type failingSink struct{}

func (failingSink) Record(models.EventRecord) error {
	return errors.New("store unavailable")
}

func TestContextRecordsEvents(t *testing.T) {
	sink := &memorySink{}
	ctx := NewContext(sink, log.Default())

	ctx.Record(EventQueryGenerated, map[string]string{"fragments": "2"})
	ctx.Record(EventCopyPerformed, nil)
	ctx.Close()

	names := sink.names()
	if len(names) != 3 { // session_started + two explicit records
		t.Fatalf("recorded %d events, want 3: %v", len(names), names)
	}

	for _, r := range sink.records {
		if r.SessionID != ctx.Session() {
			t.Errorf("event %s has session %q, want %q", r.Name, r.SessionID, ctx.Session())
		}
	}
}

func TestContextCounts(t *testing.T) {
	ctx := NewContext(NopSink{}, log.Default())

	ctx.Record(EventFieldTouched, nil)
	ctx.Record(EventFieldTouched, nil)
	ctx.Record(EventQueryGenerated, nil)
	ctx.Close()

	counts := ctx.Counts()
	if counts[EventFieldTouched] != 2 {
		t.Errorf("Counts()[field_touched] = %d, want 2", counts[EventFieldTouched])
	}
	if counts[EventQueryGenerated] != 1 {
		t.Errorf("Counts()[query_generated] = %d, want 1", counts[EventQueryGenerated])
	}
	if counts[EventSessionStarted] != 1 {
		t.Errorf("Counts()[session_started] = %d, want 1", counts[EventSessionStarted])
	}
}

func TestContextSwallowsSinkErrors(t *testing.T) {
	ctx := NewContext(failingSink{}, log.Default())

	// Must not panic or surface the error anywhere
	ctx.Record(EventCopyPerformed, nil)
	ctx.Close()

	if ctx.Counts()[EventCopyPerformed] != 1 {
		t.Error("counter not incremented when sink fails")
	}
}

func TestStoreSinkRoundTrip(t *testing.T) {
	database, err := db.New(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("db.New() error: %v", err)
	}
	defer database.Close()

	ctx := NewContext(NewStoreSink(database), log.Default())
	ctx.Record(EventOpenPerformed, map[string]string{"host_root": "x.com"})
	ctx.Close()

	total, err := database.TotalEvents(ctx.Session())
	if err != nil {
		t.Fatalf("TotalEvents() error: %v", err)
	}
	if total != 2 { // session_started + open_performed
		t.Errorf("TotalEvents() = %d, want 2", total)
	}
}

func TestSessionIDsUnique(t *testing.T) {
	a := NewContext(NopSink{}, log.Default())
	b := NewContext(NopSink{}, log.Default())
	a.Close()
	b.Close()
	if a.Session() == b.Session() {
		t.Errorf("two contexts share session ID %q", a.Session())
	}
}
