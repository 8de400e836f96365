package models

import (
	"testing"
	"time"
)

func TestNewCriteriaDefaults(t *testing.T) {
	c := NewCriteria()
	today := time.Now().Format(DateFormat)

	if c.SinceDate != today {
		t.Errorf("SinceDate = %q, want %q", c.SinceDate, today)
	}
	if c.UntilDate != today {
		t.Errorf("UntilDate = %q, want %q", c.UntilDate, today)
	}

	// Everything else defaults to its zero value
	c.SinceDate = ""
	c.UntilDate = ""
	if !c.IsEmpty() {
		t.Errorf("criteria with cleared dates should be empty, got %+v", c)
	}
}

func TestCriteriaCopySemantics(t *testing.T) {
	original := NewCriteria()
	edited := original
	edited.FromUser = "alice"

	if original.FromUser != "" {
		t.Error("editing a copy mutated the original")
	}
}
