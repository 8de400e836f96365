package ui

import (
	"testing"

	"xsearch/internal/models"
)

// TestEditorCriteriaRoundTrip verifies the form is prefilled from a
// criteria value and reads back the same value.
func TestEditorCriteriaRoundTrip(t *testing.T) {
	want := models.Criteria{
		FromUser:    "alice",
		ExactPhrase: "happy hour",
		AnyWords:    "react vue",
		Hashtag:     "golang",
		SinceDate:   "2024-01-01",
		UntilDate:   "2024-06-30",
		MinRetweets: "10",
		Language:    "en",
		SmartSearch: "cat, dog",
		HasImages:   true,
		Verified:    true,
	}

	m := NewEditorModel(want, nil)
	if got := m.Criteria(); got != want {
		t.Errorf("Criteria() = %+v, want %+v", got, want)
	}
}

// TestEditorTrimsFieldValues verifies surrounding whitespace entered in
// inputs never reaches the criteria.
func TestEditorTrimsFieldValues(t *testing.T) {
	m := NewEditorModel(models.Criteria{}, nil)
	m.inputs[0].SetValue("  alice  ")

	if got := m.Criteria().FromUser; got != "alice" {
		t.Errorf("FromUser = %q, want %q", got, "alice")
	}
}
