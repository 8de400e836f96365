package query

import (
	"reflect"
	"testing"
)

func TestParseSmartSearch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"commas only", " , , ", nil},
		{"single term", "cat", []string{"cat"}},
		{"single term padded", "  cat  ", []string{"cat"}},
		{"two terms", "cat, dog", []string{"(cat OR dog)"}},
		{"three terms", "cat, dog, puppy", []string{"(cat OR dog OR puppy)"}},
		{"empty middle item dropped", " cat ,  , dog", []string{"(cat OR dog)"}},
		{"trailing comma", "cat,", []string{"cat"}},
		{"multi-word terms kept whole", "black cat, white dog", []string{"(black cat OR white dog)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSmartSearch(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSmartSearch(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSmartSearchPure(t *testing.T) {
	input := "cat, dog"
	first := ParseSmartSearch(input)
	second := ParseSmartSearch(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ParseSmartSearch not pure: %#v then %#v", first, second)
	}
}
