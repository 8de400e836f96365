package api

import (
	"strings"
	"testing"
)

// TestSearchURL verifies the query is encoded and the parameter order
// matches the template: q, src, f.
func TestSearchURL(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		host      string
		wantParts []string
	}{
		{
			name:  "simple query default host",
			query: "from:alice",
			host:  "",
			wantParts: []string{
				"https://x.com/search?",
				"q=from%3Aalice",
				"&src=typed_query&f=live",
			},
		},
		{
			name:  "spaces and hash encoded",
			query: "from:alice #AI filter:images",
			host:  "",
			wantParts: []string{
				"q=from%3Aalice+%23AI+filter%3Aimages",
			},
		},
		{
			name:  "custom host",
			query: "cat",
			host:  "twitter.com",
			wantParts: []string{
				"https://twitter.com/search?q=cat&src=typed_query&f=live",
			},
		},
		{
			name:  "empty query still a valid URL",
			query: "",
			host:  "",
			wantParts: []string{
				"https://x.com/search?q=&src=typed_query&f=live",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchURL(tt.query, tt.host)
			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("SearchURL() = %q, want to contain %q", got, part)
				}
			}
		})
	}
}

// TestSearchURLParamOrder verifies q always precedes src and f
func TestSearchURLParamOrder(t *testing.T) {
	got := SearchURL("hello world", "")
	qi := strings.Index(got, "q=")
	si := strings.Index(got, "src=")
	fi := strings.Index(got, "f=live")
	if qi == -1 || si == -1 || fi == -1 {
		t.Fatalf("SearchURL() = %q, missing expected parameters", got)
	}
	if !(qi < si && si < fi) {
		t.Errorf("SearchURL() parameter order wrong: %q", got)
	}
}

// TestRootDomain tests host override normalization
func TestRootDomain(t *testing.T) {
	tests := []struct {
		input    string
		wantRoot string
		wantErr  bool
	}{
		{"x.com", "x.com", false},
		{"twitter.com", "twitter.com", false},
		{"https://search.example.co.uk/", "example.co.uk", false},
		{"nitter.example.com", "example.com", false},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := RootDomain(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("RootDomain(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.wantRoot {
				t.Errorf("RootDomain(%q) = %q, want %q", tt.input, got, tt.wantRoot)
			}
		})
	}
}
