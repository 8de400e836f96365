// Package api constructs the external search URL consumed by the
// browser. It performs no network calls of its own.
package api

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// DefaultSearchHost is the search endpoint used when no override is set.
const DefaultSearchHost = "x.com"

// SearchURL embeds a built query string in the live-search URL template.
// The query string is percent-encoded; the q/src/f parameter order is
// part of the template, so the query is assembled manually rather than
// through url.Values (which sorts keys).
func SearchURL(query, host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		host = DefaultSearchHost
	}

	u := url.URL{
		Scheme:   "https",
		Host:     host,
		Path:     "/search",
		RawQuery: "q=" + url.QueryEscape(query) + "&src=typed_query&f=live",
	}
	return u.String()
}

// RootDomain normalizes a host override (bare host or full URL) to its
// registrable domain. Uses publicsuffix to handle complex TLDs like
// .co.uk. Examples:
//   - "https://search.example.co.uk/" -> "example.co.uk"
//   - "x.com" -> "x.com"
func RootDomain(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty host")
	}

	if strings.Contains(input, "://") {
		parsed, err := url.Parse(input)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		input = parsed.Hostname()
	}

	input = strings.TrimSuffix(input, ".")

	root, err := publicsuffix.EffectiveTLDPlusOne(input)
	if err != nil {
		return "", fmt.Errorf("failed to extract root domain: %w", err)
	}
	return root, nil
}

// OpenInBrowser launches the platform browser at the given URL. The
// browser process is started, not waited on; a failure to start is
// returned to the caller and is non-fatal.
func OpenInBrowser(rawURL string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", rawURL)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		cmd = exec.Command("xdg-open", rawURL)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
