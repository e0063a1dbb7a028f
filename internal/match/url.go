package match

import (
	"net/url"
	"strings"
)

// NormalizeURL reduces a listing URL to its (host, path) identity:
// lower-cased, leading "www." stripped from the host, trailing slash
// stripped from the path, and scheme, query string and fragment
// discarded. Two listings with the same normalized form are the same
// page regardless of how a collector linked to it.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		// Unparseable URLs fall back to the raw string so that exact
		// repeats still collapse.
		return raw
	}

	host := strings.TrimPrefix(parsed.Host, "www.")
	path := strings.TrimRight(parsed.Path, "/")

	return host + path
}
