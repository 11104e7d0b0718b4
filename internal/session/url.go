package session

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// FileRef is a parsed Figma file URL.
type FileRef struct {
	FileID   string
	FileName string
	NodeID   string
	URL      string
}

var filePathRE = regexp.MustCompile(`^/(file|design)/([A-Za-z0-9]+)(?:/([^/]*))?/?$`)

// ParseFigmaURL accepts URLs of the form
// https://(www.)figma.com/(file|design)/{fileId}/{urlEncodedName}?node-id={n}
// and fails with a descriptive error on any other shape.
func ParseFigmaURL(raw string) (*FileRef, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid Figma URL %q: scheme must be https", raw)
	}
	host := parsed.Hostname()
	if host != "figma.com" && host != "www.figma.com" {
		return nil, fmt.Errorf("invalid Figma URL %q: host must be figma.com or www.figma.com", raw)
	}

	match := filePathRE.FindStringSubmatch(parsed.Path)
	if match == nil {
		return nil, fmt.Errorf("invalid Figma URL %q: expected /file/{key}/{name} or /design/{key}/{name}", raw)
	}

	ref := &FileRef{
		FileID: match[2],
		URL:    raw,
		NodeID: parsed.Query().Get("node-id"),
	}
	if match[3] != "" {
		if name, err := url.PathUnescape(match[3]); err == nil {
			ref.FileName = strings.ReplaceAll(name, "-", " ")
		}
	}
	return ref, nil
}
