package session

import (
	"strings"
	"testing"
)

func TestParseFigmaURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		fileID   string
		fileName string
		nodeID   string
	}{
		{
			name:     "file URL with name",
			url:      "https://www.figma.com/file/aBc123XYZ/Design-System",
			fileID:   "aBc123XYZ",
			fileName: "Design System",
		},
		{
			name:     "design URL",
			url:      "https://www.figma.com/design/aBc123XYZ/Design-System",
			fileID:   "aBc123XYZ",
			fileName: "Design System",
		},
		{
			name:   "no name segment",
			url:    "https://figma.com/file/aBc123XYZ",
			fileID: "aBc123XYZ",
		},
		{
			name:     "trailing slash",
			url:      "https://www.figma.com/file/aBc123XYZ/Design-System/",
			fileID:   "aBc123XYZ",
			fileName: "Design System",
		},
		{
			name:     "node-id query",
			url:      "https://www.figma.com/file/aBc123XYZ/Design-System?node-id=1%3A2",
			fileID:   "aBc123XYZ",
			fileName: "Design System",
			nodeID:   "1:2",
		},
		{
			name:     "percent-encoded name",
			url:      "https://www.figma.com/file/aBc123XYZ/My%20File",
			fileID:   "aBc123XYZ",
			fileName: "My File",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseFigmaURL(tt.url)
			if err != nil {
				t.Fatalf("ParseFigmaURL(%q): %v", tt.url, err)
			}
			if ref.FileID != tt.fileID {
				t.Errorf("FileID = %q, want %q", ref.FileID, tt.fileID)
			}
			if ref.FileName != tt.fileName {
				t.Errorf("FileName = %q, want %q", ref.FileName, tt.fileName)
			}
			if ref.NodeID != tt.nodeID {
				t.Errorf("NodeID = %q, want %q", ref.NodeID, tt.nodeID)
			}
			if ref.URL != tt.url {
				t.Errorf("URL = %q, want the input preserved", ref.URL)
			}
		})
	}
}

func TestParseFigmaURLRejects(t *testing.T) {
	tests := []struct {
		name string
		url  string
		hint string
	}{
		{"http scheme", "http://www.figma.com/file/abc/Name", "https"},
		{"wrong host", "https://example.com/file/abc/Name", "host"},
		{"lookalike host", "https://notfigma.com/file/abc/Name", "host"},
		{"missing file segment", "https://www.figma.com/abc", "expected"},
		{"prototype path", "https://www.figma.com/proto/abc/Name", "expected"},
		{"empty", "", "https"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFigmaURL(tt.url)
			if err == nil {
				t.Fatalf("expected error for %q", tt.url)
			}
			if !strings.Contains(err.Error(), tt.hint) {
				t.Errorf("error %q should mention %q", err, tt.hint)
			}
		})
	}
}
