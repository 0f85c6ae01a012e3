package message

import (
	"context"
	"strings"
)

// Parser parses a catalog document into templates keyed by locale and
// constraint name.
type Parser interface {
	// Parse processes the given content and returns the templates it holds.
	// The outer map is keyed by locale, the inner map by constraint name.
	Parse(ctx context.Context, content string) (map[string]map[string]string, error)

	// SupportsFileExtension checks if the parser supports a given file
	// extension. The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile returns a parser based on the file extension, or nil when the
// extension is not recognized.
func ParserForFile(filename string) Parser {
	switch strings.ToLower(fileExtension(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

func fileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}
