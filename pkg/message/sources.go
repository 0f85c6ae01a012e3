package message

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
)

// Source loads catalog templates keyed by locale and constraint name.
// Sources run once, while the catalog is being built; a built catalog is
// read-only.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]string, error)
}

// MapSource is a simple source that serves an in-memory template map.
type MapSource struct {
	Data map[string]map[string]string
}

// Load implements the Source interface.
func (s *MapSource) Load(_ context.Context) (map[string]map[string]string, error) {
	if s.Data == nil {
		return make(map[string]map[string]string), nil
	}
	return s.Data, nil
}

// FileSource reads a single catalog file holding templates for one or more
// locales.
type FileSource struct {
	parser Parser
	path   string
}

// NewFileSource creates a new FileSource instance. Returns nil if parser is
// nil or path is empty.
func NewFileSource(parser Parser, path string) *FileSource {
	if parser == nil || path == "" {
		return nil
	}
	return &FileSource{parser: parser, path: path}
}

// Load implements the Source interface.
func (s *FileSource) Load(ctx context.Context) (map[string]map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("catalog file '%s' is empty", s.path)
	}

	templates, err := s.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return templates, nil
}

// DirectorySource reads every supported catalog file in a directory and
// merges the results. Later files override earlier ones on conflicting keys;
// files sort lexically via os.ReadDir.
type DirectorySource struct {
	path string
}

// NewDirectorySource creates a new DirectorySource instance. Returns nil if
// path is empty.
func NewDirectorySource(path string) *DirectorySource {
	if path == "" {
		return nil
	}
	return &DirectorySource{path: path}
}

// Load implements the Source interface.
func (s *DirectorySource) Load(ctx context.Context) (map[string]map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
	}

	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	merged := make(map[string]map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		parser := ParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		path := filepath.Join(s.path, entry.Name())
		templates, err := NewFileSource(parser, path).Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading '%s': %w", path, err)
		}

		for locale, byName := range templates {
			dst, ok := merged[locale]
			if !ok {
				dst = make(map[string]string, len(byName))
				merged[locale] = dst
			}
			maps.Copy(dst, byName)
		}
	}

	return merged, nil
}
