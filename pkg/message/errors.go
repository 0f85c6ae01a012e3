package message

import "errors"

// Catalog loading is the only part of this package that can fail; resolution
// itself always degrades to a best-effort string instead of erroring.
var (
	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML catalog")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON catalog")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading catalog file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read catalog file")
	ErrFailedToParseFile    = errors.New("failed to parse catalog file")

	// Directory operations
	ErrLoadingDirectoryCancelled = errors.New("loading catalog directory cancelled")
	ErrFailedToReadDirectory     = errors.New("failed to read catalog directory")
)
