package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingOption is returned when a required command line option is not supplied.
	ErrMissingOption = zerr.New("missing required option")

	// ErrTasksFileInvalid is returned when an existing tasks file is not a JSON object.
	ErrTasksFileInvalid = zerr.New("tasks file is not a valid JSON object")

	// ErrMissingTasksField is returned when an existing tasks file has no 'tasks' attribute.
	ErrMissingTasksField = zerr.New("expected 'tasks' attribute in tasks file")

	// ErrInvalidTasksField is returned when the 'tasks' attribute is not an array.
	ErrInvalidTasksField = zerr.New("'tasks' attribute must be an array")

	// ErrInvalidJSON is returned when a document is empty or not well-formed JSON.
	ErrInvalidJSON = zerr.New("document is not valid JSON")

	// ErrMissingField is returned when a document node lacks a requested field.
	ErrMissingField = zerr.New("missing field")

	// ErrUnexpectedKind is returned when a document node has a different kind than requested.
	ErrUnexpectedKind = zerr.New("unexpected node kind")

	// ErrFileStatFailed is returned when the existence of a file cannot be determined.
	ErrFileStatFailed = zerr.New("failed to stat file")

	// ErrFileReadFailed is returned when a file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileWriteFailed is returned when a file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrEncodeFailed is returned when a document cannot be serialized.
	ErrEncodeFailed = zerr.New("failed to encode document")

	// ErrMalformedFlags is returned when a compiler flag string has unbalanced quoting.
	ErrMalformedFlags = zerr.New("malformed compiler flags")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrOutOfDate is returned in check mode when the destination differs from the generated content.
	ErrOutOfDate = zerr.New("file is out of date")
)
