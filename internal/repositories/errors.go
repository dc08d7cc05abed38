package repositories

import "errors"

var (
	// ErrDocumentAbsent is returned when the slot holds no document yet.
	ErrDocumentAbsent = errors.New("document not initialized")

	// ErrMalformedDocument is returned when stored or supplied content does not
	// decode as a document. It wraps the underlying decode error.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrUnsupportedSchema is returned for documents written by a newer schema.
	ErrUnsupportedSchema = errors.New("unsupported document schema version")

	// ErrConflict is returned when the slot changed between load and persist.
	ErrConflict = errors.New("document was modified concurrently")
)
