package core

import "errors"

// Common errors.
var (
	// ErrMicroagentNotFound indicates the requested microagent document
	// does not exist on disk.
	ErrMicroagentNotFound = errors.New("microagent document not found")

	// ErrMalformedMetadata indicates the metadata block is absent,
	// unterminated, or missing a required field.
	ErrMalformedMetadata = errors.New("malformed microagent metadata")

	// ErrTemplateNotFound indicates an expected prompt template file is
	// absent at render time.
	ErrTemplateNotFound = errors.New("prompt template not found")
)
