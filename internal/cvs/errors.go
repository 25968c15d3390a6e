package cvs

import "errors"

var (
	// ErrNotFound means the document does not exist or belongs to someone else.
	ErrNotFound = errors.New("cv not found")
	// ErrInvalidInput covers malformed or missing request data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPDFParse means the uploaded file could not be read as a PDF.
	ErrPDFParse = errors.New("pdf parse failed")
	// ErrUnknownTemplate means the requested template id is not registered.
	ErrUnknownTemplate = errors.New("unknown template")
)
