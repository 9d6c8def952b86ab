package sitecontent

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrAlbumNotFound indicates an album was not found
	ErrAlbumNotFound = errors.New("album not found")

	// ErrMediaNotFound indicates a media item was not found
	ErrMediaNotFound = errors.New("media not found")

	// ErrBlogNotFound indicates a blog was not found
	ErrBlogNotFound = errors.New("blog not found")

	// ErrDocumentNotFound indicates a document was not found
	ErrDocumentNotFound = errors.New("document not found")

	// ErrBusinessNotFound indicates a business was not found
	ErrBusinessNotFound = errors.New("business not found")

	// ErrProductNotFound indicates a product was not found
	ErrProductNotFound = errors.New("product not found")

	// ErrProjectNotFound indicates a project was not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrAdminNotFound indicates an admin account was not found
	ErrAdminNotFound = errors.New("admin not found")

	// ErrDuplicateName indicates the store rejected a write because of a
	// uniqueness constraint. It is the backstop for races the unique-name
	// resolver cannot prevent.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrInvalidCredentials indicates a failed login attempt
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError represents a rejected input (duplicate slug, malformed date
// range, empty required field). Handlers map it to a 400 response.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// EntityError represents a failed operation on a named entity kind.
type EntityError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("%s operation %s failed: %v", e.Kind, e.Op, e.Err)
}

func (e *EntityError) Unwrap() error {
	return e.Err
}
