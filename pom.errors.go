package pom

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-pom/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	ErrMsgInvalidArgument   = "invalid argument"
	ErrMsgEmptyTitle        = "section title cannot be empty"
	ErrMsgUnknownSection    = "section does not belong to this model"
	ErrMsgNilModel          = "model cannot be nil"
	ErrMsgSelfAppend        = "cannot append a model into itself"
	ErrMsgUnsupportedFormat = "unsupported render format"

	ErrMsgRenderFailed = "render failed"

	ErrMsgDocumentDecode  = "document decoding failed"
	ErrMsgDocumentSyntax  = "document syntax invalid"
	ErrMsgDocumentEncode  = "document encoding failed"
	ErrMsgDocumentSection = "document section invalid"
)

// Error code constants for categorization
const (
	ErrCodeInvalidArgument = "POM_INVALID_ARGUMENT"
	ErrCodeRender          = "POM_RENDER"
	ErrCodeDocument        = "POM_DOCUMENT"
)

// Sentinel causes wrapped by every error this package returns.
// Use errors.Is to classify.
var (
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)
	ErrRender          = errors.New(ErrMsgRenderFailed)
)

// NewInvalidArgumentError creates an error for malformed caller input.
func NewInvalidArgumentError(field, reason string) error {
	return cuserr.WrapStdError(ErrInvalidArgument, ErrCodeInvalidArgument, reason).
		WithMetadata(MetaKeyField, field).
		WithMetadata(MetaKeyReason, reason)
}

// NewEmptyTitleError creates an error for a missing or blank section title.
func NewEmptyTitleError(title string) error {
	return cuserr.WrapStdError(ErrInvalidArgument, ErrCodeInvalidArgument, ErrMsgEmptyTitle).
		WithMetadata(MetaKeyField, FieldTitle).
		WithMetadata(MetaKeyValue, title)
}

// NewUnsupportedFormatError creates an error for an unknown render format.
// A close supported format name is offered as a suggestion.
func NewUnsupportedFormatError(format string) error {
	names := make([]string, 0, len(SupportedFormats()))
	for _, f := range SupportedFormats() {
		names = append(names, f.String())
	}
	suggestion, _ := internal.Suggest(format, names)

	err := cuserr.WrapStdError(ErrInvalidArgument, ErrCodeInvalidArgument,
		ErrMsgUnsupportedFormat+internal.SuggestionHint(suggestion)).
		WithMetadata(MetaKeyField, FieldFormat).
		WithMetadata(MetaKeyFormat, format)
	if suggestion != "" {
		err = err.WithMetadata(MetaKeySuggestion, suggestion)
	}
	return err
}

// NewRenderError creates an error for text that cannot be represented in
// the target format. number identifies the offending section.
func NewRenderError(format Format, number, field string, cause error) error {
	err := cuserr.WrapStdError(errors.Join(ErrRender, cause), ErrCodeRender, ErrMsgRenderFailed).
		WithMetadata(MetaKeyFormat, format.String()).
		WithMetadata(MetaKeyNumber, number).
		WithMetadata(MetaKeyField, field)

	var encErr *internal.EncodingError
	if errors.As(cause, &encErr) {
		err = err.
			WithMetadata(MetaKeyReason, encErr.Message).
			WithMetadata(MetaKeyOffset, strconv.Itoa(encErr.Offset))
	}
	return err
}

// NewDocumentError creates an error for a document that could not be
// decoded into a model. Documents are caller input, so it is also an
// invalid-argument error.
func NewDocumentError(msg, source string, cause error) error {
	return cuserr.WrapStdError(errors.Join(ErrInvalidArgument, cause), ErrCodeDocument, msg).
		WithMetadata(MetaKeySource, source)
}

// NewDocumentSectionError wraps a section-level failure while building a
// model from a document, recording the section's numbering path.
func NewDocumentSectionError(number, title string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeDocument, ErrMsgDocumentSection).
		WithMetadata(MetaKeyNumber, number).
		WithMetadata(MetaKeyTitle, title)
}

// NewDocumentEncodeError creates an error for a failed JSON or YAML export.
func NewDocumentEncodeError(source string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeDocument, ErrMsgDocumentEncode).
		WithMetadata(MetaKeySource, source)
}

// IsInvalidArgument reports whether err was caused by malformed input.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsRenderError reports whether err is a render-time encoding failure.
func IsRenderError(err error) bool {
	return errors.Is(err, ErrRender)
}
