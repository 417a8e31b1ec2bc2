package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrValidationFailed    = errors.New("validation failed")
	ErrUnknownSection      = errors.New("unknown configuration section")
	ErrEmptySectionPayload = errors.New("section payload is required")
	ErrMalformedPayload    = errors.New("section payload must be a JSON object")
	ErrFieldOutsideSection = errors.New("field does not belong to the section")
)
