package personalize

import "fmt"

// ValidationError reports missing or malformed caller input. Handlers map it
// to a 400 response carrying the field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Message)
}

// ProviderErrorCategory classifies upstream completion failures.
type ProviderErrorCategory string

const (
	ProviderAuth        ProviderErrorCategory = "authentication"
	ProviderRateLimit   ProviderErrorCategory = "rate_limit"
	ProviderTimeout     ProviderErrorCategory = "timeout"
	ProviderEmpty       ProviderErrorCategory = "empty_completion"
	ProviderUnavailable ProviderErrorCategory = "unavailable"
)

// ProviderError wraps a failed completion call with its category. Only
// authentication failures are never retried.
type ProviderError struct {
	Category ProviderErrorCategory
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("completion provider error (%s): %s", e.Category, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Retryable reports whether a bounded retry may help.
func (e *ProviderError) Retryable() bool {
	return e.Category != ProviderAuth
}

// ExtractionErrorKind classifies failures turning a raw completion into a
// validated object.
type ExtractionErrorKind string

const (
	NoJSONFound   ExtractionErrorKind = "no_json_found"
	MalformedJSON ExtractionErrorKind = "malformed_json"
	MissingField  ExtractionErrorKind = "missing_field"
	InvalidField  ExtractionErrorKind = "invalid_field"
)

// ExtractionError reports that a completion reply contained no usable JSON
// object, or that the object violated the use case's shape contract.
type ExtractionError struct {
	Kind  ExtractionErrorKind
	Field string
	Err   error
}

func (e *ExtractionError) Error() string {
	switch e.Kind {
	case NoJSONFound:
		return "reply contains no JSON object"
	case MalformedJSON:
		return fmt.Sprintf("reply contains malformed JSON: %v", e.Err)
	case MissingField:
		return fmt.Sprintf("reply is missing required field %q", e.Field)
	case InvalidField:
		return fmt.Sprintf("reply field %q has an invalid value", e.Field)
	default:
		return "extraction failed"
	}
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
