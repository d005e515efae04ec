package extract

import (
	"errors"
	"fmt"

	"telebill/internal/domain"
)

// ErrCarrierNotDetected is returned when the first page of a document
// names neither supported carrier.
var ErrCarrierNotDetected = errors.New("could not detect carrier: expected a Vodafone or Three invoice")

// RequiredFieldError reports a field the carrier layout treats as
// load-bearing that could not be extracted after every fallback pattern.
type RequiredFieldError struct {
	Carrier domain.Carrier
	Field   string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("could not extract %s from %s invoice", e.Field, e.Carrier)
}

// MalformedFieldError reports a field that matched a pattern but carried
// a value outside its plausible range.
type MalformedFieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed %s %q: %s", e.Field, e.Value, e.Reason)
}
