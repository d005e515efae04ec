package extract

import (
	"strings"

	"telebill/internal/domain"
)

// DetectCarrier identifies the issuing carrier from the text of a
// document's first page. Detection runs before any field recognizer
// because the two layouts are not interchangeable: Vodafone invoices are
// label-then-value, Three invoices value-then-label.
func DetectCarrier(firstPage string) (domain.Carrier, error) {
	switch {
	case strings.Contains(strings.ToLower(firstPage), "vodafone"):
		return domain.CarrierVodafone, nil
	case strings.Contains(firstPage, "Three"), strings.Contains(firstPage, "Hutchison 3G"):
		return domain.CarrierThree, nil
	}
	return "", ErrCarrierNotDetected
}
