package extract

import (
	"fmt"

	"telebill/internal/domain"
)

// CarrierExtractor turns the page texts of one invoice document into a
// structured record. Implementations are pure: one immutable input, one
// freshly allocated output, no state carried between calls.
type CarrierExtractor interface {
	Carrier() domain.Carrier
	Parse(pages []string) (*domain.InvoiceRecord, error)
}

var extractors = map[domain.Carrier]CarrierExtractor{}

// Register adds an extractor to the dispatch table. Registering a
// carrier twice replaces the earlier entry.
func Register(e CarrierExtractor) {
	extractors[e.Carrier()] = e
}

func init() {
	Register(&VodafoneExtractor{})
	Register(&ThreeExtractor{})
}

// ForCarrier returns the extractor registered for a carrier.
func ForCarrier(c domain.Carrier) (CarrierExtractor, error) {
	e, ok := extractors[c]
	if !ok {
		return nil, fmt.Errorf("no extractor registered for carrier %s", c)
	}
	return e, nil
}

// Parse detects the carrier from the first page and runs the matching
// extractor over the full document.
func Parse(pages []string) (*domain.InvoiceRecord, error) {
	if len(pages) == 0 {
		return nil, ErrCarrierNotDetected
	}
	carrier, err := DetectCarrier(pages[0])
	if err != nil {
		return nil, err
	}
	e, err := ForCarrier(carrier)
	if err != nil {
		return nil, err
	}
	return e.Parse(pages)
}

func newRecord(c domain.Carrier) *domain.InvoiceRecord {
	return &domain.InvoiceRecord{
		Metadata:    domain.InvoiceMetadata{Carrier: c},
		Summary:     domain.InvoiceSummary{VAT: domain.VATTiers{}},
		Mobiles:     []domain.MobileLine{},
		CostCentres: map[string]*domain.CostCentre{},
	}
}
