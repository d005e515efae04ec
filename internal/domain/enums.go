package domain

// Carrier identifies the telecom operator that issued an invoice.
// It determines which extractor and pattern set applies to a document.
type Carrier string

const (
	CarrierVodafone Carrier = "Vodafone"
	CarrierThree    Carrier = "Three"
)

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
// Only PDF invoices are accepted.
var AllowedExtensions = map[string]FileType{
	"pdf": FileTypePDF,
}
