package port

// TextExtractor produces the per-page plain text of a document on disk.
// Implementations must be safe for concurrent use.
type TextExtractor interface {
	Pages(path string) ([]string, error)
}
