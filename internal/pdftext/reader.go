// Package pdftext extracts per-page plain text from PDF documents.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader extracts page texts using row-ordered traversal, which keeps
// label/value adjacency intact well enough for the downstream pattern
// matching. Safe for concurrent use; each call opens its own handle.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Pages returns the plain text of every page in document order. Words in
// a row are joined with single spaces and rows with newlines.
func (r *Reader) Pages(path string) ([]string, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdftext.Pages: opening document: %w", err)
	}
	defer f.Close()

	pages := make([]string, 0, doc.NumPage())
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("pdftext.Pages: reading page %d: %w", i, err)
		}

		var b strings.Builder
		for _, row := range rows {
			for j, word := range row.Content {
				if j > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(word.S)
			}
			b.WriteByte('\n')
		}
		pages = append(pages, b.String())
	}
	return pages, nil
}
