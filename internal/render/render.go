// Package render turns a receipt.Sequence into a PDF document.
package render

import (
	"time"

	"receiptapi/internal/receipt"
)

// ContentType is the media type of rendered documents.
const ContentType = "application/pdf"

// Meta is written into the document information of the PDF.
type Meta struct {
	Title     string
	Creator   string
	CreatedAt time.Time
}

// Renderer converts an instruction sequence into document bytes.
// Implementations must not retain the sequence after Render returns.
type Renderer interface {
	Render(seq receipt.Sequence, meta Meta) ([]byte, error)
}
