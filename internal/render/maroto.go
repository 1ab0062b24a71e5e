package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"receiptapi/internal/receipt"
)

const (
	margin     = 10.0
	contentW   = receipt.PageWidth - 2*margin
	descentPad = 1.5
)

// marotoRenderer lays the sequence out on a single A4 page with maroto.
// Absolute positions are mapped onto full-width rows, one per baseline.
type marotoRenderer struct{}

// NewMaroto returns a Renderer backed by maroto.
func NewMaroto() Renderer {
	return &marotoRenderer{}
}

func (r *marotoRenderer) Render(seq receipt.Sequence, meta Meta) ([]byte, error) {
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(margin).
		WithTopMargin(margin).
		WithRightMargin(margin)
	if meta.Title != "" {
		b = b.WithTitle(meta.Title, true)
	}
	if meta.Creator != "" {
		b = b.WithCreator(meta.Creator, true)
	}
	if !meta.CreatedAt.IsZero() {
		b = b.WithCreationDate(meta.CreatedAt)
	}

	m := maroto.New(b.Build())

	cursor := margin
	for _, bd := range bands(place(seq)) {
		if gap := bd.Top - cursor; gap > 0 {
			m.AddRow(gap, col.New())
			cursor += gap
		}
		height := bd.Height + descentPad

		c := col.New()
		for _, t := range bd.Texts {
			c.Add(text.New(t.Content, textProps(t, bd.Height)))
		}
		m.AddRow(height, c)
		cursor += height
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// textProps positions t inside a full-width column whose row is bandHeight
// tall, keeping baselines of mixed sizes aligned.
func textProps(t placedText, bandHeight float64) props.Text {
	p := props.Text{
		Family: t.Family,
		Style:  fontStyle(t.Style),
		Size:   t.Size,
		Top:    bandHeight - t.Size*mmPerPoint,
	}

	x := t.X - margin
	switch t.Align {
	case receipt.AlignCenter:
		p.Align = align.Center
		// The text is centred in [Left, contentW-Right]; shrink one side so
		// that the midpoint falls on x.
		if d := 2*x - contentW; d > 0 {
			p.Left = d
		} else {
			p.Right = -d
		}
	case receipt.AlignRight:
		p.Align = align.Right
		p.Right = contentW - x
	default:
		p.Align = align.Left
		p.Left = x
	}
	return p
}

func fontStyle(s receipt.FontStyle) fontstyle.Type {
	switch s {
	case receipt.StyleBold:
		return fontstyle.Bold
	case receipt.StyleItalic:
		return fontstyle.Italic
	case receipt.StyleBoldItalic:
		return fontstyle.BoldItalic
	default:
		return fontstyle.Normal
	}
}
