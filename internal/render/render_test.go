package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"receiptapi/internal/model"
	"receiptapi/internal/receipt"
)

var issued = time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)

func TestPlace_TracksCursor(t *testing.T) {
	seq := receipt.Sequence{
		receipt.SetFont{Family: "helvetica", Style: receipt.StyleBold},
		receipt.SetSize{Points: 22},
		receipt.DrawText{Content: "Title", X: 105, Y: 20, Align: receipt.AlignCenter},
		receipt.SetFont{Family: "helvetica", Style: receipt.StyleNormal},
		receipt.SetSize{Points: 12},
		receipt.DrawText{Content: "a", X: 20, Y: 35},
		receipt.SetFont{Family: "helvetica", Style: receipt.StyleItalic},
		receipt.DrawText{Content: "b", X: 20, Y: 45},
	}

	got := place(seq)
	require.Len(t, got, 3)

	assert.Equal(t, receipt.StyleBold, got[0].Style)
	assert.Equal(t, 22.0, got[0].Size)
	assert.Equal(t, receipt.StyleNormal, got[1].Style)
	assert.Equal(t, 12.0, got[1].Size)
	assert.Equal(t, receipt.StyleItalic, got[2].Style)
	assert.Equal(t, 12.0, got[2].Size)
}

func TestBands_GroupsByBaseline(t *testing.T) {
	texts := place(receipt.Compose(model.ReceiptInput{}, issued))
	bb := bands(texts)

	for i := 1; i < len(bb); i++ {
		assert.Less(t, bb[i-1].Top, bb[i].Top, "bands must be ordered top to bottom")
	}

	// The seller header and the purchaser header share a baseline.
	var shared bool
	for _, b := range bb {
		var seller, buyer bool
		for _, tx := range b.Texts {
			seller = seller || tx.Content == "Seller's ID Card & Mobil #"
			buyer = buyer || tx.Content == "Purchaser ID Card Num"
		}
		shared = shared || (seller && buyer)
	}
	assert.True(t, shared)
}

func TestTextProps(t *testing.T) {
	left := textProps(placedText{
		DrawText: receipt.DrawText{Content: "x", X: 150, Y: 100, Align: receipt.AlignLeft},
		Family:   "helvetica", Style: receipt.StyleBold, Size: 12,
	}, 12*mmPerPoint)
	assert.Equal(t, align.Left, left.Align)
	assert.InDelta(t, 140.0, left.Left, 1e-9)
	assert.InDelta(t, 0.0, left.Top, 1e-9)
	assert.Equal(t, fontstyle.Bold, left.Style)

	center := textProps(placedText{
		DrawText: receipt.DrawText{Content: "x", X: receipt.PageWidth / 2, Y: 20, Align: receipt.AlignCenter},
		Size:     22,
	}, 22*mmPerPoint)
	assert.Equal(t, align.Center, center.Align)
	assert.InDelta(t, 0.0, center.Left, 1e-9)
	assert.InDelta(t, 0.0, center.Right, 1e-9)

	small := textProps(placedText{DrawText: receipt.DrawText{X: 20}, Size: 12}, 22*mmPerPoint)
	assert.InDelta(t, 10*mmPerPoint, small.Top, 1e-9)

	assert.Equal(t, fontstyle.BoldItalic, fontStyle(receipt.StyleBoldItalic))
	assert.Equal(t, fontstyle.Normal, fontStyle(""))
}

func TestMarotoRenderer_Render(t *testing.T) {
	in := model.ReceiptInput{SellerName: "Ali Khan", BuyerName: "Omar", AdvancePayment: "150000"}

	out, err := NewMaroto().Render(receipt.Compose(in, issued), Meta{
		Title:     receipt.Title,
		Creator:   "receiptapi",
		CreatedAt: issued,
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
