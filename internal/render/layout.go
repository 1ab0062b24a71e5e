package render

import (
	"sort"

	"receiptapi/internal/receipt"
)

// mmPerPoint converts a font size in points to millimetres.
const mmPerPoint = 25.4 / 72

// placedText is a DrawText with the font state that was active when it was
// issued.
type placedText struct {
	receipt.DrawText
	Family string
	Style  receipt.FontStyle
	Size   float64
}

// band is a horizontal strip of the page holding every text that shares a
// baseline. Top and Height are in millimetres from the top of the page.
type band struct {
	Top    float64
	Height float64
	Texts  []placedText
}

// place replays the font/size cursor over seq and attaches the active state
// to every DrawText.
func place(seq receipt.Sequence) []placedText {
	var (
		out    []placedText
		family = receipt.FontFamily
		style  = receipt.StyleNormal
		size   = receipt.BodySize
	)
	for _, ins := range seq {
		switch v := ins.(type) {
		case receipt.SetFont:
			family, style = v.Family, v.Style
		case receipt.SetSize:
			size = v.Points
		case receipt.DrawText:
			out = append(out, placedText{DrawText: v, Family: family, Style: style, Size: size})
		}
	}
	return out
}

// bands groups texts by baseline, top to bottom. A band starts one text
// height above its baseline so the glyphs sit on Y.
func bands(texts []placedText) []band {
	byY := make(map[float64][]placedText)
	var ys []float64
	for _, t := range texts {
		if _, ok := byY[t.Y]; !ok {
			ys = append(ys, t.Y)
		}
		byY[t.Y] = append(byY[t.Y], t)
	}
	sort.Float64s(ys)

	out := make([]band, 0, len(ys))
	for _, y := range ys {
		var h float64
		for _, t := range byY[y] {
			if th := t.Size * mmPerPoint; th > h {
				h = th
			}
		}
		out = append(out, band{Top: y - h, Height: h, Texts: byY[y]})
	}
	return out
}
