package receipt

import "encoding/json"

// FontStyle is the weight/slant half of a font selection.
type FontStyle string

const (
	StyleNormal     FontStyle = "normal"
	StyleBold       FontStyle = "bold"
	StyleItalic     FontStyle = "italic"
	StyleBoldItalic FontStyle = "bolditalic"
)

// Alignment positions a text relative to its X coordinate.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Instruction is one drawing command of a receipt page.
//
// The set of variants is closed: SetFont, SetSize and DrawText. Font and size
// act like a cursor and stay in effect for every following DrawText until
// they are set again.
type Instruction interface {
	isInstruction()
}

// Sequence is an ordered list of instructions describing one page.
type Sequence []Instruction

// SetFont selects the font family and style for subsequent text.
type SetFont struct {
	Family string
	Style  FontStyle
}

// SetSize selects the font size in points for subsequent text.
type SetSize struct {
	Points float64
}

// DrawText places Content with its baseline at (X, Y), in millimetres from the
// top-left corner of the page.
type DrawText struct {
	Content string
	X, Y    float64
	Align   Alignment
}

func (SetFont) isInstruction()  {}
func (SetSize) isInstruction()  {}
func (DrawText) isInstruction() {}

func (i SetFont) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Op     string    `json:"op"`
		Family string    `json:"family"`
		Style  FontStyle `json:"style"`
	}{"set_font", i.Family, i.Style})
}

func (i SetSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Op     string  `json:"op"`
		Points float64 `json:"points"`
	}{"set_size", i.Points})
}

func (i DrawText) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Op      string    `json:"op"`
		Content string    `json:"content"`
		X       float64   `json:"x"`
		Y       float64   `json:"y"`
		Align   Alignment `json:"align"`
	}{"draw_text", i.Content, i.X, i.Y, i.Align})
}
