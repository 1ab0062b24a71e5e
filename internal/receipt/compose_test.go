package receipt

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"receiptapi/internal/model"
)

var fixedNow = time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)

func sampleInput() model.ReceiptInput {
	return model.ReceiptInput{
		SellerName:          "Ali Khan",
		FatherName:          "Akbar Khan",
		SellerContact:       "03001234567",
		SellerCNIC:          "35202-1234567-1",
		PermanentAddress:    "House 1, Street 2, Lahore",
		BuyerName:           "Omar",
		BuyerFather:         "Usman",
		BuyerContact:        "+923217654321",
		BuyerCNIC:           "35201-7654321-3",
		BuyerAddress:        "Model Town, Lahore",
		RegistrationNo:      "LEA-1234",
		EngineNo:            "2NZ-998877",
		ChassisNo:           "NZE141-123456",
		CarMaker:            "Toyota",
		ModelNumber:         "Corolla",
		HorsePower:          "1300",
		Color:               "White",
		OriginalFile:        "Yes",
		TotalFilePages:      "4",
		ComputerizedNoPlate: "No",
		AdvancePayment:      "150000",
	}
}

func texts(seq Sequence) []string {
	var out []string
	for _, ins := range seq {
		if d, ok := ins.(DrawText); ok {
			out = append(out, d.Content)
		}
	}
	return out
}

func findText(t *testing.T, seq Sequence, content string) DrawText {
	t.Helper()
	for _, ins := range seq {
		if d, ok := ins.(DrawText); ok && d.Content == content {
			return d
		}
	}
	t.Fatalf("text %q not found", content)
	return DrawText{}
}

// styleAt replays the cursor up to index i and returns the active style and size.
func styleAt(seq Sequence, i int) (FontStyle, float64) {
	var style FontStyle
	var size float64
	for _, ins := range seq[:i] {
		switch v := ins.(type) {
		case SetFont:
			style = v.Style
		case SetSize:
			size = v.Points
		}
	}
	return style, size
}

func indexOf(seq Sequence, content string) int {
	for i, ins := range seq {
		if d, ok := ins.(DrawText); ok && d.Content == content {
			return i
		}
	}
	return -1
}

func TestCompose_EndToEnd(t *testing.T) {
	seq := Compose(sampleInput(), fixedNow)

	want := []string{
		"Sale Receipt",
		"Received with thanks the sum of Rs: 150000/-",
		"Rupees (in Words) Rs: One Lakh Fifty Thousand Only",
		"From (Purchaser) Mr/Ms. Omar S/o Usman",
		"Resident of Model Town, Lahore",
		"Against the sale of Motor Car Toyota Corolla",
		"Registration # LEA-1234",
		"Maker: Toyota",
		"Model: Corolla",
		"Horse Power: 1300",
		"Chasis # NZE141-123456",
		"Engine # 2NZ-998877",
		"Original File: Yes",
		"Computerized No. Plate: No",
		"Pages: 4",
		"As payment/After Final Settlement by Cash Today 05-03-2024 At Time 2:07 PM",
		"Seller's ID Card & Mobil #",
		"35202-1234567-1",
		"03001234567",
		"Seller Name: Ali Khan",
		"Purchaser ID Card Num",
		"35201-7654321-3",
		"+923217654321",
		"The vehicle ownership is transferred at 05-03-2024. Any legal issues",
		"regarding this vehicle are now the buyer's responsibility.",
		"Note:",
		"This receipt is non-refundable. Transfer process must be completed within 7 days.",
	}
	assert.Equal(t, want, texts(seq))
}

func TestCompose_Layout(t *testing.T) {
	seq := Compose(sampleInput(), fixedNow)

	title := findText(t, seq, "Sale Receipt")
	assert.Equal(t, AlignCenter, title.Align)
	assert.Equal(t, 105.0, title.X)
	assert.Equal(t, 20.0, title.Y)
	style, size := styleAt(seq, indexOf(seq, "Sale Receipt"))
	assert.Equal(t, StyleBold, style)
	assert.Equal(t, TitleSize, size)

	first := findText(t, seq, "Received with thanks the sum of Rs: 150000/-")
	assert.Equal(t, TopY, first.Y)
	assert.Equal(t, LeftX, first.X)
	style, size = styleAt(seq, indexOf(seq, first.Content))
	assert.Equal(t, StyleNormal, style)
	assert.Equal(t, BodySize, size)

	reg := findText(t, seq, "Registration # LEA-1234")
	maker := findText(t, seq, "Maker: Toyota")
	assert.Equal(t, reg.Y, maker.Y)
	assert.Equal(t, MidX, maker.X)

	header := findText(t, seq, "Seller's ID Card & Mobil #")
	buyerHeader := findText(t, seq, "Purchaser ID Card Num")
	assert.Equal(t, header.Y, buyerHeader.Y)
	assert.Equal(t, RightX, buyerHeader.X)
	assert.Equal(t, header.Y+LineGap, findText(t, seq, "35201-7654321-3").Y)
	assert.Equal(t, header.Y+2*LineGap, findText(t, seq, "+923217654321").Y)

	style, _ = styleAt(seq, indexOf(seq, "Seller's ID Card & Mobil #"))
	assert.Equal(t, StyleBold, style)
	style, _ = styleAt(seq, indexOf(seq, "35202-1234567-1"))
	assert.Equal(t, StyleNormal, style)

	disclaimer := "The vehicle ownership is transferred at 05-03-2024. Any legal issues"
	style, _ = styleAt(seq, indexOf(seq, disclaimer))
	assert.Equal(t, StyleBoldItalic, style)
	assert.Equal(t, findText(t, seq, "Seller Name: Ali Khan").Y+LineGap, findText(t, seq, disclaimer).Y)

	note := findText(t, seq, "Note:")
	body := findText(t, seq, refundNotice)
	assert.Equal(t, note.Y, body.Y)
	assert.Equal(t, LeftX+15, body.X)
	style, _ = styleAt(seq, indexOf(seq, "Note:"))
	assert.Equal(t, StyleBold, style)
	style, _ = styleAt(seq, indexOf(seq, refundNotice))
	assert.Equal(t, StyleNormal, style)
}

func TestCompose_Deterministic(t *testing.T) {
	a, err := json.Marshal(Compose(sampleInput(), fixedNow))
	require.NoError(t, err)
	b, err := json.Marshal(Compose(sampleInput(), fixedNow))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestCompose_EmptyInput(t *testing.T) {
	seq := Compose(model.ReceiptInput{}, fixedNow)

	for _, s := range texts(seq) {
		assert.NotContains(t, s, "undefined")
		assert.NotContains(t, s, "null")
		assert.NotContains(t, s, "<nil>")
		assert.NotContains(t, s, "%!")
	}
	findText(t, seq, "Rupees (in Words) Rs: Zero Only")
	findText(t, seq, "Received with thanks the sum of Rs: /-")
	findText(t, seq, "Original File: No")
	findText(t, seq, "Pages:")
}

func TestCompose_TwelveHourClock(t *testing.T) {
	morning := time.Date(2025, time.December, 31, 0, 5, 0, 0, time.UTC)
	findText(t, Compose(model.ReceiptInput{}, morning),
		"As payment/After Final Settlement by Cash Today 31-12-2025 At Time 12:05 AM")
}

func TestYesNo(t *testing.T) {
	for _, v := range []string{"Yes", "YES", "yes", " yes "} {
		assert.Equal(t, "Yes", YesNo(v), v)
	}
	for _, v := range []string{"No", "NO", "no", "", "y", "true", "yes please"} {
		assert.Equal(t, "No", YesNo(v), v)
	}
}

func TestAmountWords(t *testing.T) {
	assert.Equal(t, "One Lakh Fifty Thousand", AmountWords(model.ReceiptInput{AdvancePayment: "150000"}))
	assert.Equal(t, "Zero", AmountWords(model.ReceiptInput{}))
	assert.Equal(t, "Zero", AmountWords(model.ReceiptInput{AdvancePayment: "abc"}))
}

func TestSequence_JSON(t *testing.T) {
	seq := Sequence{
		SetFont{Family: FontFamily, Style: StyleBold},
		SetSize{Points: 22},
		DrawText{Content: "Sale Receipt", X: 105, Y: 20, Align: AlignCenter},
	}
	b, err := json.Marshal(seq)
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"op":"set_font","family":"helvetica","style":"bold"},
		{"op":"set_size","points":22},
		{"op":"draw_text","content":"Sale Receipt","x":105,"y":20,"align":"center"}
	]`, string(b))
}
