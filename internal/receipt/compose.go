// Package receipt lays out the one-page car sale receipt as a Sequence of
// drawing instructions. It does no I/O; see package render for turning a
// Sequence into a PDF.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"receiptapi/internal/amountwords"
	"receiptapi/internal/model"
)

const (
	// Title is printed at the top of every receipt and used as the PDF title.
	Title = "Sale Receipt"

	// FontFamily is the only family the receipt uses.
	FontFamily = "helvetica"

	// DateLayout and TimeLayout format the settlement timestamp
	// (DD-MM-YYYY and 12-hour clock).
	DateLayout = "02-01-2006"
	TimeLayout = "3:04 PM"

	// PageWidth and PageHeight are A4 in millimetres.
	PageWidth  = 210.0
	PageHeight = 297.0

	TitleSize = 22.0
	BodySize  = 12.0

	titleY = 20.0

	LeftX  = 20.0
	MidX   = 105.0
	RightX = 150.0

	LineGap = 10.0
	TopY    = 35.0

	noteIndent = 15.0
)

const (
	transferNotice = "regarding this vehicle are now the buyer's responsibility."
	refundNotice   = "This receipt is non-refundable. Transfer process must be completed within 7 days."
)

// Compose returns the instruction sequence of a receipt for in, issued at now.
// The result depends only on its arguments.
func Compose(in model.ReceiptInput, now time.Time) Sequence {
	date := now.Format(DateLayout)
	clock := now.Format(TimeLayout)

	p := &page{}

	p.font(StyleBold)
	p.size(TitleSize)
	p.text(Title, PageWidth/2, titleY, AlignCenter)

	p.font(StyleNormal)
	p.size(BodySize)

	y := TopY
	line := func(x float64, format string, args ...any) {
		p.text(fmt.Sprintf(format, args...), x, y, AlignLeft)
	}

	line(LeftX, "Received with thanks the sum of Rs: %s/-", in.AdvancePayment)
	y += LineGap
	line(LeftX, "Rupees (in Words) Rs: %s Only", AmountWords(in))
	y += LineGap
	line(LeftX, "From (Purchaser) Mr/Ms. %s S/o %s", in.BuyerName, in.BuyerFather)
	y += LineGap
	line(LeftX, "Resident of %s", in.BuyerAddress)
	y += LineGap
	line(LeftX, "Against the sale of Motor Car %s %s", in.CarMaker, in.ModelNumber)
	y += LineGap

	line(LeftX, "Registration # %s", in.RegistrationNo)
	line(MidX, "Maker: %s", in.CarMaker)
	y += LineGap
	line(LeftX, "Model: %s", in.ModelNumber)
	line(MidX, "Horse Power: %s", in.HorsePower)
	y += LineGap
	line(LeftX, "Chasis # %s", in.ChassisNo)
	line(MidX, "Engine # %s", in.EngineNo)
	y += LineGap

	line(LeftX, "Original File: %s", YesNo(in.OriginalFile))
	line(MidX, "Computerized No. Plate: %s", YesNo(in.ComputerizedNoPlate))
	y += LineGap
	line(LeftX, "Pages: %s", in.TotalFilePages)
	y += LineGap

	line(LeftX, "As payment/After Final Settlement by Cash Today %s At Time %s", date, clock)
	y += LineGap

	// Seller block: header plus three lines.
	sellerTop := y
	p.font(StyleBold)
	line(LeftX, "Seller's ID Card & Mobil #")
	p.font(StyleNormal)
	y += LineGap
	line(LeftX, "%s", in.SellerCNIC)
	y += LineGap
	line(LeftX, "%s", in.SellerContact)
	y += LineGap
	line(LeftX, "Seller Name: %s", in.SellerName)
	y += LineGap

	// Buyer block shares the seller block's rows in the right column.
	p.font(StyleBold)
	p.text("Purchaser ID Card Num", RightX, sellerTop, AlignLeft)
	p.font(StyleNormal)
	p.text(in.BuyerCNIC, RightX, sellerTop+LineGap, AlignLeft)
	p.text(in.BuyerContact, RightX, sellerTop+2*LineGap, AlignLeft)

	p.font(StyleBoldItalic)
	line(LeftX, "The vehicle ownership is transferred at %s. Any legal issues", date)
	y += LineGap
	line(LeftX, "%s", transferNotice)
	y += LineGap

	p.font(StyleBold)
	line(LeftX, "Note:")
	p.font(StyleNormal)
	line(LeftX+noteIndent, "%s", refundNotice)

	return p.seq
}

// AmountWords spells the advance payment of in. A missing or non-numeric
// amount is treated as zero.
func AmountWords(in model.ReceiptInput) string {
	amount, err := decimal.NewFromString(strings.TrimSpace(in.AdvancePayment))
	if err != nil {
		amount = decimal.Zero
	}
	return amountwords.ConvertDecimal(amount)
}

// YesNo normalizes a yes/no form value: any casing of "yes" prints as "Yes",
// everything else as "No".
func YesNo(v string) string {
	if strings.EqualFold(strings.TrimSpace(v), "yes") {
		return "Yes"
	}
	return "No"
}

type page struct {
	seq Sequence
}

func (p *page) font(style FontStyle) {
	p.seq = append(p.seq, SetFont{Family: FontFamily, Style: style})
}

func (p *page) size(points float64) {
	p.seq = append(p.seq, SetSize{Points: points})
}

// text drops the trailing blanks left behind by empty fields.
func (p *page) text(s string, x, y float64, align Alignment) {
	p.seq = append(p.seq, DrawText{Content: strings.TrimRight(s, " "), X: x, Y: y, Align: align})
}
