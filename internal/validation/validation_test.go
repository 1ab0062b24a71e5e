package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"receiptapi/internal/model"
)

func validInput() model.ReceiptInput {
	return model.ReceiptInput{
		SellerName:             "Ali Khan",
		FatherName:             "Akbar Khan",
		SellerContact:          "03001234567",
		SellerCNIC:             "35202-1234567-1",
		PermanentAddress:       "Lahore",
		BuyerName:              "Omar",
		BuyerFather:            "Usman",
		BuyerContact:           "+923217654321",
		BuyerCNIC:              "35201-7654321-3",
		BuyerAddress:           "Model Town, Lahore",
		RegistrationNo:         "LEA-1234",
		OriginalRegistrationNo: "LEA-1234",
		EngineNo:               "2NZ-998877",
		ChassisNo:              "NZE141-123456",
		CarMaker:               "Toyota",
		ModelNumber:            "Corolla",
		HorsePower:             "1300",
		Color:                  "White",
		OriginalFile:           "Yes",
		TotalFilePages:         "4",
		ComputerizedNoPlate:    "no",
		AdvancePayment:         "150000",
	}
}

func TestValidateReceipt_Valid(t *testing.T) {
	assert.Empty(t, ValidateReceipt(validInput()))
}

func TestValidateReceipt_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *model.ReceiptInput)
		field  string
		tag    string
	}{
		{"missing seller name", func(in *model.ReceiptInput) { in.SellerName = "" }, "sellerName", "required"},
		{"cnic without dashes", func(in *model.ReceiptInput) { in.SellerCNIC = "3520212345671" }, "sellerCNIC", "cnic"},
		{"cnic wrong grouping", func(in *model.ReceiptInput) { in.BuyerCNIC = "3520-21234567-1" }, "buyerCNIC", "cnic"},
		{"contact too short", func(in *model.ReceiptInput) { in.SellerContact = "0300123456" }, "sellerContact", "pkmobile"},
		{"contact foreign prefix", func(in *model.ReceiptInput) { in.BuyerContact = "+913001234567" }, "buyerContact", "pkmobile"},
		{"horse power not numeric", func(in *model.ReceiptInput) { in.HorsePower = "1.3k" }, "horsePower", "digitsonly"},
		{"negative payment", func(in *model.ReceiptInput) { in.AdvancePayment = "-100" }, "advancePayment", "digitsonly"},
		{"pages with spaces", func(in *model.ReceiptInput) { in.TotalFilePages = " 4" }, "totalFilePages", "digitsonly"},
		{"yes/no mixed case", func(in *model.ReceiptInput) { in.OriginalFile = "yEs" }, "originalFile", "yesno"},
		{"yes/no other word", func(in *model.ReceiptInput) { in.ComputerizedNoPlate = "maybe" }, "computerizedNoPlate", "yesno"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			errs := ValidateReceipt(in)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.tag, errs[0].Tag)
			assert.Equal(t, messages[tt.tag], errs[0].Message)
		})
	}
}

func TestValidateReceipt_AcceptedContactPrefixes(t *testing.T) {
	for _, c := range []string{"03001234567", "+923001234567", "00923001234567"} {
		in := validInput()
		in.SellerContact = c
		assert.Empty(t, ValidateReceipt(in), c)
	}
}

func TestValidateReceipt_EmptyInputReportsEveryField(t *testing.T) {
	errs := ValidateReceipt(model.ReceiptInput{})

	assert.Len(t, errs, 22)
	for _, e := range errs {
		assert.Equal(t, "required", e.Tag)
		assert.NotEmpty(t, e.Field)
	}
}

func TestNormalizeContact(t *testing.T) {
	for _, c := range []string{"03001234567", "+923001234567", "00923001234567"} {
		got, err := NormalizeContact(c)
		require.NoError(t, err, c)
		assert.Equal(t, "+923001234567", got, c)
	}

	_, err := NormalizeContact("not a number")
	assert.Error(t, err)
}
