// Package validation enforces the sale form rules before a receipt is
// composed: every field required, CNIC and mobile number formats, digits-only
// amounts and yes/no flags.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"

	"receiptapi/internal/model"
)

var (
	regexCNIC     = regexp.MustCompile(`^\d{5}-\d{7}-\d{1}$`)
	regexPKMobile = regexp.MustCompile(`^(\+92|0092|0)[0-9]{10}$`)
	regexDigits   = regexp.MustCompile(`^[0-9]+$`)
	regexYesNo    = regexp.MustCompile(`^(Yes|No|YES|NO|yes|no)$`)
)

// DefaultRegion is used to interpret contact numbers without a country code.
const DefaultRegion = "PK"

// Messages shown next to a field, keyed by validation tag.
var messages = map[string]string{
	"required":   "This field is required",
	"cnic":       "Please enter CNIC in format: 00000-0000000-0",
	"pkmobile":   "Please enter a valid Pakistani phone number",
	"digitsonly": "Please enter numbers only",
	"yesno":      "Please enter Yes or No",
}

// FieldError describes one failed rule on one form field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "cnic", regexCNIC)
	mustRegister(v, "pkmobile", regexPKMobile)
	mustRegister(v, "digitsonly", regexDigits)
	mustRegister(v, "yesno", regexYesNo)
	return v
}

func mustRegister(v *validator.Validate, tag string, re *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// ValidateReceipt checks in against the form rules and returns one FieldError
// per failing field, in struct order. A nil result means in is valid.
func ValidateReceipt(in model.ReceiptInput) []FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = "Invalid value"
		}
		out = append(out, FieldError{Field: fe.Field(), Tag: fe.Tag(), Message: msg})
	}
	return out
}

// NormalizeContact returns the E.164 form of a contact number, e.g.
// "03001234567" -> "+923001234567".
func NormalizeContact(contact string) (string, error) {
	num, err := phonenumbers.Parse(contact, DefaultRegion)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
