package model

import "time"

// Receipt is the stored record of a generated sale receipt.
// The PDF itself lives in object storage under StoragePath.
type Receipt struct {
	ID             string    `json:"id"`
	Filename       string    `json:"filename"`
	StoragePath    string    `json:"storage_path"`
	Size           int64     `json:"size"`
	ContentType    string    `json:"content_type"`
	SellerName     string    `json:"seller_name"`
	BuyerName      string    `json:"buyer_name"`
	RegistrationNo string    `json:"registration_no"`
	AdvancePayment string    `json:"advance_payment"`
	AmountInWords  string    `json:"amount_in_words"`
	IssuedAt       time.Time `json:"issued_at"`
	CreatedAt      time.Time `json:"created_at"`
}
