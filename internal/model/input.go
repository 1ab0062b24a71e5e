package model

// ReceiptInput carries the values collected by the sale form.
//
// Every field is optional here; required-ness and formats are enforced by
// the validation package before a receipt is composed. An empty field is
// printed as an empty string.
type ReceiptInput struct {
	// Seller
	SellerName       string `json:"sellerName" validate:"required"`
	FatherName       string `json:"fatherName" validate:"required"`
	SellerContact    string `json:"sellerContact" validate:"required,pkmobile"`
	SellerCNIC       string `json:"sellerCNIC" validate:"required,cnic"`
	PermanentAddress string `json:"permanentAddress" validate:"required"`

	// Buyer
	BuyerName    string `json:"buyerName" validate:"required"`
	BuyerFather  string `json:"buyerFather" validate:"required"`
	BuyerContact string `json:"buyerContact" validate:"required,pkmobile"`
	BuyerCNIC    string `json:"buyerCNIC" validate:"required,cnic"`
	BuyerAddress string `json:"buyerAddress" validate:"required"`

	// Vehicle
	RegistrationNo         string `json:"registrationNo" validate:"required"`
	OriginalRegistrationNo string `json:"originalRegistrationNo" validate:"required"`
	EngineNo               string `json:"engineNo" validate:"required"`
	ChassisNo              string `json:"chassisNo" validate:"required"`
	CarMaker               string `json:"carMaker" validate:"required"`
	ModelNumber            string `json:"modelNumber" validate:"required"`
	HorsePower             string `json:"horsePower" validate:"required,digitsonly"`
	Color                  string `json:"color" validate:"required"`

	// Documentation
	OriginalFile        string `json:"originalFile" validate:"required,yesno"`
	TotalFilePages      string `json:"totalFilePages" validate:"required,digitsonly"`
	ComputerizedNoPlate string `json:"computerizedNoPlate" validate:"required,yesno"`

	// Transaction
	AdvancePayment string `json:"advancePayment" validate:"required,digitsonly"`
}
