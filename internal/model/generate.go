package model

// GenerateResponse represents response for POST /card/generate and POST /card/qr
type GenerateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Address string `json:"address,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// ModeRequest represents request for POST /card/mode
type ModeRequest struct {
	Mode Mode `json:"mode" example:"imported"`
}

// FieldsRequest represents request for POST /card/fields.
// Omitted fields are left unchanged.
type FieldsRequest struct {
	Amount         *string  `json:"amount,omitempty" example:"1.5"`
	UnitPrice      *float64 `json:"unit_price,omitempty" example:"150"`
	BlockHeight    *uint64  `json:"block_height,omitempty" example:"3000000"`
	IssueDate      *string  `json:"issue_date,omitempty" example:"2024-12-24"`
	Message        *string  `json:"message,omitempty" example:"Happy Birthday"`
	Sender         *string  `json:"sender,omitempty"`
	Recipient      *string  `json:"recipient,omitempty"`
	Contact        *string  `json:"contact,omitempty"`
	TransactionIDs *string  `json:"txids,omitempty" example:"a1b2,c3d4"`
	Address        *string  `json:"address,omitempty"`
	Seed           *string  `json:"seed,omitempty"`
}

// CardStateResponse represents response for GET /card/state
type CardStateResponse struct {
	Mode           Mode     `json:"mode"`
	Address        string   `json:"address"`
	SeedPhrase     []string `json:"seed_phrase"`
	AmountXMR      string   `json:"amount_xmr"`
	UnitPrice      float64  `json:"unit_price"`
	FiatCode       string   `json:"fiat_code"`
	TotalFiat      string   `json:"total_fiat"`
	BlockHeight    uint64   `json:"block_height"`
	IssueDate      string   `json:"issue_date"`
	Message        string   `json:"message"`
	Sender         string   `json:"sender"`
	Recipient      string   `json:"recipient"`
	Contact        string   `json:"contact"`
	TransactionIDs []string `json:"txids"`
	RedemptionURI  string   `json:"redemption_uri"`
	AddressURI     string   `json:"address_uri"`
	HasQRCodes     bool     `json:"has_qr_codes"`
}

// SaveResponse represents response for POST /card/save
type SaveResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path"`
}
