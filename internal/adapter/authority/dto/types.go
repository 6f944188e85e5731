package authority_dto

import "encoding/json"

// MintParametersRequest is the body of POST /api/v1/minting-parameters.
type MintParametersRequest struct {
	Label         string `json:"label"`
	ParentName    string `json:"parentName"`
	MinterAddress string `json:"minterAddress"`
	ExpiryInYears int    `json:"expiryInYears,omitempty"`
	Owner         string `json:"owner,omitempty"`
	IsTestnet     bool   `json:"isTestnet"`
}

// MintParametersResponse is the authority's answer. Integers may arrive as JSON numbers or decimal strings.
type MintParametersResponse struct {
	Content   MintContentRaw `json:"content"`
	Signature string         `json:"signature"`
}

// MintContentRaw is the signed parameter bundle.
type MintContentRaw struct {
	Label           string      `json:"label"`
	Owner           string      `json:"owner"`
	Fee             json.Number `json:"fee"`
	Price           json.Number `json:"price"`
	ParentNode      string      `json:"parentNode"`
	PaymentReceiver string      `json:"paymentReceiver"`
	VerifiedMinter  string      `json:"verifiedMinter"`
	SignatureExpiry json.Number `json:"signatureExpiry"`
	Expiry          json.Number `json:"expiry"`
	Fuses           json.Number `json:"fuses,omitempty"`
}
