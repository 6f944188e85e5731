package entity

import "github.com/ethereum/go-ethereum/common"

// CoinTypeETH is the SLIP-44 coin type used for Ethereum address records.
const CoinTypeETH = 60

// SubnameRecord is an off-chain subname as stored by the directory.
type SubnameRecord struct {
	FullName  string            `json:"fullName"`
	Label     string            `json:"label"`
	Parent    string            `json:"parentName"`
	Owner     common.Address    `json:"owner"`
	Texts     map[string]string `json:"texts,omitempty"`
	Addresses map[int]string    `json:"addresses,omitempty"`
}

// CreateSubnameRequest asks the directory to issue a subname.
type CreateSubnameRequest struct {
	Label     string
	Parent    string
	Owner     common.Address
	Texts     map[string]string
	Addresses map[int]string
	// Metadata is stored by the directory but not published as a record.
	Metadata  map[string]string
}

// SubnamePage is one page of a subname listing.
type SubnamePage struct {
	Items []SubnameRecord `json:"items"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Total int             `json:"total"`
}

// HasMore reports whether later pages exist.
func (p SubnamePage) HasMore() bool {
	return p.Page*p.Size < p.Total
}
