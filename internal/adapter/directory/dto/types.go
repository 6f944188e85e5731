package directory_dto

// TextRecordRaw is a key/value text record.
type TextRecordRaw struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// AddressRecordRaw is a chain address record keyed by SLIP-44 coin type.
type AddressRecordRaw struct {
	Coin  int    `json:"coin"`
	Value string `json:"value"`
}

// MetadataRaw is a key/value entry stored alongside a subname but not published as a record.
type MetadataRaw struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CreateSubnameRequest is the body of POST /api/v1/subnames.
type CreateSubnameRequest struct {
	Label      string             `json:"label"`
	ParentName string             `json:"parentName"`
	Owner      string             `json:"owner"`
	Texts      []TextRecordRaw    `json:"texts,omitempty"`
	Addresses  []AddressRecordRaw `json:"addresses,omitempty"`
	Metadata   []MetadataRaw      `json:"metadata,omitempty"`
}

// SubnameRaw is a subname as returned by the directory.
type SubnameRaw struct {
	FullName   string             `json:"fullName"`
	Label      string             `json:"label"`
	ParentName string             `json:"parentName"`
	Owner      string             `json:"owner"`
	Texts      []TextRecordRaw    `json:"texts,omitempty"`
	Addresses  []AddressRecordRaw `json:"addresses,omitempty"`
}

// SubnamePageRaw is one page of the owner listing.
type SubnamePageRaw struct {
	Items []SubnameRaw `json:"items"`
	Page  int          `json:"page"`
	Size  int          `json:"size"`
	Total int          `json:"total"`
}
