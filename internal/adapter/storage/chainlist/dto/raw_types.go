package chainlist_dto

// ChainRaw is one entry of the chainlist chains document. Only the fields used for RPC
// discovery are decoded.
type ChainRaw struct {
	Name     string   `json:"name"`
	Chain    string   `json:"chain"`
	RPC      []string `json:"rpc"`
	ChainID  int64    `json:"chainId"`
	RedFlags []string `json:"redFlags,omitempty"`
}
