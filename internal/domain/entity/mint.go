package entity

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"subname-minter/internal/domain"
)

// MintRequest is everything a backend needs to mint one candidate.
type MintRequest struct {
	Candidate   NameCandidate
	Minter      common.Address
	Owner       common.Address
	ExpiryYears int
	Network     NetworkContext
}

// MintParameters is the signed, time-boxed bundle issued by the minting authority.
// Fee and Price are integer minor units (wei).
type MintParameters struct {
	Label           string
	ParentNode      common.Hash
	Resolver        common.Address
	Owner           common.Address
	Price           *big.Int
	Fee             *big.Int
	PaymentReceiver common.Address
	Expiry          uint64
	SignatureExpiry uint64
	VerifiedMinter  common.Address
	Fuses           uint32
}

// Expired reports whether the signature deadline has passed at now.
func (p MintParameters) Expired(now time.Time) bool {
	return uint64(now.Unix()) >= p.SignatureExpiry
}

// PriceEstimate is a display-only rendering of the price fields in ETH.
type PriceEstimate struct {
	Price string `json:"price"`
	Fee   string `json:"fee"`
	Total string `json:"total"`
}

// MintQuote pairs the parameter bundle with the authority's signature.
type MintQuote struct {
	Params    MintParameters
	Signature []byte
	// Estimate is only filled by providers that precompute display pricing.
	Estimate *PriceEstimate
}

// MintTransaction is a fully assembled mint call.
type MintTransaction struct {
	To       common.Address
	Selector [4]byte
	// Args are in contract order: params tuple, signature, extension data, source tag.
	Args  []any
	Value *big.Int
	Data  []byte
}

// MintStatus is the single authoritative status of a mint attempt.
type MintStatus string

const (
	StatusIdle             MintStatus = "idle"
	StatusSimulating       MintStatus = "simulating"
	StatusSimulationFailed MintStatus = "simulation_failed"
	StatusSimulated        MintStatus = "simulated"
	StatusSubmitting       MintStatus = "submitting"
	StatusSubmitted        MintStatus = "submitted"
	StatusSubmissionFailed MintStatus = "submission_failed"
)

// Terminal reports whether the status ends an attempt.
func (s MintStatus) Terminal() bool {
	switch s {
	case StatusSimulationFailed, StatusSubmitted, StatusSubmissionFailed:
		return true
	default:
		return false
	}
}

// MintOutcome is what a mint attempt leaves behind for display.
type MintOutcome struct {
	Name        string           `json:"name"`
	Backend     string           `json:"backend"`
	Status      MintStatus       `json:"status"`
	TxHash      string           `json:"txHash,omitempty"`
	ExplorerURL string           `json:"explorerUrl,omitempty"`
	Estimate    *PriceEstimate   `json:"estimate,omitempty"`
	Kind        domain.ErrorKind `json:"kind,omitempty"`
	Message     string           `json:"message,omitempty"`
}

// Succeeded reports whether the attempt ended in a broadcast transaction or an issued subname.
func (o MintOutcome) Succeeded() bool {
	return o.Status == StatusSubmitted && o.Kind == domain.KindNone
}

// WalletState is the connected wallet as seen by a session.
type WalletState struct {
	Address common.Address `json:"address"`
	ChainID uint64         `json:"chainId"`
}

// Connected reports whether a wallet address is present.
func (w WalletState) Connected() bool {
	return w.Address != (common.Address{})
}

// Session is one UI session: one wallet, at most one mint in flight.
type Session struct {
	ID          string        `json:"id"`
	Wallet      WalletState   `json:"wallet"`
	Busy        bool          `json:"busy"`
	Generation  uint64        `json:"generation"`
	Status      MintStatus    `json:"status"`
	LastSearch  *SearchResult `json:"lastSearch,omitempty"`
	LastOutcome *MintOutcome  `json:"lastOutcome,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// weiDecimals is the number of decimals between wei and ETH.
const weiDecimals = 18

// NewPriceEstimate renders price, fee and their sum in ETH for display.
func NewPriceEstimate(price, fee *big.Int) *PriceEstimate {
	p := decimal.NewFromBigInt(orZero(price), -weiDecimals)
	f := decimal.NewFromBigInt(orZero(fee), -weiDecimals)
	return &PriceEstimate{
		Price: p.String(),
		Fee:   f.String(),
		Total: p.Add(f).String(),
	}
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
