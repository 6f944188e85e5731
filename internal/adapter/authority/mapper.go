package authority

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	dto "subname-minter/internal/adapter/authority/dto"
	"subname-minter/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/tidwall/gjson"
)

// validationPaths are tried in order when looking for a human-readable refusal reason.
var validationPaths = []string{
	"validationErrors.0.message",
	"validationErrors.0",
	"errors.0.message",
	"errors.0",
	"message.0",
	"message",
	"error",
}

// FirstValidationMessage returns the first validation message in an error body, or "".
func FirstValidationMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range validationPaths {
		res := gjson.GetBytes(body, path)
		if res.Type == gjson.String && strings.TrimSpace(res.Str) != "" {
			return strings.TrimSpace(res.Str)
		}
	}
	return ""
}

// NewRequest builds the wire request for req.
func NewRequest(req entity.MintRequest) dto.MintParametersRequest {
	out := dto.MintParametersRequest{
		Label:         req.Candidate.Label,
		ParentName:    req.Candidate.Parent,
		MinterAddress: req.Minter.Hex(),
		ExpiryInYears: req.ExpiryYears,
		IsTestnet:     req.Network.IsTestnet(),
	}
	if req.Owner != (common.Address{}) {
		out.Owner = req.Owner.Hex()
	}
	return out
}

// ToQuote converts the authority response into a MintQuote. The resolver comes from the network.
func ToQuote(raw dto.MintParametersResponse, req entity.MintRequest) (*entity.MintQuote, error) {
	c := raw.Content

	fee, err := parseBigInt("fee", c.Fee)
	if err != nil {
		return nil, err
	}
	price, err := parseBigInt("price", c.Price)
	if err != nil {
		return nil, err
	}
	sigExpiry, err := parseUint("signatureExpiry", c.SignatureExpiry, 64)
	if err != nil {
		return nil, err
	}
	expiry, err := parseUint("expiry", c.Expiry, 64)
	if err != nil {
		return nil, err
	}
	fuses, err := parseUint("fuses", c.Fuses, 32)
	if err != nil {
		return nil, err
	}

	parentNode, err := hexutil.Decode(c.ParentNode)
	if err != nil || len(parentNode) != common.HashLength {
		return nil, fmt.Errorf("parentNode %q is not a 32-byte hex value", c.ParentNode)
	}

	owner, err := parseAddress("owner", c.Owner)
	if err != nil {
		return nil, err
	}
	if owner == (common.Address{}) {
		owner = req.Owner
	}
	receiver, err := parseAddress("paymentReceiver", c.PaymentReceiver)
	if err != nil {
		return nil, err
	}
	minter, err := parseAddress("verifiedMinter", c.VerifiedMinter)
	if err != nil {
		return nil, err
	}

	signature, err := hexutil.Decode(raw.Signature)
	if err != nil || len(signature) == 0 {
		return nil, fmt.Errorf("signature %q is not valid hex", raw.Signature)
	}

	label := c.Label
	if label == "" {
		label = req.Candidate.Label
	}

	return &entity.MintQuote{
		Params: entity.MintParameters{
			Label:           label,
			ParentNode:      common.BytesToHash(parentNode),
			Resolver:        req.Network.Contracts.Resolver,
			Owner:           owner,
			Price:           price,
			Fee:             fee,
			PaymentReceiver: receiver,
			Expiry:          expiry,
			SignatureExpiry: sigExpiry,
			VerifiedMinter:  minter,
			Fuses:           uint32(fuses),
		},
		Signature: signature,
	}, nil
}

// parseBigInt parses a decimal integer without going through floating point.
func parseBigInt(field string, n interface{ String() string }) (*big.Int, error) {
	s := n.String()
	if s == "" {
		return nil, fmt.Errorf("%s is missing", field)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%s %q is not a decimal integer", field, s)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%s %q is negative", field, s)
	}
	return v, nil
}

func parseUint(field string, n interface{ String() string }, bits int) (uint64, error) {
	s := n.String()
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, s, err)
	}
	return v, nil
}

func parseAddress(field, s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%s %q is not a valid address", field, s)
	}
	return common.HexToAddress(s), nil
}
