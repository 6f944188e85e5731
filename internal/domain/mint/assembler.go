package mint

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"subname-minter/internal/domain/entity"
)

// DefaultSourceTag is the attribution the minting platform recognises for its SDK clients.
const DefaultSourceTag = "namespace-sdk"

// Context mirrors the controller's MintSubnameContext tuple field for field.
type Context struct {
	Label           string         `abi:"label"`
	ParentNode      [32]byte       `abi:"parentNode"`
	Resolver        common.Address `abi:"resolver"`
	Owner           common.Address `abi:"owner"`
	Price           *big.Int       `abi:"price"`
	Fee             *big.Int       `abi:"fee"`
	PaymentReceiver common.Address `abi:"paymentReceiver"`
	Expiry          uint64         `abi:"expiry"`
	SignatureExpiry uint64         `abi:"signatureExpiry"`
	VerifiedMinter  common.Address `abi:"verifiedMinter"`
	Fuses           uint32         `abi:"fuses"`
}

// SourceTag returns the bytes attached as the mint call's source argument.
func SourceTag(tag string) []byte {
	return []byte(tag)
}

// SourceTagHex returns the 0x-prefixed hex encoding of the source tag.
func SourceTagHex(tag string) string {
	return hexutil.Encode(SourceTag(tag))
}

// Value returns fee + price. Neither input is modified.
func Value(params entity.MintParameters) (*big.Int, error) {
	if params.Fee == nil || params.Price == nil {
		return nil, errors.New("mint parameters are missing fee or price")
	}
	if params.Fee.Sign() < 0 || params.Price.Sign() < 0 {
		return nil, fmt.Errorf("negative fee %s or price %s", params.Fee, params.Price)
	}
	return new(big.Int).Add(params.Fee, params.Price), nil
}

// Assemble builds the mint call for quote against controller. It performs no I/O.
func Assemble(quote *entity.MintQuote, controller common.Address, sourceTag string) (*entity.MintTransaction, error) {
	if quote == nil {
		return nil, errors.New("nil mint quote")
	}
	if len(quote.Signature) == 0 {
		return nil, errors.New("mint quote carries no signature")
	}
	if controller == (common.Address{}) {
		return nil, errors.New("mint controller address is not configured")
	}

	value, err := Value(quote.Params)
	if err != nil {
		return nil, err
	}

	p := quote.Params
	ctx := Context{
		Label:           p.Label,
		ParentNode:      p.ParentNode,
		Resolver:        p.Resolver,
		Owner:           p.Owner,
		Price:           new(big.Int).Set(p.Price),
		Fee:             new(big.Int).Set(p.Fee),
		PaymentReceiver: p.PaymentReceiver,
		Expiry:          p.Expiry,
		SignatureExpiry: p.SignatureExpiry,
		VerifiedMinter:  p.VerifiedMinter,
		Fuses:           p.Fuses,
	}
	args := []any{ctx, common.CopyBytes(quote.Signature), [][]byte{}, SourceTag(sourceTag)}

	method := controllerABI.Methods[MintMethod]
	data, err := controllerABI.Pack(MintMethod, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack mint call: %w", err)
	}

	var selector [4]byte
	copy(selector[:], method.ID)

	return &entity.MintTransaction{
		To:       controller,
		Selector: selector,
		Args:     args,
		Value:    value,
		Data:     data,
	}, nil
}
