package mint

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// DecodedCall is a mint call unpacked from calldata.
type DecodedCall struct {
	Context   Context
	Signature []byte
	ExtraData [][]byte
	Source    []byte
}

// DecodeCall unpacks mint calldata produced by Assemble.
func DecodeCall(data []byte) (*DecodedCall, error) {
	if len(data) < 4 {
		return nil, errors.New("calldata shorter than a selector")
	}
	method := controllerABI.Methods[MintMethod]
	if !bytes.Equal(data[:4], method.ID) {
		return nil, fmt.Errorf("selector %x is not %s", data[:4], method.Sig)
	}

	values, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to unpack mint call: %w", err)
	}
	if len(values) != 4 {
		return nil, fmt.Errorf("expected 4 mint arguments, got %d", len(values))
	}

	return &DecodedCall{
		Context:   *abi.ConvertType(values[0], new(Context)).(*Context),
		Signature: values[1].([]byte),
		ExtraData: values[2].([][]byte),
		Source:    values[3].([]byte),
	}, nil
}
