package mint

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ControllerABI is the mint controller's payable mint entry point.
const ControllerABI = `[{"inputs":[{"components":[` +
	`{"internalType":"string","name":"label","type":"string"},` +
	`{"internalType":"bytes32","name":"parentNode","type":"bytes32"},` +
	`{"internalType":"address","name":"resolver","type":"address"},` +
	`{"internalType":"address","name":"owner","type":"address"},` +
	`{"internalType":"uint256","name":"price","type":"uint256"},` +
	`{"internalType":"uint256","name":"fee","type":"uint256"},` +
	`{"internalType":"address","name":"paymentReceiver","type":"address"},` +
	`{"internalType":"uint64","name":"expiry","type":"uint64"},` +
	`{"internalType":"uint64","name":"signatureExpiry","type":"uint64"},` +
	`{"internalType":"address","name":"verifiedMinter","type":"address"},` +
	`{"internalType":"uint32","name":"fuses","type":"uint32"}],` +
	`"internalType":"struct MintSubnameContext","name":"context","type":"tuple"},` +
	`{"internalType":"bytes","name":"signature","type":"bytes"},` +
	`{"internalType":"bytes[]","name":"extraData","type":"bytes[]"},` +
	`{"internalType":"bytes","name":"source","type":"bytes"}],` +
	`"name":"mint","outputs":[],"stateMutability":"payable","type":"function"}]`

// MintMethod is the name of the controller's mint function.
const MintMethod = "mint"

var controllerABI = mustParseABI(ControllerABI)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(fmt.Sprintf("invalid mint controller ABI: %v", err))
	}
	return parsed
}
