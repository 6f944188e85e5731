package mint

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"subname-minter/internal/domain/entity"
)

var controller = common.HexToAddress("0x313442ba3A0b12193787BD162f99Ed3C415F2886")

func bigString(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad literal %s", s)
	return v
}

func testQuote(t *testing.T, fee, price string) *entity.MintQuote {
	t.Helper()
	return &entity.MintQuote{
		Params: entity.MintParameters{
			Label:           "alice",
			ParentNode:      common.HexToHash("0x2b8c5ae2b1a8b5f2a1b8a4ff8d4c7e35a0fa96d1b4a0e1d4f1c7a3b0a6f7c8d9"),
			Resolver:        common.HexToAddress("0x8FADE66B79cC9f707aB26799354482EB93a5B7dD"),
			Owner:           common.HexToAddress("0x1111111111111111111111111111111111111111"),
			Price:           bigString(t, price),
			Fee:             bigString(t, fee),
			PaymentReceiver: common.HexToAddress("0x2222222222222222222222222222222222222222"),
			Expiry:          1767225600,
			SignatureExpiry: 1760000000,
			VerifiedMinter:  common.HexToAddress("0x3333333333333333333333333333333333333333"),
			Fuses:           0,
		},
		Signature: common.FromHex("0xdeadbeef"),
	}
}

func TestValue_SumsBeyondFloatPrecision(t *testing.T) {
	q := testQuote(t, "1000000000000000000", "500000000000000000")

	v, err := Value(q.Params)
	require.NoError(t, err)
	require.Equal(t, "1500000000000000000", v.String())

	q = testQuote(t, "9007199254740993", "1")
	v, err = Value(q.Params)
	require.NoError(t, err)
	require.Equal(t, "9007199254740994", v.String())
}

func TestValue_RejectsMissingOrNegative(t *testing.T) {
	_, err := Value(entity.MintParameters{Fee: big.NewInt(1)})
	require.Error(t, err)

	_, err = Value(entity.MintParameters{Fee: big.NewInt(-1), Price: big.NewInt(1)})
	require.Error(t, err)
}

func TestAssemble_ArgumentOrderAndValue(t *testing.T) {
	q := testQuote(t, "1000000000000000000", "500000000000000000")

	tx, err := Assemble(q, controller, DefaultSourceTag)
	require.NoError(t, err)

	require.Equal(t, controller, tx.To)
	require.Equal(t, "1500000000000000000", tx.Value.String())
	require.Len(t, tx.Args, 4)
	require.Equal(t, q.Signature, tx.Args[1])
	require.Equal(t, [][]byte{}, tx.Args[2])
	require.Equal(t, []byte(DefaultSourceTag), tx.Args[3])

	wantSelector := crypto.Keccak256([]byte(
		"mint((string,bytes32,address,address,uint256,uint256,address,uint64,uint64,address,uint32),bytes,bytes[],bytes)",
	))[:4]
	require.Equal(t, wantSelector, tx.Selector[:])
	require.Equal(t, wantSelector, tx.Data[:4])

	decoded, err := DecodeCall(tx.Data)
	require.NoError(t, err)
	require.Equal(t, "alice", decoded.Context.Label)
	require.Equal(t, q.Params.Owner, decoded.Context.Owner)
	require.Equal(t, q.Params.ParentNode, common.Hash(decoded.Context.ParentNode))
	require.Equal(t, "1000000000000000000", decoded.Context.Fee.String())
	require.Equal(t, "500000000000000000", decoded.Context.Price.String())
	require.Equal(t, q.Params.SignatureExpiry, decoded.Context.SignatureExpiry)
	require.Equal(t, q.Signature, decoded.Signature)
	require.Empty(t, decoded.ExtraData)
	require.Equal(t, []byte(DefaultSourceTag), decoded.Source)
}

func TestAssemble_DoesNotAliasQuote(t *testing.T) {
	q := testQuote(t, "10", "20")

	tx, err := Assemble(q, controller, DefaultSourceTag)
	require.NoError(t, err)

	q.Params.Fee.SetInt64(1000)
	q.Signature[0] = 0x00
	require.Equal(t, "30", tx.Value.String())
	require.Equal(t, "10", tx.Args[0].(Context).Fee.String())
	require.Equal(t, byte(0xde), tx.Args[1].([]byte)[0])
}

func TestAssemble_Rejects(t *testing.T) {
	_, err := Assemble(nil, controller, DefaultSourceTag)
	require.Error(t, err)

	q := testQuote(t, "1", "1")
	q.Signature = nil
	_, err = Assemble(q, controller, DefaultSourceTag)
	require.Error(t, err)

	_, err = Assemble(testQuote(t, "1", "1"), common.Address{}, DefaultSourceTag)
	require.Error(t, err)
}

func TestSourceTagHex_IsDeterministic(t *testing.T) {
	require.Equal(t, "0x6b616c696465636f646572", SourceTagHex("kalidecoder"))
	require.Equal(t, "0x6e616d6573706163652d73646b", SourceTagHex(DefaultSourceTag))
}

func TestDecodeCall_RejectsForeignSelector(t *testing.T) {
	_, err := DecodeCall([]byte{0x01, 0x02})
	require.Error(t, err)

	_, err = DecodeCall([]byte{0xa9, 0x05, 0x9c, 0xbb, 0x00})
	require.Error(t, err)
}
