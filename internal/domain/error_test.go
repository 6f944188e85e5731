package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := map[ErrorKind]error{
		KindNone:                nil,
		KindInvalidInput:        fmt.Errorf("%w: blank", ErrInvalidInput),
		KindWalletNotReady:      ErrWrongNetwork,
		KindAvailabilityUnknown: fmt.Errorf("%w: rpc", ErrAvailabilityUnknown),
		KindMintUnavailable:     &MintUnavailableError{Reason: "label reserved"},
		KindProviderUnreachable: ErrProviderUnreachable,
		KindSimulationReverted:  fmt.Errorf("%w: execution reverted", ErrSimulationReverted),
		KindSubmissionFailed:    ErrSubmissionFailed,
		KindBusy:                ErrBusy,
		KindStaleRequest:        ErrStaleRequest,
		KindNotFound:            ErrSessionNotFound,
		KindInternal:            errors.New("boom"),
	}
	for want, err := range cases {
		require.Equal(t, want, Classify(err), "error %v", err)
	}
	require.Equal(t, KindMintUnavailable, Classify(ErrNameTaken))
}

func TestUserMessage_SurfacesValidationReasonVerbatim(t *testing.T) {
	err := fmt.Errorf("provider: %w", &MintUnavailableError{Reason: "Label is too short"})
	require.Equal(t, "Label is too short", UserMessage(err))
	require.True(t, errors.Is(err, ErrMintUnavailable))
}

func TestUserMessage_DistinguishesTakenFromUnknown(t *testing.T) {
	require.NotEqual(t, UserMessage(ErrNameTaken), UserMessage(ErrAvailabilityUnknown))
	require.NotEqual(t, UserMessage(ErrWrongNetwork), UserMessage(ErrWalletNotReady))
	require.Empty(t, UserMessage(nil))
}
