package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput means the label was empty after trimming or otherwise malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrWalletNotReady means no wallet is connected or it cannot sign for the active network.
	ErrWalletNotReady = errors.New("wallet not ready")

	// ErrWrongNetwork means the wallet is connected to a different network than the one required.
	ErrWrongNetwork = fmt.Errorf("%w: wrong network selected", ErrWalletNotReady)

	// ErrAvailabilityUnknown means the availability check itself failed.
	ErrAvailabilityUnknown = errors.New("availability unknown")

	// ErrMintUnavailable means the authority or the contract refuses to mint the name.
	ErrMintUnavailable = errors.New("mint unavailable")

	// ErrNameTaken means the name is already claimed.
	ErrNameTaken = fmt.Errorf("%w: name is already taken", ErrMintUnavailable)

	// ErrProviderUnreachable means the minting authority could not be reached.
	ErrProviderUnreachable = errors.New("minting authority unreachable")

	// ErrSimulationReverted means the dry-run of the mint call failed.
	ErrSimulationReverted = errors.New("mint simulation reverted")

	// ErrSubmissionFailed means signing or broadcasting the mint transaction failed.
	ErrSubmissionFailed = errors.New("mint submission failed")

	// ErrBusy means a mint attempt is already in flight for the session.
	ErrBusy = errors.New("a mint attempt is already in progress")

	// ErrStaleRequest means a newer request superseded this one before it completed.
	ErrStaleRequest = errors.New("request superseded by a newer one")

	// ErrNetworkNotFound means the requested network is not in the chain registry.
	ErrNetworkNotFound = errors.New("network not found")

	// ErrSessionNotFound means the session expired or never existed.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoRPCsAvailable means none of the network's RPC endpoints answered the health check.
	ErrNoRPCsAvailable = errors.New("no RPCs available for the network")
)

// MintUnavailableError carries the authority's reason for refusing a mint.
type MintUnavailableError struct {
	Reason string
}

func (e *MintUnavailableError) Error() string {
	if e.Reason == "" {
		return ErrMintUnavailable.Error()
	}
	return ErrMintUnavailable.Error() + ": " + e.Reason
}

func (e *MintUnavailableError) Unwrap() error {
	return ErrMintUnavailable
}

// ErrorKind is the user-facing classification of a failed action.
type ErrorKind string

const (
	KindNone                ErrorKind = ""
	KindInvalidInput        ErrorKind = "invalid_input"
	KindWalletNotReady      ErrorKind = "wallet_not_ready"
	KindAvailabilityUnknown ErrorKind = "availability_unknown"
	KindMintUnavailable     ErrorKind = "mint_unavailable"
	KindProviderUnreachable ErrorKind = "provider_unreachable"
	KindSimulationReverted  ErrorKind = "simulation_reverted"
	KindSubmissionFailed    ErrorKind = "submission_failed"
	KindBusy                ErrorKind = "busy"
	KindStaleRequest        ErrorKind = "stale_request"
	KindNotFound            ErrorKind = "not_found"
	KindInternal            ErrorKind = "internal"
)

// Classify maps an error onto its ErrorKind. Order matters: the more specific sentinels come first.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrWalletNotReady):
		return KindWalletNotReady
	case errors.Is(err, ErrAvailabilityUnknown):
		return KindAvailabilityUnknown
	case errors.Is(err, ErrMintUnavailable):
		return KindMintUnavailable
	case errors.Is(err, ErrProviderUnreachable):
		return KindProviderUnreachable
	case errors.Is(err, ErrSimulationReverted):
		return KindSimulationReverted
	case errors.Is(err, ErrSubmissionFailed):
		return KindSubmissionFailed
	case errors.Is(err, ErrBusy):
		return KindBusy
	case errors.Is(err, ErrStaleRequest):
		return KindStaleRequest
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrNetworkNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}

// UserMessage renders an error as the message shown in the status banner.
func UserMessage(err error) string {
	var unavailable *MintUnavailableError
	if errors.As(err, &unavailable) && unavailable.Reason != "" {
		return unavailable.Reason
	}

	switch Classify(err) {
	case KindNone:
		return ""
	case KindInvalidInput:
		return "Please enter a name."
	case KindWalletNotReady:
		if errors.Is(err, ErrWrongNetwork) {
			return "Please switch your wallet to the required network."
		}
		return "Please connect your wallet."
	case KindAvailabilityUnknown:
		return "Could not check availability. Please try again."
	case KindMintUnavailable:
		if errors.Is(err, ErrNameTaken) {
			return "This name is already taken."
		}
		return "This name cannot be minted."
	case KindProviderUnreachable:
		return "The minting service is unreachable. Please try again."
	case KindSimulationReverted:
		return "The mint would fail on-chain. Please search again and retry."
	case KindSubmissionFailed:
		return "The transaction was not sent."
	case KindBusy:
		return "A mint is already in progress."
	case KindStaleRequest:
		return "This request was replaced by a newer one."
	case KindNotFound:
		return "Not found."
	default:
		return "Something went wrong."
	}
}
