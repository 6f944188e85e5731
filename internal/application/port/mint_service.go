package port

import (
	"context"

	"subname-minter/internal/domain/entity"
)

// ConnectRequest describes the wallet a session starts with. An empty address falls back
// to the service's own signer, if any; a zero chain id means the active network.
type ConnectRequest struct {
	Address string `json:"address"`
	ChainID uint64 `json:"chainId"`
}

// MintCommand asks to mint one label. Owner defaults to the session wallet.
type MintCommand struct {
	Label string `json:"label"`
	Owner string `json:"owner"`
}

// MintService is the mint flow: sessions, search with suggestions, minting and directory lookups.
type MintService interface {
	NetworkService

	// OpenSession starts a session for a wallet.
	OpenSession(ctx context.Context, req ConnectRequest) (entity.Session, error)

	// Session returns the current state of a session.
	Session(ctx context.Context, id string) (entity.Session, error)

	// Search checks a label and builds its suggestion list.
	Search(ctx context.Context, sessionID, label string) (entity.SearchResult, error)

	// Mint runs one mint attempt. The returned outcome is filled on failure too.
	Mint(ctx context.Context, sessionID string, cmd MintCommand) (entity.MintOutcome, error)

	// SubnamesByOwner lists directory subnames owned by owner.
	SubnamesByOwner(ctx context.Context, owner string, page int) (entity.SubnamePage, error)

	// TextRecord reads one directory text record.
	TextRecord(ctx context.Context, fullName, key string) (string, error)
}
