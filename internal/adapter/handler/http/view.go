package http

import (
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
)

// NetworkView is the JSON shape of a registry network.
type NetworkView struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	ChainID        uint64          `json:"chainId"`
	Environment    string          `json:"environment"`
	RPC            []entity.RPCURL `json:"rpc"`
	Registry       string          `json:"registry"`
	Resolver       string          `json:"resolver"`
	MintController string          `json:"mintController"`
	ExplorerURL    string          `json:"explorerUrl,omitempty"`
}

// ErrorView is the body of every failed request.
type ErrorView struct {
	Kind    domain.ErrorKind `json:"kind"`
	Message string           `json:"message"`
}

// SearchView wraps a search result with the error shown next to it, if any.
type SearchView struct {
	entity.SearchResult
	Error *ErrorView `json:"error,omitempty"`
}

func toNetworkView(n entity.NetworkContext) NetworkView {
	return NetworkView{
		ID:             n.ID,
		Name:           n.Name,
		ChainID:        n.ChainID,
		Environment:    string(n.Environment),
		RPC:            n.RPC,
		Registry:       n.Contracts.Registry.Hex(),
		Resolver:       n.Contracts.Resolver.Hex(),
		MintController: n.Contracts.MintController.Hex(),
		ExplorerURL:    n.ExplorerURL,
	}
}

func toErrorView(err error) ErrorView {
	return ErrorView{Kind: domain.Classify(err), Message: domain.UserMessage(err)}
}
