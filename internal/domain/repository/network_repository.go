package repository

import "subname-minter/internal/domain/entity"

// NetworkRepository gives read-only access to the static chain registry.
type NetworkRepository interface {
	// Get returns the network with the given identifier.
	Get(id string) (entity.NetworkContext, error)

	// List returns every known network, ordered by identifier.
	List() []entity.NetworkContext
}
