package domain

import "context"

// AssetID names a fungible asset, e.g. "DAI".
type AssetID string

// AssetGateway moves and queries units of one fungible asset held outside the
// ledger. Implementations are untrusted and may call back into the ledger
// before returning.
type AssetGateway interface {
	// SpendableBalance returns how much the ledger may pull from addr.
	SpendableBalance(ctx context.Context, addr Address) (uint64, error)
	// MoveFunds transfers amount units from one address to another.
	MoveFunds(ctx context.Context, from, to Address, amount uint64) error
}
