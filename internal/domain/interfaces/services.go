package interfaces

import (
	"context"

	domaintypes "shopadmin/internal/domain/types"
)

// Backend is how we talk to the marketplace server, all with context.
type Backend interface {
	SignIn(ctx context.Context, creds domaintypes.Credentials) (token string, err error)
	ListUnverified(ctx context.Context) ([]domaintypes.Shopkeeper, error)
	Accept(
		ctx context.Context,
		token string,
		ids []domaintypes.ShopkeeperID,
	) (domaintypes.MutationResult, error)
	Delete(
		ctx context.Context,
		token string,
		ids []domaintypes.ShopkeeperID,
	) (domaintypes.MutationResult, error)
}

// Confirmer asks the operator to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

// Confirm calls f(prompt).
func (f ConfirmFunc) Confirm(prompt string) (bool, error) { return f(prompt) }
