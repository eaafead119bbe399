package interfaces

import (
	"context"
	"errors"

	"mpbridge/internal/domain/entities"
)

var (
	// ErrResourceNotFound is returned when Mercado Pago has no resource with the given id.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrInvalidResourceID is returned for ids the provider cannot address.
	ErrInvalidResourceID = errors.New("invalid resource id")
)

// IPaymentGateway abstracts the Mercado Pago API.
//
// Checkout creates preferences, subscriptions create preapprovals, and the
// webhook flow re-fetches payments and preapprovals to learn their current
// status.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, draft entities.PreferenceDraft) (entities.Preference, error)
	CreatePreApproval(ctx context.Context, draft entities.PreApprovalDraft) (entities.PreApproval, error)
	GetPayment(ctx context.Context, id string) (entities.Payment, error)
	GetPreApproval(ctx context.Context, id string) (entities.PreApproval, error)
}
