package queries

import (
	"context"
	"time"

	"purchase-approval/internal/domain/identity"
	"purchase-approval/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrPurchaseRequestNotFound = errs.Mark(errs.New("purchase request not found"), errs.ErrNotFound)

type PurchaseRequestView struct {
	ID              uuid.UUID
	Requester       string
	RequesterEmail  string
	ItemName        string
	Quantity        int64
	UnitPrice       decimal.Decimal
	DeliveryCharges decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalPrice      decimal.Decimal
	ApproverEmail   string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PurchaseRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseRequestView, error)
	ListByRequester(ctx context.Context, requester string) ([]*PurchaseRequestView, error)
	ListPendingByApprover(ctx context.Context, approverEmail string) ([]*PurchaseRequestView, error)
	ListPendingByItemName(ctx context.Context, itemName string) ([]*PurchaseRequestView, error)
}

type PurchaseRequestQueries interface {
	// ListMine returns every request the caller created, newest first.
	ListMine(ctx context.Context, caller identity.Identity) ([]*PurchaseRequestView, error)
	// ListPending returns Pending requests assigned to the caller's primary email, oldest first.
	ListPending(ctx context.Context, caller identity.Identity) ([]*PurchaseRequestView, error)
	// Get returns a request visible to its requester or its approver.
	Get(ctx context.Context, caller identity.Identity, id uuid.UUID) (*PurchaseRequestView, error)
}

type purchaseRequestQueriesImpl struct {
	store PurchaseRequestReadStore
}

func NewPurchaseRequestQueries(store PurchaseRequestReadStore) PurchaseRequestQueries {
	return &purchaseRequestQueriesImpl{store: store}
}

func (q *purchaseRequestQueriesImpl) ListMine(ctx context.Context, caller identity.Identity) ([]*PurchaseRequestView, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}
	views, err := q.store.ListByRequester(ctx, caller.DisplayName())
	if err != nil {
		return nil, errs.Wrap(err, "list own purchase requests")
	}
	return nonNil(views), nil
}

func (q *purchaseRequestQueriesImpl) ListPending(ctx context.Context, caller identity.Identity) ([]*PurchaseRequestView, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}
	views, err := q.store.ListPendingByApprover(ctx, caller.PrimaryEmail())
	if err != nil {
		return nil, errs.Wrap(err, "list pending purchase requests")
	}
	return nonNil(views), nil
}

func (q *purchaseRequestQueriesImpl) Get(ctx context.Context, caller identity.Identity, id uuid.UUID) (*PurchaseRequestView, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrPurchaseRequestNotFound
		}
		return nil, errs.Wrap(err, "get purchase request")
	}
	// other callers cannot tell a hidden request from a missing one
	if view.Requester != caller.DisplayName() && view.ApproverEmail != caller.PrimaryEmail() {
		return nil, ErrPurchaseRequestNotFound
	}
	return view, nil
}

func nonNil(views []*PurchaseRequestView) []*PurchaseRequestView {
	if views == nil {
		return []*PurchaseRequestView{}
	}
	return views
}
