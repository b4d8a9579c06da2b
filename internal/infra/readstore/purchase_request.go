package readstore

import (
	"context"

	"purchase-approval/internal/infra"
	sqlc "purchase-approval/internal/infra/sqlc/generated"
	"purchase-approval/internal/pkg/errs"
	"purchase-approval/internal/pkg/pgconv"
	"purchase-approval/internal/usecase/queries"

	"github.com/google/uuid"
)

type PurchaseRequestReadQueries interface {
	GetPurchaseRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PurchaseRequest, error)
	ListPurchaseRequestsByRequester(ctx context.Context, db sqlc.DBTX, requester string) ([]sqlc.PurchaseRequest, error)
	ListPendingPurchaseRequestsByApprover(ctx context.Context, db sqlc.DBTX, approverEmail string) ([]sqlc.PurchaseRequest, error)
	ListPendingPurchaseRequestsByItemName(ctx context.Context, db sqlc.DBTX, itemName string) ([]sqlc.PurchaseRequest, error)
}

type PurchaseRequestReadStore struct {
	queries PurchaseRequestReadQueries
	db      sqlc.DBTX
}

func NewPurchaseRequestReadStore(queries PurchaseRequestReadQueries, db sqlc.DBTX) *PurchaseRequestReadStore {
	return &PurchaseRequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PurchaseRequestView, error) {
	row, err := r.queries.GetPurchaseRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("purchase request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get purchase request by id", err)
	}
	view, err := toPurchaseRequestView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map purchase request", err)
	}
	return view, nil
}

func (r *PurchaseRequestReadStore) ListByRequester(ctx context.Context, requester string) ([]*queries.PurchaseRequestView, error) {
	rows, err := r.queries.ListPurchaseRequestsByRequester(ctx, r.db, requester)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list purchase requests by requester", err)
	}
	return toPurchaseRequestViews(rows)
}

func (r *PurchaseRequestReadStore) ListPendingByApprover(ctx context.Context, approverEmail string) ([]*queries.PurchaseRequestView, error) {
	rows, err := r.queries.ListPendingPurchaseRequestsByApprover(ctx, r.db, approverEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending purchase requests by approver", err)
	}
	return toPurchaseRequestViews(rows)
}

func (r *PurchaseRequestReadStore) ListPendingByItemName(ctx context.Context, itemName string) ([]*queries.PurchaseRequestView, error) {
	rows, err := r.queries.ListPendingPurchaseRequestsByItemName(ctx, r.db, itemName)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending purchase requests by item name", err)
	}
	return toPurchaseRequestViews(rows)
}

func toPurchaseRequestViews(rows []sqlc.PurchaseRequest) ([]*queries.PurchaseRequestView, error) {
	views := make([]*queries.PurchaseRequestView, 0, len(rows))
	for _, row := range rows {
		v, err := toPurchaseRequestView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to map purchase request", err)
		}
		views = append(views, v)
	}
	return views, nil
}

func toPurchaseRequestView(row sqlc.PurchaseRequest) (*queries.PurchaseRequestView, error) {
	unitPrice, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, errs.Wrap(err, "unit_price")
	}
	delivery, err := pgconv.DecimalFromNumeric(row.DeliveryCharges)
	if err != nil {
		return nil, errs.Wrap(err, "delivery_charges")
	}
	tax, err := pgconv.DecimalFromNumeric(row.TaxAmount)
	if err != nil {
		return nil, errs.Wrap(err, "tax_amount")
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, errs.Wrap(err, "total_price")
	}

	return &queries.PurchaseRequestView{
		ID:              row.ID,
		Requester:       row.Requester,
		RequesterEmail:  row.RequesterEmail,
		ItemName:        row.ItemName,
		Quantity:        row.Quantity,
		UnitPrice:       unitPrice,
		DeliveryCharges: delivery,
		TaxAmount:       tax,
		TotalPrice:      total,
		ApproverEmail:   row.ApproverEmail,
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
