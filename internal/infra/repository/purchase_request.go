package repository

import (
	"context"
	"time"

	"purchase-approval/internal/domain/purchase"
	"purchase-approval/internal/infra"
	"purchase-approval/internal/infra/repository/converter"
	sqlc "purchase-approval/internal/infra/sqlc/generated"
	"purchase-approval/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PurchaseRequestWriteQueries interface {
	CreatePurchaseRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePurchaseRequestParams) (sqlc.PurchaseRequest, error)
	DecidePendingPurchaseRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.DecidePendingPurchaseRequestParams) (sqlc.PurchaseRequest, error)
}

type PurchaseRequestRepository struct {
	queries PurchaseRequestWriteQueries
	db      sqlc.DBTX
}

func NewPurchaseRequestRepository(queries PurchaseRequestWriteQueries, db sqlc.DBTX) *PurchaseRequestRepository {
	return &PurchaseRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, pr *purchase.PurchaseRequest) (*purchase.PurchaseRequest, error) {
	row, err := r.queries.CreatePurchaseRequest(ctx, tx, converter.PurchaseRequestToCreateParams(pr))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create purchase request", err)
	}
	created, err := converter.PurchaseRequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map created purchase request", err)
	}
	return created, nil
}

// the WHERE clause on status makes concurrent decisions race safe: only one UPDATE matches
func (r *PurchaseRequestRepository) DecidePending(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, approverEmail string, status purchase.Status, now time.Time) (*purchase.PurchaseRequest, error) {
	params := sqlc.DecidePendingPurchaseRequestParams{
		ID:            id,
		ApproverEmail: approverEmail,
		Status:        status.String(),
		UpdatedAt:     pgconv.TimeToPgtype(now),
	}
	row, err := r.queries.DecidePendingPurchaseRequest(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no pending purchase request matched", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to decide purchase request", err)
	}
	decided, err := converter.PurchaseRequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map decided purchase request", err)
	}
	return decided, nil
}
