package shared

import (
	"context"
	"time"

	"purchase-approval/internal/domain/purchase"
	sqlc "purchase-approval/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	PurchaseRequests() PurchaseRequestRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	PurchaseRequestByID(ctx context.Context, id uuid.UUID) (*PurchaseRequestSnapshot, error)
	PendingByItemName(ctx context.Context, itemName string) ([]PurchaseRequestSnapshot, error)
}

type PurchaseRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, pr *purchase.PurchaseRequest) (*purchase.PurchaseRequest, error)
	// DecidePending applies the decision only while the request is Pending and
	// assigned to approverEmail. A miss is reported as errs.ErrNotFound.
	DecidePending(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, approverEmail string, status purchase.Status, now time.Time) (*purchase.PurchaseRequest, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, job NotificationJob) (uuid.UUID, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error
}
