package repository

import (
	"context"

	"purchase-approval/internal/infra"
	sqlc "purchase-approval/internal/infra/sqlc/generated"
	"purchase-approval/internal/pkg/pgconv"
	"purchase-approval/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) (uuid.UUID, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, job shared.NotificationJob) (uuid.UUID, error) {
	params := sqlc.CreateNotificationJobParams{
		Kind:      job.Kind,
		Topic:     job.Topic,
		Recipient: job.Recipient,
		Subject:   job.Subject,
		Status:    shared.NotificationStatusQueued,
	}

	id, err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification job", err)
	}

	return id, nil
}

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error {
	params := sqlc.UpdateNotificationJobStatusParams{
		ID:        jobID,
		Status:    status,
		LastError: pgconv.StringPtrToPgtype(lastError),
	}

	err := r.queries.UpdateNotificationJobStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}

	return nil
}
