//go:build unit

package repository

import (
	"context"
	"testing"

	sqlc "purchase-approval/internal/infra/sqlc/generated"
	"purchase-approval/internal/pkg/errs"
	"purchase-approval/internal/usecase/shared"
	repositorymock "purchase-approval/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository(t *testing.T) {
	job := shared.NotificationJob{
		Kind:      "email",
		Topic:     "purchase_request.created",
		Recipient: "bob@example.com",
		Subject:   "Approval Needed",
	}

	t.Run("create job is queued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		jobID := uuid.New()
		mockQueries.EXPECT().CreateNotificationJob(gomock.Any(), gomock.Any(), sqlc.CreateNotificationJobParams{
			Kind:      job.Kind,
			Topic:     job.Topic,
			Recipient: job.Recipient,
			Subject:   job.Subject,
			Status:    shared.NotificationStatusQueued,
		}).Return(jobID, nil)

		got, err := NewNotificationRepository(mockQueries, nil).CreateJob(context.Background(), nil, job)

		require.NoError(t, err)
		assert.Equal(t, jobID, got)
	})

	t.Run("create job failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockQueries.EXPECT().CreateNotificationJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, assert.AnError)

		got, err := NewNotificationRepository(mockQueries, nil).CreateJob(context.Background(), nil, job)

		require.Error(t, err)
		assert.Equal(t, uuid.Nil, got)
		assert.True(t, errs.Is(err, errs.ErrStoreFailure))
	})

	t.Run("failed status keeps the last error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		jobID := uuid.New()
		lastErr := "smtp: connection refused"
		mockQueries.EXPECT().UpdateNotificationJobStatus(gomock.Any(), gomock.Any(), sqlc.UpdateNotificationJobStatusParams{
			ID:        jobID,
			Status:    shared.NotificationStatusFailed,
			LastError: pgtype.Text{String: lastErr, Valid: true},
		}).Return(nil)

		err := NewNotificationRepository(mockQueries, nil).UpdateJobStatus(context.Background(), nil, jobID, shared.NotificationStatusFailed, &lastErr)
		require.NoError(t, err)
	})

	t.Run("sent status clears the last error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		jobID := uuid.New()
		mockQueries.EXPECT().UpdateNotificationJobStatus(gomock.Any(), gomock.Any(), sqlc.UpdateNotificationJobStatusParams{
			ID:     jobID,
			Status: shared.NotificationStatusSent,
		}).Return(nil)

		err := NewNotificationRepository(mockQueries, nil).UpdateJobStatus(context.Background(), nil, jobID, shared.NotificationStatusSent, nil)
		require.NoError(t, err)
	})
}
