//go:build unit

package notify_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"purchase-approval/internal/infra/notify"
	sqlc "purchase-approval/internal/infra/sqlc/generated"
	"purchase-approval/internal/pkg/config"
	"purchase-approval/internal/usecase/commands"
	"purchase-approval/internal/usecase/shared"
	notifymock "purchase-approval/tests/mock/notify"
	sharedmock "purchase-approval/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatcherFixture struct {
	sender *notifymock.MockSender
	uow    *sharedmock.MockUnitOfWork
	jobs   *sharedmock.MockNotificationRepository
	d      *notify.Dispatcher
}

func newDispatcherFixture(t *testing.T, queueSize int) *dispatcherFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	cfg := config.NewTestConfig()
	cfg.Notify.QueueSize = queueSize

	f := &dispatcherFixture{
		sender: notifymock.NewMockSender(ctrl),
		uow:    sharedmock.NewMockUnitOfWork(ctrl),
		jobs:   sharedmock.NewMockNotificationRepository(ctrl),
	}
	f.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.d = notify.NewDispatcher(cfg, f.sender, f.uow, f.jobs, logger)
	return f
}

func stop(t *testing.T, d *notify.Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))
}

var approvedMail = commands.Email{
	Topic:   commands.TopicRequestDecided,
	To:      "alice@example.com",
	Subject: "Request Approved",
	Text:    "Your request for Laptop has been approved.",
}

func TestDispatcher_RecordsDelivery(t *testing.T) {
	t.Run("sent", func(t *testing.T) {
		f := newDispatcherFixture(t, 4)
		jobID := uuid.New()

		f.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), shared.NotificationJob{
			Kind:      "email",
			Topic:     approvedMail.Topic,
			Recipient: approvedMail.To,
			Subject:   approvedMail.Subject,
		}).Return(jobID, nil)
		f.sender.EXPECT().Send(gomock.Any(), approvedMail).Return(nil)
		f.jobs.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), jobID, shared.NotificationStatusSent, (*string)(nil)).Return(nil)

		f.d.Start()
		f.d.Notify(approvedMail)
		stop(t, f.d)
	})

	t.Run("failed delivery keeps the error", func(t *testing.T) {
		f := newDispatcherFixture(t, 4)
		jobID := uuid.New()

		f.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(jobID, nil)
		f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(assert.AnError)
		f.jobs.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), jobID, shared.NotificationStatusFailed, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, _ string, lastError *string) error {
				require.NotNil(t, lastError)
				assert.Equal(t, assert.AnError.Error(), *lastError)
				return nil
			})

		f.d.Start()
		f.d.Notify(approvedMail)
		stop(t, f.d)
	})

	t.Run("log failure does not block delivery", func(t *testing.T) {
		f := newDispatcherFixture(t, 4)

		f.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, assert.AnError)
		f.sender.EXPECT().Send(gomock.Any(), approvedMail).Return(nil)

		f.d.Start()
		f.d.Notify(approvedMail)
		stop(t, f.d)
	})
}

func TestDispatcher_Drops(t *testing.T) {
	t.Run("full queue", func(t *testing.T) {
		f := newDispatcherFixture(t, 1)
		f.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.jobs.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		// workers are not running yet, so only the first message fits
		f.d.Notify(approvedMail)
		f.d.Notify(approvedMail)
		f.d.Notify(approvedMail)

		f.d.Start()
		stop(t, f.d)
	})

	t.Run("after stop", func(t *testing.T) {
		f := newDispatcherFixture(t, 4)
		f.d.Start()
		stop(t, f.d)

		assert.NotPanics(t, func() { f.d.Notify(approvedMail) })
	})
}

func TestDispatcher_StopDeadline(t *testing.T) {
	f := newDispatcherFixture(t, 4)
	release := make(chan struct{})

	f.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	f.jobs.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, commands.Email) error {
		<-release
		return nil
	})

	f.d.Start()
	f.d.Notify(approvedMail)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := f.d.Stop(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	stop(t, f.d)
}
