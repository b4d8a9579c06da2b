package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	sqlc "purchase-approval/internal/infra/sqlc/generated"
	"purchase-approval/internal/pkg/config"
	"purchase-approval/internal/usecase/commands"
	"purchase-approval/internal/usecase/shared"

	"github.com/google/uuid"
)

const jobKindEmail = "email"

// Dispatcher is a fire-and-forget Notifier backed by a bounded queue and a
// fixed set of workers. Each delivery is recorded in the notification log.
type Dispatcher struct {
	sender  Sender
	uow     shared.UnitOfWork
	jobs    shared.NotificationRepository
	logger  *slog.Logger
	workers int
	timeout time.Duration

	mu     sync.RWMutex
	queue  chan commands.Email
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(cfg config.Config, sender Sender, uow shared.UnitOfWork, jobs shared.NotificationRepository, logger *slog.Logger) *Dispatcher {
	workers := cfg.Notify.Workers
	if workers < 1 {
		workers = 1
	}
	size := cfg.Notify.QueueSize
	if size < 1 {
		size = 1
	}
	timeout := cfg.Notify.SendTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		sender:  sender,
		uow:     uow,
		jobs:    jobs,
		logger:  logger,
		workers: workers,
		timeout: timeout,
		queue:   make(chan commands.Email, size),
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.run()
	}
	d.logger.Info("notification dispatcher started", "workers", d.workers, "queue_size", cap(d.queue))
}

// Stop stops accepting messages and waits for queued ones until ctx expires.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		d.logger.Warn("notification dispatcher stopped with pending messages", "pending", len(d.queue))
		return ctx.Err()
	}
}

// Notify never blocks: a full or stopped queue drops the message with a warning.
func (d *Dispatcher) Notify(msg commands.Email) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("notification dropped: dispatcher stopped", "topic", msg.Topic, "to", msg.To)
		return
	}

	select {
	case d.queue <- msg:
	default:
		d.logger.Warn("notification dropped: queue full", "topic", msg.Topic, "to", msg.To)
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg commands.Email) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	jobID := d.recordQueued(ctx, msg)

	sendErr := d.sender.Send(ctx, msg)
	if sendErr != nil {
		d.logger.Error("notification delivery failed",
			"topic", msg.Topic,
			"to", msg.To,
			"error", sendErr.Error())
	}

	d.recordOutcome(ctx, jobID, sendErr)
}

func (d *Dispatcher) recordQueued(ctx context.Context, msg commands.Email) uuid.UUID {
	var jobID uuid.UUID
	err := d.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		id, err := d.jobs.CreateJob(ctx, db, shared.NotificationJob{
			Kind:      jobKindEmail,
			Topic:     msg.Topic,
			Recipient: msg.To,
			Subject:   msg.Subject,
		})
		jobID = id
		return err
	})
	if err != nil {
		d.logger.Warn("failed to record notification job", "topic", msg.Topic, "error", err.Error())
		return uuid.Nil
	}
	return jobID
}

func (d *Dispatcher) recordOutcome(ctx context.Context, jobID uuid.UUID, sendErr error) {
	if jobID == uuid.Nil {
		return
	}

	status := shared.NotificationStatusSent
	var lastError *string
	if sendErr != nil {
		status = shared.NotificationStatusFailed
		msg := sendErr.Error()
		lastError = &msg
	}

	err := d.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		return d.jobs.UpdateJobStatus(ctx, db, jobID, status, lastError)
	})
	if err != nil {
		d.logger.Warn("failed to update notification job", "job_id", jobID.String(), "error", err.Error())
	}
}
