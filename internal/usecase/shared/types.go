package shared

import (
	"purchase-approval/internal/domain/purchase"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type PurchaseRequestSnapshot struct {
	ID            uuid.UUID
	Requester     string
	ItemName      string
	ApproverEmail string
	Status        purchase.Status
}

const (
	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

type NotificationJob struct {
	Kind      string
	Topic     string
	Recipient string
	Subject   string
}
