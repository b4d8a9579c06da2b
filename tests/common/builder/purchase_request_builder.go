//go:build unit || e2e

package builder

import (
	"time"

	"purchase-approval/internal/domain/identity"
	"purchase-approval/internal/domain/purchase"
	reqdto "purchase-approval/internal/handler/dto/request"
	sqlc "purchase-approval/internal/infra/sqlc/generated"
	"purchase-approval/internal/pkg/pgconv"
	"purchase-approval/internal/usecase/queries"
	"purchase-approval/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseRequestBuilder struct {
	ID              uuid.UUID
	Requester       string
	RequesterEmail  string
	ItemName        string
	Quantity        int64
	UnitPrice       decimal.Decimal
	DeliveryCharges decimal.Decimal
	TaxAmount       decimal.Decimal
	ApproverEmail   string
	Status          purchase.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewPurchaseRequestBuilder defaults to 2 × 500 + 20 + 30 = 1050.
func NewPurchaseRequestBuilder() *PurchaseRequestBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &PurchaseRequestBuilder{
		ID:              uuid.New(),
		Requester:       DefaultRequesterName,
		RequesterEmail:  DefaultRequesterEmail,
		ItemName:        "Laptop",
		Quantity:        2,
		UnitPrice:       decimal.NewFromInt(500),
		DeliveryCharges: decimal.NewFromInt(20),
		TaxAmount:       decimal.NewFromInt(30),
		ApproverEmail:   DefaultApproverEmail,
		Status:          purchase.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *PurchaseRequestBuilder) With(mutate func(*PurchaseRequestBuilder)) *PurchaseRequestBuilder {
	mutate(b)
	return b
}

func (b *PurchaseRequestBuilder) Total() decimal.Decimal {
	return purchase.TotalPrice(b.Quantity, b.UnitPrice, b.DeliveryCharges, b.TaxAmount)
}

// Build methods
func (b *PurchaseRequestBuilder) BuildDraft() purchase.Draft {
	return purchase.Draft{
		ItemName:        b.ItemName,
		Quantity:        b.Quantity,
		UnitPrice:       b.UnitPrice,
		DeliveryCharges: b.DeliveryCharges,
		TaxAmount:       b.TaxAmount,
		ApproverEmail:   b.ApproverEmail,
	}
}

func (b *PurchaseRequestBuilder) BuildRequester() (identity.Identity, error) {
	return identity.New(b.Requester, []string{b.RequesterEmail})
}

// BuildDomain reconstructs the entity with the builder's id and status.
func (b *PurchaseRequestBuilder) BuildDomain() *purchase.PurchaseRequest {
	return purchase.ReconstructPurchaseRequest(
		b.ID,
		b.Requester, b.RequesterEmail, b.ItemName,
		b.Quantity,
		b.UnitPrice, b.DeliveryCharges, b.TaxAmount, b.Total(),
		b.ApproverEmail,
		b.Status,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *PurchaseRequestBuilder) BuildInfra() sqlc.PurchaseRequest {
	return sqlc.PurchaseRequest{
		ID:              b.ID,
		Requester:       b.Requester,
		RequesterEmail:  b.RequesterEmail,
		ItemName:        b.ItemName,
		Quantity:        b.Quantity,
		UnitPrice:       pgconv.DecimalToNumeric(b.UnitPrice),
		DeliveryCharges: pgconv.DecimalToNumeric(b.DeliveryCharges),
		TaxAmount:       pgconv.DecimalToNumeric(b.TaxAmount),
		TotalPrice:      pgconv.DecimalToNumeric(b.Total()),
		ApproverEmail:   b.ApproverEmail,
		Status:          b.Status.String(),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *PurchaseRequestBuilder) BuildView() *queries.PurchaseRequestView {
	return &queries.PurchaseRequestView{
		ID:              b.ID,
		Requester:       b.Requester,
		RequesterEmail:  b.RequesterEmail,
		ItemName:        b.ItemName,
		Quantity:        b.Quantity,
		UnitPrice:       b.UnitPrice,
		DeliveryCharges: b.DeliveryCharges,
		TaxAmount:       b.TaxAmount,
		TotalPrice:      b.Total(),
		ApproverEmail:   b.ApproverEmail,
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *PurchaseRequestBuilder) BuildSnapshot() shared.PurchaseRequestSnapshot {
	return shared.PurchaseRequestSnapshot{
		ID:            b.ID,
		Requester:     b.Requester,
		ItemName:      b.ItemName,
		ApproverEmail: b.ApproverEmail,
		Status:        b.Status,
	}
}

func (b *PurchaseRequestBuilder) BuildCreateRequestDTO() reqdto.CreatePurchaseRequestRequest {
	quantity := reqdto.Quantity(b.Quantity)
	unitPrice := b.UnitPrice
	delivery := b.DeliveryCharges
	tax := b.TaxAmount
	return reqdto.CreatePurchaseRequestRequest{
		ItemName:        b.ItemName,
		Quantity:        &quantity,
		UnitPrice:       &unitPrice,
		DeliveryCharges: &delivery,
		TaxAmount:       &tax,
		ApproverEmail:   b.ApproverEmail,
	}
}
