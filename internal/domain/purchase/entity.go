package purchase

import (
	"time"

	"purchase-approval/internal/domain/identity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Draft is the caller supplied part of a new purchase request.
type Draft struct {
	ItemName        string
	Quantity        int64
	UnitPrice       decimal.Decimal
	DeliveryCharges decimal.Decimal
	TaxAmount       decimal.Decimal
	ApproverEmail   string
}

type PurchaseRequest struct {
	id              uuid.UUID
	requester       string
	requesterEmail  string
	itemName        ItemName
	quantity        int64
	unitPrice       decimal.Decimal
	deliveryCharges decimal.Decimal
	taxAmount       decimal.Decimal
	totalPrice      decimal.Decimal
	approverEmail   ApproverEmail
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// Validate checks a draft in a fixed order and returns the first failure.
func (d Draft) Validate() error {
	if _, err := NewApproverEmail(d.ApproverEmail); err != nil {
		return err
	}
	if _, err := NewItemName(d.ItemName); err != nil {
		return err
	}
	if d.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !d.UnitPrice.IsPositive() {
		return ErrInvalidUnitPrice
	}
	if d.DeliveryCharges.IsNegative() {
		return ErrNegativeDelivery
	}
	if d.TaxAmount.IsNegative() {
		return ErrNegativeTax
	}
	return nil
}

func NewPurchaseRequest(requester identity.Identity, d Draft, now time.Time) (*PurchaseRequest, error) {
	if err := requester.Validate(); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	approver, _ := NewApproverEmail(d.ApproverEmail)
	item, _ := NewItemName(d.ItemName)

	return &PurchaseRequest{
		id:              uuid.New(),
		requester:       requester.DisplayName(),
		requesterEmail:  requester.PrimaryEmail(),
		itemName:        item,
		quantity:        d.Quantity,
		unitPrice:       d.UnitPrice,
		deliveryCharges: d.DeliveryCharges,
		taxAmount:       d.TaxAmount,
		totalPrice:      TotalPrice(d.Quantity, d.UnitPrice, d.DeliveryCharges, d.TaxAmount),
		approverEmail:   approver,
		status:          StatusPending,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructPurchaseRequest rebuilds an entity from storage without re-validating it.
func ReconstructPurchaseRequest(
	id uuid.UUID,
	requester, requesterEmail, itemName string,
	quantity int64,
	unitPrice, deliveryCharges, taxAmount, totalPrice decimal.Decimal,
	approverEmail string,
	status Status,
	createdAt, updatedAt time.Time,
) *PurchaseRequest {
	return &PurchaseRequest{
		id:              id,
		requester:       requester,
		requesterEmail:  requesterEmail,
		itemName:        ItemName{value: itemName},
		quantity:        quantity,
		unitPrice:       unitPrice,
		deliveryCharges: deliveryCharges,
		taxAmount:       taxAmount,
		totalPrice:      totalPrice,
		approverEmail:   ApproverEmail{value: approverEmail},
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// TotalPrice is quantity × unitPrice + deliveryCharges + taxAmount.
func TotalPrice(quantity int64, unitPrice, deliveryCharges, taxAmount decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity)).Add(deliveryCharges).Add(taxAmount)
}

// CheckDecidable reports why caller may not decide a request in the given state.
// A decided request reads as not found, even to a caller who is not its approver.
func CheckDecidable(status Status, approverEmail string, caller identity.Identity) error {
	if status.IsTerminal() {
		return ErrAlreadyDecided
	}
	if approverEmail != caller.PrimaryEmail() {
		return ErrNotApprover
	}
	return nil
}

func (p *PurchaseRequest) ID() uuid.UUID                    { return p.id }
func (p *PurchaseRequest) Requester() string                { return p.requester }
func (p *PurchaseRequest) RequesterEmail() string           { return p.requesterEmail }
func (p *PurchaseRequest) ItemName() string                 { return p.itemName.String() }
func (p *PurchaseRequest) Quantity() int64                  { return p.quantity }
func (p *PurchaseRequest) UnitPrice() decimal.Decimal       { return p.unitPrice }
func (p *PurchaseRequest) DeliveryCharges() decimal.Decimal { return p.deliveryCharges }
func (p *PurchaseRequest) TaxAmount() decimal.Decimal       { return p.taxAmount }
func (p *PurchaseRequest) TotalPrice() decimal.Decimal      { return p.totalPrice }
func (p *PurchaseRequest) ApproverEmail() string            { return p.approverEmail.String() }
func (p *PurchaseRequest) Status() Status                   { return p.status }
func (p *PurchaseRequest) CreatedAt() time.Time             { return p.createdAt }
func (p *PurchaseRequest) UpdatedAt() time.Time             { return p.updatedAt }
