package request

import (
	"encoding/json"
	"strconv"
	"strings"

	"purchase-approval/internal/domain/purchase"
	"purchase-approval/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequestRequest uses pointers so that a zero amount reaches
// domain validation instead of failing as a missing field.
type CreatePurchaseRequestRequest struct {
	ItemName        string           `json:"itemName" binding:"required"`
	Quantity        *Quantity        `json:"quantity" binding:"required"`
	UnitPrice       *decimal.Decimal `json:"unitPrice" binding:"required"`
	DeliveryCharges *decimal.Decimal `json:"deliveryCharges" binding:"required"`
	TaxAmount       *decimal.Decimal `json:"taxAmount" binding:"required"`
	ApproverEmail   string           `json:"approverEmail" binding:"required"`
}

func (r CreatePurchaseRequestRequest) ToInput() commands.CreatePurchaseRequestInput {
	return commands.CreatePurchaseRequestInput{
		ItemName:        r.ItemName,
		Quantity:        int64(*r.Quantity),
		UnitPrice:       *r.UnitPrice,
		DeliveryCharges: *r.DeliveryCharges,
		TaxAmount:       *r.TaxAmount,
		ApproverEmail:   r.ApproverEmail,
	}
}

// Quantity decodes from a JSON integer or a numeric string such as "2",
// matching how the money fields decode.
type Quantity int64

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	v, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return err
	}
	*q = Quantity(v)
	return nil
}

// DecideRequest names the request by id or, for older clients, by item name.
type DecideRequest struct {
	ID       string `json:"id"`
	ItemName string `json:"itemName"`
}

func (r DecideRequest) ToTarget() (commands.DecisionTarget, error) {
	target := commands.DecisionTarget{ItemName: strings.TrimSpace(r.ItemName)}
	if id := strings.TrimSpace(r.ID); id != "" {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return commands.DecisionTarget{}, purchase.ErrInvalidRequestID
		}
		target.ID = parsed
	}
	return target, nil
}
