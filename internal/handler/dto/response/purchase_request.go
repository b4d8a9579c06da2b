package response

import (
	"time"

	"purchase-approval/internal/domain/purchase"
	"purchase-approval/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type PurchaseRequestResponse struct {
	ID              uuid.UUID       `json:"id"`
	Requester       string          `json:"requester"`
	RequesterEmail  string          `json:"requesterEmail"`
	ItemName        string          `json:"itemName"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice" swaggertype:"number"`
	DeliveryCharges decimal.Decimal `json:"deliveryCharges" swaggertype:"number"`
	TaxAmount       decimal.Decimal `json:"taxAmount" swaggertype:"number"`
	TotalPrice      decimal.Decimal `json:"totalPrice" swaggertype:"number"`
	ApproverEmail   string          `json:"approverEmail"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type CreatedResponse struct {
	Message    string                   `json:"message"`
	NewRequest *PurchaseRequestResponse `json:"newRequest"`
}

type ApproveResponse struct {
	Message          string                   `json:"message"`
	RequestToApprove *PurchaseRequestResponse `json:"requestToApprove"`
}

type RejectResponse struct {
	Message         string                   `json:"message"`
	RequestToReject *PurchaseRequestResponse `json:"requestToReject"`
}

func FromView(v *queries.PurchaseRequestView) *PurchaseRequestResponse {
	if v == nil {
		return nil
	}
	resp := &PurchaseRequestResponse{}
	// field names match one to one
	_ = copier.Copy(resp, v)
	return resp
}

func FromViews(vs []*queries.PurchaseRequestView) []*PurchaseRequestResponse {
	out := make([]*PurchaseRequestResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromView(v))
	}
	return out
}

func FromEntity(p *purchase.PurchaseRequest) *PurchaseRequestResponse {
	if p == nil {
		return nil
	}
	return &PurchaseRequestResponse{
		ID:              p.ID(),
		Requester:       p.Requester(),
		RequesterEmail:  p.RequesterEmail(),
		ItemName:        p.ItemName(),
		Quantity:        p.Quantity(),
		UnitPrice:       p.UnitPrice(),
		DeliveryCharges: p.DeliveryCharges(),
		TaxAmount:       p.TaxAmount(),
		TotalPrice:      p.TotalPrice(),
		ApproverEmail:   p.ApproverEmail(),
		Status:          p.Status().String(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}
