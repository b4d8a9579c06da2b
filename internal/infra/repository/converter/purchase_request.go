package converter

import (
	"purchase-approval/internal/domain/purchase"
	sqlc "purchase-approval/internal/infra/sqlc/generated"
	"purchase-approval/internal/pkg/errs"
	"purchase-approval/internal/pkg/pgconv"
)

func PurchaseRequestToCreateParams(p *purchase.PurchaseRequest) sqlc.CreatePurchaseRequestParams {
	return sqlc.CreatePurchaseRequestParams{
		ID:              p.ID(),
		Requester:       p.Requester(),
		RequesterEmail:  p.RequesterEmail(),
		ItemName:        p.ItemName(),
		Quantity:        p.Quantity(),
		UnitPrice:       pgconv.DecimalToNumeric(p.UnitPrice()),
		DeliveryCharges: pgconv.DecimalToNumeric(p.DeliveryCharges()),
		TaxAmount:       pgconv.DecimalToNumeric(p.TaxAmount()),
		TotalPrice:      pgconv.DecimalToNumeric(p.TotalPrice()),
		ApproverEmail:   p.ApproverEmail(),
		Status:          p.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PurchaseRequestFromRow(row sqlc.PurchaseRequest) (*purchase.PurchaseRequest, error) {
	unitPrice, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, errs.Wrap(err, "unit_price")
	}
	delivery, err := pgconv.DecimalFromNumeric(row.DeliveryCharges)
	if err != nil {
		return nil, errs.Wrap(err, "delivery_charges")
	}
	tax, err := pgconv.DecimalFromNumeric(row.TaxAmount)
	if err != nil {
		return nil, errs.Wrap(err, "tax_amount")
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, errs.Wrap(err, "total_price")
	}
	status, err := purchase.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "status")
	}

	return purchase.ReconstructPurchaseRequest(
		row.ID,
		row.Requester, row.RequesterEmail, row.ItemName,
		row.Quantity,
		unitPrice, delivery, tax, total,
		row.ApproverEmail,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
