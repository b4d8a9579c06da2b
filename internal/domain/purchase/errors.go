package purchase

import "purchase-approval/internal/pkg/errs"

// Every input error is also marked errs.ErrValidation.
var (
	ErrInvalidApproverEmail  = validation("Invalid approver email format.")
	ErrEmptyItemName         = validation("Item name is required.")
	ErrItemNameTooLong       = validation("Item name is too long.")
	ErrInvalidQuantity       = validation("Quantity must be greater than zero.")
	ErrInvalidUnitPrice      = validation("Unit price must be greater than zero.")
	ErrNegativeDelivery      = validation("Delivery charges cannot be negative.")
	ErrNegativeTax           = validation("Tax amount cannot be negative.")
	ErrInvalidDecision       = validation("Decision must be approve or reject.")
	ErrInvalidStatus         = validation("Unknown purchase request status.")
	ErrAmbiguousItemName     = validation("Multiple pending requests share this item name; decide by id.")
	ErrMissingDecisionTarget = validation("Request id or item name is required.")
	ErrInvalidRequestID      = validation("Invalid request id.")

	ErrAlreadyDecided = errs.Mark(errs.New("Request not found or already decided."), errs.ErrNotFound)
	ErrNotApprover    = errs.Mark(errs.New("You are not the approver for this request."), errs.ErrForbidden)
)

func validation(msg string) error {
	return errs.Mark(errs.New(msg), errs.ErrValidation)
}
