package commands

import (
	"context"
	"log/slog"
	"strings"

	"purchase-approval/internal/domain/identity"
	"purchase-approval/internal/domain/purchase"
	"purchase-approval/internal/pkg/clock"
	"purchase-approval/internal/pkg/config"
	"purchase-approval/internal/pkg/errs"
	"purchase-approval/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePurchaseRequestInput struct {
	ItemName        string
	Quantity        int64
	UnitPrice       decimal.Decimal
	DeliveryCharges decimal.Decimal
	TaxAmount       decimal.Decimal
	ApproverEmail   string
}

// DecisionTarget names the request to decide. ID wins when set; ItemName is
// resolved to the caller's single pending request with that name.
type DecisionTarget struct {
	ID       uuid.UUID
	ItemName string
}

type PurchaseRequestCommands interface {
	Create(ctx context.Context, caller identity.Identity, in CreatePurchaseRequestInput) (*purchase.PurchaseRequest, error)
	Decide(ctx context.Context, caller identity.Identity, target DecisionTarget, decision purchase.Decision) (*purchase.PurchaseRequest, error)
}

type purchaseRequestCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier Notifier
	app      config.AppConfig
}

func NewPurchaseRequestCommands(uow shared.UnitOfWork, clk clock.Clock, notifier Notifier, cfg config.Config) PurchaseRequestCommands {
	return &purchaseRequestCommandsImpl{
		uow:      uow,
		clock:    clk,
		notifier: notifier,
		app:      cfg.App,
	}
}

func (uc *purchaseRequestCommandsImpl) Create(ctx context.Context, caller identity.Identity, in CreatePurchaseRequestInput) (*purchase.PurchaseRequest, error) {
	pr, err := purchase.NewPurchaseRequest(caller, purchase.Draft{
		ItemName:        in.ItemName,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		DeliveryCharges: in.DeliveryCharges,
		TaxAmount:       in.TaxAmount,
		ApproverEmail:   in.ApproverEmail,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var created *purchase.PurchaseRequest
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.PurchaseRequests().Create(ctx, tx.DB(), pr)
		if derr != nil {
			return derr
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, storeErr(err, "create purchase request")
	}

	slog.Info("purchase request created",
		"id", created.ID().String(),
		"approver", created.ApproverEmail(),
		"total", created.TotalPrice().String())

	for _, m := range createdEmails(created, uc.app.FrontendURL) {
		uc.notifier.Notify(m)
	}
	return created, nil
}

func (uc *purchaseRequestCommandsImpl) Decide(ctx context.Context, caller identity.Identity, target DecisionTarget, decision purchase.Decision) (*purchase.PurchaseRequest, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}
	if target.ID == uuid.Nil && strings.TrimSpace(target.ItemName) == "" {
		return nil, purchase.ErrMissingDecisionTarget
	}

	now := uc.clock.Now()
	var decided *purchase.PurchaseRequest
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id := target.ID
		if id == uuid.Nil {
			resolved, derr := resolveByItemName(ctx, tx.Reads(), caller, target.ItemName)
			if derr != nil {
				return derr
			}
			id = resolved
		}

		pr, derr := tx.PurchaseRequests().DecidePending(ctx, tx.DB(), id, caller.PrimaryEmail(), decision.TargetStatus(), now)
		if derr == nil {
			decided = pr
			return nil
		}
		if !errs.Is(derr, errs.ErrNotFound) {
			return derr
		}
		return explainMiss(ctx, tx.Reads(), caller, id)
	})
	if err != nil {
		return nil, storeErr(err, "decide purchase request")
	}

	slog.Info("purchase request decided",
		"id", decided.ID().String(),
		"decision", decision.String(),
		"approver", caller.PrimaryEmail())

	for _, m := range decisionEmails(decided, decision) {
		uc.notifier.Notify(m)
	}
	return decided, nil
}

func resolveByItemName(ctx context.Context, reads shared.CommandReads, caller identity.Identity, itemName string) (uuid.UUID, error) {
	pending, err := reads.PendingByItemName(ctx, strings.TrimSpace(itemName))
	if err != nil {
		return uuid.Nil, err
	}

	var mine []uuid.UUID
	for _, s := range pending {
		if s.ApproverEmail == caller.PrimaryEmail() {
			mine = append(mine, s.ID)
		}
	}

	switch {
	case len(mine) == 1:
		return mine[0], nil
	case len(mine) > 1:
		return uuid.Nil, purchase.ErrAmbiguousItemName
	case len(pending) > 0:
		return uuid.Nil, purchase.ErrNotApprover
	default:
		return uuid.Nil, purchase.ErrAlreadyDecided
	}
}

// explainMiss tells a foreign approver apart from a missing or decided request
// after the conditional update matched nothing.
func explainMiss(ctx context.Context, reads shared.CommandReads, caller identity.Identity, id uuid.UUID) error {
	snap, err := reads.PurchaseRequestByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return purchase.ErrAlreadyDecided
		}
		return err
	}
	if err := purchase.CheckDecidable(snap.Status, snap.ApproverEmail, caller); err != nil {
		return err
	}
	// decided by a concurrent transaction between the update and this read
	return purchase.ErrAlreadyDecided
}

// storeErr keeps taxonomy marks and classifies anything unmarked as a store failure.
func storeErr(err error, msg string) error {
	for _, known := range []error{errs.ErrValidation, errs.ErrForbidden, errs.ErrNotFound, errs.ErrUnauthenticated, errs.ErrStoreFailure} {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(errs.Wrap(err, msg), errs.ErrStoreFailure)
}
