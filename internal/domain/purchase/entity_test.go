//go:build unit

package purchase_test

import (
	"strings"
	"testing"
	"time"

	"purchase-approval/internal/domain/identity"
	"purchase-approval/internal/domain/purchase"
	"purchase-approval/internal/pkg/errs"
	"purchase-approval/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PurchaseRequestBuilder)
	errIs  error
}

func TestNewPurchaseRequest(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewPurchaseRequestBuilder()
		requester, err := b.BuildRequester()
		require.NoError(t, err)

		actual, err := purchase.NewPurchaseRequest(requester, b.BuildDraft(), now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, builder.DefaultRequesterName, actual.Requester())
		assert.Equal(t, builder.DefaultRequesterEmail, actual.RequesterEmail())
		assert.Equal(t, "Laptop", actual.ItemName())
		assert.Equal(t, int64(2), actual.Quantity())
		assert.True(t, decimal.NewFromInt(1050).Equal(actual.TotalPrice()), "total = %s", actual.TotalPrice())
		assert.Equal(t, purchase.StatusPending, actual.Status())
		assert.Equal(t, now, actual.CreatedAt())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("approver email is normalized", func(t *testing.T) {
		b := builder.NewPurchaseRequestBuilder().With(func(b *builder.PurchaseRequestBuilder) {
			b.ApproverEmail = "  Bob@Example.COM "
		})
		requester, err := b.BuildRequester()
		require.NoError(t, err)

		actual, err := purchase.NewPurchaseRequest(requester, b.BuildDraft(), now)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", actual.ApproverEmail())
	})

	t.Run("total keeps exact decimal arithmetic", func(t *testing.T) {
		b := builder.NewPurchaseRequestBuilder().With(func(b *builder.PurchaseRequestBuilder) {
			b.Quantity = 3
			b.UnitPrice = decimal.RequireFromString("0.10")
			b.DeliveryCharges = decimal.RequireFromString("0.20")
			b.TaxAmount = decimal.Zero
		})
		requester, err := b.BuildRequester()
		require.NoError(t, err)

		actual, err := purchase.NewPurchaseRequest(requester, b.BuildDraft(), now)
		require.NoError(t, err)
		assert.Equal(t, "0.5", actual.TotalPrice().String())
	})

	t.Run("sub-cent and large amounts are kept as given", func(t *testing.T) {
		cases := []struct {
			unitPrice string
			quantity  int64
			total     string
		}{
			{unitPrice: "0.004", quantity: 1, total: "0.004"},
			{unitPrice: "0.005", quantity: 3, total: "0.015"},
			{unitPrice: "1000000000000.5", quantity: 2, total: "2000000000001"},
		}
		for _, c := range cases {
			b := builder.NewPurchaseRequestBuilder().With(func(b *builder.PurchaseRequestBuilder) {
				b.Quantity = c.quantity
				b.UnitPrice = decimal.RequireFromString(c.unitPrice)
				b.DeliveryCharges = decimal.Zero
				b.TaxAmount = decimal.Zero
			})
			requester, err := b.BuildRequester()
			require.NoError(t, err)

			actual, err := purchase.NewPurchaseRequest(requester, b.BuildDraft(), now)
			require.NoError(t, err, c.unitPrice)
			assert.Equal(t, c.unitPrice, actual.UnitPrice().String())
			assert.Equal(t, c.total, actual.TotalPrice().String())
		}
	})

	t.Run("approver email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "missing at sign", mutate: func(b *builder.PurchaseRequestBuilder) { b.ApproverEmail = "bob.example.com" }, errIs: purchase.ErrInvalidApproverEmail},
			{name: "missing domain dot", mutate: func(b *builder.PurchaseRequestBuilder) { b.ApproverEmail = "bob@example" }, errIs: purchase.ErrInvalidApproverEmail},
			{name: "contains whitespace", mutate: func(b *builder.PurchaseRequestBuilder) { b.ApproverEmail = "bo b@example.com" }, errIs: purchase.ErrInvalidApproverEmail},
			{name: "empty", mutate: func(b *builder.PurchaseRequestBuilder) { b.ApproverEmail = "" }, errIs: purchase.ErrInvalidApproverEmail},
			{name: "plus addressing", mutate: func(b *builder.PurchaseRequestBuilder) { b.ApproverEmail = "bob+buy@example.co.uk" }},
		})
	})

	t.Run("item name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty", mutate: func(b *builder.PurchaseRequestBuilder) { b.ItemName = "" }, errIs: purchase.ErrEmptyItemName},
			{name: "whitespace only", mutate: func(b *builder.PurchaseRequestBuilder) { b.ItemName = "   " }, errIs: purchase.ErrEmptyItemName},
			{name: "maximum length", mutate: func(b *builder.PurchaseRequestBuilder) { b.ItemName = strings.Repeat("a", purchase.MaxItemNameLength) }},
			{name: "too long", mutate: func(b *builder.PurchaseRequestBuilder) {
				b.ItemName = strings.Repeat("a", purchase.MaxItemNameLength+1)
			}, errIs: purchase.ErrItemNameTooLong},
		})
	})

	t.Run("amount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "zero quantity", mutate: func(b *builder.PurchaseRequestBuilder) { b.Quantity = 0 }, errIs: purchase.ErrInvalidQuantity},
			{name: "negative quantity", mutate: func(b *builder.PurchaseRequestBuilder) { b.Quantity = -1 }, errIs: purchase.ErrInvalidQuantity},
			{name: "zero unit price", mutate: func(b *builder.PurchaseRequestBuilder) { b.UnitPrice = decimal.Zero }, errIs: purchase.ErrInvalidUnitPrice},
			{name: "negative unit price", mutate: func(b *builder.PurchaseRequestBuilder) { b.UnitPrice = decimal.NewFromInt(-5) }, errIs: purchase.ErrInvalidUnitPrice},
			{name: "zero delivery charges", mutate: func(b *builder.PurchaseRequestBuilder) { b.DeliveryCharges = decimal.Zero }},
			{name: "negative delivery charges", mutate: func(b *builder.PurchaseRequestBuilder) { b.DeliveryCharges = decimal.NewFromInt(-1) }, errIs: purchase.ErrNegativeDelivery},
			{name: "zero tax", mutate: func(b *builder.PurchaseRequestBuilder) { b.TaxAmount = decimal.Zero }},
			{name: "negative tax", mutate: func(b *builder.PurchaseRequestBuilder) { b.TaxAmount = decimal.RequireFromString("-0.01") }, errIs: purchase.ErrNegativeTax},
		})
	})

	t.Run("first failure wins", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "bad email reported before bad quantity",
				mutate: func(b *builder.PurchaseRequestBuilder) {
					b.ApproverEmail = "nope"
					b.Quantity = 0
				},
				errIs: purchase.ErrInvalidApproverEmail,
			},
			{
				name: "quantity reported before price",
				mutate: func(b *builder.PurchaseRequestBuilder) {
					b.Quantity = 0
					b.UnitPrice = decimal.Zero
				},
				errIs: purchase.ErrInvalidQuantity,
			},
		})
	})

	t.Run("every input error is a validation error", func(t *testing.T) {
		for _, err := range []error{
			purchase.ErrInvalidApproverEmail, purchase.ErrEmptyItemName, purchase.ErrItemNameTooLong,
			purchase.ErrInvalidQuantity, purchase.ErrInvalidUnitPrice, purchase.ErrNegativeDelivery,
			purchase.ErrNegativeTax, purchase.ErrAmbiguousItemName, purchase.ErrMissingDecisionTarget,
			purchase.ErrInvalidRequestID,
		} {
			assert.True(t, errs.Is(err, errs.ErrValidation), err.Error())
		}
	})
}

func TestCheckDecidable(t *testing.T) {
	approver := builder.Approver(t)
	stranger := builder.NewIdentity(t, "Eve", "eve@example.com")

	cases := []struct {
		name   string
		status purchase.Status
		caller identity.Identity
		errIs  error
		marker error
	}{
		{name: "pending and assigned", status: purchase.StatusPending, caller: approver},
		{name: "pending but another approver", status: purchase.StatusPending, caller: stranger, errIs: purchase.ErrNotApprover, marker: errs.ErrForbidden},
		{name: "already approved", status: purchase.StatusApproved, caller: approver, errIs: purchase.ErrAlreadyDecided, marker: errs.ErrNotFound},
		{name: "already rejected, stranger", status: purchase.StatusRejected, caller: stranger, errIs: purchase.ErrAlreadyDecided, marker: errs.ErrNotFound},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := purchase.CheckDecidable(c.status, builder.DefaultApproverEmail, c.caller)
			if c.errIs == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, c.marker))
		})
	}
}

func TestStatusAndDecision(t *testing.T) {
	t.Run("status parsing", func(t *testing.T) {
		for _, s := range []string{"Pending", "Approved", "Rejected"} {
			status, err := purchase.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
		_, err := purchase.NewStatus("pending")
		assert.ErrorIs(t, err, purchase.ErrInvalidStatus)
	})

	t.Run("terminal states", func(t *testing.T) {
		assert.False(t, purchase.StatusPending.IsTerminal())
		assert.True(t, purchase.StatusApproved.IsTerminal())
		assert.True(t, purchase.StatusRejected.IsTerminal())
	})

	t.Run("decision mapping", func(t *testing.T) {
		d, err := purchase.NewDecision(" Approve ")
		require.NoError(t, err)
		assert.Equal(t, purchase.StatusApproved, d.TargetStatus())
		assert.Equal(t, "approved", d.PastTense())

		d, err = purchase.NewDecision("reject")
		require.NoError(t, err)
		assert.Equal(t, purchase.StatusRejected, d.TargetStatus())
		assert.Equal(t, "rejected", d.PastTense())

		_, err = purchase.NewDecision("escalate")
		assert.ErrorIs(t, err, purchase.ErrInvalidDecision)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewPurchaseRequestBuilder().With(c.mutate)
			requester, err := b.BuildRequester()
			require.NoError(t, err)

			actual, err := purchase.NewPurchaseRequest(requester, b.BuildDraft(), time.Now())

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
