//go:build e2e

package purchase_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"purchase-approval/internal/domain/identity"
	"purchase-approval/internal/domain/purchase"
	"purchase-approval/internal/handler/dto/response"
	"purchase-approval/internal/usecase/shared"
	"purchase-approval/tests/common/authtest"
	"purchase-approval/tests/common/builder"
	"purchase-approval/tests/common/dbtest"
	"purchase-approval/tests/common/httptest"
	"purchase-approval/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	createURL  = "/purchase-request"
	mineURL    = "/my-purchase-requests"
	pendingURL = "/pending-purchase-requests"
	approveURL = "/approve-purchase-request"
	rejectURL  = "/reject-purchase-request"
	detailURL  = "/purchase-requests/"
)

type PurchaseRequestSuite struct {
	e2e.SharedSuite
	sessions  *authtest.SessionHelper
	requester identity.Identity
	approver  identity.Identity
}

func (s *PurchaseRequestSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.sessions = authtest.NewSessionHelper(s.T(), s.Config.JWT)
	s.requester = builder.Requester(s.T())
	s.approver = builder.Approver(s.T())
}

func TestPurchaseRequestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PurchaseRequestSuite))
}

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func (s *PurchaseRequestSuite) create(t *testing.T, b *builder.PurchaseRequestBuilder) *response.PurchaseRequestResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL, b.BuildCreateRequestDTO(), s.sessions.Token(t, s.requester))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := httptest.DecodeJSON[response.CreatedResponse](t, w)
	require.NotNil(t, body.NewRequest)
	return body.NewRequest
}

// =============================================================================
// TestLifecycle - create, list, approve
// =============================================================================

func (s *PurchaseRequestSuite) TestLifecycle() {
	s.Run("Normal case: created request is Pending with the computed total", func() {
		t := s.T()

		created := s.create(t, builder.NewPurchaseRequestBuilder())

		expected := &response.PurchaseRequestResponse{
			Requester:       builder.DefaultRequesterName,
			RequesterEmail:  builder.DefaultRequesterEmail,
			ItemName:        "Laptop",
			Quantity:        2,
			UnitPrice:       decimal.NewFromInt(500),
			DeliveryCharges: decimal.NewFromInt(20),
			TaxAmount:       decimal.NewFromInt(30),
			TotalPrice:      decimal.NewFromInt(1050),
			ApproverEmail:   builder.DefaultApproverEmail,
			Status:          "Pending",
		}
		opts := []cmp.Option{
			decimalEqual,
			cmpopts.IgnoreFields(response.PurchaseRequestResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, created, opts...); diff != "" {
			t.Errorf("created request mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	})

	s.Run("Normal case: requester and approver see it in their lists", func() {
		t := s.T()
		created := s.create(t, builder.NewPurchaseRequestBuilder())

		mine := httptest.PerformRequest(t, s.Router, http.MethodGet, mineURL, nil, s.sessions.Token(t, s.requester))
		require.Equal(t, http.StatusOK, mine.Code)
		mineBody := httptest.DecodeJSON[[]response.PurchaseRequestResponse](t, mine)
		require.Len(t, mineBody, 1)
		assert.Equal(t, created.ID, mineBody[0].ID)

		pending := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, s.sessions.Token(t, s.approver))
		require.Equal(t, http.StatusOK, pending.Code)
		pendingBody := httptest.DecodeJSON[[]response.PurchaseRequestResponse](t, pending)
		require.Len(t, pendingBody, 1)
		assert.Equal(t, created.ID, pendingBody[0].ID)

		// the approver has not created anything and nothing is pending for the requester
		for _, tc := range []struct {
			url string
			who identity.Identity
		}{{mineURL, s.approver}, {pendingURL, s.requester}} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, tc.url, nil, s.sessions.Token(t, tc.who))
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `[]`, w.Body.String())
		}
	})

	s.Run("Normal case: approve once, second decision is 404", func() {
		t := s.T()
		created := s.create(t, builder.NewPurchaseRequestBuilder())
		token := s.sessions.Token(t, s.approver)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL, map[string]any{"id": created.ID.String()}, token)
		var approved response.ApproveResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &approved)
		assert.Equal(t, "Purchase request approved", approved.Message)
		require.NotNil(t, approved.RequestToApprove)
		assert.Equal(t, "Approved", approved.RequestToApprove.Status)
		assert.True(t, approved.RequestToApprove.UpdatedAt.After(created.UpdatedAt) ||
			approved.RequestToApprove.UpdatedAt.Equal(created.UpdatedAt))
		assert.Equal(t, "Approved", dbtest.PurchaseRequestStatus(t, s.DB, created.ID))

		again := httptest.PerformRequest(t, s.Router, http.MethodPost, rejectURL, map[string]any{"id": created.ID.String()}, token)
		httptest.AssertErrorResponse(t, again, http.StatusNotFound, purchase.ErrAlreadyDecided.Error())
		assert.Equal(t, "Approved", dbtest.PurchaseRequestStatus(t, s.DB, created.ID))

		pending := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, token)
		assert.JSONEq(t, `[]`, pending.Body.String())
	})

	s.Run("Normal case: reject by item name", func() {
		t := s.T()
		created := s.create(t, builder.NewPurchaseRequestBuilder().With(func(b *builder.PurchaseRequestBuilder) {
			b.ItemName = "Monitor"
		}))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rejectURL, map[string]any{"itemName": "Monitor"}, s.sessions.Token(t, s.approver))

		var rejected response.RejectResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rejected)
		assert.Equal(t, "Purchase request rejected", rejected.Message)
		assert.Equal(t, created.ID, rejected.RequestToReject.ID)
		assert.Equal(t, "Rejected", rejected.RequestToReject.Status)
	})

	s.Run("Normal case: deliveries are logged", func() {
		t := s.T()
		// fresh addresses so deliveries still draining from earlier cases do not count
		carol := builder.NewIdentity(t, "Carol", "carol@example.com")
		body := builder.NewPurchaseRequestBuilder().With(func(b *builder.PurchaseRequestBuilder) {
			b.ApproverEmail = "dave@example.com"
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL, body, s.sessions.Token(t, carol))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// requester confirmation plus approver request, both through the log driver
		assert.EventuallyWithT(t, func(c *assert.CollectT) {
			assert.Equal(c, 1, countJobs(s, "carol@example.com", shared.NotificationStatusSent))
			assert.Equal(c, 1, countJobs(s, "dave@example.com", shared.NotificationStatusSent))
		}, 5*time.Second, 50*time.Millisecond)
	})
}

// countJobs reports -1 on query errors; EventuallyWithT runs it off the test goroutine.
func countJobs(s *PurchaseRequestSuite, recipient, status string) int {
	var n int
	err := s.DB.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE recipient = $1 AND status = $2", recipient, status).Scan(&n)
	if err != nil {
		return -1
	}
	return n
}

// =============================================================================
// TestAmounts - stored amounts match the computed ones
// =============================================================================

func (s *PurchaseRequestSuite) TestAmounts() {
	cases := []struct {
		name      string
		unitPrice string
		quantity  int64
		total     string
	}{
		{name: "sub-cent unit price", unitPrice: "0.004", quantity: 1, total: "0.004"},
		{name: "sub-cent price times quantity", unitPrice: "0.005", quantity: 3, total: "0.015"},
		{name: "amount above a trillion", unitPrice: "1000000000000.5", quantity: 2, total: "2000000000001"},
	}
	for _, c := range cases {
		s.Run("Normal case: "+c.name, func() {
			t := s.T()
			b := builder.NewPurchaseRequestBuilder().With(func(b *builder.PurchaseRequestBuilder) {
				b.Quantity = c.quantity
				b.UnitPrice = decimal.RequireFromString(c.unitPrice)
				b.DeliveryCharges = decimal.Zero
				b.TaxAmount = decimal.Zero
			})

			created := s.create(t, b)

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL+created.ID.String(), nil, s.sessions.Token(t, s.requester))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			stored := httptest.DecodeJSON[response.PurchaseRequestResponse](t, w)

			assert.True(t, decimal.RequireFromString(c.unitPrice).Equal(stored.UnitPrice), stored.UnitPrice.String())
			assert.True(t, decimal.RequireFromString(c.total).Equal(stored.TotalPrice), stored.TotalPrice.String())
			assert.True(t, stored.UnitPrice.Mul(decimal.NewFromInt(stored.Quantity)).Equal(stored.TotalPrice))
		})
	}
}

// =============================================================================
// TestAuthorization - identity and ownership rules
// =============================================================================

func (s *PurchaseRequestSuite) TestAuthorization() {
	s.Run("Error case: no session is 401 everywhere", func() {
		t := s.T()
		for _, r := range []struct{ method, url string }{
			{http.MethodGet, mineURL},
			{http.MethodGet, pendingURL},
			{http.MethodPost, createURL},
			{http.MethodPost, approveURL},
			{http.MethodGet, "/user"},
		} {
			w := httptest.PerformRequest(t, s.Router, r.method, r.url, nil, "")
			httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Unauthorized")
		}
	})

	s.Run("Error case: a different approver gets 403 and nothing changes", func() {
		t := s.T()
		created := s.create(t, builder.NewPurchaseRequestBuilder())
		eve := builder.NewIdentity(t, "Eve", "eve@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL, map[string]any{"id": created.ID.String()}, s.sessions.Token(t, eve))

		httptest.AssertErrorResponse(t, w, http.StatusForbidden, purchase.ErrNotApprover.Error())
		assert.Equal(t, "Pending", dbtest.PurchaseRequestStatus(t, s.DB, created.ID))
	})

	s.Run("Error case: detail is hidden from third parties", func() {
		t := s.T()
		created := s.create(t, builder.NewPurchaseRequestBuilder())
		eve := builder.NewIdentity(t, "Eve", "eve@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL+created.ID.String(), nil, s.sessions.Token(t, eve))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")

		ok := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL+created.ID.String(), nil, s.sessions.Token(t, s.approver))
		assert.Equal(t, http.StatusOK, ok.Code)
	})

	s.Run("Error case: invalid input is 400", func() {
		t := s.T()
		token := s.sessions.Token(t, s.requester)
		body := builder.NewPurchaseRequestBuilder().With(func(b *builder.PurchaseRequestBuilder) {
			b.ApproverEmail = "not-an-email"
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL, body, token)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, purchase.ErrInvalidApproverEmail.Error())
		mine := httptest.PerformRequest(t, s.Router, http.MethodGet, mineURL, nil, token)
		assert.JSONEq(t, `[]`, mine.Body.String())
	})
}

// =============================================================================
// TestConcurrentDecisions - exactly one decision wins
// =============================================================================

func (s *PurchaseRequestSuite) TestConcurrentDecisions() {
	t := s.T()
	row := builder.NewPurchaseRequestBuilder().BuildInfra()
	id := dbtest.InsertPurchaseRequest(t, s.DB, row)
	token := s.sessions.Token(t, s.approver)

	const racers = 8
	codes := make([]int, racers)
	var wg sync.WaitGroup
	for i := range racers {
		url := approveURL
		if i%2 == 1 {
			url = rejectURL
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"id": id.String()}, token)
			codes[i] = w.Code
		}()
	}
	wg.Wait()

	var won, lost int
	for _, c := range codes {
		switch c {
		case http.StatusOK:
			won++
		case http.StatusNotFound:
			lost++
		}
	}
	assert.Equal(t, 1, won, "codes: %v", codes)
	assert.Equal(t, racers-1, lost, "codes: %v", codes)
	assert.Contains(t, []string{"Approved", "Rejected"}, dbtest.PurchaseRequestStatus(t, s.DB, id))
}
