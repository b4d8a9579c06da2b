//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"purchase-approval/internal/domain/identity"
	"purchase-approval/internal/handler/middleware"
	"purchase-approval/internal/pkg/cookie"
	"purchase-approval/internal/pkg/errs"
	"purchase-approval/tests/common/builder"
	"purchase-approval/tests/common/httptest"
	usecasemock "purchase-approval/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	return e
}

func TestRequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	alice := builder.Requester(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateToken("cookie-token").Return(alice, nil).AnyTimes()
	validator.EXPECT().ValidateToken("expired").
		Return(identity.Identity{}, errs.Mark(errs.New("expired"), errs.ErrUnauthenticated)).AnyTimes()

	e := newEngine()
	auth := middleware.NewAuthMiddleware(validator)
	e.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetIdentity(c)
		assert.True(t, ok)
		claims, _ := c.Get("jwt_claims")
		c.JSON(http.StatusOK, gin.H{"name": id.DisplayName(), "claims": claims})
	})

	t.Run("cookie wins over the header", func(t *testing.T) {
		rec := httptest.PerformRequestWithCookies(t, e, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.SessionCookieName, Value: "cookie-token"}}, "expired")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"name":"Alice Requester","claims":{"email":"alice@example.com","name":"Alice Requester"}}`,
			rec.Body.String())
	})

	t.Run("bearer header", func(t *testing.T) {
		rec := httptest.PerformRequest(t, e, http.MethodGet, "/me", nil, "cookie-token")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, e, http.MethodGet, "/me", nil, "expired")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unauthorized")
	})

	t.Run("no token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, e, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func TestOptionalAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateToken("bad").
		Return(identity.Identity{}, errs.Mark(errs.New("bad"), errs.ErrUnauthenticated))

	e := newEngine()
	e.GET("/maybe", middleware.NewAuthMiddleware(validator).OptionalAuth(), func(c *gin.Context) {
		_, ok := middleware.GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	rec := httptest.PerformRequest(t, e, http.MethodGet, "/maybe", nil, "bad")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())
}

func TestCustomRecovery(t *testing.T) {
	e := newEngine()
	e.GET("/boom", func(*gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, e, http.MethodGet, "/boom", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
