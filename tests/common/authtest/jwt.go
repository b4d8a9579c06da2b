//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"purchase-approval/internal/domain/identity"
	"purchase-approval/internal/pkg/config"
	"purchase-approval/internal/pkg/cookie"
	"purchase-approval/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// SessionHelper signs session tokens the way the OAuth callback does, so
// tests can skip the provider round trip.
type SessionHelper struct {
	svc *jwt.Service
}

func NewSessionHelper(t *testing.T, cfg config.JWTConfig) *SessionHelper {
	t.Helper()
	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)
	return &SessionHelper{svc: jwt.NewService(cfg.Secret, duration)}
}

func (h *SessionHelper) Token(t *testing.T, id identity.Identity) string {
	t.Helper()
	token, err := h.svc.GenerateToken(id)
	require.NoError(t, err)
	return token
}

func (h *SessionHelper) Cookie(t *testing.T, id identity.Identity) *http.Cookie {
	t.Helper()
	return &http.Cookie{Name: cookie.SessionCookieName, Value: h.Token(t, id)}
}
