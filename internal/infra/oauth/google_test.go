//go:build unit

package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"purchase-approval/internal/domain/identity"
	"purchase-approval/internal/pkg/config"
	"purchase-approval/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const testAccessToken = "access-token-123"

// fakeProvider serves the token and userinfo endpoints of an OAuth provider.
type fakeProvider struct {
	tokenStatus    int
	userInfoStatus int
	userInfo       map[string]any
}

func (f *fakeProvider) start(t *testing.T) (*Provider, *httptest.Server) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if f.tokenStatus != 0 {
			w.WriteHeader(f.tokenStatus)
			return
		}
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "good-code", r.PostForm.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": testAccessToken,
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testAccessToken, r.Header.Get("Authorization"))
		if f.userInfoStatus != 0 {
			w.WriteHeader(f.userInfoStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.userInfo)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().OAuth
	cfg.UserInfoURL = srv.URL + "/userinfo"
	p := NewProvider(cfg, oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	})
	return p, srv
}

func TestAuthCodeURL(t *testing.T) {
	p, srv := (&fakeProvider{}).start(t)

	raw := p.AuthCodeURL("state-xyz")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/auth", u.Scheme+"://"+u.Host+u.Path)
	q := u.Query()
	assert.Equal(t, "state-xyz", q.Get("state"))
	assert.Equal(t, "test-client-id", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "openid profile email", q.Get("scope"))
	assert.Equal(t, "http://localhost:8889/auth/callback", q.Get("redirect_uri"))
}

func TestExchange(t *testing.T) {
	verified, unverified := true, false

	t.Run("builds the identity from userinfo", func(t *testing.T) {
		p, _ := (&fakeProvider{userInfo: map[string]any{
			"name":           "Alice Requester",
			"email":          "Alice@Example.com",
			"email_verified": verified,
		}}).start(t)

		got, err := p.Exchange(context.Background(), "good-code")

		require.NoError(t, err)
		assert.Equal(t, "Alice Requester", got.DisplayName())
		assert.Equal(t, "alice@example.com", got.PrimaryEmail())
	})

	t.Run("falls back to the given name", func(t *testing.T) {
		p, _ := (&fakeProvider{userInfo: map[string]any{
			"given_name": "Alice",
			"email":      "alice@example.com",
		}}).start(t)

		got, err := p.Exchange(context.Background(), "good-code")

		require.NoError(t, err)
		assert.Equal(t, "Alice", got.DisplayName())
	})

	t.Run("unverified email", func(t *testing.T) {
		p, _ := (&fakeProvider{userInfo: map[string]any{
			"name":           "Mallory",
			"email":          "mallory@example.com",
			"email_verified": unverified,
		}}).start(t)

		got, err := p.Exchange(context.Background(), "good-code")

		require.ErrorIs(t, err, errEmailPending)
		assert.True(t, got.IsZero())
	})

	t.Run("no email", func(t *testing.T) {
		p, _ := (&fakeProvider{userInfo: map[string]any{"name": "Nobody"}}).start(t)

		_, err := p.Exchange(context.Background(), "good-code")

		require.ErrorIs(t, err, identity.ErrMissingEmail)
		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("token endpoint rejects the code", func(t *testing.T) {
		p, _ := (&fakeProvider{tokenStatus: http.StatusBadRequest}).start(t)

		_, err := p.Exchange(context.Background(), "good-code")

		assert.True(t, errs.Is(err, errExchange))
	})

	t.Run("userinfo failure", func(t *testing.T) {
		p, _ := (&fakeProvider{userInfoStatus: http.StatusInternalServerError}).start(t)

		_, err := p.Exchange(context.Background(), "good-code")

		assert.True(t, errs.Is(err, errUserInfo))
	})
}
