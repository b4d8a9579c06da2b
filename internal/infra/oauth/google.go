package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"purchase-approval/internal/domain/identity"
	"purchase-approval/internal/pkg/config"
	"purchase-approval/internal/pkg/errs"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const maxUserInfoBytes = 1 << 20

var (
	errExchange     = errs.New("authorization code exchange failed")
	errUserInfo     = errs.New("userinfo request failed")
	errEmailPending = errs.New("provider email is not verified")
)

// userInfo is the subset of the OpenID Connect userinfo response we rely on.
type userInfo struct {
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	Email         string `json:"email"`
	EmailVerified *bool  `json:"email_verified"`
}

// Provider runs the authorization-code flow against an OAuth 2.0 / OIDC provider.
type Provider struct {
	oauth       *oauth2.Config
	userInfoURL string
}

// NewGoogleProvider wires the flow to Google's endpoints.
func NewGoogleProvider(cfg config.Config) *Provider {
	return NewProvider(cfg.OAuth, google.Endpoint)
}

func NewProvider(cfg config.OAuthConfig, endpoint oauth2.Endpoint) *Provider {
	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       cfg.Scopes,
			Endpoint:     endpoint,
		},
		userInfoURL: cfg.UserInfoURL,
	}
}

func (p *Provider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (p *Provider) Exchange(ctx context.Context, code string) (identity.Identity, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return identity.Identity{}, errs.Mark(err, errExchange)
	}

	info, err := p.fetchUserInfo(ctx, token)
	if err != nil {
		return identity.Identity{}, err
	}
	if info.EmailVerified != nil && !*info.EmailVerified {
		return identity.Identity{}, errEmailPending
	}

	name := info.Name
	if name == "" {
		name = info.GivenName
	}
	return identity.New(name, []string{info.Email})
}

func (p *Provider) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*userInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, errs.Mark(err, errUserInfo)
	}

	resp, err := p.oauth.Client(ctx, token).Do(req)
	if err != nil {
		return nil, errs.Mark(err, errUserInfo)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(errs.Newf("userinfo status %d", resp.StatusCode), errUserInfo)
	}

	var info userInfo
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxUserInfoBytes)).Decode(&info); err != nil {
		return nil, errs.Mark(err, errUserInfo)
	}
	return &info, nil
}
