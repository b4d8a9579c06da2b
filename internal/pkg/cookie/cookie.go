package cookie

import (
	"net/http"
	"time"

	"purchase-approval/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "session"
	StateCookieName   = "oauth_state"

	stateMaxAge = 10 * time.Minute
)

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	set(c, cfg, getSameSite(cfg.SameSite), SessionCookieName, token, int(expiry.Seconds()))
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, getSameSite(cfg.SameSite), SessionCookieName, "", -1)
}

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionCookieName)
	return token
}

// SetStateCookie stores the OAuth anti-forgery state for the callback.
// It is always Lax: the callback is a cross-site top-level redirect from the provider.
func SetStateCookie(c *gin.Context, cfg config.CookieConfig, state string) {
	set(c, cfg, http.SameSiteLaxMode, StateCookieName, state, int(stateMaxAge.Seconds()))
}

// PopStateCookie returns the stored state and clears it; a state is single use.
func PopStateCookie(c *gin.Context, cfg config.CookieConfig) string {
	state, _ := c.Cookie(StateCookieName)
	if state != "" {
		set(c, cfg, http.SameSiteLaxMode, StateCookieName, "", -1)
	}
	return state
}

func set(c *gin.Context, cfg config.CookieConfig, sameSite http.SameSite, name, value string, maxAge int) {
	c.SetSameSite(sameSite)
	c.SetCookie(
		name,
		value,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
