package api

import (
	"html"
	"log/slog"
	"net/http"
	"strings"

	resdto "purchase-approval/internal/handler/dto/response"
	"purchase-approval/internal/handler/middleware"
	"purchase-approval/internal/pkg/config"
	"purchase-approval/internal/pkg/cookie"
	"purchase-approval/internal/pkg/errs"
	"purchase-approval/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cookieCfg    config.CookieConfig
	frontendURL  string
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cookieCfg:    cfg.Cookie,
		frontendURL:  strings.TrimRight(cfg.App.FrontendURL, "/"),
	}
}

// @Summary Start Google login
// @Description Redirects to the Google consent screen
// @Tags auth
// @Success 302 "Redirect to provider"
// @Router /auth/google [get]
func (h *AuthHandler) Google(c *gin.Context) {
	redirect, err := h.authCommands.BeginLogin()
	if err != nil {
		respondError(c, err)
		return
	}

	cookie.SetStateCookie(c, h.cookieCfg, redirect.State)
	c.Redirect(http.StatusFound, redirect.URL)
}

// @Summary OAuth callback
// @Description Completes the login, sets the session cookie and redirects to the frontend
// @Tags auth
// @Param state query string true "Anti-forgery state"
// @Param code query string true "Authorization code"
// @Success 302 "Redirect to /choose-role, or to the frontend root on failure"
// @Router /auth/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	expected := cookie.PopStateCookie(c, h.cookieCfg)

	result, err := h.authCommands.CompleteLogin(c.Request.Context(), expected, c.Query("state"), c.Query("code"))
	if err != nil {
		slog.Warn("OAuth callback failed", "error", err.Error())
		c.Redirect(http.StatusFound, h.frontendURL)
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, result.SessionToken, result.SessionTTL)
	c.Redirect(http.StatusFound, h.frontendURL+"/choose-role")
}

// @Summary Logout
// @Description Clears the session and redirects to the frontend
// @Tags auth
// @Success 302 "Redirect to the frontend root"
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	if caller, ok := middleware.GetIdentity(c); ok {
		h.authCommands.Logout(c.Request.Context(), caller)
	}

	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Redirect(http.StatusFound, h.frontendURL+"/")
}

// @Summary Current user
// @Description Profile of the authenticated caller
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /user [get]
func (h *AuthHandler) User(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, errs.ErrUnauthenticated)
		return
	}

	c.JSON(http.StatusOK, resdto.FromIdentity(caller))
}

// @Summary Dashboard
// @Description Plain HTML welcome page
// @Tags auth
// @Produce html
// @Success 200 {string} string
// @Failure 401 {object} httperr.Response
// @Router /dashboard [get]
func (h *AuthHandler) Dashboard(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, errs.ErrUnauthenticated)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte("<h1>Welcome "+html.EscapeString(caller.DisplayName())+"</h1>"))
}
