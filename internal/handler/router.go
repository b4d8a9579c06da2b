package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"purchase-approval/internal/handler/api"
	"purchase-approval/internal/handler/middleware"
	"purchase-approval/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, authHandler *api.AuthHandler, purchaseHandler *api.PurchaseRequestHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, purchaseHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, authHandler *api.AuthHandler, purchaseHandler *api.PurchaseRequestHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	root := engine.Group("")

	addRoutes(root, []route{
		{Method: http.MethodGet, Path: "/auth/google", Handler: authHandler.Google},
		{Method: http.MethodGet, Path: "/auth/callback", Handler: authHandler.Callback},
		{Method: http.MethodGet, Path: "/logout", Handler: authHandler.Logout, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
	})

	authRequired := root.Group("")
	authRequired.Use(authMiddleware.RequireAuth())
	addRoutes(authRequired, []route{
		{Method: http.MethodGet, Path: "/user", Handler: authHandler.User},
		{Method: http.MethodGet, Path: "/dashboard", Handler: authHandler.Dashboard},

		{Method: http.MethodGet, Path: "/my-purchase-requests", Handler: purchaseHandler.ListMine},
		{Method: http.MethodGet, Path: "/pending-purchase-requests", Handler: purchaseHandler.ListPending},
		{Method: http.MethodPost, Path: "/purchase-request", Handler: purchaseHandler.Create},
		{Method: http.MethodPost, Path: "/approve-purchase-request", Handler: purchaseHandler.Approve},
		{Method: http.MethodPost, Path: "/reject-purchase-request", Handler: purchaseHandler.Reject},

		{Method: http.MethodGet, Path: "/purchase-requests/:id", Handler: purchaseHandler.Get},
		{Method: http.MethodPost, Path: "/purchase-requests/:id/approve", Handler: purchaseHandler.ApproveByID},
		{Method: http.MethodPost, Path: "/purchase-requests/:id/reject", Handler: purchaseHandler.RejectByID},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// chainHandlers runs per-route middleware inline. A middleware must not rely
// on c.Next() reaching the handler; the loop does that.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
