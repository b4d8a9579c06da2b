package components

import (
	"purchase-approval/internal/handler"
	"purchase-approval/internal/handler/api"
	"purchase-approval/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPurchaseRequestHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
