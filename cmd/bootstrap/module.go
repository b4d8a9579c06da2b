package bootstrap

import (
	"purchase-approval/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	NotifyModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
