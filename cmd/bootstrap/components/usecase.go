package components

import (
	"purchase-approval/internal/infra/oauth"
	"purchase-approval/internal/pkg/clock"
	"purchase-approval/internal/pkg/jwt"
	"purchase-approval/internal/usecase"
	"purchase-approval/internal/usecase/commands"
	"purchase-approval/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		oauth.NewGoogleProvider,
		fx.As(new(commands.IdentityProvider)),
	),
	func(s *jwt.Service) commands.SessionIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewPurchaseRequestCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPurchaseRequestQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
