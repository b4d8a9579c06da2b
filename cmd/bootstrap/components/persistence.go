package components

import (
	"purchase-approval/internal/infra/readstore"
	"purchase-approval/internal/infra/repository"
	sqlc "purchase-approval/internal/infra/sqlc/generated"
	"purchase-approval/internal/infra/uow"
	"purchase-approval/internal/usecase/queries"
	"purchase-approval/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PurchaseRequestReadQueries)),
		),
		fx.Annotate(
			readstore.NewPurchaseRequestReadStore,
			fx.As(new(queries.PurchaseRequestReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork builds the purchase request repository per transaction
		uow.NewPostgresUoW,
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(shared.NotificationRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
