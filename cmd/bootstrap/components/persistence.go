package components

import (
	"talentbridge/internal/infra/readstore"
	sqlc "talentbridge/internal/infra/sqlc/generated"
	"talentbridge/internal/infra/uow"
	"talentbridge/internal/usecase/queries"

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
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// FollowUp
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.FollowUpReadQueries)),
		),
		fx.Annotate(
			readstore.NewFollowUpReadStore,
			fx.As(new(queries.FollowUpReadStore)),
		),
		// XP
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.XPReadQueries)),
		),
		fx.Annotate(
			readstore.NewXPReadStore,
			fx.As(new(queries.XPReadStore)),
		),
	),
)

// write-side repositories are built per transaction by the unit of work
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
