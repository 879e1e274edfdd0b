package components

import (
	"smartbus/internal/infra/readstore"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/infra/uow"
	"smartbus/internal/usecase/commands"
	"smartbus/internal/usecase/queries"

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
		// Fare catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.FareReadQueries)),
		),
		fx.Annotate(
			readstore.NewFareReadStore,
			fx.As(new(commands.FareCatalog)),
			fx.As(new(queries.FareReadStore)),
		),
		// Riders
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(commands.UserDirectory)),
		),
		// Tickets
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TicketReadQueries)),
		),
		fx.Annotate(
			readstore.NewTicketReadStore,
			fx.As(new(queries.TicketReadStore)),
		),
	),
)

// Write repositories are bound per transaction inside the unit of work.
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
