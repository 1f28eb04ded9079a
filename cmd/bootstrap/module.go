package bootstrap

import (
	"talentbridge/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is shared by the HTTP server and the worker.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.InfrastructureModule,
	components.UseCaseModule,
)
