package fx

import "go.uber.org/fx"

// AppModule assembles every application module.
var AppModule = fx.Options(
	ConfigModule,
	InfrastructureModule,
	DomainModule,
	RoutesModule,
	ServerModule,
)
