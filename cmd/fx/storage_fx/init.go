package storage_fx

import (
	"go.uber.org/fx"

	"frebud/internal/infra"
	"frebud/internal/services"
)

var Module = fx.Provide(provideStorage, provideDelayer)

func provideStorage() infra.Storage {
	return infra.InitFileStorage()
}

func provideDelayer() services.Delayer {
	return services.NewNetworkDelayer()
}
