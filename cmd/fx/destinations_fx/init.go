package destinations_fx

import (
	"go.uber.org/fx"

	"frebud/internal/repositories"
	"frebud/internal/repositories/fixtures"
	"frebud/internal/services"
)

var Module = fx.Provide(provideDestinationRepo, provideDestinationService)

func provideDestinationRepo() repositories.DestinationRepository {
	return repositories.NewDestinationRepository(fixtures.Destinations())
}

func provideDestinationService(destinationRepo repositories.DestinationRepository, delayer services.Delayer) services.DestinationServiceInterface {
	return services.NewDestinationService(destinationRepo, delayer)
}
