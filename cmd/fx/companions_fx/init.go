package companions_fx

import (
	"go.uber.org/fx"

	"frebud/internal/repositories"
	"frebud/internal/repositories/fixtures"
	"frebud/internal/services"
)

var Module = fx.Provide(provideCompanionRepo, provideCompanionService)

func provideCompanionRepo() repositories.CompanionRepository {
	return repositories.NewCompanionRepository(fixtures.Companions())
}

func provideCompanionService(companionRepo repositories.CompanionRepository, delayer services.Delayer) services.CompanionServiceInterface {
	return services.NewCompanionService(companionRepo, delayer)
}
