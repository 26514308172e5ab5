package users_fx

import (
	"go.uber.org/fx"

	"frebud/internal/repositories"
	"frebud/internal/repositories/fixtures"
	"frebud/internal/services"
)

var Module = fx.Provide(provideUserRepo, provideUserService)

func provideUserRepo() repositories.UserRepository {
	return repositories.NewUserRepository(fixtures.Users())
}

func provideUserService(userRepo repositories.UserRepository, delayer services.Delayer) services.UserServiceInterface {
	return services.NewUserService(userRepo, delayer, nil)
}
