package groups_fx

import (
	"go.uber.org/fx"

	"frebud/internal/repositories"
	"frebud/internal/repositories/fixtures"
	"frebud/internal/services"
)

var Module = fx.Provide(provideGroupRepo, provideGroupService)

func provideGroupRepo() repositories.GroupRepository {
	return repositories.NewGroupRepository(fixtures.Groups())
}

func provideGroupService(groupRepo repositories.GroupRepository, currentUser services.CurrentUserFunc, delayer services.Delayer) services.GroupServiceInterface {
	return services.NewGroupService(groupRepo, currentUser, delayer)
}
