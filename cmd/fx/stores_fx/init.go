package stores_fx

import (
	"log"

	"go.uber.org/fx"

	"frebud/internal/infra"
	"frebud/internal/repositories"
	"frebud/internal/services"
	"frebud/internal/stores"
)

var Module = fx.Provide(
	provideAuthStore,
	provideCurrentUser,
	provideTravelStore,
	provideUIStore,
)

func provideAuthStore(storage infra.Storage, delayer services.Delayer, userRepo repositories.UserRepository) *stores.AuthStore {
	return stores.NewAuthStore(storage, delayer, userRepo.DemoUser())
}

// provideCurrentUser binds the acting-user dependency of services and
// the travel store to the auth session.
func provideCurrentUser(authStore *stores.AuthStore) services.CurrentUserFunc {
	return authStore.CurrentUser
}

func provideTravelStore(storage infra.Storage, currentUser services.CurrentUserFunc) *stores.TravelStore {
	return stores.NewTravelStore(storage, currentUser)
}

func provideUIStore(storage infra.Storage) *stores.UIStore {
	applier := stores.ThemeApplierFunc(func(theme string) {
		log.Printf("Applying theme %q", theme)
	})
	return stores.NewUIStore(storage, applier)
}
