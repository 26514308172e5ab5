package posts_fx

import (
	"go.uber.org/fx"

	"frebud/internal/repositories"
	"frebud/internal/repositories/fixtures"
	"frebud/internal/services"
)

var Module = fx.Provide(providePostRepo, providePostService)

func providePostRepo() repositories.PostRepository {
	return repositories.NewPostRepository(fixtures.Posts(), fixtures.Stories())
}

func providePostService(postRepo repositories.PostRepository, currentUser services.CurrentUserFunc, delayer services.Delayer) services.PostServiceInterface {
	return services.NewPostService(postRepo, currentUser, delayer)
}
