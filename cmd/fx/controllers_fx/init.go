package controllers_fx

import (
	"go.uber.org/fx"

	"frebud/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewCompanionsController),
	fx.Provide(controllers.NewDestinationsController),
	fx.Provide(controllers.NewGroupsController),
	fx.Provide(controllers.NewPostsController),
	fx.Provide(controllers.NewUsersController),
	fx.Provide(controllers.NewTravelController),
	fx.Provide(controllers.NewUIController))
