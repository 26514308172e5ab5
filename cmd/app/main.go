package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"frebud/cmd/fx/companions_fx"
	"frebud/cmd/fx/controllers_fx"
	"frebud/cmd/fx/destinations_fx"
	"frebud/cmd/fx/groups_fx"
	"frebud/cmd/fx/posts_fx"
	"frebud/cmd/fx/storage_fx"
	"frebud/cmd/fx/stores_fx"
	"frebud/cmd/fx/users_fx"
	"frebud/internal/api/controllers"
	"frebud/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		storage_fx.Module,
		companions_fx.Module,
		destinations_fx.Module,
		groups_fx.Module,
		posts_fx.Module,
		users_fx.Module,
		stores_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	companionsController *controllers.CompanionsController,
	destinationsController *controllers.DestinationsController,
	groupsController *controllers.GroupsController,
	postsController *controllers.PostsController,
	usersController *controllers.UsersController,
	travelController *controllers.TravelController,
	uiController *controllers.UIController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		authController,
		companionsController,
		destinationsController,
		groupsController,
		postsController,
		usersController,
		travelController,
		uiController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	companionsController *controllers.CompanionsController,
	destinationsController *controllers.DestinationsController,
	groupsController *controllers.GroupsController,
	postsController *controllers.PostsController,
	usersController *controllers.UsersController,
	travelController *controllers.TravelController,
	uiController *controllers.UIController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/signup", authController.Signup)
	authGroup.POST("/logout", authController.Logout)
	authGroup.GET("/me", authController.Me)
	authGroup.PATCH("/profile", middleware.JWTAuthMiddleware(), authController.UpdateProfile)

	companionsGroup := r.Group("/companions")
	companionsGroup.GET("", companionsController.ListCompanions)
	companionsGroup.GET("/:id", companionsController.GetCompanionByID)
	companionsGroup.POST("/:id/request", companionsController.SendRequest)
	companionsGroup.POST("/:id/report", companionsController.ReportCompanion)
	companionsGroup.POST("/matches", companionsController.GetMatches)

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.GET("", destinationsController.ListDestinations)
	destinationsGroup.GET("/search", destinationsController.SearchDestinations)
	destinationsGroup.GET("/popular", destinationsController.GetPopular)
	destinationsGroup.GET("/recommended", destinationsController.GetRecommended)
	destinationsGroup.GET("/:id", destinationsController.GetDestinationByID)

	groupsGroup := r.Group("/groups")
	groupsGroup.GET("", groupsController.ListGroups)
	groupsGroup.GET("/recommended", groupsController.GetRecommended)
	groupsGroup.GET("/mine", groupsController.MyGroups)
	groupsGroup.GET("/:id", groupsController.GetGroupByID)
	groupsGroup.POST("", groupsController.CreateGroup)
	groupsGroup.POST("/:id/join", groupsController.JoinGroup)
	groupsGroup.POST("/:id/leave", groupsController.LeaveGroup)
	groupsGroup.POST("/:id/polls", groupsController.CreatePoll)
	groupsGroup.POST("/:id/polls/:pollId/vote", groupsController.VoteInPoll)

	postsGroup := r.Group("/posts")
	postsGroup.GET("", postsController.ListPosts)
	postsGroup.GET("/:id", postsController.GetPostByID)
	postsGroup.POST("/:id/like", postsController.LikePost)
	postsGroup.POST("/:id/comments", postsController.AddComment)

	storiesGroup := r.Group("/stories")
	storiesGroup.GET("", postsController.ListStories)
	storiesGroup.POST("/:id/viewed", postsController.MarkStoryViewed)

	usersGroup := r.Group("/users")
	usersGroup.GET("/search", usersController.SearchUsers)
	usersGroup.GET("/:username", usersController.GetUserProfile)
	usersGroup.GET("/:username/stats", usersController.GetUserStats)
	usersGroup.POST("/:username/follow", usersController.FollowUser)
	usersGroup.DELETE("/:username/follow", usersController.UnfollowUser)

	travelGroup := r.Group("/travel")
	travelGroup.GET("/wishlist", travelController.GetWishlist)
	travelGroup.POST("/wishlist", travelController.AddToWishlist)
	travelGroup.DELETE("/wishlist/:id", travelController.RemoveFromWishlist)
	travelGroup.GET("/saved", travelController.GetSavedDestinations)
	travelGroup.POST("/saved", travelController.SaveDestination)
	travelGroup.DELETE("/saved/:id", travelController.RemoveSavedDestination)
	travelGroup.GET("/searches", travelController.GetRecentSearches)
	travelGroup.POST("/searches", travelController.AddRecentSearch)
	travelGroup.DELETE("/searches", travelController.ClearRecentSearches)

	uiGroup := r.Group("/ui")
	uiGroup.GET("/state", uiController.GetState)
	uiGroup.PUT("/theme", uiController.SetTheme)
	uiGroup.POST("/theme/toggle", uiController.ToggleDarkMode)
	uiGroup.PUT("/language", uiController.SetLanguage)
	uiGroup.PUT("/currency", uiController.SetCurrency)
	uiGroup.POST("/notifications/toggle", uiController.ToggleNotifications)
	uiGroup.POST("/location/toggle", uiController.ToggleLocation)
	uiGroup.PUT("/tab", uiController.SetActiveTab)
}
