package controllers

import (
	"net/http"
	"strings"

	"frebud/internal/services"
	"frebud/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UsersController struct {
	userService services.UserServiceInterface
}

func NewUsersController(userService services.UserServiceInterface) *UsersController {
	return &UsersController{
		userService: userService,
	}
}

func (ctrl *UsersController) GetUserProfile(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		utils.RespondError(c, http.StatusBadRequest, "Username is required")
		return
	}

	user, err := ctrl.userService.FetchUserProfile(username, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}

func (ctrl *UsersController) FollowUser(c *gin.Context) {
	username := c.Param("username")

	ack, err := ctrl.userService.FollowUser(username, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ack, "Followed user")
}

func (ctrl *UsersController) UnfollowUser(c *gin.Context) {
	username := c.Param("username")

	ack, err := ctrl.userService.UnfollowUser(username, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ack, "Unfollowed user")
}

func (ctrl *UsersController) SearchUsers(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	results, err := ctrl.userService.SearchUsers(query, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Search results fetched successfully")
}

func (ctrl *UsersController) GetUserStats(c *gin.Context) {
	username := c.Param("username")

	stats, err := ctrl.userService.GetUserStats(username, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "User stats fetched successfully")
}
