package controllers

import (
	"log"
	"net/http"

	"frebud/internal/models/request_models"
	"frebud/internal/models/response_models"
	"frebud/internal/stores"
	"frebud/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authStore *stores.AuthStore
}

func NewAuthController(authStore *stores.AuthStore) *AuthController {
	return &AuthController{
		authStore: authStore,
	}
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	result := ctrl.authStore.Login(req, c.Request.Context())
	if !result.Success {
		utils.RespondError(c, http.StatusUnauthorized, result.Error)
		return
	}

	ctrl.respondSession(c, result, "Logged in")
}

func (ctrl *AuthController) Signup(c *gin.Context) {
	var req request_models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	result := ctrl.authStore.Signup(req, c.Request.Context())
	if !result.Success {
		utils.RespondError(c, http.StatusUnauthorized, result.Error)
		return
	}

	ctrl.respondSession(c, result, "Account created")
}

func (ctrl *AuthController) respondSession(c *gin.Context, result response_models.AuthResult, message string) {
	user := ctrl.authStore.User()

	session := response_models.SessionResponse{
		AuthResult: result,
		User:       user,
	}
	if user != nil {
		token, err := utils.CreateToken(user.ID, user.Username)
		if err != nil {
			log.Printf("Error minting session token: %v", err)
		} else {
			session.Token = token
		}
	}

	utils.RespondSuccess(c, session, message)
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.authStore.Logout()
	utils.RespondSuccess(c, nil, "Logged out")
}

func (ctrl *AuthController) Me(c *gin.Context) {
	user := ctrl.authStore.User()
	if !ctrl.authStore.IsAuthenticated() || user == nil {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	utils.RespondSuccess(c, user, "Session fetched successfully")
}

func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	ctrl.authStore.UpdateProfile(req)
	utils.RespondSuccess(c, ctrl.authStore.User(), "Profile updated")
}
