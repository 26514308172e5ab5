package controllers

import (
	"net/http"

	"frebud/internal/models/domain_models"
	"frebud/internal/models/request_models"
	"frebud/internal/services"
	"frebud/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CompanionsController struct {
	companionService services.CompanionServiceInterface
}

func NewCompanionsController(companionService services.CompanionServiceInterface) *CompanionsController {
	return &CompanionsController{
		companionService: companionService,
	}
}

func (ctrl *CompanionsController) ListCompanions(c *gin.Context) {
	var filters request_models.CompanionFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	companions, err := ctrl.companionService.FetchCompanions(filters, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, companions, "Companions fetched successfully")
}

func (ctrl *CompanionsController) GetCompanionByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Companion ID is required")
		return
	}

	companion, err := ctrl.companionService.FetchCompanionByID(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, companion, "Companion fetched successfully")
}

func (ctrl *CompanionsController) SendRequest(c *gin.Context) {
	id := c.Param("id")

	var req request_models.CompanionRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	ack, err := ctrl.companionService.SendCompanionRequest(id, req.Message, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ack, "Companion request sent")
}

func (ctrl *CompanionsController) GetMatches(c *gin.Context) {
	var req request_models.MatchPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	prefs := domain_models.TravelPreferences{
		TravelStyle: req.TravelStyle,
		Budget:      req.Budget,
		Interests:   req.Interests,
		Languages:   req.Languages,
	}

	matches, err := ctrl.companionService.GetMatchingCompanions(prefs, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, matches, "Matches fetched successfully")
}

func (ctrl *CompanionsController) ReportCompanion(c *gin.Context) {
	id := c.Param("id")

	var req request_models.ReportCompanionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	ack, err := ctrl.companionService.ReportCompanion(id, req.Reason, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ack, "Report submitted")
}
