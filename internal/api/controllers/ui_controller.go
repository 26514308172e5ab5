package controllers

import (
	"frebud/internal/models/request_models"
	"frebud/internal/stores"
	"frebud/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UIController struct {
	uiStore *stores.UIStore
}

func NewUIController(uiStore *stores.UIStore) *UIController {
	return &UIController{
		uiStore: uiStore,
	}
}

func (ctrl *UIController) GetState(c *gin.Context) {
	utils.RespondSuccess(c, ctrl.uiStore.State(), "UI state fetched successfully")
}

func (ctrl *UIController) SetTheme(c *gin.Context) {
	var req request_models.SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	ctrl.uiStore.SetTheme(req.Theme)
	utils.RespondSuccess(c, ctrl.uiStore.State(), "Theme updated")
}

func (ctrl *UIController) ToggleDarkMode(c *gin.Context) {
	ctrl.uiStore.ToggleDarkMode()
	utils.RespondSuccess(c, ctrl.uiStore.State(), "Theme toggled")
}

func (ctrl *UIController) SetLanguage(c *gin.Context) {
	var req request_models.SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	ctrl.uiStore.SetLanguage(req.Language)
	utils.RespondSuccess(c, ctrl.uiStore.State(), "Language updated")
}

func (ctrl *UIController) SetCurrency(c *gin.Context) {
	var req request_models.SetCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	ctrl.uiStore.SetCurrency(req.Currency)
	utils.RespondSuccess(c, ctrl.uiStore.State(), "Currency updated")
}

func (ctrl *UIController) ToggleNotifications(c *gin.Context) {
	ctrl.uiStore.ToggleNotifications()
	utils.RespondSuccess(c, ctrl.uiStore.State(), "Notifications toggled")
}

func (ctrl *UIController) ToggleLocation(c *gin.Context) {
	ctrl.uiStore.ToggleLocation()
	utils.RespondSuccess(c, ctrl.uiStore.State(), "Location toggled")
}

func (ctrl *UIController) SetActiveTab(c *gin.Context) {
	var req request_models.SetActiveTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	ctrl.uiStore.SetActiveTab(req.Tab)
	utils.RespondSuccess(c, ctrl.uiStore.State(), "Active tab updated")
}
