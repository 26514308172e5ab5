package controllers

import (
	"net/http"
	"strings"

	"frebud/internal/models/request_models"
	"frebud/internal/services"
	"frebud/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DestinationsController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationsController(destinationService services.DestinationServiceInterface) *DestinationsController {
	return &DestinationsController{
		destinationService: destinationService,
	}
}

func (ctrl *DestinationsController) ListDestinations(c *gin.Context) {
	var filters request_models.DestinationFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	destinations, err := ctrl.destinationService.FetchDestinations(filters, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

func (ctrl *DestinationsController) GetDestinationByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	destination, err := ctrl.destinationService.FetchDestinationByID(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}

func (ctrl *DestinationsController) SearchDestinations(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	results, err := ctrl.destinationService.SearchDestinations(query, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Search results fetched successfully")
}

func (ctrl *DestinationsController) GetPopular(c *gin.Context) {
	destinations, err := ctrl.destinationService.GetPopularDestinations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Popular destinations fetched successfully")
}

func (ctrl *DestinationsController) GetRecommended(c *gin.Context) {
	interests := c.QueryArray("interest")

	recommended, err := ctrl.destinationService.GetRecommendedDestinations(interests, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommended, "Recommended destinations fetched successfully")
}
