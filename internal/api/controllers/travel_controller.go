package controllers

import (
	"net/http"

	"frebud/internal/models/domain_models"
	"frebud/internal/models/request_models"
	"frebud/internal/stores"
	"frebud/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TravelController exposes the travel store's personal collections:
// wishlist, saved destinations and recent searches.
type TravelController struct {
	travelStore *stores.TravelStore
}

func NewTravelController(travelStore *stores.TravelStore) *TravelController {
	return &TravelController{
		travelStore: travelStore,
	}
}

func (ctrl *TravelController) GetWishlist(c *gin.Context) {
	utils.RespondSuccess(c, ctrl.travelStore.Wishlist(), "Wishlist fetched successfully")
}

func (ctrl *TravelController) AddToWishlist(c *gin.Context) {
	var req request_models.WishlistAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	if !ctrl.travelStore.AddToWishlist(req) {
		utils.RespondError(c, http.StatusConflict, "Item already in wishlist")
		return
	}

	utils.RespondSuccess(c, ctrl.travelStore.Wishlist(), "Added to wishlist")
}

func (ctrl *TravelController) RemoveFromWishlist(c *gin.Context) {
	id := c.Param("id")
	itemType := c.Query("type")
	if itemType == "" {
		utils.RespondError(c, http.StatusBadRequest, "Item type is required")
		return
	}

	ctrl.travelStore.RemoveFromWishlist(id, itemType)
	utils.RespondSuccess(c, ctrl.travelStore.Wishlist(), "Removed from wishlist")
}

func (ctrl *TravelController) GetSavedDestinations(c *gin.Context) {
	utils.RespondSuccess(c, ctrl.travelStore.SavedDestinations(), "Saved destinations fetched successfully")
}

func (ctrl *TravelController) SaveDestination(c *gin.Context) {
	var dest domain_models.Destination
	if err := c.ShouldBindJSON(&dest); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}
	if dest.ID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	if !ctrl.travelStore.SaveDestination(dest) {
		utils.RespondError(c, http.StatusConflict, "Destination already saved")
		return
	}

	utils.RespondSuccess(c, ctrl.travelStore.SavedDestinations(), "Destination saved")
}

func (ctrl *TravelController) RemoveSavedDestination(c *gin.Context) {
	id := c.Param("id")

	ctrl.travelStore.RemoveSavedDestination(id)
	utils.RespondSuccess(c, ctrl.travelStore.SavedDestinations(), "Destination removed")
}

func (ctrl *TravelController) GetRecentSearches(c *gin.Context) {
	utils.RespondSuccess(c, ctrl.travelStore.RecentSearches(), "Recent searches fetched successfully")
}

func (ctrl *TravelController) AddRecentSearch(c *gin.Context) {
	var req request_models.RecentSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	ctrl.travelStore.AddRecentSearch(req.Term)
	utils.RespondSuccess(c, ctrl.travelStore.RecentSearches(), "Search recorded")
}

func (ctrl *TravelController) ClearRecentSearches(c *gin.Context) {
	ctrl.travelStore.ClearRecentSearches()
	utils.RespondSuccess(c, ctrl.travelStore.RecentSearches(), "Recent searches cleared")
}
