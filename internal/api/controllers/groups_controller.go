package controllers

import (
	"net/http"

	"frebud/internal/models/domain_models"
	"frebud/internal/models/request_models"
	"frebud/internal/services"
	"frebud/internal/stores"
	"frebud/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GroupsController exposes both the simulated group service and the
// travel store's group collections: reads hit the service, joins and
// polls go through the store so the session state stays authoritative.
type GroupsController struct {
	groupService services.GroupServiceInterface
	travelStore  *stores.TravelStore
}

func NewGroupsController(groupService services.GroupServiceInterface, travelStore *stores.TravelStore) *GroupsController {
	return &GroupsController{
		groupService: groupService,
		travelStore:  travelStore,
	}
}

func (ctrl *GroupsController) ListGroups(c *gin.Context) {
	var filters request_models.GroupFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	groups, err := ctrl.groupService.FetchGroups(filters, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// Hydrate the session store so join/leave have rosters to mutate.
	ctrl.travelStore.SetGroups(groups)

	utils.RespondSuccess(c, groups, "Groups fetched successfully")
}

func (ctrl *GroupsController) GetGroupByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Group ID is required")
		return
	}

	group, err := ctrl.groupService.FetchGroupByID(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, group, "Group fetched successfully")
}

func (ctrl *GroupsController) CreateGroup(c *gin.Context) {
	var req request_models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	group := ctrl.travelStore.CreateGroup(req)
	utils.RespondSuccess(c, group, "Group created successfully")
}

func (ctrl *GroupsController) JoinGroup(c *gin.Context) {
	id := c.Param("id")

	ack, err := ctrl.groupService.JoinGroup(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	ctrl.travelStore.JoinGroup(id)
	utils.RespondSuccess(c, ack, "Joined group")
}

func (ctrl *GroupsController) LeaveGroup(c *gin.Context) {
	id := c.Param("id")

	ack, err := ctrl.groupService.LeaveGroup(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	ctrl.travelStore.LeaveGroup(id)
	utils.RespondSuccess(c, ack, "Left group")
}

func (ctrl *GroupsController) MyGroups(c *gin.Context) {
	utils.RespondSuccess(c, ctrl.travelStore.MyGroups(), "My groups fetched successfully")
}

func (ctrl *GroupsController) CreatePoll(c *gin.Context) {
	groupID := c.Param("id")

	var req request_models.CreatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	poll := ctrl.travelStore.AddPollToGroup(groupID, req.Question, req.Options)
	if poll == nil {
		utils.HandleServiceError(c, utils.ErrGroupNotFound)
		return
	}

	utils.RespondSuccess(c, poll, "Poll created successfully")
}

func (ctrl *GroupsController) VoteInPoll(c *gin.Context) {
	groupID := c.Param("id")
	pollID := c.Param("pollId")

	var req request_models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	if !ctrl.travelStore.VoteInPoll(groupID, pollID, req.OptionIndex) {
		utils.HandleServiceError(c, utils.ErrPollNotFound)
		return
	}

	ack, err := ctrl.groupService.VoteInPoll(groupID, pollID, req.OptionIndex, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ack, "Vote recorded")
}

func (ctrl *GroupsController) GetRecommended(c *gin.Context) {
	prefs := domain_models.TravelPreferences{
		Interests: c.QueryArray("interest"),
	}

	recommended, err := ctrl.groupService.GetRecommendedGroups(prefs, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommended, "Recommended groups fetched successfully")
}
