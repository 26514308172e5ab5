package controllers

import (
	"net/http"

	"frebud/internal/models/request_models"
	"frebud/internal/services"
	"frebud/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PostsController struct {
	postService services.PostServiceInterface
}

func NewPostsController(postService services.PostServiceInterface) *PostsController {
	return &PostsController{
		postService: postService,
	}
}

func (ctrl *PostsController) ListPosts(c *gin.Context) {
	posts, err := ctrl.postService.FetchPosts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Posts fetched successfully")
}

func (ctrl *PostsController) GetPostByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Post ID is required")
		return
	}

	post, err := ctrl.postService.FetchPostByID(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post fetched successfully")
}

func (ctrl *PostsController) LikePost(c *gin.Context) {
	id := c.Param("id")

	ack, err := ctrl.postService.LikePost(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ack, "Post liked")
}

func (ctrl *PostsController) AddComment(c *gin.Context) {
	id := c.Param("id")

	var req request_models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MapValidationErrors(err))
		return
	}

	comment, err := ctrl.postService.AddComment(id, req.Text, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comment, "Comment added")
}

func (ctrl *PostsController) ListStories(c *gin.Context) {
	stories, err := ctrl.postService.FetchStories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stories, "Stories fetched successfully")
}

func (ctrl *PostsController) MarkStoryViewed(c *gin.Context) {
	id := c.Param("id")

	ack, err := ctrl.postService.MarkStoryViewed(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ack, "Story marked as viewed")
}
