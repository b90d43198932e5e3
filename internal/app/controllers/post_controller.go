package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/socialsphere/internal/app/models/dto"
	"github.com/kaan/socialsphere/internal/app/services"
	"github.com/kaan/socialsphere/internal/middleware"
	"github.com/kaan/socialsphere/internal/pkg/helpers"
)

// PostController handles post lifecycle and listing operations
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// Create publishes a post
// @Summary Create a post
// @Description Publishes a post into a community the author is a member of
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param communityId formData int true "Community ID"
// @Param description formData string true "Description (max 500 chars)"
// @Param media formData file false "Attached media"
// @Success 201 {object} dto.APIResponse{data=dto.PostResponse} "Post created"
// @Failure 403 {object} dto.ErrorResponse "Not a community member"
// @Router /posts [post]
func (c *PostController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBind(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	// Media is optional
	media, _ := ctx.FormFile("media")

	response, err := c.postService.Create(ctx, userID, &req, media)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(response))
}

// Delete removes a post and its thread
// @Summary Delete a post
// @Description Author only. Removes the post with its comments, replies, like rows and seen rows.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse "Post deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id} [delete]
func (c *PostController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.postService.Delete(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Post deleted successfully"))
}

// GetLiked lists the posts the user has liked
// @Summary List posts I liked
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PostListResponse} "Posts"
// @Router /posts/liked [get]
func (c *PostController) GetLiked(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	response, err := c.postService.GetLiked(ctx, userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetCommented lists the posts the user has commented on
// @Summary List posts I commented on
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PostListResponse} "Posts"
// @Router /posts/commented [get]
func (c *PostController) GetCommented(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	response, err := c.postService.GetCommented(ctx, userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// Search finds posts by description
// @Summary Search posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param q query string true "Description fragment"
// @Success 200 {object} dto.APIResponse{data=[]dto.PostResponse} "Matches"
// @Router /posts/search [get]
func (c *PostController) Search(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	term := ctx.Query("q")
	if term == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing q parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.postService.Search(ctx, userID, term)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}
