package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/socialsphere/internal/app/models"
	"github.com/kaan/socialsphere/internal/app/models/dto"
	"github.com/kaan/socialsphere/internal/app/services"
	"github.com/kaan/socialsphere/internal/middleware"
)

// LikeController exposes the like ledger
type LikeController struct {
	likeService *services.LikeService
	postService *services.PostService
}

// NewLikeController creates a new LikeController
func NewLikeController(likeService *services.LikeService, postService *services.PostService) *LikeController {
	return &LikeController{
		likeService: likeService,
		postService: postService,
	}
}

func (c *LikeController) parseKind(ctx *gin.Context) (models.LikeableKind, bool) {
	kind := ctx.Param("kind")
	if !models.IsValidLikeableKind(kind) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid kind parameter")
		errorDetail = errorDetail.WithDetails("kind must be one of: post, comment, reply")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", false
	}
	return models.LikeableKind(kind), true
}

// Like adds the user to an entity's likedBy set
// @Summary Like a post, comment or reply
// @Description Idempotent; liking twice reports the current state
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Entity kind" Enums(post, comment, reply)
// @Param id path int true "Entity ID"
// @Success 200 {object} dto.APIResponse{data=dto.LikeResponse} "Like state"
// @Failure 404 {object} dto.ErrorResponse "Entity not found"
// @Router /likes/{kind}/{id} [put]
func (c *LikeController) Like(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	kind, ok := c.parseKind(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.likeService.Like(ctx, kind, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// Unlike removes the user from an entity's likedBy set
// @Summary Unlike a post, comment or reply
// @Description Idempotent; unliking something never liked reports the current state
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Entity kind" Enums(post, comment, reply)
// @Param id path int true "Entity ID"
// @Success 200 {object} dto.APIResponse{data=dto.LikeResponse} "Like state"
// @Failure 404 {object} dto.ErrorResponse "Entity not found"
// @Router /likes/{kind}/{id} [delete]
func (c *LikeController) Unlike(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	kind, ok := c.parseKind(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.likeService.Unlike(ctx, kind, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// LikedState answers whether the viewer has liked a post
// @Summary Check my like on a post
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.LikedStateResponse} "Liked state"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /likes/post/{id} [get]
func (c *LikeController) LikedState(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.postService.LikedState(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}
