package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/socialsphere/internal/app/models/dto"
	"github.com/kaan/socialsphere/internal/app/services"
	"github.com/kaan/socialsphere/internal/middleware"
)

// ThreadController serves comment trees and comment/reply mutations
type ThreadController struct {
	threadService *services.ThreadService
}

// NewThreadController creates a new ThreadController
func NewThreadController(threadService *services.ThreadService) *ThreadController {
	return &ThreadController{
		threadService: threadService,
	}
}

// GetThread returns a post's ordered comment tree
// @Summary Get a post's comments
// @Description My comments first in creation order, then others by like count; every comment carries its full reply list
// @Tags threads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.ThreadResponse} "Comment tree"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id}/comments [get]
func (c *ThreadController) GetThread(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.threadService.GetThread(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// AddComment appends a comment to a post
// @Summary Comment on a post
// @Tags threads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.AddCommentRequest true "Comment text"
// @Success 201 {object} dto.APIResponse "Comment created"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id}/comments [post]
func (c *ThreadController) AddComment(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	comment, err := c.threadService.AddComment(ctx, id, userID, req.Text)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment))
}

// DeleteComment removes a comment, author only
// @Summary Delete my comment
// @Tags threads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} dto.APIResponse "Comment deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Router /comments/{id} [delete]
func (c *ThreadController) DeleteComment(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.threadService.DeleteComment(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Comment deleted successfully"))
}

// AddReply appends a reply to a comment
// @Summary Reply to a comment
// @Tags threads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param request body dto.AddReplyRequest true "Post reference and reply text"
// @Success 201 {object} dto.APIResponse "Reply created"
// @Failure 404 {object} dto.ErrorResponse "Post or comment not found"
// @Router /comments/{id}/replies [post]
func (c *ThreadController) AddReply(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	reply, err := c.threadService.AddReply(ctx, req.PostID, id, userID, req.Text)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(reply))
}

// DeleteReply removes a reply, author only
// @Summary Delete my reply
// @Description The reply is addressed by its parent comment id and reply id pair
// @Tags threads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param replyId path int true "Reply ID"
// @Success 200 {object} dto.APIResponse "Reply deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Reply not found"
// @Router /comments/{id}/replies/{replyId} [delete]
func (c *ThreadController) DeleteReply(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	replyID, ok := parseIDParam(ctx, "replyId")
	if !ok {
		return
	}

	if err := c.threadService.DeleteReply(ctx, id, replyID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Reply deleted successfully"))
}
