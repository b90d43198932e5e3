package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/socialsphere/internal/app/models/dto"
	"github.com/kaan/socialsphere/internal/app/services"
	"github.com/kaan/socialsphere/internal/middleware"
)

// FeedController serves the home feed and the seen acknowledgements
type FeedController struct {
	feedService *services.FeedService
}

// NewFeedController creates a new FeedController
func NewFeedController(feedService *services.FeedService) *FeedController {
	return &FeedController{
		feedService: feedService,
	}
}

// GetHomeFeed returns the viewer's home page
// @Summary Get my home feed
// @Description Newest unseen posts from joined communities, or most-liked posts from interest categories when nothing is joined
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FeedResponse} "Feed page"
// @Router /feed [get]
func (c *FeedController) GetHomeFeed(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	response, err := c.feedService.GetHomeFeed(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// MarkSeen records that the viewer was shown a post
// @Summary Mark a post as seen
// @Description Idempotent; marking an already seen post changes nothing
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse "Marked"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id}/seen [post]
func (c *FeedController) MarkSeen(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.feedService.MarkSeen(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Post marked as seen"))
}
