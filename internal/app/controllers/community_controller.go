package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/socialsphere/internal/app/models/dto"
	"github.com/kaan/socialsphere/internal/app/services"
	"github.com/kaan/socialsphere/internal/middleware"
	"github.com/kaan/socialsphere/internal/pkg/helpers"
)

// CommunityController handles community related operations
type CommunityController struct {
	communityService *services.CommunityService
	feedService      *services.FeedService
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService *services.CommunityService, feedService *services.FeedService) *CommunityController {
	return &CommunityController{
		communityService: communityService,
		feedService:      feedService,
	}
}

// Create handles community creation
// @Summary Create a community
// @Description Creates a community; the creator becomes owner and first member
// @Tags communities
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Community name"
// @Param category formData string true "Category label"
// @Param description formData string true "Description"
// @Param photo formData file false "Community photo"
// @Success 201 {object} dto.APIResponse{data=dto.CommunityResponse} "Community created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /communities [post]
func (c *CommunityController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateCommunityRequest
	if err := ctx.ShouldBind(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	// Photo is optional
	photo, _ := ctx.FormFile("photo")

	response, err := c.communityService.Create(ctx, userID, &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(response))
}

// GetByID returns one community with counts
// @Summary Get community info
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Success 200 {object} dto.APIResponse{data=dto.CommunityResponse} "Community"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Router /communities/{id} [get]
func (c *CommunityController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.communityService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// UpdatePhoto replaces the community photo, owner only
// @Summary Update community photo
// @Tags communities
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Param photo formData file true "Community photo"
// @Success 200 {object} dto.APIResponse{data=dto.CommunityPhotoResponse} "Photo updated"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Router /communities/{id}/photo [put]
func (c *CommunityController) UpdatePhoto(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		bindingError(ctx, err)
		return
	}

	photoPath, err := c.communityService.UpdatePhoto(ctx, id, userID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CommunityPhotoResponse{Photo: photoPath}))
}

// Join enrolls the user into a community
// @Summary Join a community
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Success 200 {object} dto.APIResponse{data=dto.MembershipResponse} "Joined"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Router /communities/{id}/join [post]
func (c *CommunityController) Join(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.communityService.Join(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// Leave removes the user's membership
// @Summary Leave a community
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Success 200 {object} dto.APIResponse{data=dto.MembershipResponse} "Left"
// @Failure 403 {object} dto.ErrorResponse "Owner cannot leave"
// @Router /communities/{id}/leave [post]
func (c *CommunityController) Leave(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.communityService.Leave(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// RemoveMember kicks a member, owner only
// @Summary Remove a member
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Param userId path int true "Member user ID"
// @Success 200 {object} dto.APIResponse "Member removed"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Router /communities/{id}/members/{userId} [delete]
func (c *CommunityController) RemoveMember(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	memberID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	if err := c.communityService.RemoveMember(ctx, id, userID, memberID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Member removed successfully"))
}

// IsMember answers the membership check
// @Summary Check my membership
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Success 200 {object} dto.APIResponse{data=dto.MembershipResponse} "Membership state"
// @Router /communities/{id}/membership [get]
func (c *CommunityController) IsMember(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.communityService.IsMember(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// IsOwner answers the ownership check
// @Summary Check my ownership
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Success 200 {object} dto.APIResponse{data=dto.OwnershipResponse} "Ownership state"
// @Router /communities/{id}/ownership [get]
func (c *CommunityController) IsOwner(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.communityService.IsOwner(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetJoined lists the user's joined communities
// @Summary List my joined communities
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CommunityResponse} "Communities"
// @Router /communities/joined [get]
func (c *CommunityController) GetJoined(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	response, err := c.communityService.GetJoined(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetOwned lists the user's owned communities
// @Summary List my owned communities
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CommunityResponse} "Communities"
// @Router /communities/owned [get]
func (c *CommunityController) GetOwned(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	response, err := c.communityService.GetOwned(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// Explore groups top communities by the user's categories
// @Summary Explore communities
// @Description Top communities per category, drawn from the union of my interests and joined categories
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ExploreCategoryResponse} "Explore sections"
// @Router /communities/explore [get]
func (c *CommunityController) Explore(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	response, err := c.communityService.Explore(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// Search finds communities by name
// @Summary Search communities
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param q query string true "Name fragment"
// @Success 200 {object} dto.APIResponse{data=[]dto.CommunityResponse} "Matches"
// @Router /communities/search [get]
func (c *CommunityController) Search(ctx *gin.Context) {
	term := ctx.Query("q")
	if term == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing q parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.communityService.Search(ctx, term)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetPosts returns one page of the community feed
// @Summary Get community posts
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PostListResponse} "Posts"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Router /communities/{id}/posts [get]
func (c *CommunityController) GetPosts(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	response, err := c.feedService.GetCommunityFeed(ctx, id, userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}
