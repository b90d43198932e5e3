package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/socialsphere/internal/app/models/dto"
	"github.com/kaan/socialsphere/internal/app/services"
	"github.com/kaan/socialsphere/internal/middleware"
	"github.com/kaan/socialsphere/internal/pkg/helpers"
)

// UserController handles profile and account operations
type UserController struct {
	userService *services.UserService
	postService *services.PostService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, postService *services.PostService) *UserController {
	return &UserController{
		userService: userService,
		postService: postService,
	}
}

// GetProfile returns the authenticated user's profile
// @Summary Get my profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Profile"
// @Router /users/me [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// GetEmail returns the account email
// @Summary Get my email
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserEmailResponse} "Email"
// @Router /users/me/email [get]
func (c *UserController) GetEmail(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	email, err := c.userService.GetEmail(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UserEmailResponse{Email: email}))
}

// ChangeUsername renames the account
// @Summary Change my username
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangeUsernameRequest true "New username"
// @Success 200 {object} dto.APIResponse "Username changed"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Router /users/me/username [put]
func (c *UserController) ChangeUsername(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.ChangeUsernameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	if err := c.userService.ChangeUsername(ctx, userID, req.NewUsername); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Username changed successfully"))
}

// ChangePassword rotates the account password
// @Summary Change my password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.APIResponse "Password changed"
// @Failure 401 {object} dto.ErrorResponse "Old password wrong"
// @Router /users/me/password [put]
func (c *UserController) ChangePassword(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	if err := c.userService.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Password changed successfully"))
}

// UpdateProfilePhoto uploads a new profile photo
// @Summary Update my profile photo
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Profile photo"
// @Success 200 {object} dto.APIResponse{data=dto.ProfilePhotoResponse} "Photo updated"
// @Router /users/me/photo [put]
func (c *UserController) UpdateProfilePhoto(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		bindingError(ctx, err)
		return
	}

	photoPath, err := c.userService.UpdateProfilePhoto(ctx, userID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ProfilePhotoResponse{ProfilePhoto: photoPath}))
}

// GetMyPosts lists the authenticated user's posts
// @Summary List my posts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PostListResponse} "Posts"
// @Router /posts/mine [get]
func (c *UserController) GetMyPosts(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	response, err := c.postService.GetMine(ctx, userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}
