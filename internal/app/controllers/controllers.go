package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaan/socialsphere/internal/app/models/dto"
	"github.com/kaan/socialsphere/internal/app/services"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController         *AuthController
	UserController         *UserController
	CommunityController    *CommunityController
	PostController         *PostController
	FeedController         *FeedController
	ThreadController       *ThreadController
	LikeController         *LikeController
	NotificationController *NotificationController
}

// NewControllers initializes all controllers
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AuthController:         NewAuthController(svcs.AuthService),
		UserController:         NewUserController(svcs.UserService, svcs.PostService),
		CommunityController:    NewCommunityController(svcs.CommunityService, svcs.FeedService),
		PostController:         NewPostController(svcs.PostService),
		FeedController:         NewFeedController(svcs.FeedService),
		ThreadController:       NewThreadController(svcs.ThreadService),
		LikeController:         NewLikeController(svcs.LikeService, svcs.PostService),
		NotificationController: NewNotificationController(svcs.NotificationService),
	}
}

// parseIDParam reads a positive integer path parameter. On failure it writes
// the 400 response itself and reports false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// currentUserID reads the authenticated user id set by the JWT middleware.
// Routes reaching here always ran the middleware; a miss means a wiring bug,
// answered as unauthorized.
func currentUserID(ctx *gin.Context) (int64, bool) {
	value, exists := ctx.Get("userID")
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	userID, ok := value.(int64)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return userID, true
}

// bindingError writes the standard 400 response for a failed request bind
func bindingError(ctx *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
	errorDetail = errorDetail.WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
