package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/socialsphere/internal/app/controllers"
	"github.com/kaan/socialsphere/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrls.AuthController.Register)
		auth.POST("/login", ctrls.AuthController.Login)
		auth.POST("/refresh", ctrls.AuthController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.GET("/feed", ctrls.FeedController.GetHomeFeed)

	users := authenticated.Group("/users/me")
	{
		users.GET("", ctrls.UserController.GetProfile)
		users.GET("/email", ctrls.UserController.GetEmail)
		users.PUT("/username", ctrls.UserController.ChangeUsername)
		users.PUT("/password", ctrls.UserController.ChangePassword)
		users.PUT("/photo", ctrls.UserController.UpdateProfilePhoto)
	}

	communities := authenticated.Group("/communities")
	{
		communities.POST("", ctrls.CommunityController.Create)
		communities.GET("/joined", ctrls.CommunityController.GetJoined)
		communities.GET("/owned", ctrls.CommunityController.GetOwned)
		communities.GET("/explore", ctrls.CommunityController.Explore)
		communities.GET("/search", ctrls.CommunityController.Search)
		communities.GET("/:id", ctrls.CommunityController.GetByID)
		communities.PUT("/:id/photo", ctrls.CommunityController.UpdatePhoto)
		communities.POST("/:id/join", ctrls.CommunityController.Join)
		communities.POST("/:id/leave", ctrls.CommunityController.Leave)
		communities.GET("/:id/membership", ctrls.CommunityController.IsMember)
		communities.GET("/:id/ownership", ctrls.CommunityController.IsOwner)
		communities.DELETE("/:id/members/:userId", ctrls.CommunityController.RemoveMember)
		communities.GET("/:id/posts", ctrls.CommunityController.GetPosts)
	}

	posts := authenticated.Group("/posts")
	{
		posts.POST("", ctrls.PostController.Create)
		posts.GET("/mine", ctrls.UserController.GetMyPosts)
		posts.GET("/liked", ctrls.PostController.GetLiked)
		posts.GET("/commented", ctrls.PostController.GetCommented)
		posts.GET("/search", ctrls.PostController.Search)
		posts.DELETE("/:id", ctrls.PostController.Delete)
		posts.POST("/:id/seen", ctrls.FeedController.MarkSeen)
		posts.GET("/:id/comments", ctrls.ThreadController.GetThread)
		posts.POST("/:id/comments", ctrls.ThreadController.AddComment)
	}

	comments := authenticated.Group("/comments")
	{
		comments.DELETE("/:id", ctrls.ThreadController.DeleteComment)
		comments.POST("/:id/replies", ctrls.ThreadController.AddReply)
		comments.DELETE("/:id/replies/:replyId", ctrls.ThreadController.DeleteReply)
	}

	likes := authenticated.Group("/likes")
	{
		likes.GET("/post/:id", ctrls.LikeController.LikedState)
		likes.PUT("/:kind/:id", ctrls.LikeController.Like)
		likes.DELETE("/:kind/:id", ctrls.LikeController.Unlike)
	}

	notifications := authenticated.Group("/notifications")
	{
		notifications.GET("", ctrls.NotificationController.List)
		notifications.GET("/unseen", ctrls.NotificationController.ListUnseen)
		notifications.POST("/seen", ctrls.NotificationController.MarkAllSeen)
	}
}
