package services

import (
	"github.com/rs/zerolog"

	"github.com/kaan/socialsphere/internal/app/repositories"
	"github.com/kaan/socialsphere/internal/config"
	"github.com/kaan/socialsphere/internal/pkg/auth"
	"github.com/kaan/socialsphere/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	UserService         *UserService
	CommunityService    *CommunityService
	PostService         *PostService
	FeedService         *FeedService
	ThreadService       *ThreadService
	LikeService         *LikeService
	NotificationService *NotificationService
}

// NewServices wires every service with its repositories. Notification
// delivery is injected into the mutating services so like, comment and
// reply side effects all flow through one emitter.
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	storage filestorage.FileStorage,
	cfg *config.Config,
	logger zerolog.Logger,
) *Services {
	notificationService := NewNotificationService(repos.NotificationRepository, logger)

	return &Services{
		AuthService: NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService, logger),
		UserService: NewUserService(repos.UserRepository, storage, logger),
		CommunityService: NewCommunityService(
			repos.CommunityRepository, repos.UserRepository, storage, notificationService, logger),
		PostService: NewPostService(
			repos.PostRepository, repos.CommunityRepository, repos.UserRepository, storage, logger),
		FeedService: NewFeedService(
			repos.PostRepository, repos.CommunityRepository, repos.UserRepository, cfg.Feed.HomePageSize, logger),
		ThreadService: NewThreadService(
			repos.CommentRepository, repos.PostRepository, repos.UserRepository, notificationService, logger),
		LikeService: NewLikeService(
			repos.LikeRepository, repos.CommentRepository, repos.UserRepository, notificationService, logger),
		NotificationService: notificationService,
	}
}
