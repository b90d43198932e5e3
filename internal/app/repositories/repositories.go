package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	CommunityRepository    *CommunityRepository
	PostRepository         *PostRepository
	CommentRepository      *CommentRepository
	LikeRepository         *LikeRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		CommunityRepository:    NewCommunityRepository(db),
		PostRepository:         NewPostRepository(db),
		CommentRepository:      NewCommentRepository(db),
		LikeRepository:         NewLikeRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
