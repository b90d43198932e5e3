package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kaan/socialsphere/internal/app/models"
	"github.com/kaan/socialsphere/internal/app/models/dto"
	"github.com/kaan/socialsphere/internal/app/repositories"
)

// LikeService is the front of the like ledger. Like and Unlike are an
// explicit pair; neither ever toggles, so a duplicate request reports the
// current state instead of undoing the first one.
type LikeService struct {
	likeRepo      *repositories.LikeRepository
	commentRepo   *repositories.CommentRepository
	userRepo      *repositories.UserRepository
	notifications *NotificationService
	logger        zerolog.Logger
}

// NewLikeService creates a new LikeService
func NewLikeService(
	likeRepo *repositories.LikeRepository,
	commentRepo *repositories.CommentRepository,
	userRepo *repositories.UserRepository,
	notifications *NotificationService,
	logger zerolog.Logger,
) *LikeService {
	return &LikeService{
		likeRepo:      likeRepo,
		commentRepo:   commentRepo,
		userRepo:      userRepo,
		notifications: notifications,
		logger:        logger,
	}
}

// Like adds the user to the entity's likedBy set. When the set actually
// changed, the content owner gets a notification, except when they liked
// their own content.
func (s *LikeService) Like(ctx context.Context, kind models.LikeableKind, entityID, userID int64) (*dto.LikeResponse, error) {
	result, err := s.likeRepo.Like(ctx, kind, entityID, userID)
	if err != nil {
		return nil, err
	}

	if result.Changed && result.OwnerID != userID {
		s.notifyOwner(ctx, kind, entityID, userID, result.OwnerID)
	}

	return &dto.LikeResponse{Liked: true, LikeCount: result.LikeCount}, nil
}

// Unlike removes the user from the entity's likedBy set. No notification is
// emitted on unlike.
func (s *LikeService) Unlike(ctx context.Context, kind models.LikeableKind, entityID, userID int64) (*dto.LikeResponse, error) {
	result, err := s.likeRepo.Unlike(ctx, kind, entityID, userID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeResponse{Liked: false, LikeCount: result.LikeCount}, nil
}

func (s *LikeService) notifyOwner(ctx context.Context, kind models.LikeableKind, entityID, actorID, ownerID int64) {
	actor := dto.PlaceholderUsername
	if user, err := s.userRepo.FindByID(ctx, actorID); err == nil {
		actor = user.Username
	}

	refs := NotificationRefs{}
	switch kind {
	case models.LikeablePost:
		refs.PostID = &entityID
	case models.LikeableComment:
		refs.CommentID = &entityID
		// Attach the enclosing post so the client can open the thread
		if comment, err := s.commentRepo.GetByID(ctx, entityID); err == nil {
			refs.PostID = &comment.PostID
		}
	case models.LikeableReply:
		refs.ReplyID = &entityID
	}

	s.notifications.Notify(ctx, ownerID,
		fmt.Sprintf("%s liked your %s", actor, kind), refs)
}
