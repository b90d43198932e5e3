package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/kaan/socialsphere/internal/app/models"
	"github.com/kaan/socialsphere/internal/app/models/dto"
	"github.com/kaan/socialsphere/internal/app/repositories"
	"github.com/kaan/socialsphere/internal/pkg/apperrors"
)

// ThreadService assembles a post's comment tree and handles comment and
// reply mutations
type ThreadService struct {
	commentRepo   *repositories.CommentRepository
	postRepo      *repositories.PostRepository
	userRepo      *repositories.UserRepository
	notifications *NotificationService
	logger        zerolog.Logger
}

// NewThreadService creates a new ThreadService
func NewThreadService(
	commentRepo *repositories.CommentRepository,
	postRepo *repositories.PostRepository,
	userRepo *repositories.UserRepository,
	notifications *NotificationService,
	logger zerolog.Logger,
) *ThreadService {
	return &ThreadService{
		commentRepo:   commentRepo,
		postRepo:      postRepo,
		userRepo:      userRepo,
		notifications: notifications,
		logger:        logger,
	}
}

// rankComments orders a post's comments for a viewer: the viewer's own
// comments first in creation order, then everyone else's by like count
// descending. Ties keep the incoming creation order, so the function is
// deterministic for equal inputs.
func rankComments(comments []repositories.EnrichedComment, viewerID int64) []repositories.EnrichedComment {
	ranked := make([]repositories.EnrichedComment, len(comments))
	copy(ranked, comments)

	sort.SliceStable(ranked, func(i, j int) bool {
		iMine := ranked[i].UserID == viewerID
		jMine := ranked[j].UserID == viewerID
		if iMine != jMine {
			return iMine
		}
		if iMine {
			// both are the viewer's, keep creation order
			return false
		}
		return ranked[i].Likes > ranked[j].Likes
	})

	return ranked
}

// GetThread returns the post's ordered comment tree with full reply lists
func (s *ThreadService) GetThread(ctx context.Context, postID, viewerID int64) (*dto.ThreadResponse, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrPostNotFound
	}

	comments, err := s.commentRepo.GetByPost(ctx, postID, viewerID)
	if err != nil {
		return nil, err
	}

	ranked := rankComments(comments, viewerID)

	commentIDs := make([]int64, 0, len(ranked))
	for _, c := range ranked {
		commentIDs = append(commentIDs, c.ID)
	}

	replies, err := s.commentRepo.GetRepliesByComments(ctx, commentIDs, viewerID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(ranked))
	for _, c := range ranked {
		responses = append(responses, dto.CommentResponse{
			ID:            c.ID,
			PostID:        c.PostID,
			Text:          c.Text,
			Likes:         c.Likes,
			LikedByViewer: c.LikedByViewer,
			CreatedAt:     c.CreatedAt,
			Author:        authorSummary(c.UserID, c.AuthorUsername, c.AuthorPhoto),
			Replies:       mapReplies(replies[c.ID]),
		})
	}

	return &dto.ThreadResponse{Comments: responses}, nil
}

func mapReplies(replies []repositories.EnrichedReply) []dto.ReplyResponse {
	responses := make([]dto.ReplyResponse, 0, len(replies))
	for _, rep := range replies {
		responses = append(responses, dto.ReplyResponse{
			ID:            rep.ID,
			CommentID:     rep.CommentID,
			Text:          rep.Text,
			Likes:         rep.Likes,
			LikedByViewer: rep.LikedByViewer,
			CreatedAt:     rep.CreatedAt,
			Author:        authorSummary(rep.UserID, rep.AuthorUsername, rep.AuthorPhoto),
		})
	}
	return responses
}

// AddComment appends a comment to the post's thread and notifies the post
// owner, unless the commenter is the owner
func (s *ThreadService) AddComment(ctx context.Context, postID, userID int64, text string) (*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	}

	if _, err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if post.UserID != userID {
		actor := s.actorName(ctx, userID)
		s.notifications.Notify(ctx, post.UserID,
			fmt.Sprintf("%s commented on your post", actor),
			NotificationRefs{PostID: &postID, CommentID: &comment.ID})
	}

	return comment, nil
}

// DeleteComment removes a comment with its replies and like rows, author only
func (s *ThreadService) DeleteComment(ctx context.Context, commentID, userID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != userID {
		return apperrors.ErrPermissionDenied
	}

	return s.commentRepo.Delete(ctx, commentID)
}

// AddReply appends a reply to a comment in the given post's thread and
// notifies the post owner, unless the replier is the owner
func (s *ThreadService) AddReply(ctx context.Context, postID, commentID, userID int64, text string) (*models.Reply, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		// The comment exists but not under this post
		return nil, apperrors.ErrCommentNotFound
	}

	reply := &models.Reply{
		CommentID: commentID,
		UserID:    userID,
		Text:      text,
	}

	if _, err := s.commentRepo.CreateReply(ctx, reply); err != nil {
		return nil, err
	}

	if post.UserID != userID {
		actor := s.actorName(ctx, userID)
		s.notifications.Notify(ctx, post.UserID,
			fmt.Sprintf("%s replied to a comment on your post", actor),
			NotificationRefs{PostID: &postID, CommentID: &commentID, ReplyID: &reply.ID})
	}

	return reply, nil
}

// DeleteReply splices a reply out of its parent comment, author only. The
// reply is addressed by its (commentID, replyID) pair.
func (s *ThreadService) DeleteReply(ctx context.Context, commentID, replyID, userID int64) error {
	reply, err := s.commentRepo.GetReply(ctx, commentID, replyID)
	if err != nil {
		return err
	}

	if reply.UserID != userID {
		return apperrors.ErrPermissionDenied
	}

	return s.commentRepo.DeleteReply(ctx, commentID, replyID)
}

// actorName resolves the acting user's display name for notification
// messages, degrading to the placeholder when the record is gone
func (s *ThreadService) actorName(ctx context.Context, userID int64) string {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return dto.PlaceholderUsername
	}
	return user.Username
}
