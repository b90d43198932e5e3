package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kaan/socialsphere/internal/app/models"
	"github.com/kaan/socialsphere/internal/app/models/dto"
	"github.com/kaan/socialsphere/internal/app/repositories"
)

// NotificationRefs are the optional entity references attached to an inbox
// entry so the client can link back to the content.
type NotificationRefs struct {
	PostID    *int64
	CommentID *int64
	ReplyID   *int64
}

// NotificationService appends inbox entries and serves the inbox.
type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notificationRepo *repositories.NotificationRepository,
	logger zerolog.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Notify appends an unseen entry to the recipient's inbox. Delivery is
// best-effort: a failure is logged and never propagates into the mutation
// that triggered it.
func (s *NotificationService) Notify(ctx context.Context, recipientID int64, message string, refs NotificationRefs) {
	notification := &models.Notification{
		UserID:    recipientID,
		Message:   message,
		PostID:    refs.PostID,
		CommentID: refs.CommentID,
		ReplyID:   refs.ReplyID,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Error().Err(err).Int64("recipientID", recipientID).Msg("Failed to deliver notification")
	}
}

// List returns the user's full inbox, newest first
func (s *NotificationService) List(ctx context.Context, userID int64) (*dto.NotificationListResponse, error) {
	return s.list(ctx, userID, false)
}

// ListUnseen returns only the entries the user has not acknowledged yet
func (s *NotificationService) ListUnseen(ctx context.Context, userID int64) (*dto.NotificationListResponse, error) {
	return s.list(ctx, userID, true)
}

func (s *NotificationService) list(ctx context.Context, userID int64, unseenOnly bool) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID, unseenOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, mapNotification(n))
	}

	return &dto.NotificationListResponse{Notifications: responses}, nil
}

// MarkAllSeen acknowledges the whole inbox. Listing alone never flips the
// seen flag; the client acknowledges explicitly.
func (s *NotificationService) MarkAllSeen(ctx context.Context, userID int64) error {
	marked, err := s.notificationRepo.MarkAllSeen(ctx, userID)
	if err != nil {
		return err
	}

	s.logger.Debug().Int64("userID", userID).Int64("marked", marked).Msg("Notifications acknowledged")
	return nil
}
