package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/kaan/socialsphere/internal/app/models"
	"github.com/kaan/socialsphere/internal/app/models/dto"
	"github.com/kaan/socialsphere/internal/app/repositories"
	"github.com/kaan/socialsphere/internal/pkg/apperrors"
	"github.com/kaan/socialsphere/internal/pkg/filestorage"
	"github.com/kaan/socialsphere/internal/pkg/helpers"
)

// PostService handles post lifecycle and the per-user post listings
type PostService struct {
	postRepo      *repositories.PostRepository
	communityRepo *repositories.CommunityRepository
	userRepo      *repositories.UserRepository
	storage       filestorage.FileStorage
	logger        zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo *repositories.PostRepository,
	communityRepo *repositories.CommunityRepository,
	userRepo *repositories.UserRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *PostService {
	return &PostService{
		postRepo:      postRepo,
		communityRepo: communityRepo,
		userRepo:      userRepo,
		storage:       storage,
		logger:        logger,
	}
}

// Create publishes a post into a community the author belongs to
func (s *PostService) Create(ctx context.Context, authorID int64, req *dto.CreatePostRequest, media *multipart.FileHeader) (*dto.PostResponse, error) {
	if len(req.Description) > models.MaxPostDescriptionLength {
		return nil, fmt.Errorf("%w: description exceeds %d characters",
			apperrors.ErrValidationFailed, models.MaxPostDescriptionLength)
	}

	member, err := s.communityRepo.IsMember(ctx, req.CommunityID, authorID)
	if err != nil {
		return nil, err
	}
	if !member {
		if _, err := s.communityRepo.GetByID(ctx, req.CommunityID); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrNotCommunityMember
	}

	var mediaPath *string
	if media != nil {
		saved, err := s.storage.SaveFileWithPath(media, "posts")
		if err != nil {
			return nil, err
		}
		mediaPath = &saved
	}

	post := &models.Post{
		CommunityID: req.CommunityID,
		UserID:      authorID,
		Description: req.Description,
		Media:       mediaPath,
	}

	id, err := s.postRepo.Create(ctx, post)
	if err != nil {
		if mediaPath != nil {
			_ = s.storage.DeleteFile(*mediaPath)
		}
		return nil, err
	}

	s.logger.Info().Int64("postID", id).Int64("authorID", authorID).
		Int64("communityID", req.CommunityID).Msg("Post created")

	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	community, err := s.communityRepo.GetByID(ctx, req.CommunityID)
	if err != nil {
		return nil, err
	}

	return &dto.PostResponse{
		ID:          post.ID,
		Description: post.Description,
		Media:       post.Media,
		UploadTime:  post.UploadTime,
		Author: dto.UserSummary{
			ID:           author.ID,
			Username:     author.Username,
			ProfilePhoto: author.ProfilePhoto,
		},
		Community: dto.CommunitySummary{
			ID:    community.ID,
			Name:  community.Name,
			Photo: community.Photo,
		},
	}, nil
}

// Delete removes a post, author only. The thread, like rows and seen rows
// go with it; the media file is deleted best-effort afterwards.
func (s *PostService) Delete(ctx context.Context, postID, userID int64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		return apperrors.ErrPermissionDenied
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	if post.Media != nil {
		if err := s.storage.DeleteFile(*post.Media); err != nil {
			s.logger.Warn().Err(err).Int64("postID", postID).Msg("Failed to delete post media")
		}
	}

	s.logger.Info().Int64("postID", postID).Int64("userID", userID).Msg("Post deleted")
	return nil
}

// GetMine returns a page of the user's own posts
func (s *PostService) GetMine(ctx context.Context, userID int64, page, size int) (*dto.PostListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	posts, total, err := s.postRepo.GetByAuthor(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.buildPage(posts, total, page, size), nil
}

// GetLiked returns a page of the posts the user has liked
func (s *PostService) GetLiked(ctx context.Context, userID int64, page, size int) (*dto.PostListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	posts, total, err := s.postRepo.GetLikedBy(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.buildPage(posts, total, page, size), nil
}

// GetCommented returns a page of the posts the user has commented on
func (s *PostService) GetCommented(ctx context.Context, userID int64, page, size int) (*dto.PostListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	posts, total, err := s.postRepo.GetCommentedBy(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.buildPage(posts, total, page, size), nil
}

// Search finds posts by case-insensitive description fragment
func (s *PostService) Search(ctx context.Context, viewerID int64, term string) ([]dto.PostResponse, error) {
	posts, err := s.postRepo.Search(ctx, viewerID, helpers.EscapeLikePattern(term))
	if err != nil {
		return nil, err
	}
	return mapEnrichedPosts(posts), nil
}

// LikedState answers whether the viewer has liked the post
func (s *PostService) LikedState(ctx context.Context, postID, viewerID int64) (*dto.LikedStateResponse, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrPostNotFound
	}

	liked, err := s.postRepo.IsLikedBy(ctx, postID, viewerID)
	if err != nil {
		return nil, err
	}
	return &dto.LikedStateResponse{IsLiked: liked}, nil
}

func (s *PostService) buildPage(posts []repositories.EnrichedPost, total int64, page, size int) *dto.PostListResponse {
	return &dto.PostListResponse{
		Posts:          mapEnrichedPosts(posts),
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}
}
