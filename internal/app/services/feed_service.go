package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kaan/socialsphere/internal/app/models/dto"
	"github.com/kaan/socialsphere/internal/app/repositories"
	"github.com/kaan/socialsphere/internal/pkg/apperrors"
	"github.com/kaan/socialsphere/internal/pkg/helpers"
)

// FeedService selects the home feed page and tracks the seen set
type FeedService struct {
	postRepo      *repositories.PostRepository
	communityRepo *repositories.CommunityRepository
	userRepo      *repositories.UserRepository
	homePageSize  int
	logger        zerolog.Logger
}

// NewFeedService creates a new FeedService
func NewFeedService(
	postRepo *repositories.PostRepository,
	communityRepo *repositories.CommunityRepository,
	userRepo *repositories.UserRepository,
	homePageSize int,
	logger zerolog.Logger,
) *FeedService {
	return &FeedService{
		postRepo:      postRepo,
		communityRepo: communityRepo,
		userRepo:      userRepo,
		homePageSize:  homePageSize,
		logger:        logger,
	}
}

// GetHomeFeed assembles the viewer's home page. Members of at least one
// community get the newest unseen posts from those communities. A viewer who
// joined nothing falls back to the interest categories picked at signup,
// ordered by popularity since there is no community recency signal they
// opted into. Both paths exclude every post in the viewer's seen set and cap
// the page.
func (s *FeedService) GetHomeFeed(ctx context.Context, viewerID int64) (*dto.FeedResponse, error) {
	exists, err := s.userRepo.Exists(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	joined, err := s.communityRepo.CountJoined(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	var posts []repositories.EnrichedPost
	if joined > 0 {
		posts, err = s.postRepo.FeedForJoined(ctx, viewerID, s.homePageSize)
	} else {
		posts, err = s.postRepo.FeedForInterests(ctx, viewerID, s.homePageSize)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("viewerID", viewerID).Int("posts", len(posts)).
		Bool("coldStart", joined == 0).Msg("Home feed assembled")

	return &dto.FeedResponse{Posts: mapEnrichedPosts(posts)}, nil
}

// MarkSeen records that the viewer was shown a post, so it never reappears
// in the home feed. Marking an already seen post changes nothing.
func (s *FeedService) MarkSeen(ctx context.Context, viewerID, postID int64) error {
	exists, err := s.userRepo.Exists(ctx, viewerID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrUserNotFound
	}

	return s.userRepo.MarkPostSeen(ctx, viewerID, postID)
}

// GetCommunityFeed returns one page of a community's posts, newest first
func (s *FeedService) GetCommunityFeed(ctx context.Context, communityID, viewerID int64, page, size int) (*dto.PostListResponse, error) {
	if _, err := s.communityRepo.GetByID(ctx, communityID); err != nil {
		return nil, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	posts, total, err := s.postRepo.GetByCommunity(ctx, communityID, viewerID, offset, limit)
	if err != nil {
		return nil, err
	}

	return &dto.PostListResponse{
		Posts:          mapEnrichedPosts(posts),
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}, nil
}
