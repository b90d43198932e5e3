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

// ExploreCategorySize caps how many communities the explore view shows per
// category.
const ExploreCategorySize = 6

// CommunityService handles community lifecycle and membership operations
type CommunityService struct {
	communityRepo *repositories.CommunityRepository
	userRepo      *repositories.UserRepository
	storage       filestorage.FileStorage
	notifications *NotificationService
	logger        zerolog.Logger
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(
	communityRepo *repositories.CommunityRepository,
	userRepo *repositories.UserRepository,
	storage filestorage.FileStorage,
	notifications *NotificationService,
	logger zerolog.Logger,
) *CommunityService {
	return &CommunityService{
		communityRepo: communityRepo,
		userRepo:      userRepo,
		storage:       storage,
		notifications: notifications,
		logger:        logger,
	}
}

// Create makes a community with the creator as owner and first member
func (s *CommunityService) Create(ctx context.Context, ownerID int64, req *dto.CreateCommunityRequest, photo *multipart.FileHeader) (*dto.CommunityResponse, error) {
	if !models.IsValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidationFailed, req.Category)
	}

	var photoPath *string
	if photo != nil {
		saved, err := s.storage.SaveFileWithPath(photo, "communities")
		if err != nil {
			return nil, err
		}
		photoPath = &saved
	}

	community := &models.Community{
		Name:        req.Name,
		Photo:       photoPath,
		Category:    req.Category,
		Description: req.Description,
		OwnerID:     ownerID,
	}

	id, err := s.communityRepo.Create(ctx, community)
	if err != nil {
		if photoPath != nil {
			_ = s.storage.DeleteFile(*photoPath)
		}
		return nil, err
	}

	s.logger.Info().Int64("communityID", id).Int64("ownerID", ownerID).Str("name", req.Name).Msg("Community created")

	created, err := s.communityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := mapCommunity(created)
	return &response, nil
}

// UpdatePhoto replaces the community photo, owner only. The old file is
// removed after the reference moves, so a delete failure only leaks a file.
func (s *CommunityService) UpdatePhoto(ctx context.Context, communityID, userID int64, photo *multipart.FileHeader) (string, error) {
	community, err := s.communityRepo.GetByID(ctx, communityID)
	if err != nil {
		return "", err
	}
	if community.OwnerID != userID {
		return "", apperrors.ErrPermissionDenied
	}

	saved, err := s.storage.SaveFileWithPath(photo, "communities")
	if err != nil {
		return "", err
	}

	if err := s.communityRepo.UpdatePhoto(ctx, communityID, &saved); err != nil {
		_ = s.storage.DeleteFile(saved)
		return "", err
	}

	if community.Photo != nil {
		if err := s.storage.DeleteFile(*community.Photo); err != nil {
			s.logger.Warn().Err(err).Str("path", *community.Photo).Msg("Failed to delete old community photo")
		}
	}

	return saved, nil
}

// GetByID returns the community with member and post counts
func (s *CommunityService) GetByID(ctx context.Context, id int64) (*dto.CommunityResponse, error) {
	community, err := s.communityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := mapCommunity(community)
	return &response, nil
}

// Join enrolls the user. Joining twice is harmless and answers the same way.
func (s *CommunityService) Join(ctx context.Context, communityID, userID int64) (*dto.MembershipResponse, error) {
	if _, err := s.communityRepo.GetByID(ctx, communityID); err != nil {
		return nil, err
	}

	if _, err := s.communityRepo.AddMember(ctx, communityID, userID); err != nil {
		return nil, err
	}

	return &dto.MembershipResponse{IsJoined: true}, nil
}

// Leave removes the user's membership. The owner keeps the community alive
// and cannot leave it.
func (s *CommunityService) Leave(ctx context.Context, communityID, userID int64) (*dto.MembershipResponse, error) {
	community, err := s.communityRepo.GetByID(ctx, communityID)
	if err != nil {
		return nil, err
	}

	if community.OwnerID == userID {
		return nil, apperrors.NewForbiddenError("community owner cannot leave the community")
	}

	if _, err := s.communityRepo.RemoveMember(ctx, communityID, userID); err != nil {
		return nil, err
	}

	return &dto.MembershipResponse{IsJoined: false}, nil
}

// RemoveMember kicks a member out, owner only. The removed user gets a
// notification so the disappearance is explained.
func (s *CommunityService) RemoveMember(ctx context.Context, communityID, ownerID, memberID int64) error {
	community, err := s.communityRepo.GetByID(ctx, communityID)
	if err != nil {
		return err
	}

	if community.OwnerID != ownerID {
		return apperrors.ErrPermissionDenied
	}
	if memberID == ownerID {
		return apperrors.NewBadRequestError("owner cannot remove themselves")
	}

	removed, err := s.communityRepo.RemoveMember(ctx, communityID, memberID)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrNotCommunityMember
	}

	s.notifications.Notify(ctx, memberID,
		fmt.Sprintf("You have been removed from %s", community.Name), NotificationRefs{})

	return nil
}

// IsMember answers the membership check
func (s *CommunityService) IsMember(ctx context.Context, communityID, userID int64) (*dto.MembershipResponse, error) {
	member, err := s.communityRepo.IsMember(ctx, communityID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.MembershipResponse{IsJoined: member}, nil
}

// IsOwner answers the ownership check
func (s *CommunityService) IsOwner(ctx context.Context, communityID, userID int64) (*dto.OwnershipResponse, error) {
	community, err := s.communityRepo.GetByID(ctx, communityID)
	if err != nil {
		return nil, err
	}
	return &dto.OwnershipResponse{IsOwner: community.OwnerID == userID}, nil
}

// GetJoined lists the user's joined communities
func (s *CommunityService) GetJoined(ctx context.Context, userID int64) ([]dto.CommunityResponse, error) {
	communities, err := s.communityRepo.GetJoinedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.mapCommunities(communities), nil
}

// GetOwned lists the communities the user created
func (s *CommunityService) GetOwned(ctx context.Context, userID int64) ([]dto.CommunityResponse, error) {
	communities, err := s.communityRepo.GetOwnedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.mapCommunities(communities), nil
}

// Search finds communities by case-insensitive name fragment
func (s *CommunityService) Search(ctx context.Context, term string) ([]dto.CommunityResponse, error) {
	communities, err := s.communityRepo.SearchByName(ctx, helpers.EscapeLikePattern(term))
	if err != nil {
		return nil, err
	}
	return s.mapCommunities(communities), nil
}

// Explore groups the top communities of every category the user cares
// about, meaning the union of signup interests and joined community
// categories.
func (s *CommunityService) Explore(ctx context.Context, userID int64) ([]dto.ExploreCategoryResponse, error) {
	interests, err := s.userRepo.GetInterests(ctx, userID)
	if err != nil {
		return nil, err
	}

	joined, err := s.communityRepo.GetMemberCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories := unionCategories(interests, joined)
	if len(categories) == 0 {
		return []dto.ExploreCategoryResponse{}, nil
	}

	grouped, err := s.communityRepo.GetTopByCategories(ctx, categories, ExploreCategorySize)
	if err != nil {
		return nil, err
	}

	// Deterministic section order: interests first, then joined extras
	result := make([]dto.ExploreCategoryResponse, 0, len(categories))
	for _, category := range categories {
		communities, ok := grouped[category]
		if !ok {
			continue
		}
		result = append(result, dto.ExploreCategoryResponse{
			Category:    category,
			Communities: s.mapCommunities(communities),
		})
	}

	return result, nil
}

func (s *CommunityService) mapCommunities(communities []models.Community) []dto.CommunityResponse {
	responses := make([]dto.CommunityResponse, 0, len(communities))
	for i := range communities {
		responses = append(responses, mapCommunity(&communities[i]))
	}
	return responses
}

// unionCategories merges two category lists keeping first-seen order
func unionCategories(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	result := []string{}
	for _, lists := range [][]string{a, b} {
		for _, category := range lists {
			if _, ok := seen[category]; ok {
				continue
			}
			seen[category] = struct{}{}
			result = append(result, category)
		}
	}
	return result
}
