package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/kaan/socialsphere/internal/app/models"
	"github.com/kaan/socialsphere/internal/app/repositories"
	"github.com/kaan/socialsphere/internal/pkg/apperrors"
	"github.com/kaan/socialsphere/internal/pkg/auth"
	"github.com/kaan/socialsphere/internal/pkg/filestorage"
)

// UserService handles account profile operations
type UserService struct {
	userRepo *repositories.UserRepository
	storage  filestorage.FileStorage
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo *repositories.UserRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

// GetProfile returns the user with interest categories loaded
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	interests, err := s.userRepo.GetInterests(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.InterestedCategories = interests

	return user, nil
}

// GetEmail returns the account email
func (s *UserService) GetEmail(ctx context.Context, userID int64) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Email, nil
}

// ChangeUsername renames the account
func (s *UserService) ChangeUsername(ctx context.Context, userID int64, newUsername string) error {
	err := s.userRepo.UpdateUsername(ctx, userID, newUsername)
	if err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Str("newUsername", newUsername).Msg("Username changed")
	return nil
}

// ChangePassword rotates the password after verifying the current one
func (s *UserService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, oldPassword) {
		return apperrors.ErrInvalidCredentials
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Msg("Password changed")
	return nil
}

// UpdateProfilePhoto stores the uploaded photo and swaps the reference. The
// previous photo is deleted best-effort once the reference is updated.
func (s *UserService) UpdateProfilePhoto(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}

	photoPath, err := s.storage.SaveFileWithPath(fileHeader, "profiles")
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdateProfilePhoto(ctx, userID, &photoPath); err != nil {
		// Reference update failed, don't leak the new file
		_ = s.storage.DeleteFile(photoPath)
		return "", err
	}

	if user.ProfilePhoto != nil {
		if err := s.storage.DeleteFile(*user.ProfilePhoto); err != nil {
			s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to delete previous profile photo")
		}
	}

	return photoPath, nil
}
