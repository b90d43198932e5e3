package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kaan/socialsphere/internal/app/models"
	appRepos "github.com/kaan/socialsphere/internal/app/repositories"
	"github.com/kaan/socialsphere/internal/pkg/apperrors"
	"github.com/kaan/socialsphere/internal/pkg/auth"
)

const systemUsername = "socialsphere"

// starterCommunities is one community per category so fresh installs have
// something to explore and cold-start feeds are not empty.
var starterCommunities = map[string]string{
	"Technology": "Tech Talk",
	"Food":       "Home Cooking",
	"Sports":     "Matchday",
	"Music":      "Listening Room",
	"Art":        "Open Studio",
	"Gaming":     "Game Night",
	"Travel":     "Trip Notes",
	"Science":    "Lab Notes",
}

// CreateDefaultData creates the system account and the starter communities
// if they don't exist yet. Errors are collected so one failure does not stop
// the rest of the seeding.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	communityRepo := appRepos.NewCommunityRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")

	systemUser, err := userRepo.FindByUsername(ctx, systemUsername)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return fmt.Errorf("failed to look up system user: %w", err)
		}

		// Random password: the system account is never logged into
		passwordHash, err := auth.HashPassword(uuid.New().String())
		if err != nil {
			return fmt.Errorf("failed to hash system user password: %w", err)
		}

		systemUser = &appModels.User{
			Email:    "system@socialsphere.app",
			Username: systemUsername,
			Password: passwordHash,
		}
		systemUser.ID, err = userRepo.Create(ctx, systemUser)
		if err != nil {
			return fmt.Errorf("failed to create system user: %w", err)
		}
		lgr.Info().Int64("userID", systemUser.ID).Msg("System user created")
	}

	owned, err := communityRepo.GetOwnedByUser(ctx, systemUser.ID)
	if err != nil {
		return fmt.Errorf("failed to list system communities: %w", err)
	}

	existing := make(map[string]bool, len(owned))
	for _, community := range owned {
		existing[community.Category] = true
	}

	var finalErr error
	for _, category := range appModels.Categories {
		if existing[category] {
			continue
		}

		community := &appModels.Community{
			Name:        starterCommunities[category],
			Category:    category,
			Description: fmt.Sprintf("The starter community for everything %s.", category),
			OwnerID:     systemUser.ID,
		}
		if _, err := communityRepo.Create(ctx, community); err != nil {
			lgr.Error().Err(err).Str("category", category).Msg("Error creating starter community")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete")
	}
	return finalErr
}
