package service

import (
	"context"

	"studyflow/internal/domain"
	"studyflow/internal/dto"
	"studyflow/internal/repository"
)

// UserService exposes profile lookups for authenticated users.
type UserService interface {
	GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User")
	}

	profile := &dto.UserProfileResponse{
		ID:    user.ID,
		Email: user.Email,
	}
	if user.Name.Valid {
		profile.Name = user.Name.String
	}
	if user.ProfilePictureURL.Valid {
		profile.ProfilePictureURL = user.ProfilePictureURL.String
	}
	return profile, nil
}
