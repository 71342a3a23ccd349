package converter

import (
	"psicoclinica-server/internal/delivery/dto"
	"psicoclinica-server/internal/domain/entity"
)

// UserProfileToResponse converts a UserProfile entity to its DTO
func UserProfileToResponse(profile *entity.UserProfile) *dto.UserResponse {
	if profile == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}
