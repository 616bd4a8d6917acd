package mapper

import (
	"notes-backend/internal/dto"
	"notes-backend/internal/entity"
)

// ToUserResponse never carries the password hash outward.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Name:   u.Name,
		Role:   string(u.Role),
		Active: u.Active,
	}
}

func ToUserResponses(users []*entity.User) []*dto.UserResponse {
	out := make([]*dto.UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}
