package dto

import "animedrop/internal/http-api/models"

// UserSummary is the public identity shape embedded in other payloads.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func FromModelToUserSummary(u *models.User) UserSummary {
	if u == nil {
		return UserSummary{}
	}
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}

// MeResponse: the authenticated user's own view of their account
type MeResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	Bio       string `json:"bio"`
	Followers int64  `json:"followers"`
	Following int64  `json:"following"`
}

// ProfileResponse: another user's profile with social context
type ProfileResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Avatar    string          `json:"avatar"`
	Bio       string          `json:"bio"`
	Followers []UserSummary   `json:"followers"`
	Following []UserSummary   `json:"following"`
	AnimeList []AnimeResponse `json:"anime_list"`
}

// UpdateProfileDTO used for PUT /api/users/me (partial updates allowed).
// Pointer fields distinguish "absent" from legitimate zero values such
// as clearing the bio to an empty string.
type UpdateProfileDTO struct {
	Bio    *string `json:"bio,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

func (d UpdateProfileDTO) ApplyTo(u *models.User) {
	if d.Bio != nil {
		u.Bio = *d.Bio
	}
	if d.Avatar != nil {
		u.Avatar = *d.Avatar
	}
}
