package service

import (
	"context"
	"errors"

	"animedrop/internal/http-api/dto"
	"animedrop/internal/http-api/repository"

	"gorm.io/gorm"
)

const (
	userSearchLimit = 20
	profileAnimeCap = 10
)

type UserService interface {
	Me(ctx context.Context, userID string) (*dto.MeResponse, error)
	Search(ctx context.Context, username string) ([]dto.UserSummary, error)
	Profile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileDTO) (*dto.MeResponse, error)
}

type userService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	animeRepo  repository.AnimeRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	animeRepo repository.AnimeRepository,
) UserService {
	return &userService{userRepo: userRepo, followRepo: followRepo, animeRepo: animeRepo}
}

func (s *userService) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.MeResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Bio:       user.Bio,
		Followers: followers,
		Following: following,
	}, nil
}

func (s *userService) Search(ctx context.Context, username string) ([]dto.UserSummary, error) {
	users, err := s.userRepo.Search(username, userSearchLimit)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.UserSummary, 0, len(users))
	for i := range users {
		resp = append(resp, dto.FromModelToUserSummary(&users[i]))
	}
	return resp, nil
}

// Profile returns a user with their social context and latest anime.
func (s *userService) Profile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	followers, err := s.followRepo.Followers(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.Following(ctx, userID)
	if err != nil {
		return nil, err
	}
	animes, err := s.animeRepo.ListByUser(ctx, userID, profileAnimeCap)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Avatar:    user.Avatar,
		Bio:       user.Bio,
		Followers: make([]dto.UserSummary, 0, len(followers)),
		Following: make([]dto.UserSummary, 0, len(following)),
		AnimeList: make([]dto.AnimeResponse, 0, len(animes)),
	}
	for i := range followers {
		resp.Followers = append(resp.Followers, dto.FromModelToUserSummary(&followers[i]))
	}
	for i := range following {
		resp.Following = append(resp.Following, dto.FromModelToUserSummary(&following[i]))
	}
	for i := range animes {
		resp.AnimeList = append(resp.AnimeList, *dto.FromModelToAnimeResponse(&animes[i]))
	}
	return resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileDTO) (*dto.MeResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	req.ApplyTo(user)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.Me(ctx, userID)
}
