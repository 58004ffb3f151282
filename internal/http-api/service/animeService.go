package service

import (
	"context"
	"errors"
	"log/slog"

	"animedrop/internal/cache"
	"animedrop/internal/http-api/dto"
	"animedrop/internal/http-api/repository"

	"gorm.io/gorm"
)

// ErrNotOwner is returned when a user mutates an anime they do not own.
var ErrNotOwner = errors.New("not authorized")

const (
	discoveryLimit = 50
	myListLimit    = 0 // unbounded
)

type AnimeService interface {
	Create(ctx context.Context, userID string, req dto.CreateAnimeDTO) (*dto.AnimeResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.AnimeResponse, error)
	Discovery(ctx context.Context, genre, search string) ([]dto.AnimeResponse, error)
	MyList(ctx context.Context, userID string) ([]dto.AnimeResponse, error)
	Update(ctx context.Context, userID string, id int64, req dto.UpdateAnimeDTO) (*dto.AnimeResponse, error)
	Delete(ctx context.Context, userID string, id int64) error
}

type animeService struct {
	animeRepo repository.AnimeRepository
	cache     *cache.Cache
	logger    *slog.Logger
}

func NewAnimeService(animeRepo repository.AnimeRepository, c *cache.Cache, logger *slog.Logger) AnimeService {
	return &animeService{animeRepo: animeRepo, cache: c, logger: logger}
}

func (s *animeService) Create(ctx context.Context, userID string, req dto.CreateAnimeDTO) (*dto.AnimeResponse, error) {
	anime := req.ToModel(userID)
	if err := s.animeRepo.Create(ctx, &anime); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, cache.DiscoveryKey)

	full, err := s.animeRepo.GetByID(ctx, anime.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToAnimeResponse(full), nil
}

func (s *animeService) GetByID(ctx context.Context, id int64) (*dto.AnimeResponse, error) {
	key := cache.AnimeKey(id)
	var cached dto.AnimeResponse
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	anime, err := s.animeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimeNotFound
		}
		return nil, err
	}

	resp := dto.FromModelToAnimeResponse(anime)
	s.cache.SetJSON(ctx, key, resp)
	return resp, nil
}

// Discovery lists public anime, newest first. The unfiltered feed is
// the hot path and goes through the cache.
func (s *animeService) Discovery(ctx context.Context, genre, search string) ([]dto.AnimeResponse, error) {
	unfiltered := genre == "" && search == ""
	if unfiltered {
		var cached []dto.AnimeResponse
		if hit, err := s.cache.GetJSON(ctx, cache.DiscoveryKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	animes, err := s.animeRepo.Discover(ctx, genre, search, discoveryLimit)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.AnimeResponse, 0, len(animes))
	for i := range animes {
		resp = append(resp, *dto.FromModelToAnimeResponse(&animes[i]))
	}
	if unfiltered {
		s.cache.SetJSON(ctx, cache.DiscoveryKey, resp)
	}
	return resp, nil
}

func (s *animeService) MyList(ctx context.Context, userID string) ([]dto.AnimeResponse, error) {
	animes, err := s.animeRepo.ListByUser(ctx, userID, myListLimit)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.AnimeResponse, 0, len(animes))
	for i := range animes {
		resp = append(resp, *dto.FromModelToAnimeResponse(&animes[i]))
	}
	return resp, nil
}

// Update applies a partial update to an owned anime. Fields absent from
// the request keep their stored values; present zero values are stored.
func (s *animeService) Update(ctx context.Context, userID string, id int64, req dto.UpdateAnimeDTO) (*dto.AnimeResponse, error) {
	anime, err := s.animeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimeNotFound
		}
		return nil, err
	}
	if anime.UserID != userID {
		return nil, ErrNotOwner
	}

	req.ApplyTo(anime)
	if err := s.animeRepo.Update(ctx, anime); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, cache.AnimeKey(id), cache.DiscoveryKey)

	return dto.FromModelToAnimeResponse(anime), nil
}

func (s *animeService) Delete(ctx context.Context, userID string, id int64) error {
	anime, err := s.animeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnimeNotFound
		}
		return err
	}
	if anime.UserID != userID {
		return ErrNotOwner
	}

	if err := s.animeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, cache.AnimeKey(id), cache.DiscoveryKey)
	return nil
}
