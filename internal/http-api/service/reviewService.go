package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"animedrop/internal/cache"
	"animedrop/internal/http-api/dto"
	"animedrop/internal/http-api/models"
	"animedrop/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrAnimeNotFound   = errors.New("anime not found")
	ErrAlreadyReviewed = errors.New("you already reviewed this anime")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

type ReviewService interface {
	SubmitReview(ctx context.Context, animeID int64, reviewerID string, rating int, comment string) (*dto.AnimeResponse, error)
}

type reviewService struct {
	reviewRepo       repository.ReviewRepository
	animeRepo        repository.AnimeRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	cache            *cache.Cache
	logger           *slog.Logger
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	animeRepo repository.AnimeRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	c *cache.Cache,
	logger *slog.Logger,
) ReviewService {
	return &reviewService{
		reviewRepo:       reviewRepo,
		animeRepo:        animeRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		cache:            c,
		logger:           logger,
	}
}

// SubmitReview appends a review to an anime, recomputing the derived
// average rating in the same transaction. When the reviewer is not the
// owner, a "review" notification is created for the owner, but only
// after the review itself has been persisted. A review that fails any
// precondition leaves no state behind and emits nothing.
func (s *reviewService) SubmitReview(ctx context.Context, animeID int64, reviewerID string, rating int, comment string) (*dto.AnimeResponse, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	review := &models.Review{
		AnimeID: animeID,
		UserID:  reviewerID,
		Rating:  rating,
		Comment: comment,
	}

	anime, err := s.reviewRepo.Submit(ctx, review)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimeNotFound
		}
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	// The primary write is committed; notify the owner unless the
	// reviewer is reviewing their own anime.
	if anime.UserID != reviewerID {
		s.notifyOwner(ctx, anime, reviewerID)
	}

	s.cache.Delete(ctx, cache.AnimeKey(animeID), cache.DiscoveryKey)

	// Reload with the owner and reviewer identities resolved.
	full, err := s.animeRepo.GetByID(ctx, animeID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToAnimeResponse(full), nil
}

// notifyOwner is fire-and-forget: a failed notification write is
// logged and never rolls back the review.
func (s *reviewService) notifyOwner(ctx context.Context, anime *models.Anime, reviewerID string) {
	reviewer, err := s.userRepo.FindByID(reviewerID)
	if err != nil {
		s.logger.Warn("review notification skipped, reviewer lookup failed",
			"anime_id", anime.ID, "reviewer_id", reviewerID, "error", err)
		return
	}

	notification := &models.Notification{
		RecipientID: anime.UserID,
		SenderID:    reviewerID,
		Type:        models.NotificationTypeReview,
		Message:     fmt.Sprintf("%s reviewed your anime: %s", reviewer.Username, anime.Title),
		Link:        fmt.Sprintf("/anime/%d", anime.ID),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Warn("review notification write failed",
			"anime_id", anime.ID, "recipient_id", anime.UserID, "error", err)
	}
}
