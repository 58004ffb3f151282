package repository

import (
	"context"
	"errors"

	"animedrop/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateReview is returned when the user already has a review on
// the anime. Surfaced from inside the submit transaction so the
// existence check and the insert cannot race each other.
var ErrDuplicateReview = errors.New("duplicate review")

type ReviewRepository interface {
	Submit(ctx context.Context, review *models.Review) (*models.Anime, error)
	ListByAnime(ctx context.Context, animeID int64) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Submit appends a review and recomputes the parent anime's average
// rating in one transaction. The anime row is locked first so two
// concurrent submissions serialize; otherwise both could read the
// pre-insert review list and store an average missing the other's
// rating. Returns gorm.ErrRecordNotFound when the anime is absent and
// ErrDuplicateReview when the user already reviewed it; nothing is
// written in either case.
func (r *reviewRepository) Submit(ctx context.Context, review *models.Review) (*models.Anime, error) {
	var anime models.Anime
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&anime, "id = ?", review.AnimeID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Review{}).
			Where("anime_id = ? AND user_id = ?", review.AnimeID, review.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateReview
		}

		if err := tx.Create(review).Error; err != nil {
			return err
		}

		// Full recompute over every review, not an incremental update.
		if err := tx.Where("anime_id = ?", review.AnimeID).
			Order("created_at ASC").
			Find(&anime.Reviews).Error; err != nil {
			return err
		}
		anime.RecalculateAverageRating()

		return tx.Model(&models.Anime{}).
			Where("id = ?", anime.ID).
			Update("average_rating", anime.AverageRating).Error
	})
	if err != nil {
		return nil, err
	}
	return &anime, nil
}

func (r *reviewRepository) ListByAnime(ctx context.Context, animeID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("anime_id = ?", animeID).
		Preload("User").
		Order("created_at ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
