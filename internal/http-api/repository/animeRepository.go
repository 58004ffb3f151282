package repository

import (
	"context"

	"animedrop/internal/http-api/models"

	"gorm.io/gorm"
)

type AnimeRepository interface {
	Create(ctx context.Context, anime *models.Anime) error
	GetByID(ctx context.Context, id int64) (*models.Anime, error)
	Update(ctx context.Context, anime *models.Anime) error
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Anime, error)
	Discover(ctx context.Context, genre, search string, limit int) ([]models.Anime, error)
}

type animeRepository struct {
	db *gorm.DB
}

func NewAnimeRepository(db *gorm.DB) AnimeRepository {
	return &animeRepository{db: db}
}

func (r *animeRepository) Create(ctx context.Context, anime *models.Anime) error {
	return r.db.WithContext(ctx).Create(anime).Error
}

// GetByID loads an anime with its owner and reviewer identities resolved.
func (r *animeRepository) GetByID(ctx context.Context, id int64) (*models.Anime, error) {
	var anime models.Anime
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at ASC")
		}).
		Preload("Reviews.User").
		First(&anime, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &anime, nil
}

func (r *animeRepository) Update(ctx context.Context, anime *models.Anime) error {
	return r.db.WithContext(ctx).Save(anime).Error
}

func (r *animeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Anime{}, "id = ?", id).Error
}

// ListByUser returns a user's anime, most recently updated first.
func (r *animeRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Anime, error) {
	var animes []models.Anime
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&animes).Error; err != nil {
		return nil, err
	}
	return animes, nil
}

// Discover returns public anime, newest first, optionally filtered by
// genre tag and a case-insensitive title fragment.
func (r *animeRepository) Discover(ctx context.Context, genre, search string, limit int) ([]models.Anime, error) {
	var animes []models.Anime
	q := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit)
	if genre != "" {
		// genres is a JSON-serialized tag list, match the quoted tag
		q = q.Where(`genres LIKE ?`, `%"`+genre+`"%`)
	}
	if search != "" {
		q = q.Where("title ILIKE ?", "%"+search+"%")
	}
	if err := q.Find(&animes).Error; err != nil {
		return nil, err
	}
	return animes, nil
}
