package dto

import (
	"fmt"
	"time"

	"animedrop/internal/http-api/models"
)

// CreateAnimeDTO used for POST /api/anime
type CreateAnimeDTO struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Genres      []string `json:"genres"`
	Status      string   `json:"status" binding:"omitempty,oneof=watching completed plan-to-watch dropped"`
	Episodes    int      `json:"episodes" binding:"omitempty,min=0"`
}

// UpdateAnimeDTO used for PUT /api/anime/:id (partial updates allowed).
// Pointer fields so that 0 episodes or an emptied description are real
// updates, not "keep the old value".
type UpdateAnimeDTO struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Image           *string   `json:"image,omitempty"`
	Genres          *[]string `json:"genres,omitempty"`
	Status          *string   `json:"status,omitempty" binding:"omitempty,oneof=watching completed plan-to-watch dropped"`
	Episodes        *int      `json:"episodes,omitempty" binding:"omitempty,min=0"`
	EpisodesWatched *int      `json:"episodes_watched,omitempty" binding:"omitempty,min=0"`
}

// AnimeResponse DTO for responses
type AnimeResponse struct {
	ID              int64            `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Image           string           `json:"image"`
	Genres          []string         `json:"genres"`
	Status          string           `json:"status"`
	Episodes        int              `json:"episodes"`
	EpisodesWatched int              `json:"episodes_watched"`
	AverageRating   *string          `json:"average_rating,omitempty"` // one fractional digit
	User            *UserSummary     `json:"user,omitempty"`
	Reviews         []ReviewResponse `json:"reviews,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Converters
func (d CreateAnimeDTO) ToModel(userID string) models.Anime {
	genres := d.Genres
	if genres == nil {
		genres = []string{}
	}
	status := d.Status
	if status == "" {
		status = models.StatusPlanToWatch
	}
	return models.Anime{
		Title:       d.Title,
		Description: d.Description,
		Image:       d.Image,
		Genres:      genres,
		Status:      status,
		Episodes:    d.Episodes,
		UserID:      userID,
	}
}

func (d UpdateAnimeDTO) ApplyTo(a *models.Anime) {
	if d.Title != nil {
		a.Title = *d.Title
	}
	if d.Description != nil {
		a.Description = *d.Description
	}
	if d.Image != nil {
		a.Image = *d.Image
	}
	if d.Genres != nil {
		a.Genres = *d.Genres
	}
	if d.Status != nil {
		a.Status = *d.Status
	}
	if d.Episodes != nil {
		a.Episodes = *d.Episodes
	}
	if d.EpisodesWatched != nil {
		a.EpisodesWatched = *d.EpisodesWatched
	}
}

func FromModelToAnimeResponse(a *models.Anime) *AnimeResponse {
	resp := &AnimeResponse{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		Image:           a.Image,
		Genres:          a.Genres,
		Status:          a.Status,
		Episodes:        a.Episodes,
		EpisodesWatched: a.EpisodesWatched,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.AverageRating != nil {
		s := fmt.Sprintf("%.1f", *a.AverageRating)
		resp.AverageRating = &s
	}
	if a.User != nil {
		u := FromModelToUserSummary(a.User)
		resp.User = &u
	}
	if a.Reviews != nil {
		resp.Reviews = make([]ReviewResponse, 0, len(a.Reviews))
		for i := range a.Reviews {
			resp.Reviews = append(resp.Reviews, FromModelToReviewResponse(&a.Reviews[i]))
		}
	}
	return resp
}
