package models

import (
	"math"
	"time"
)

// Watch status values for an anime list entry.
const (
	StatusWatching    = "watching"
	StatusCompleted   = "completed"
	StatusPlanToWatch = "plan-to-watch"
	StatusDropped     = "dropped"
)

type Anime struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title           string    `json:"title" gorm:"not null"`
	Description     string    `json:"description"`
	Image           string    `json:"image"`
	Genres          []string  `json:"genres" gorm:"serializer:json"`
	Status          string    `json:"status" gorm:"default:'plan-to-watch'"`
	UserID          string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Episodes        int       `json:"episodes" gorm:"default:0"`
	EpisodesWatched int       `json:"episodes_watched" gorm:"default:0"`
	AverageRating   *float64  `json:"average_rating,omitempty" gorm:"type:decimal(2,1)"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Reviews []Review `json:"reviews" gorm:"foreignKey:AnimeID;constraint:OnDelete:CASCADE;"`
}

func (Anime) TableName() string {
	return "anime"
}

// RecalculateAverageRating recomputes the derived average over the full
// review list, rounded to one decimal place. Nil when there are no
// reviews. Must be called with Reviews loaded, inside the same
// transaction that mutates them.
func (a *Anime) RecalculateAverageRating() {
	if len(a.Reviews) == 0 {
		a.AverageRating = nil
		return
	}
	sum := 0
	for _, r := range a.Reviews {
		sum += r.Rating
	}
	avg := math.Round(float64(sum)/float64(len(a.Reviews))*10) / 10
	a.AverageRating = &avg
}
