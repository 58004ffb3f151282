package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reviewsWithRatings(ratings ...int) []Review {
	reviews := make([]Review, 0, len(ratings))
	for _, r := range ratings {
		reviews = append(reviews, Review{Rating: r})
	}
	return reviews
}

func TestRecalculateAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"single review", []int{4}, 4.0},
		{"two reviews", []int{4, 5}, 4.5},
		{"rounds up", []int{1, 2, 2}, 1.7},
		{"rounds down", []int{1, 1, 2}, 1.3},
		{"all fives", []int{5, 5, 5, 5}, 5.0},
		{"half rounds away from zero", []int{1, 2}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anime := Anime{Reviews: reviewsWithRatings(tt.ratings...)}
			anime.RecalculateAverageRating()
			if assert.NotNil(t, anime.AverageRating) {
				assert.Equal(t, tt.want, *anime.AverageRating)
			}
		})
	}
}

func TestRecalculateAverageRating_NoReviews(t *testing.T) {
	old := 3.5
	anime := Anime{AverageRating: &old}
	anime.RecalculateAverageRating()
	assert.Nil(t, anime.AverageRating)
}

func TestRecalculateAverageRating_OrderIndependent(t *testing.T) {
	a := Anime{Reviews: reviewsWithRatings(2, 5, 3, 4)}
	b := Anime{Reviews: reviewsWithRatings(4, 3, 5, 2)}
	a.RecalculateAverageRating()
	b.RecalculateAverageRating()
	assert.Equal(t, *a.AverageRating, *b.AverageRating)
}
