package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"animedrop/internal/http-api/dto"
	"animedrop/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReviewService mocks the ReviewService interface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) SubmitReview(ctx context.Context, animeID int64, reviewerID string, rating int, comment string) (*dto.AnimeResponse, error) {
	args := m.Called(ctx, animeID, reviewerID, rating, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnimeResponse), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	return doRequest(router, req)
}

func doRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitReview_Success(t *testing.T) {
	mockSvc := new(MockReviewService)
	h := NewReviewHandler(mockSvc)
	router := setupRouter()
	router.POST("/anime/:id/reviews", fakeAuth("user-2"), h.Submit)

	avg := "4.0"
	mockSvc.On("SubmitReview", mock.Anything, int64(42), "user-2", 4, "solid").
		Return(&dto.AnimeResponse{ID: 42, Title: "Cowboy Bebop", AverageRating: &avg}, nil)

	w := postJSON(router, "/anime/42/reviews", dto.CreateReviewDTO{Rating: 4, Comment: "solid"})

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data dto.AnimeResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(42), response.Data.ID)
	assert.Equal(t, "4.0", *response.Data.AverageRating)

	mockSvc.AssertExpectations(t)
}

func TestSubmitReview_AnimeNotFound(t *testing.T) {
	mockSvc := new(MockReviewService)
	h := NewReviewHandler(mockSvc)
	router := setupRouter()
	router.POST("/anime/:id/reviews", fakeAuth("user-2"), h.Submit)

	mockSvc.On("SubmitReview", mock.Anything, int64(99), "user-2", 4, "").
		Return(nil, service.ErrAnimeNotFound)

	w := postJSON(router, "/anime/99/reviews", dto.CreateReviewDTO{Rating: 4})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitReview_AlreadyReviewed(t *testing.T) {
	mockSvc := new(MockReviewService)
	h := NewReviewHandler(mockSvc)
	router := setupRouter()
	router.POST("/anime/:id/reviews", fakeAuth("user-2"), h.Submit)

	mockSvc.On("SubmitReview", mock.Anything, int64(42), "user-2", 4, "").
		Return(nil, service.ErrAlreadyReviewed)

	w := postJSON(router, "/anime/42/reviews", dto.CreateReviewDTO{Rating: 4})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmitReview_RatingOutOfRangeRejectedByBinding(t *testing.T) {
	mockSvc := new(MockReviewService)
	h := NewReviewHandler(mockSvc)
	router := setupRouter()
	router.POST("/anime/:id/reviews", fakeAuth("user-2"), h.Submit)

	for _, rating := range []int{0, 6} {
		w := postJSON(router, "/anime/42/reviews", gin.H{"rating": rating})
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)
	}
	mockSvc.AssertNotCalled(t, "SubmitReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitReview_InvalidAnimeID(t *testing.T) {
	mockSvc := new(MockReviewService)
	h := NewReviewHandler(mockSvc)
	router := setupRouter()
	router.POST("/anime/:id/reviews", fakeAuth("user-2"), h.Submit)

	w := postJSON(router, "/anime/not-a-number/reviews", dto.CreateReviewDTO{Rating: 4})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitReview_Unauthenticated(t *testing.T) {
	mockSvc := new(MockReviewService)
	h := NewReviewHandler(mockSvc)
	router := setupRouter()
	// no auth middleware -> no userID in context
	router.POST("/anime/:id/reviews", h.Submit)

	w := postJSON(router, "/anime/42/reviews", dto.CreateReviewDTO{Rating: 4})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
