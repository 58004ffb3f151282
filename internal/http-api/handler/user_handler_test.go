package handler

import (
	"context"
	"net/http"
	"testing"

	"animedrop/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSocialService mocks the SocialService interface
type MockSocialService struct {
	mock.Mock
}

func (m *MockSocialService) Follow(ctx context.Context, actorID, targetID string) error {
	args := m.Called(ctx, actorID, targetID)
	return args.Error(0)
}

func (m *MockSocialService) Unfollow(ctx context.Context, actorID, targetID string) error {
	args := m.Called(ctx, actorID, targetID)
	return args.Error(0)
}

func TestFollow_Success(t *testing.T) {
	mockSocial := new(MockSocialService)
	h := NewUserHandler(new(MockUserService), mockSocial)
	router := setupRouter()
	router.POST("/users/:id/follow", fakeAuth("user-a"), h.Follow)

	mockSocial.On("Follow", mock.Anything, "user-a", "user-b").Return(nil)

	req, _ := http.NewRequest("POST", "/users/user-b/follow", nil)
	w := doRequest(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSocial.AssertExpectations(t)
}

func TestFollow_Self(t *testing.T) {
	mockSocial := new(MockSocialService)
	h := NewUserHandler(new(MockUserService), mockSocial)
	router := setupRouter()
	router.POST("/users/:id/follow", fakeAuth("user-a"), h.Follow)

	mockSocial.On("Follow", mock.Anything, "user-a", "user-a").Return(service.ErrSelfFollow)

	req, _ := http.NewRequest("POST", "/users/user-a/follow", nil)
	w := doRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFollow_AlreadyFollowing(t *testing.T) {
	mockSocial := new(MockSocialService)
	h := NewUserHandler(new(MockUserService), mockSocial)
	router := setupRouter()
	router.POST("/users/:id/follow", fakeAuth("user-a"), h.Follow)

	mockSocial.On("Follow", mock.Anything, "user-a", "user-b").Return(service.ErrAlreadyFollowing)

	req, _ := http.NewRequest("POST", "/users/user-b/follow", nil)
	w := doRequest(router, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFollow_TargetMissing(t *testing.T) {
	mockSocial := new(MockSocialService)
	h := NewUserHandler(new(MockUserService), mockSocial)
	router := setupRouter()
	router.POST("/users/:id/follow", fakeAuth("user-a"), h.Follow)

	mockSocial.On("Follow", mock.Anything, "user-a", "ghost").Return(service.ErrUserNotFound)

	req, _ := http.NewRequest("POST", "/users/ghost/follow", nil)
	w := doRequest(router, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnfollow_Success(t *testing.T) {
	mockSocial := new(MockSocialService)
	h := NewUserHandler(new(MockUserService), mockSocial)
	router := setupRouter()
	router.DELETE("/users/:id/follow", fakeAuth("user-a"), h.Unfollow)

	mockSocial.On("Unfollow", mock.Anything, "user-a", "user-b").Return(nil)

	req, _ := http.NewRequest("DELETE", "/users/user-b/follow", nil)
	w := doRequest(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSocial.AssertExpectations(t)
}
