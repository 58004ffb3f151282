package service

import (
	"context"
	"testing"

	"animedrop/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newSocialServiceForTest() (SocialService, *MockUserRepository, *MockFollowRepository, *MockNotificationRepository) {
	userRepo := new(MockUserRepository)
	followRepo := new(MockFollowRepository)
	notificationRepo := new(MockNotificationRepository)
	svc := NewSocialService(userRepo, followRepo, notificationRepo, discardLogger())
	return svc, userRepo, followRepo, notificationRepo
}

func TestFollow_CreatesEdgeAndNotifies(t *testing.T) {
	svc, userRepo, followRepo, notificationRepo := newSocialServiceForTest()

	userRepo.On("FindByID", "user-b").Return(&models.User{ID: "user-b", Username: "faye"}, nil)
	userRepo.On("FindByID", "user-a").Return(&models.User{ID: "user-a", Username: "jet"}, nil)
	followRepo.On("Exists", mock.Anything, "user-a", "user-b").Return(false, nil)
	followRepo.On("Create", mock.Anything, mock.MatchedBy(func(f *models.Follow) bool {
		return f.FollowerID == "user-a" && f.FollowingID == "user-b"
	})).Return(nil)
	notificationRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
		return n.RecipientID == "user-b" &&
			n.SenderID == "user-a" &&
			n.Type == models.NotificationTypeFollow &&
			n.Message == "jet started following you" &&
			n.Link == "/users/user-a"
	})).Return(nil)

	err := svc.Follow(context.Background(), "user-a", "user-b")

	assert.NoError(t, err)
	followRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
}

func TestFollow_SelfFollowRejected(t *testing.T) {
	svc, userRepo, followRepo, notificationRepo := newSocialServiceForTest()

	userRepo.On("FindByID", "user-a").Return(&models.User{ID: "user-a"}, nil)

	err := svc.Follow(context.Background(), "user-a", "user-a")

	assert.ErrorIs(t, err, ErrSelfFollow)
	followRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFollow_DuplicateConflicts(t *testing.T) {
	svc, userRepo, followRepo, notificationRepo := newSocialServiceForTest()

	userRepo.On("FindByID", "user-b").Return(&models.User{ID: "user-b"}, nil)
	followRepo.On("Exists", mock.Anything, "user-a", "user-b").Return(true, nil)

	err := svc.Follow(context.Background(), "user-a", "user-b")

	assert.ErrorIs(t, err, ErrAlreadyFollowing)
	followRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFollow_ConcurrentDuplicateMapsUniqueViolation(t *testing.T) {
	svc, userRepo, followRepo, notificationRepo := newSocialServiceForTest()

	userRepo.On("FindByID", "user-b").Return(&models.User{ID: "user-b"}, nil)
	followRepo.On("Exists", mock.Anything, "user-a", "user-b").Return(false, nil)
	followRepo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	err := svc.Follow(context.Background(), "user-a", "user-b")

	assert.ErrorIs(t, err, ErrAlreadyFollowing)
	notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFollow_TargetNotFound(t *testing.T) {
	svc, userRepo, followRepo, notificationRepo := newSocialServiceForTest()

	userRepo.On("FindByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	err := svc.Follow(context.Background(), "user-a", "ghost")

	assert.ErrorIs(t, err, ErrUserNotFound)
	followRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUnfollow_IsIdempotent(t *testing.T) {
	svc, userRepo, followRepo, notificationRepo := newSocialServiceForTest()

	userRepo.On("FindByID", "user-b").Return(&models.User{ID: "user-b"}, nil)
	// Delete succeeds whether or not the edge existed.
	followRepo.On("Delete", mock.Anything, "user-a", "user-b").Return(nil).Twice()

	assert.NoError(t, svc.Unfollow(context.Background(), "user-a", "user-b"))
	assert.NoError(t, svc.Unfollow(context.Background(), "user-a", "user-b"))

	followRepo.AssertExpectations(t)
	notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUnfollow_TargetNotFound(t *testing.T) {
	svc, userRepo, followRepo, _ := newSocialServiceForTest()

	userRepo.On("FindByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	err := svc.Unfollow(context.Background(), "user-a", "ghost")

	assert.ErrorIs(t, err, ErrUserNotFound)
	followRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
