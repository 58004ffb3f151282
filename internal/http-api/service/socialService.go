package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"animedrop/internal/http-api/models"
	"animedrop/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSelfFollow       = errors.New("you cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
)

type SocialService interface {
	Follow(ctx context.Context, actorID, targetID string) error
	Unfollow(ctx context.Context, actorID, targetID string) error
}

type socialService struct {
	userRepo         repository.UserRepository
	followRepo       repository.FollowRepository
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

func NewSocialService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	notificationRepo repository.NotificationRepository,
	logger *slog.Logger,
) SocialService {
	return &socialService{
		userRepo:         userRepo,
		followRepo:       followRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Follow adds the actor->target edge and notifies the target. Rejects
// missing targets, self-follows and duplicate edges, in that order.
func (s *socialService) Follow(ctx context.Context, actorID, targetID string) error {
	if _, err := s.userRepo.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if actorID == targetID {
		return ErrSelfFollow
	}

	exists, err := s.followRepo.Exists(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFollowing
	}

	follow := &models.Follow{FollowerID: actorID, FollowingID: targetID}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		// unique index backstops the Exists check under concurrency
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyFollowing
		}
		return err
	}

	// Edge is committed; the notification must not precede it.
	s.notifyTarget(ctx, actorID, targetID)
	return nil
}

// Unfollow removes the actor->target edge. Removing an edge that does
// not exist is fine; only a missing target user is an error.
func (s *socialService) Unfollow(ctx context.Context, actorID, targetID string) error {
	if _, err := s.userRepo.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return s.followRepo.Delete(ctx, actorID, targetID)
}

func (s *socialService) notifyTarget(ctx context.Context, actorID, targetID string) {
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		s.logger.Warn("follow notification skipped, actor lookup failed",
			"actor_id", actorID, "target_id", targetID, "error", err)
		return
	}

	notification := &models.Notification{
		RecipientID: targetID,
		SenderID:    actorID,
		Type:        models.NotificationTypeFollow,
		Message:     fmt.Sprintf("%s started following you", actor.Username),
		Link:        fmt.Sprintf("/users/%s", actorID),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Warn("follow notification write failed",
			"actor_id", actorID, "target_id", targetID, "error", err)
	}
}
