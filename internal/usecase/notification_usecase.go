package usecase

import (
	"context"
	"errors"

	"hospital-admin-platform/internal/authz"
	"hospital-admin-platform/internal/converter"
	"hospital-admin-platform/internal/delivery/dto"
	"hospital-admin-platform/internal/delivery/http/middleware"
	"hospital-admin-platform/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationUsecase interface {
	ListMyNotifications(ctx context.Context) (*dto.NotificationListResponse, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(db *gorm.DB, log *logrus.Logger, notificationRepo repository.NotificationRepository) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (u *notificationUsecase) ListMyNotifications(ctx context.Context) (*dto.NotificationListResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	notifications, err := u.notificationRepo.FindByUserID(u.db.WithContext(ctx), actor.ID)
	if err != nil {
		u.log.Warnf("Failed to list notifications for user %s: %+v", actor.ID, err)
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Total:         len(notifications),
	}, nil
}

// MarkNotificationRead marks one of the caller's notifications as read.
// Someone else's notification reads as not found.
func (u *notificationUsecase) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return ErrActorNotFound
	}

	notification, err := u.notificationRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find notification %s: %+v", id, err)
		return err
	}
	if notification == nil {
		return ErrNotificationNotFound
	}

	decision := authz.Authorize(actor, authz.ActionUpdate, authz.Resource{
		Kind:    authz.ResourceNotification,
		OwnerID: &notification.UserID,
	})
	if !decision.Allowed {
		return ErrNotificationNotFound
	}

	if err := u.notificationRepo.MarkRead(u.db.WithContext(ctx), id); err != nil {
		u.log.Warnf("Failed to mark notification %s read: %+v", id, err)
		return err
	}
	return nil
}
