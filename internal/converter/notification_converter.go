package converter

import (
	"hospital-admin-platform/internal/delivery/dto"
	"hospital-admin-platform/internal/domain/entity"
)

// NotificationsToResponses converts a slice of Notification entities to DTOs
func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = dto.NotificationResponse{
			ID:        notification.ID,
			Title:     notification.Title,
			Body:      notification.Body,
			Read:      notification.Read,
			CreatedAt: notification.CreatedAt,
		}
	}
	return responses
}
