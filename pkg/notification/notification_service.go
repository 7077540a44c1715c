package notification

import (
	"Waste2Wealth-Backend/domain"
	"context"

	"github.com/google/uuid"
)

type (
	NotificationService interface {
		GetUnreadNotifications(ctx context.Context, userID string) ([]*domain.Notification, error)
		MarkAsRead(ctx context.Context, notificationID string) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{notificationRepository: notificationRepository}
}

func (s *notificationService) GetUnreadNotifications(ctx context.Context, userID string) ([]*domain.Notification, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	notifications, err := s.notificationRepository.GetUnreadNotifications(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Notification, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, &domain.Notification{
			ID:        n.ID.String(),
			UserID:    n.UserID.String(),
			Message:   n.Message,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return result, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, notificationID string) error {
	notificationUUID, err := uuid.Parse(notificationID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.notificationRepository.MarkAsRead(ctx, notificationUUID)
}
