package service

import (
	"fmt"

	"hospital-admin-platform/internal/domain/entity"
	"hospital-admin-platform/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NotificationService fans appointment events out as in-app notifications
// to the patient and the staff member. Delivery shares the caller's
// transaction so a rolled-back booking never leaves stray notifications.
type NotificationService interface {
	NotifyAppointmentCreated(tx *gorm.DB, appointment *entity.Appointment) error
	NotifyAppointmentCancelled(tx *gorm.DB, appointment *entity.Appointment) error
	NotifyAppointmentRescheduled(tx *gorm.DB, appointment *entity.Appointment) error
}

type notificationService struct {
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(log *logrus.Logger, notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (s *notificationService) NotifyAppointmentCreated(tx *gorm.DB, appointment *entity.Appointment) error {
	when := appointment.StartTime.Format("2006-01-02 15:04")
	return s.fanOut(tx, appointment,
		"Appointment booked",
		fmt.Sprintf("Appointment scheduled for %s", when),
	)
}

func (s *notificationService) NotifyAppointmentCancelled(tx *gorm.DB, appointment *entity.Appointment) error {
	when := appointment.StartTime.Format("2006-01-02 15:04")
	return s.fanOut(tx, appointment,
		"Appointment cancelled",
		fmt.Sprintf("Appointment on %s was cancelled", when),
	)
}

func (s *notificationService) NotifyAppointmentRescheduled(tx *gorm.DB, appointment *entity.Appointment) error {
	when := appointment.StartTime.Format("2006-01-02 15:04")
	return s.fanOut(tx, appointment,
		"Appointment rescheduled",
		fmt.Sprintf("Appointment moved to %s", when),
	)
}

func (s *notificationService) fanOut(tx *gorm.DB, appointment *entity.Appointment, title, body string) error {
	for _, userID := range []uuid.UUID{appointment.PatientID, appointment.StaffID} {
		notification := &entity.Notification{
			UserID: userID,
			Title:  title,
			Body:   body,
		}
		if err := s.notificationRepo.Create(tx, notification); err != nil {
			s.log.Warnf("Failed to create notification for user %s: %+v", userID, err)
			return err
		}
	}
	return nil
}
