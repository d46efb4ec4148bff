package repository

import (
	"hospital-admin-platform/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindPage(db *gorm.DB, offset, limit int) ([]entity.AuditLog, int64, error)
}
