package usecase

import (
	"context"

	"hospital-admin-platform/internal/converter"
	"hospital-admin-platform/internal/delivery/dto"
	"hospital-admin-platform/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	auditLogDefaultLimit = 50
	auditLogMaxLimit     = 200
)

type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context, page, limit int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// ListAuditLogs returns a page of audit entries, newest first. Role gating
// happens in the route middleware.
func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, page, limit int) (*dto.AuditLogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = auditLogDefaultLimit
	}
	if limit > auditLogMaxLimit {
		limit = auditLogMaxLimit
	}

	logs, total, err := u.auditRepo.FindPage(u.db.WithContext(ctx), (page-1)*limit, limit)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: total,
	}, nil
}
