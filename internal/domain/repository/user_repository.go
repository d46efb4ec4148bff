package repository

import (
	"hospital-admin-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByPhone(db *gorm.DB, phone string) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindStaffByHospital(db *gorm.DB, hospitalID uuid.UUID, roles []entity.Role) ([]entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
