package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"nocturna/internal/model"
)

// AdminRepository defines admin account persistence operations.
type AdminRepository interface {
	Create(ctx context.Context, admin *model.AdminUser) error
	FindByID(ctx context.Context, id uint) (*model.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	StartSession(ctx context.Context, id uint, token string, expiresAt time.Time) error
	EndSession(ctx context.Context, id uint) error
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository builds a GORM-backed repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *model.AdminUser) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) FindByID(ctx context.Context, id uint) (*model.AdminUser, error) {
	var admin model.AdminUser
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var admin model.AdminUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// StartSession replaces the stored session token, invalidating any previous one.
func (r *adminRepository) StartSession(ctx context.Context, id uint, token string, expiresAt time.Time) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&model.AdminUser{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"session_token":      token,
			"session_expires_at": expiresAt,
			"last_login_at":      now,
		}).Error
}

func (r *adminRepository) EndSession(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.AdminUser{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"session_token":      "",
			"session_expires_at": nil,
		}).Error
}
