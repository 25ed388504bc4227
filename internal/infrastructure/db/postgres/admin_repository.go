package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/teuslab/publishing-api/internal/core/domain"
)

// AdminRepository implements ports.AdminRepository on PostgreSQL.
type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Insert(ctx context.Context, username, email, password string) (string, error) {
	m := adminModel{Username: username, Email: email, Password: password}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", domain.ErrEmailInUse
		}
		return "", fmt.Errorf("insert admin: %w", err)
	}
	return m.ID, nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var m adminModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return toAdminDomain(&m), nil
}

func (r *AdminRepository) List(ctx context.Context, emailFilter string) ([]domain.Admin, error) {
	q := r.db.WithContext(ctx)
	if emailFilter != "" {
		q = q.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(emailFilter)+"%")
	}

	var ms []adminModel
	if err := q.Order("created_at").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}

	admins := make([]domain.Admin, 0, len(ms))
	for i := range ms {
		admins = append(admins, *toAdminDomain(&ms[i]))
	}
	return admins, nil
}

func (r *AdminRepository) Update(ctx context.Context, id, username, email, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&adminModel{}).Where("id = ?", id).Updates(map[string]any{
		"username":      username,
		"email":         email,
		"password_hash": passwordHash,
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailInUse
		}
		return fmt.Errorf("update admin: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUpdateFailed
	}
	return nil
}
