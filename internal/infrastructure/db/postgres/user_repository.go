package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/teuslab/publishing-api/internal/core/domain"
)

// UserRepository implements ports.UserRepository on PostgreSQL.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Insert(ctx context.Context, username, email, password string) (string, error) {
	m := userModel{Username: username, Email: email, Password: password}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", domain.ErrEmailInUse
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	return m.ID, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toUserDomain(&m), nil
}

func (r *UserRepository) List(ctx context.Context, emailFilter string, offset, limit int) ([]domain.User, int64, error) {
	// Filter applied to fresh queries for count and page so neither inherits
	// the other's clauses.
	filtered := func(db *gorm.DB) *gorm.DB {
		if emailFilter == "" {
			return db
		}
		return db.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(emailFilter)+"%")
	}

	var total int64
	if err := filtered(r.db.WithContext(ctx).Model(&userModel{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	var ms []userModel
	if err := filtered(r.db.WithContext(ctx)).Order("created_at").Offset(offset).Limit(limit).Find(&ms).Error; err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(ms))
	for i := range ms {
		users = append(users, *toUserDomain(&ms[i]))
	}
	return users, total, nil
}

func (r *UserRepository) Update(ctx context.Context, id, username, email, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Updates(map[string]any{
		"username":      username,
		"email":         email,
		"password_hash": passwordHash,
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailInUse
		}
		return fmt.Errorf("update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUpdateFailed
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userModel{})
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrDeleteFailed
	}
	return nil
}
