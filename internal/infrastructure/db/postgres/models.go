package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teuslab/publishing-api/internal/core/domain"
	"github.com/teuslab/publishing-api/internal/core/service"
)

// adminModel mirrors the admins table. The Password field holds plaintext
// only between staging and the BeforeCreate hook; the column always stores
// the bcrypt hash.
type adminModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Username  string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"column:password_hash;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (adminModel) TableName() string { return "admins" }

// BeforeCreate assigns the id and hashes the staged password. Hashing lives
// in the insert hook so a row can never be written unhashed.
func (m *adminModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	hash, err := service.HashPassword(m.Password)
	if err != nil {
		return err
	}
	m.Password = hash
	return nil
}

// userModel mirrors the users table.
type userModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Username  string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"column:password_hash;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (userModel) TableName() string { return "users" }

func (m *userModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	hash, err := service.HashPassword(m.Password)
	if err != nil {
		return err
	}
	m.Password = hash
	return nil
}

// articleModel mirrors the articles table. AdminID references admins.id.
type articleModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Title     string `gorm:"not null"`
	Body      string `gorm:"type:text;not null"`
	ImageURL  string
	AdminID   string      `gorm:"type:uuid;not null;index"`
	Admin     *adminModel `gorm:"foreignKey:AdminID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (articleModel) TableName() string { return "articles" }

func (m *articleModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func toAdminDomain(m *adminModel) *domain.Admin {
	return &domain.Admin{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.Password,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserDomain(m *userModel) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.Password,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toArticleDomain(m *articleModel) *domain.Article {
	return &domain.Article{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		ImageURL:  m.ImageURL,
		AdminID:   m.AdminID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
