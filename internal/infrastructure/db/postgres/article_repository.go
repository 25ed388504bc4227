package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/teuslab/publishing-api/internal/core/domain"
)

// ArticleRepository implements ports.ArticleRepository on PostgreSQL.
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Insert(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	m := articleModel{
		Title:    article.Title,
		Body:     article.Body,
		ImageURL: article.ImageURL,
		AdminID:  article.AdminID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		// Owner deleted between the authorization gate and this insert.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("insert article: %w", err)
	}
	return toArticleDomain(&m), nil
}

func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	var ms []articleModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	articles := make([]domain.Article, 0, len(ms))
	for i := range ms {
		articles = append(articles, *toArticleDomain(&ms[i]))
	}
	return articles, nil
}
