package ports

import (
	"context"

	"github.com/teuslab/publishing-api/internal/core/domain"
)

// ArticleRepository defines persistence for articles.
type ArticleRepository interface {
	Insert(ctx context.Context, article *domain.Article) (*domain.Article, error)
	List(ctx context.Context) ([]domain.Article, error)
}
