package ports

import (
	"context"

	"github.com/teuslab/publishing-api/internal/core/domain"
)

type ArticleService interface {
	// Create publishes a new article owned by the calling admin.
	Create(ctx context.Context, caller domain.Principal, title, body, imageURL string) (*domain.Article, error)
	List(ctx context.Context) ([]domain.Article, error)
}
