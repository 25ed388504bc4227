package service

import (
	"context"

	"github.com/teuslab/publishing-api/internal/core/domain"
	"github.com/teuslab/publishing-api/internal/core/ports"
)

// ArticleService implements article publishing.
type ArticleService struct {
	articles    ports.ArticleRepository
	credentials ports.CredentialLookup
}

func NewArticleService(articles ports.ArticleRepository, credentials ports.CredentialLookup) *ArticleService {
	return &ArticleService{articles: articles, credentials: credentials}
}

// Create publishes an article owned by the calling admin. The owner is the
// live admin record, not the token, so a stale token cannot plant articles
// for a deleted account.
func (s *ArticleService) Create(ctx context.Context, caller domain.Principal, title, body, imageURL string) (*domain.Article, error) {
	if caller.Role != domain.RoleAdmin {
		return nil, domain.ErrUnauthorized
	}
	admin, err := s.credentials.AdminByEmail(ctx, caller.Email)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	return s.articles.Insert(ctx, &domain.Article{
		Title:    title,
		Body:     body,
		ImageURL: imageURL,
		AdminID:  admin.ID,
	})
}

// List returns all articles, newest first.
func (s *ArticleService) List(ctx context.Context) ([]domain.Article, error) {
	return s.articles.List(ctx)
}
