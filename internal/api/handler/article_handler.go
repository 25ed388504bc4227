package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teuslab/publishing-api/internal/api/metrics"
	"github.com/teuslab/publishing-api/internal/core/ports"
)

// ArticleHandler handles HTTP requests for article operations.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

type createArticleRequest struct {
	Title    string `json:"title"    validate:"required"`
	Body     string `json:"body"     validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
}

// Create handles POST /v1/article.
//
// @Summary      Publish a new article (must be authenticated as admin)
// @Tags         article
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArticleRequest  true  "Article contents"
// @Success      201   {object}  domain.Article
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/article [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	caller, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.service.Create(c.Request().Context(), caller, req.Title, req.Body, req.ImageURL)
	if err != nil {
		return err
	}
	metrics.ArticlesCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, article)
}

// List handles GET /v1/article. Published articles are public.
//
// @Summary      List published articles
// @Tags         article
// @Produce      json
// @Success      200  {array}  domain.Article
// @Router       /v1/article [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}
