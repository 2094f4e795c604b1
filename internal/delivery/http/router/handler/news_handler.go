package handler

import (
	"log/slog"
	"net/http"
	"time"

	"newswire/internal/delivery/http/middleware"
	"newswire/internal/delivery/http/response"
	"newswire/internal/domain/entity"
	"newswire/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NewsHandler holds dependencies for news-related handlers.
type NewsHandler struct {
	uc     usecase.NewsUsecase
	logger *slog.Logger
}

// NewNewsHandler is the constructor for NewsHandler, injected by Fx.
func NewNewsHandler(uc usecase.NewsUsecase, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{uc: uc, logger: logger}
}

type createNewsRequest struct {
	Title    string `json:"title" validate:"required,max=512"`
	Content  string `json:"content"`
	IsPublic *bool  `json:"is_public,omitempty"`
}

type updateNewsRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,max=512"`
	Content  *string `json:"content,omitempty"`
	IsPublic *bool   `json:"is_public,omitempty"`
}

type newsView struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toNewsView(news *entity.News) newsView {
	return newsView{
		ID:        news.ID,
		Title:     news.Title,
		Content:   news.Content,
		AuthorID:  news.AuthorID,
		IsPublic:  news.IsPublic,
		CreatedAt: news.CreatedAt,
		UpdatedAt: news.UpdatedAt,
	}
}

func toNewsViews(news []*entity.News) []newsView {
	views := make([]newsView, 0, len(news))
	for _, n := range news {
		views = append(views, toNewsView(n))
	}

	return views
}

// Create publishes a news entry. The route is gated on the publishing roles.
func (h *NewsHandler) Create(c echo.Context) error {
	var req createNewsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid news input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// New entries default to public when the flag is omitted.
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	news, err := h.uc.CreateNews(c.Request().Context(), middleware.CurrentUser(c), &usecase.CreateNewsInput{
		Title:    req.Title,
		Content:  req.Content,
		IsPublic: isPublic,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toNewsView(news), "News created successfully")
}

// Get returns one entry, honoring the dual visibility rule.
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	news, err := h.uc.GetNews(c.Request().Context(), middleware.CurrentUser(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNewsView(news), "")
}

// List returns the entries visible to the caller.
func (h *NewsHandler) List(c echo.Context) error {
	news, err := h.uc.ListNews(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNewsViews(news), "")
}

// ListByAuthor returns one author's entries visible to the caller.
func (h *NewsHandler) ListByAuthor(c echo.Context) error {
	authorID, err := pathID(c)
	if err != nil {
		return err
	}

	news, err := h.uc.ListNewsByAuthor(c.Request().Context(), middleware.CurrentUser(c), authorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNewsViews(news), "")
}

// Update applies a partial update to an owned entry.
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateNewsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid news update input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	news, err := h.uc.UpdateNews(c.Request().Context(), middleware.CurrentUser(c), id, &usecase.UpdateNewsInput{
		Title:    req.Title,
		Content:  req.Content,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNewsView(news), "News updated successfully")
}

// Delete removes an owned entry.
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteNews(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "News deleted successfully")
}
