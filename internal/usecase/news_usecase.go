package usecase

import (
	"context"

	"newswire/internal/domain/entity"
)

// CreateNewsInput defines the data required to publish a news item.
type CreateNewsInput struct {
	Title    string
	Content  string
	IsPublic bool
}

// UpdateNewsInput defines a partial news update. Nil fields are left untouched.
type UpdateNewsInput struct {
	Title    *string
	Content  *string
	IsPublic *bool
}

// NewsUsecase defines the interface for news-related business operations.
type NewsUsecase interface {
	// CreateNews publishes a news item owned by the given author.
	CreateNews(ctx context.Context, author *entity.User, input *CreateNewsInput) (*entity.News, error)

	// GetNews loads one news item. Non-public items require an authenticated
	// viewer; viewer may be nil for anonymous access.
	GetNews(ctx context.Context, viewer *entity.User, id int64) (*entity.News, error)

	// ListNews returns news visible to the viewer: public items for anonymous
	// callers, everything for authenticated ones.
	ListNews(ctx context.Context, viewer *entity.User) ([]*entity.News, error)

	// ListNewsByAuthor returns one author's items, narrowed to public entries
	// for anonymous viewers.
	ListNewsByAuthor(ctx context.Context, viewer *entity.User, authorID int64) ([]*entity.News, error)

	// UpdateNews applies a partial update. Only the owning author or a
	// superuser may edit an item.
	UpdateNews(ctx context.Context, actor *entity.User, id int64, input *UpdateNewsInput) (*entity.News, error)

	// DeleteNews removes an item under the same ownership rule as UpdateNews.
	DeleteNews(ctx context.Context, actor *entity.User, id int64) error
}
