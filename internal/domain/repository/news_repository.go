package repository

import (
	"context"

	"newswire/internal/domain/entity"
	"newswire/internal/errors"
)

// ErrNewsNotFound is returned when a lookup matches no news record.
var ErrNewsNotFound = errors.New("news entry not found")

// NewsRepository is the CRUD contract over the news collection.
type NewsRepository interface {
	// Create inserts a new entry and populates the generated ID and timestamps.
	Create(ctx context.Context, news *entity.News) error

	// FindByID returns the entry with the given ID, or ErrNewsNotFound.
	FindByID(ctx context.Context, id int64) (*entity.News, error)

	// FindAll returns entries in stable (id ascending) order.
	// A non-nil isPublic narrows the result to the matching visibility.
	FindAll(ctx context.Context, isPublic *bool) ([]*entity.News, error)

	// FindByAuthor returns every entry written by the given author.
	FindByAuthor(ctx context.Context, authorID int64) ([]*entity.News, error)

	// Update applies a partial update; ErrNewsNotFound when the ID matches no row.
	Update(ctx context.Context, id int64, fields map[string]any) error

	// Delete removes the entry; ErrNewsNotFound when the ID matches no row.
	Delete(ctx context.Context, id int64) error
}
