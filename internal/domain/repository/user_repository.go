// Package repository defines the persistence contracts consumed by the use
// case layer. Implementations live under internal/infra/persistence and are
// always bound to the connection of the unit of work that created them.
package repository

import (
	"context"

	"newswire/internal/domain/entity"
	"newswire/internal/errors"
)

// ErrUserNotFound is returned when a lookup matches no user record.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the CRUD contract over the users collection.
// Operations execute against the transactional connection the repository was
// constructed with; they never open an independent transaction.
type UserRepository interface {
	// Create inserts a new user and populates the generated ID and timestamps
	// on the passed entity. A violated email uniqueness constraint surfaces as
	// domainerrors.ErrAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByID returns the user with the given ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail returns the user with the given normalized email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll returns every user in stable (id ascending) order.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update applies a partial update to the user with the given ID.
	// Returns ErrUserNotFound when the ID matches no row.
	Update(ctx context.Context, id int64, fields map[string]any) error

	// Delete removes the user with the given ID.
	// Returns ErrUserNotFound when the ID matches no row.
	Delete(ctx context.Context, id int64) error
}
