// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"newswire/internal/domain/entity"
	domainerrors "newswire/internal/domain/errors"
	"newswire/internal/domain/repository"
	"newswire/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// newsRepository implements the domain.NewsRepository interface using GORM.
type newsRepository struct {
	crud crudRepository[model.NewsModel]
}

// NewNewsRepository is the constructor for newsRepository.
func NewNewsRepository(db *gorm.DB) repository.NewsRepository {
	return &newsRepository{
		crud: crudRepository[model.NewsModel]{db: db},
	}
}

// Create persists a new news entry and writes the generated ID and timestamps
// back onto it.
func (repo *newsRepository) Create(ctx context.Context, news *entity.News) error {
	newsM := fromNewsDomain(news)

	if err := repo.crud.addOne(ctx, newsM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid author reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required news information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create news entry")
	}

	news.ID = newsM.ID
	news.CreatedAt = newsM.CreatedAt
	news.UpdatedAt = newsM.UpdatedAt

	return nil
}

// FindByID retrieves a single news entry by its unique ID.
func (repo *newsRepository) FindByID(ctx context.Context, id int64) (*entity.News, error) {
	newsM, err := repo.crud.findOne(ctx, map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsNotFound
		}

		return nil, errors.Wrap(err, "failed to find news entry by id")
	}

	return toNewsDomain(newsM), nil
}

// FindAll retrieves news entries in id order, optionally narrowed by visibility.
func (repo *newsRepository) FindAll(ctx context.Context, isPublic *bool) ([]*entity.News, error) {
	var filter map[string]any
	if isPublic != nil {
		filter = map[string]any{"is_public": *isPublic}
	}

	newsModels, err := repo.crud.findAll(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news entries")
	}

	return toNewsDomainSlice(newsModels), nil
}

// FindByAuthor retrieves every news entry written by the given author.
func (repo *newsRepository) FindByAuthor(ctx context.Context, authorID int64) ([]*entity.News, error) {
	newsModels, err := repo.crud.findAll(ctx, map[string]any{"author_id": authorID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news entries by author")
	}

	return toNewsDomainSlice(newsModels), nil
}

// Update applies a partial update to an existing news entry.
func (repo *newsRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	affected, err := repo.crud.editOne(ctx, id, fields)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update news entry")
	}
	if affected == 0 {
		return repository.ErrNewsNotFound
	}

	return nil
}

// Delete removes an existing news entry.
func (repo *newsRepository) Delete(ctx context.Context, id int64) error {
	affected, err := repo.crud.deleteOne(ctx, id)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete news entry")
	}
	if affected == 0 {
		return repository.ErrNewsNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toNewsDomain(data *model.NewsModel) *entity.News {
	if data == nil {
		return nil
	}

	return &entity.News{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		AuthorID:  data.AuthorID,
		IsPublic:  data.IsPublic,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toNewsDomainSlice(models []*model.NewsModel) []*entity.News {
	news := make([]*entity.News, 0, len(models))
	for _, newsM := range models {
		news = append(news, toNewsDomain(newsM))
	}

	return news
}

func fromNewsDomain(data *entity.News) *model.NewsModel {
	if data == nil {
		return nil
	}

	return &model.NewsModel{
		ID:       data.ID,
		Title:    data.Title,
		Content:  data.Content,
		AuthorID: data.AuthorID,
		IsPublic: data.IsPublic,
	}
}
