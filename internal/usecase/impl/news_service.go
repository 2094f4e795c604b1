package impl

import (
	"context"
	"log/slog"

	deliverycontext "newswire/internal/delivery/context"
	"newswire/internal/domain/entity"
	domainerrors "newswire/internal/domain/errors"
	"newswire/internal/domain/repository"
	"newswire/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// newsService implements the NewsUsecase interface.
type newsService struct {
	txManager repository.TransactionManager
	newsRepo  repository.NewsRepository
	logger    *slog.Logger
}

// NewsServiceParams holds dependencies for newsService, injected by Fx.
type NewsServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	NewsRepo  repository.NewsRepository
	Logger    *slog.Logger
}

// NewNewsService is the constructor for newsService.
func NewNewsService(params NewsServiceParams) usecase.NewsUsecase {
	return &newsService{
		txManager: params.TxManager,
		newsRepo:  params.NewsRepo,
		logger:    params.Logger,
	}
}

func (srv *newsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateNews publishes a news entry owned by the given author. Role gating
// happens in the middleware; the ownership tie is fixed here.
func (srv *newsService) CreateNews(ctx context.Context, author *entity.User, input *usecase.CreateNewsInput) (*entity.News, error) {
	if author == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("publishing requires an authenticated author")
	}
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title must not be empty")
	}

	news := &entity.News{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: author.ID,
		IsPublic: input.IsPublic,
	}

	err := srv.txManager.Execute(ctx, func(uow repository.UnitOfWork) error {
		return uow.News().Create(ctx, news)
	})
	if err != nil {
		srv.log(ctx).Warn("News creation failed", slog.Int64("authorID", author.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("News created", slog.Int64("newsID", news.ID), slog.Int64("authorID", author.ID))

	return news, nil
}

// GetNews loads one entry, applying the dual visibility rule: public entries
// are world-readable, non-public ones require an authenticated viewer.
func (srv *newsService) GetNews(ctx context.Context, viewer *entity.User, id int64) (*entity.News, error) {
	news, err := srv.newsRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNewsNotFound) {
		return nil, domainerrors.ErrNewsNotFound.WrapMessage("no such news entry")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load news entry")
	}

	if !news.IsPublic && viewer == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("entry is not public")
	}

	return news, nil
}

// ListNews returns the entries visible to the viewer. Anonymous callers get
// the public subset; authenticated callers get everything.
func (srv *newsService) ListNews(ctx context.Context, viewer *entity.User) ([]*entity.News, error) {
	var visibility *bool
	if viewer == nil {
		public := true
		visibility = &public
	}

	news, err := srv.newsRepo.FindAll(ctx, visibility)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news")
	}

	return news, nil
}

// ListNewsByAuthor returns one author's entries under the same visibility rule
// as ListNews.
func (srv *newsService) ListNewsByAuthor(ctx context.Context, viewer *entity.User, authorID int64) ([]*entity.News, error) {
	news, err := srv.newsRepo.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news by author")
	}

	if viewer != nil {
		return news, nil
	}

	visible := make([]*entity.News, 0, len(news))
	for _, n := range news {
		if n.IsPublic {
			visible = append(visible, n)
		}
	}

	return visible, nil
}

// UpdateNews applies a partial update after the ownership check.
func (srv *newsService) UpdateNews(ctx context.Context, actor *entity.User, id int64, input *usecase.UpdateNewsInput) (*entity.News, error) {
	fields := map[string]any{}
	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("title must not be empty")
		}
		fields["title"] = *input.Title
	}
	if input.Content != nil {
		fields["content"] = *input.Content
	}
	if input.IsPublic != nil {
		fields["is_public"] = *input.IsPublic
	}

	var updated *entity.News
	err := srv.txManager.Execute(ctx, func(uow repository.UnitOfWork) error {
		news, err := srv.loadOwned(ctx, uow, actor, id)
		if err != nil {
			return err
		}

		if len(fields) == 0 {
			updated = news

			return nil
		}

		if err := uow.News().Update(ctx, id, fields); err != nil {
			return err
		}

		reloaded, err := uow.News().FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload news entry after update")
		}
		updated = reloaded

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("News update failed", slog.Int64("newsID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("News updated", slog.Int64("newsID", id), slog.Int64("actorID", actor.ID))

	return updated, nil
}

// DeleteNews removes an entry after the ownership check.
func (srv *newsService) DeleteNews(ctx context.Context, actor *entity.User, id int64) error {
	err := srv.txManager.Execute(ctx, func(uow repository.UnitOfWork) error {
		if _, err := srv.loadOwned(ctx, uow, actor, id); err != nil {
			return err
		}

		return uow.News().Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Warn("News deletion failed", slog.Int64("newsID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("News deleted", slog.Int64("newsID", id), slog.Int64("actorID", actor.ID))

	return nil
}

// loadOwned loads an entry inside the unit of work and enforces that the
// actor owns it or is a superuser. Existence is checked before ownership so a
// missing entry is reported as not found, not forbidden.
func (srv *newsService) loadOwned(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, id int64) (*entity.News, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("entry management requires authentication")
	}

	news, err := uow.News().FindByID(ctx, id)
	if errors.Is(err, repository.ErrNewsNotFound) {
		return nil, domainerrors.ErrNewsNotFound.WrapMessage("no such news entry")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load news entry")
	}

	if !news.IsOwnedBy(actor.ID) && !entity.IsSuperuser(actor.Role) {
		return nil, domainerrors.ErrForbidden.WrapMessage("entry belongs to another author")
	}

	return news, nil
}
