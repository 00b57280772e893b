package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/blogql/internal/common"
	"github.com/dmitrijs2005/blogql/internal/server/auth"
	"github.com/dmitrijs2005/blogql/internal/server/models"
	"github.com/dmitrijs2005/blogql/internal/server/repositories/repomanager"
)

// PostService reads and writes blog posts. Writes require an authenticated
// identity and only ever touch posts owned by it.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{
		db:          db,
		repomanager: m,
	}
}

func (s *PostService) GetPosts(ctx context.Context) ([]*models.BlogPost, error) {
	items, err := s.repomanager.Posts(s.db).List(ctx)
	if err != nil {
		return nil, common.Internal(err)
	}
	return items, nil
}

func (s *PostService) GetPost(ctx context.Context, id int64) (*models.BlogPost, error) {
	post, err := s.repomanager.Posts(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, common.Internal(err)
	}
	return post, nil
}

func (s *PostService) CreatePost(ctx context.Context, identity auth.Identity, title, description string, imageURL *string) (*models.BlogPost, error) {

	userID, ok := identity.UserID()
	if !ok {
		return nil, ErrAuthRequired
	}

	post, err := s.repomanager.Posts(s.db).Create(ctx, &models.BlogPost{
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		UserID:      userID,
	})
	if err != nil {
		return nil, common.Internal(err)
	}

	return post, nil
}

// UpdatePost replaces title, description and image of a post owned by the
// identity. A missing post and someone else's post are indistinguishable.
func (s *PostService) UpdatePost(ctx context.Context, identity auth.Identity, id int64, title, description string, imageURL *string) (*models.BlogPost, error) {

	userID, ok := identity.UserID()
	if !ok {
		return nil, ErrAuthRequired
	}

	post, err := s.repomanager.Posts(s.db).Update(ctx, &models.BlogPost{
		ID:          id,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		UserID:      userID,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrPostNotOwned
		}
		return nil, common.Internal(err)
	}

	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, identity auth.Identity, id int64) (bool, error) {

	userID, ok := identity.UserID()
	if !ok {
		return false, ErrAuthRequired
	}

	if err := s.repomanager.Posts(s.db).Delete(ctx, id, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, ErrPostNotOwned
		}
		return false, common.Internal(err)
	}

	return true, nil
}
