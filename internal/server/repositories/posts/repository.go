package posts

import (
	"context"

	"github.com/dmitrijs2005/blogql/internal/server/models"
)

// Repository persists blog posts. Update and Delete only touch a row when
// both the post id and the owner match; otherwise they return
// common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	Delete(ctx context.Context, id, userID int64) error
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	List(ctx context.Context) ([]*models.BlogPost, error)
}
