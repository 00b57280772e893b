package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogql/internal/common"
	"github.com/dmitrijs2005/blogql/internal/dbx"
	"github.com/dmitrijs2005/blogql/internal/server/models"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.BlogPost, error) {
	post := &models.BlogPost{}
	var imageURL sql.NullString

	if err := row.Scan(&post.ID, &post.Title, &post.Description, &imageURL, &post.UserID); err != nil {
		return nil, err
	}

	if imageURL.Valid {
		post.ImageURL = &imageURL.String
	}

	return post, nil
}

func (r *SQLRepository) Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {

	query :=
		`INSERT INTO blog_posts (title, description, image_url, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, description, image_url, user_id
		 `

	created, err := scanPost(r.db.QueryRowContext(ctx, query,
		post.Title, post.Description, post.ImageURL, post.UserID))

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

func (r *SQLRepository) Update(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {

	query :=
		`UPDATE blog_posts SET title = $1, description = $2, image_url = $3
		 WHERE id = $4 AND user_id = $5
		 RETURNING id, title, description, image_url, user_id
		 `

	updated, err := scanPost(r.db.QueryRowContext(ctx, query,
		post.Title, post.Description, post.ImageURL, post.ID, post.UserID))

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id, userID int64) error {

	query :=
		`DELETE FROM blog_posts
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	query :=
		`SELECT id, title, description, image_url, user_id FROM blog_posts
		 WHERE id = $1
		 `

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]*models.BlogPost, error) {
	query :=
		`SELECT id, title, description, image_url, user_id FROM blog_posts
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := make([]*models.BlogPost, 0)

	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}
