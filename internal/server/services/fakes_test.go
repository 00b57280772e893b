package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/blogql/internal/dbx"
	"github.com/dmitrijs2005/blogql/internal/server/models"
	"github.com/dmitrijs2005/blogql/internal/server/repositories/posts"
	"github.com/dmitrijs2005/blogql/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type fakeUsersRepo struct {
	created   []*models.User
	createID  int64
	createErr error

	byEmail    *models.User
	byEmailErr error

	byID    *models.User
	byIDErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = f.createID
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmail, nil
}

func (f *fakeUsersRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

type fakePostsRepo struct {
	lastCreate *models.BlogPost
	createErr  error

	lastUpdate *models.BlogPost
	updateErr  error

	deletedID, deletedBy int64
	deleteErr            error

	getOut *models.BlogPost
	getErr error

	listOut []*models.BlogPost
	listErr error
}

func (f *fakePostsRepo) Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	f.lastCreate = p
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *p
	out.ID = 1
	return &out, nil
}

func (f *fakePostsRepo) Update(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	f.lastUpdate = p
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	out := *p
	return &out, nil
}

func (f *fakePostsRepo) Delete(ctx context.Context, id, userID int64) error {
	f.deletedID, f.deletedBy = id, userID
	return f.deleteErr
}

func (f *fakePostsRepo) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakePostsRepo) List(ctx context.Context) ([]*models.BlogPost, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeRepoManager struct {
	users *fakeUsersRepo
	posts *fakePostsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.users }
func (m *fakeRepoManager) Posts(dbx.DBTX) posts.Repository              { return m.posts }
