package graphql

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/blogql/internal/logging"
	"github.com/dmitrijs2005/blogql/internal/server/auth"
	"github.com/dmitrijs2005/blogql/internal/server/metrics"
	"github.com/dmitrijs2005/blogql/internal/server/models"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeUsers struct {
	registerID  int64
	registerErr error
	token       string
	loginErr    error
	user        *models.User
	userErr     error
}

func (f *fakeUsers) Register(ctx context.Context, firstName, lastName, email, password string) (int64, error) {
	return f.registerID, f.registerErr
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (string, error) {
	return f.token, f.loginErr
}

func (f *fakeUsers) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return f.user, f.userErr
}

type fakePosts struct {
	posts []*models.BlogPost
	post  *models.BlogPost
	err   error

	lastIdentity auth.Identity
	lastID       int64
	lastImageURL *string
}

func (f *fakePosts) GetPosts(ctx context.Context) ([]*models.BlogPost, error) {
	return f.posts, f.err
}

func (f *fakePosts) GetPost(ctx context.Context, id int64) (*models.BlogPost, error) {
	f.lastID = id
	return f.post, f.err
}

func (f *fakePosts) CreatePost(ctx context.Context, identity auth.Identity, title, description string, imageURL *string) (*models.BlogPost, error) {
	f.lastIdentity, f.lastImageURL = identity, imageURL
	return f.post, f.err
}

func (f *fakePosts) UpdatePost(ctx context.Context, identity auth.Identity, id int64, title, description string, imageURL *string) (*models.BlogPost, error) {
	f.lastIdentity, f.lastID, f.lastImageURL = identity, id, imageURL
	return f.post, f.err
}

func (f *fakePosts) DeletePost(ctx context.Context, identity auth.Identity, id int64) (bool, error) {
	f.lastIdentity, f.lastID = identity, id
	return f.err == nil, f.err
}

type fakeImages struct {
	upload       *models.ImageUpload
	err          error
	lastIdentity auth.Identity
	contentType  *string
}

func (f *fakeImages) CreateUpload(ctx context.Context, identity auth.Identity, contentType *string) (*models.ImageUpload, error) {
	f.lastIdentity, f.contentType = identity, contentType
	return f.upload, f.err
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

var errDown = errors.New("db down")

func newTestResolver(us *fakeUsers, ps *fakePosts, is *fakeImages) *Resolver {
	if us == nil {
		us = &fakeUsers{}
	}
	if ps == nil {
		ps = &fakePosts{}
	}
	if is == nil {
		is = &fakeImages{}
	}
	return NewResolver(us, ps, is, nopLogger{}, metrics.New())
}

func newTestServer(t *testing.T, r *Resolver, db Pinger) *Server {
	t.Helper()
	srv, err := NewServer(Options{Address: "127.0.0.1:0", SecretKey: "secret"}, nopLogger{}, r, db, metrics.New())
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	return srv
}
