package graphql

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/blogql/internal/logging"
	"github.com/dmitrijs2005/blogql/internal/server/auth"
	"github.com/dmitrijs2005/blogql/internal/server/models"
)

type UserService interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (int64, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

type PostService interface {
	GetPosts(ctx context.Context) ([]*models.BlogPost, error)
	GetPost(ctx context.Context, id int64) (*models.BlogPost, error)
	CreatePost(ctx context.Context, identity auth.Identity, title, description string, imageURL *string) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, identity auth.Identity, id int64, title, description string, imageURL *string) (*models.BlogPost, error)
	DeletePost(ctx context.Context, identity auth.Identity, id int64) (bool, error)
}

type ImageService interface {
	CreateUpload(ctx context.Context, identity auth.Identity, contentType *string) (*models.ImageUpload, error)
}

// ErrorRecorder counts resolver failures by operation and error kind.
type ErrorRecorder interface {
	ResolverError(operation, kind string)
}

// Resolver is the root resolver for both Query and Mutation. Each method maps
// one schema field to a service call; the acting identity is read from the
// request context placed there by the access token middleware.
type Resolver struct {
	users   UserService
	posts   PostService
	images  ImageService
	logger  logging.Logger
	metrics ErrorRecorder
}

func NewResolver(us UserService, ps PostService, is ImageService, l logging.Logger, m ErrorRecorder) *Resolver {
	return &Resolver{
		users:   us,
		posts:   ps,
		images:  is,
		logger:  l.With("module", "graphql_resolver"),
		metrics: m,
	}
}

// Query

func (r *Resolver) GetUser(ctx context.Context, args struct{ ID int32 }) (*userResolver, error) {
	user, err := r.users.GetUser(ctx, int64(args.ID))
	if err != nil {
		return nil, r.fail(ctx, "getUser", err)
	}
	return &userResolver{user: user}, nil
}

func (r *Resolver) GetBlogPost(ctx context.Context, args struct{ ID int32 }) (*blogPostResolver, error) {
	post, err := r.posts.GetPost(ctx, int64(args.ID))
	if err != nil {
		return nil, r.fail(ctx, "getBlogPost", err)
	}
	return &blogPostResolver{post: post}, nil
}

func (r *Resolver) GetBlogPosts(ctx context.Context) (*[]*blogPostResolver, error) {
	items, err := r.posts.GetPosts(ctx)
	if err != nil {
		return nil, r.fail(ctx, "getBlogPosts", err)
	}

	out := make([]*blogPostResolver, 0, len(items))
	for _, p := range items {
		out = append(out, &blogPostResolver{post: p})
	}
	return &out, nil
}

// Mutation

type registerArgs struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (r *Resolver) Register(ctx context.Context, args registerArgs) (*string, error) {
	id, err := r.users.Register(ctx, args.FirstName, args.LastName, args.Email, args.Password)
	if err != nil {
		return nil, r.fail(ctx, "register", err)
	}
	s := strconv.FormatInt(id, 10)
	return &s, nil
}

type loginArgs struct {
	Email    string
	Password string
}

func (r *Resolver) Login(ctx context.Context, args loginArgs) (*string, error) {
	token, err := r.users.Login(ctx, args.Email, args.Password)
	if err != nil {
		return nil, r.fail(ctx, "login", err)
	}
	return &token, nil
}

type createBlogPostArgs struct {
	Title       string
	Description string
	ImageURL    *string
}

func (r *Resolver) CreateBlogPost(ctx context.Context, args createBlogPostArgs) (*blogPostResolver, error) {
	post, err := r.posts.CreatePost(ctx, auth.IdentityFromContext(ctx), args.Title, args.Description, args.ImageURL)
	if err != nil {
		return nil, r.fail(ctx, "createBlogPost", err)
	}
	return &blogPostResolver{post: post}, nil
}

type updateBlogPostArgs struct {
	ID          int32
	Title       string
	Description string
	ImageURL    *string
}

func (r *Resolver) UpdateBlogPost(ctx context.Context, args updateBlogPostArgs) (*blogPostResolver, error) {
	post, err := r.posts.UpdatePost(ctx, auth.IdentityFromContext(ctx), int64(args.ID), args.Title, args.Description, args.ImageURL)
	if err != nil {
		return nil, r.fail(ctx, "updateBlogPost", err)
	}
	return &blogPostResolver{post: post}, nil
}

func (r *Resolver) DeleteBlogPost(ctx context.Context, args struct{ ID int32 }) (*bool, error) {
	ok, err := r.posts.DeletePost(ctx, auth.IdentityFromContext(ctx), int64(args.ID))
	if err != nil {
		return nil, r.fail(ctx, "deleteBlogPost", err)
	}
	return &ok, nil
}

func (r *Resolver) CreateImageUpload(ctx context.Context, args struct{ ContentType *string }) (*imageUploadResolver, error) {
	upload, err := r.images.CreateUpload(ctx, auth.IdentityFromContext(ctx), args.ContentType)
	if err != nil {
		return nil, r.fail(ctx, "createImageUpload", err)
	}
	return &imageUploadResolver{upload: upload}, nil
}
