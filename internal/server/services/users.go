package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogql/internal/common"
	"github.com/dmitrijs2005/blogql/internal/server/auth"
	"github.com/dmitrijs2005/blogql/internal/server/config"
	"github.com/dmitrijs2005/blogql/internal/server/models"
	"github.com/dmitrijs2005/blogql/internal/server/repositories/repomanager"
)

type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	hasher                *auth.PasswordHasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		hasher:                auth.NewPasswordHasher(cfg.BcryptCost),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a user and returns its id. Every field is required.
// A duplicate email surfaces as an internal error from the unique constraint.
func (s *UserService) Register(ctx context.Context, firstName, lastName, email, password string) (int64, error) {

	if firstName == "" || lastName == "" || email == "" || password == "" {
		return 0, ErrMissingFields
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, common.Internal(fmt.Errorf("error hashing password: %w", err))
	}

	user := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		return 0, common.Internal(fmt.Errorf("error creating user: %w", err))
	}

	return user.ID, nil
}

// Login checks the credentials and returns a signed access token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {

	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", ErrUserNotFound
		}
		return "", common.Internal(err)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		return "", common.Internal(fmt.Errorf("error comparing password: %w", err))
	}
	if !ok {
		return "", ErrInvalidPassword
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.Internal(fmt.Errorf("error generating token: %w", err))
	}

	return token, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {

	user, err := s.repomanager.Users(s.db).GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, common.Internal(err)
	}

	return user, nil
}
