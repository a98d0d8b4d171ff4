package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/voyagehub/internal/logger"
	"github.com/sbilibin2017/voyagehub/internal/models"
	"github.com/sbilibin2017/voyagehub/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists = errors.New("username or email already exists")
	ErrMissingFields     = errors.New("username, email and password are required")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so responses do not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) error
}

// UserCache defines cached user lookups.
type UserCache interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	SetByEmail(ctx context.Context, user *models.UserDB) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	cache  UserCache
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance. The cache is
// optional and may be nil.
func NewAuthService(reader UserReader, writer UserWriter, cache UserCache, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		cache:  cache,
		jwt:    jwt,
	}
}

// Register registers a new user with a bcrypt-hashed password.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return ErrMissingFields
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Infow("user already exists", "username", username, "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, email, string(hashedPassword)); err != nil {
		// The unique indexes are the authoritative guard against
		// concurrent duplicate registration.
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user by email and returns a JWT token together
// with the user record.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	user := svc.lookupCached(ctx, email)

	if user == nil {
		var err error
		user, err = svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
		if err != nil {
			logger.Log.Errorw("failed to get user", "err", err)
			return "", nil, err
		}
		if user == nil {
			logger.Log.Infow("login with unknown email")
			return "", nil, ErrInvalidCredentials
		}
		if svc.cache != nil {
			if err := svc.cache.SetByEmail(ctx, user); err != nil {
				logger.Log.Errorw("failed to cache user", "err", err)
			}
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", user.Username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// lookupCached returns the cached user for the email, or nil on any
// miss or cache failure.
func (svc *AuthService) lookupCached(ctx context.Context, email string) *models.UserDB {
	if svc.cache == nil {
		return nil
	}
	user, err := svc.cache.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("user cache lookup failed", "err", err)
		return nil
	}
	return user
}
