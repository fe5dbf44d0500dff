package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"foodrun/account-svc/internal/domain"
	"foodrun/authtoken"
	"foodrun/model"
	"foodrun/stream"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	UsersChannel      = "users_changed"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrEmptyImage   = errors.New("image is empty")
)

var validate = validator.New()

func ProfilePictureKey(userID string) string {
	return "DeliveryAppProfilePictures/" + userID + "/profile_picture"
}

type AccountService struct {
	repository UserRepository
	denylist   TokenDenylist
	pictures   PictureStore
	tokens     TokenIssuer
	watcher    stream.Watcher
	now        func() time.Time
}

func NewAccountService(repository UserRepository, denylist TokenDenylist, pictures PictureStore, tokens TokenIssuer, watcher stream.Watcher) *AccountService {
	return &AccountService{
		repository: repository,
		denylist:   denylist,
		pictures:   pictures,
		tokens:     tokens,
		watcher:    watcher,
		now:        time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AccountService) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.Session, error) {
	email := normalizeEmail(req.Email)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, authtoken.NewAuthError(authtoken.CodeInvalidEmail)
	}
	if len(req.Password) < MinPasswordLength {
		return nil, authtoken.NewAuthError(authtoken.CodeWeakPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		User: model.User{
			ID:           uuid.NewString(),
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			SignUpDate:   s.now(),
			OrderHistory: []string{},
		},
		PasswordHash: string(hash),
	}

	if err := s.repository.CreateUser(ctx, account); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, authtoken.NewAuthError(authtoken.CodeEmailAlreadyInUse)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issue(account.User)
}

func (s *AccountService) SignIn(ctx context.Context, req domain.SignInRequest) (*domain.Session, error) {
	email := normalizeEmail(req.Email)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, authtoken.NewAuthError(authtoken.CodeInvalidEmail)
	}

	account, err := s.repository.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, authtoken.NewAuthError(authtoken.CodeUserNotFound)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if account.Disabled {
		return nil, authtoken.NewAuthError(authtoken.CodeUserDisabled)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, authtoken.NewAuthError(authtoken.CodeWrongPassword)
	}

	return s.issue(account.User)
}

func (s *AccountService) issue(user model.User) (*domain.Session, error) {
	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &domain.Session{Token: token, User: user}, nil
}

func (s *AccountService) SignOut(ctx context.Context, claims *authtoken.Claims) error {
	if claims == nil || claims.TokenID == "" {
		return nil
	}
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.denylist.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *AccountService) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	return s.repository.GetUser(ctx, userID)
}

func (s *AccountService) WatchUser(ctx context.Context, userID string) (*stream.Subscription[*model.User], error) {
	if _, err := s.repository.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return stream.Notified(ctx, s.watcher, UsersChannel, userID, func(ctx context.Context) (*model.User, error) {
		return s.repository.GetUser(ctx, userID)
	})
}

func (s *AccountService) UploadProfilePicture(ctx context.Context, userID string, image io.Reader, contentType string) (string, error) {
	if image == nil {
		return "", ErrEmptyImage
	}
	if _, err := s.repository.GetUser(ctx, userID); err != nil {
		return "", err
	}

	url, err := s.pictures.Upload(ctx, ProfilePictureKey(userID), image, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload profile picture: %w", err)
	}
	if err := s.repository.UpdateProfilePicture(ctx, userID, url); err != nil {
		return "", fmt.Errorf("failed to update profile picture: %w", err)
	}
	return url, nil
}

func (s *AccountService) ProfilePictureURL(ctx context.Context, userID string) (string, error) {
	user, err := s.repository.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.ProfilePictureURL, nil
}

func (s *AccountService) WatchProfilePicture(ctx context.Context, userID string) (*stream.Subscription[string], error) {
	if _, err := s.repository.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return stream.Notified(ctx, s.watcher, UsersChannel, userID, func(ctx context.Context) (string, error) {
		return s.ProfilePictureURL(ctx, userID)
	})
}
