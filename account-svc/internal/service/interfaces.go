package service

import (
	"context"
	"io"
	"time"

	"foodrun/account-svc/internal/domain"
	"foodrun/authtoken"
	"foodrun/model"
	"foodrun/stream"
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.Session, error)
	SignIn(ctx context.Context, req domain.SignInRequest) (*domain.Session, error)
	SignOut(ctx context.Context, claims *authtoken.Claims) error
	CurrentUser(ctx context.Context, userID string) (*model.User, error)
	WatchUser(ctx context.Context, userID string) (*stream.Subscription[*model.User], error)
	UploadProfilePicture(ctx context.Context, userID string, image io.Reader, contentType string) (string, error)
	ProfilePictureURL(ctx context.Context, userID string) (string, error)
	WatchProfilePicture(ctx context.Context, userID string) (*stream.Subscription[string], error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, account *domain.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	UpdateProfilePicture(ctx context.Context, id, url string) error
}

type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type PictureStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type TokenIssuer interface {
	Generate(userID, email string) (string, error)
}

var _ AccountServiceInterface = (*AccountService)(nil)
var _ TokenIssuer = (*authtoken.Manager)(nil)
