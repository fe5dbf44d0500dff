package tests

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"foodrun/account-svc/internal/domain"
	"foodrun/account-svc/internal/mocks"
	"foodrun/account-svc/internal/service"
	"foodrun/authtoken"
	"foodrun/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type serviceDeps struct {
	repository *mocks.UserRepository
	denylist   *mocks.TokenDenylist
	pictures   *mocks.PictureStore
	tokens     *mocks.TokenIssuer
	watcher    *mocks.Watcher
	svc        *service.AccountService
}

func newServiceDeps(t *testing.T) serviceDeps {
	deps := serviceDeps{
		repository: mocks.NewUserRepository(t),
		denylist:   mocks.NewTokenDenylist(t),
		pictures:   mocks.NewPictureStore(t),
		tokens:     mocks.NewTokenIssuer(t),
		watcher:    mocks.NewWatcher(t),
	}
	deps.svc = service.NewAccountService(deps.repository, deps.denylist, deps.pictures, deps.tokens, deps.watcher)
	return deps
}

func authCode(t *testing.T, err error) string {
	t.Helper()
	var authErr *authtoken.AuthError
	require.ErrorAs(t, err, &authErr)
	return authErr.Code
}

func TestAccountService_SignUp(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		req          domain.SignUpRequest
		prepareMocks func(deps serviceDeps)
		expectedCode string
	}{
		{
			name: "success",
			req:  domain.SignUpRequest{Name: " Ann ", Email: "Ann@Example.com", Password: "secret1"},
			prepareMocks: func(deps serviceDeps) {
				deps.repository.On("CreateUser", ctx, mock.MatchedBy(func(a *domain.Account) bool {
					return a.Email == "ann@example.com" && a.Name == "Ann" && a.ID != "" &&
						bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("secret1")) == nil
				})).Return(nil).Once()
				deps.tokens.On("Generate", mock.Anything, "ann@example.com").Return("token-1", nil).Once()
			},
		},
		{
			name:         "badly formatted email",
			req:          domain.SignUpRequest{Name: "Ann", Email: "not-an-email", Password: "secret1"},
			prepareMocks: func(deps serviceDeps) {},
			expectedCode: authtoken.CodeInvalidEmail,
		},
		{
			name:         "weak password",
			req:          domain.SignUpRequest{Name: "Ann", Email: "ann@example.com", Password: "123"},
			prepareMocks: func(deps serviceDeps) {},
			expectedCode: authtoken.CodeWeakPassword,
		},
		{
			name: "email already registered",
			req:  domain.SignUpRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"},
			prepareMocks: func(deps serviceDeps) {
				deps.repository.On("CreateUser", ctx, mock.Anything).Return(service.ErrEmailTaken).Once()
			},
			expectedCode: authtoken.CodeEmailAlreadyInUse,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			deps := newServiceDeps(t)
			testCase.prepareMocks(deps)

			session, err := deps.svc.SignUp(ctx, testCase.req)
			if testCase.expectedCode != "" {
				assert.Equal(t, testCase.expectedCode, authCode(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-1", session.Token)
			assert.Equal(t, "ann@example.com", session.User.Email)
			assert.Empty(t, session.User.OrderHistory)
		})
	}
}

func TestAccountService_SignIn(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	account := &domain.Account{
		User:         model.User{ID: "u1", Name: "Ann", Email: "ann@example.com"},
		PasswordHash: string(hash),
	}
	disabled := *account
	disabled.Disabled = true

	tests := []struct {
		name         string
		req          domain.SignInRequest
		prepareMocks func(deps serviceDeps)
		expectedCode string
		expectedErr  bool
	}{
		{
			name: "success",
			req:  domain.SignInRequest{Email: "ann@example.com", Password: "secret1"},
			prepareMocks: func(deps serviceDeps) {
				deps.repository.On("GetAccountByEmail", ctx, "ann@example.com").Return(account, nil).Once()
				deps.tokens.On("Generate", "u1", "ann@example.com").Return("token-1", nil).Once()
			},
		},
		{
			name: "wrong password",
			req:  domain.SignInRequest{Email: "ann@example.com", Password: "nope"},
			prepareMocks: func(deps serviceDeps) {
				deps.repository.On("GetAccountByEmail", ctx, "ann@example.com").Return(account, nil).Once()
			},
			expectedCode: authtoken.CodeWrongPassword,
		},
		{
			name: "unknown user",
			req:  domain.SignInRequest{Email: "bob@example.com", Password: "secret1"},
			prepareMocks: func(deps serviceDeps) {
				deps.repository.On("GetAccountByEmail", ctx, "bob@example.com").Return(nil, service.ErrUserNotFound).Once()
			},
			expectedCode: authtoken.CodeUserNotFound,
		},
		{
			name: "disabled user",
			req:  domain.SignInRequest{Email: "ann@example.com", Password: "secret1"},
			prepareMocks: func(deps serviceDeps) {
				deps.repository.On("GetAccountByEmail", ctx, "ann@example.com").Return(&disabled, nil).Once()
			},
			expectedCode: authtoken.CodeUserDisabled,
		},
		{
			name:         "badly formatted email",
			req:          domain.SignInRequest{Email: "ann", Password: "secret1"},
			prepareMocks: func(deps serviceDeps) {},
			expectedCode: authtoken.CodeInvalidEmail,
		},
		{
			name: "database failure is not an auth error",
			req:  domain.SignInRequest{Email: "ann@example.com", Password: "secret1"},
			prepareMocks: func(deps serviceDeps) {
				deps.repository.On("GetAccountByEmail", ctx, "ann@example.com").Return(nil, errors.New("connection refused")).Once()
			},
			expectedErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			deps := newServiceDeps(t)
			testCase.prepareMocks(deps)

			session, err := deps.svc.SignIn(ctx, testCase.req)
			switch {
			case testCase.expectedCode != "":
				assert.Equal(t, testCase.expectedCode, authCode(t, err))
			case testCase.expectedErr:
				require.Error(t, err)
				assert.Equal(t, authtoken.MessageUnexpected, authtoken.AuthMessage(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, "token-1", session.Token)
				assert.Equal(t, "u1", session.User.ID)
			}
		})
	}
}

func TestAccountService_SignOut(t *testing.T) {
	ctx := context.Background()
	deps := newServiceDeps(t)

	claims := &authtoken.Claims{TokenID: "jti-1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
	deps.denylist.On("Revoke", ctx, "jti-1", mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 59*time.Minute && ttl <= time.Hour
	})).Return(nil).Once()

	assert.NoError(t, deps.svc.SignOut(ctx, claims))

	expired := &authtoken.Claims{TokenID: "jti-2", ExpiresAt: time.Now().Add(-time.Minute)}
	assert.NoError(t, deps.svc.SignOut(ctx, expired))
}

func TestAccountService_UploadProfilePicture(t *testing.T) {
	ctx := context.Background()
	deps := newServiceDeps(t)
	image := bytes.NewReader([]byte("png-bytes"))
	url := "https://cdn.example.com/DeliveryAppProfilePictures/u1/profile_picture"

	deps.repository.On("GetUser", ctx, "u1").Return(&model.User{ID: "u1"}, nil).Once()
	deps.pictures.On("Upload", ctx, "DeliveryAppProfilePictures/u1/profile_picture", image, "image/png").Return(url, nil).Once()
	deps.repository.On("UpdateProfilePicture", ctx, "u1", url).Return(nil).Once()

	got, err := deps.svc.UploadProfilePicture(ctx, "u1", image, "image/png")
	require.NoError(t, err)
	assert.Equal(t, url, got)
}

func TestAccountService_UploadProfilePicture_UnknownUser(t *testing.T) {
	ctx := context.Background()
	deps := newServiceDeps(t)
	deps.repository.On("GetUser", ctx, "ghost").Return(nil, service.ErrUserNotFound).Once()

	_, err := deps.svc.UploadProfilePicture(ctx, "ghost", bytes.NewReader(nil), "")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestAccountService_WatchUser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	deps := newServiceDeps(t)

	signal := make(chan struct{}, 1)
	var changes <-chan struct{} = signal
	deps.watcher.On("Watch", mock.Anything, service.UsersChannel, "u1").Return(changes, nil).Once()
	deps.repository.On("GetUser", mock.Anything, "u1").Return(&model.User{ID: "u1", Name: "Ann"}, nil).Twice()
	deps.repository.On("GetUser", mock.Anything, "u1").Return(&model.User{ID: "u1", Name: "Annie"}, nil)

	sub, err := deps.svc.WatchUser(ctx, "u1")
	require.NoError(t, err)
	defer sub.Close()

	first := <-sub.C()
	assert.Equal(t, "Ann", first.Name)

	signal <- struct{}{}
	second := <-sub.C()
	assert.Equal(t, "Annie", second.Name)
}

func TestAccountService_ProfilePictureURL(t *testing.T) {
	ctx := context.Background()
	deps := newServiceDeps(t)
	deps.repository.On("GetUser", ctx, "u1").Return(&model.User{ID: "u1", ProfilePictureURL: "https://x/y"}, nil).Once()

	url, err := deps.svc.ProfilePictureURL(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "https://x/y", url)
}
