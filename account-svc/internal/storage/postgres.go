package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodrun/account-svc/internal/domain"
	"foodrun/account-svc/internal/service"
	"foodrun/model"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

var _ service.UserRepository = (*PostgresRepository)(nil)

// EnsureSchema creates the users table and the trigger that announces row
// changes on the users_changed channel.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			disabled BOOLEAN NOT NULL DEFAULT FALSE,
			sign_up_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			profile_picture_url TEXT NOT NULL DEFAULT '',
			order_history TEXT[] NOT NULL DEFAULT '{}'
		)`,
		`CREATE OR REPLACE FUNCTION notify_users_changed() RETURNS trigger AS $$
		BEGIN
			PERFORM pg_notify('users_changed', NEW.id);
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql`,
		"DROP TRIGGER IF EXISTS users_changed ON users",
		"CREATE TRIGGER users_changed AFTER INSERT OR UPDATE ON users FOR EACH ROW EXECUTE FUNCTION notify_users_changed()",
	}

	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, account *domain.Account) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, sign_up_date, profile_picture_url, order_history)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, account.ID, account.Name, account.Email, account.PasswordHash, account.SignUpDate,
		account.ProfilePictureURL, pq.Array(account.OrderHistory))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return service.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, sign_up_date, profile_picture_url, order_history, password_hash, disabled
		FROM users
		WHERE email = $1
	`, email).Scan(&account.ID, &account.Name, &account.Email, &account.SignUpDate,
		&account.ProfilePictureURL, pq.Array(&account.OrderHistory), &account.PasswordHash, &account.Disabled)
	if err == sql.ErrNoRows {
		return nil, service.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *PostgresRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, sign_up_date, profile_picture_url, order_history
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &user.Name, &user.Email, &user.SignUpDate,
		&user.ProfilePictureURL, pq.Array(&user.OrderHistory))
	if err == sql.ErrNoRows {
		return nil, service.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) UpdateProfilePicture(ctx context.Context, id, url string) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE users SET profile_picture_url = $1 WHERE id = $2", url, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return service.ErrUserNotFound
	}
	return nil
}
