package storage

import (
	"context"
	"database/sql"

	"foodrun/delivery-worker/internal/service"
)

type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

var _ service.OrderStore = (*PostgresStore)(nil)

// MarkDelivered only touches orders still in transit, so the flip happens
// once no matter how many parties race for it.
func (s *PostgresStore) MarkDelivered(ctx context.Context, orderID string) (bool, error) {
	result, err := s.DB.ExecContext(ctx, "UPDATE orders SET delivered = TRUE WHERE id = $1 AND NOT delivered", orderID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
