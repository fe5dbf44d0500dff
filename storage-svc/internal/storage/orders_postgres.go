package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"foodrun/model"
	"foodrun/storage-svc/internal/domain"
	"foodrun/storage-svc/internal/service"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

var _ service.OrderRepository = (*PostgresRepository)(nil)

const orderColumns = `id, user_id, restaurant_id, cost, order_date, delivered, travel_time,
	food_id, food_amount, address_origin, address_destination, special_instructions, address_name`

// EnsureSchema creates the orders table and the trigger that announces
// changes to a user's orders on the orders_changed channel.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			restaurant_id TEXT NOT NULL,
			cost DOUBLE PRECISION NOT NULL DEFAULT 0,
			order_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			delivered BOOLEAN NOT NULL DEFAULT FALSE,
			travel_time TIMESTAMPTZ,
			food_id TEXT[] NOT NULL DEFAULT '{}',
			food_amount INTEGER[] NOT NULL DEFAULT '{}',
			address_origin TEXT[] NOT NULL DEFAULT '{}',
			address_destination TEXT[] NOT NULL DEFAULT '{}',
			special_instructions TEXT NOT NULL DEFAULT '',
			address_name TEXT NOT NULL DEFAULT ''
		)`,
		"CREATE INDEX IF NOT EXISTS orders_user_date ON orders (user_id, order_date)",
		`CREATE OR REPLACE FUNCTION notify_orders_changed() RETURNS trigger AS $$
		BEGIN
			PERFORM pg_notify('orders_changed', NEW.user_id);
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql`,
		"DROP TRIGGER IF EXISTS orders_changed ON orders",
		"CREATE TRIGGER orders_changed AFTER INSERT OR UPDATE ON orders FOR EACH ROW EXECUTE FUNCTION notify_orders_changed()",
	}

	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func toInt64s(values []int) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}
	return out
}

func toInts(values []int64) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}

func orStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// InsertOrder stores the order and appends it to the owner's order history
// in one transaction.
func (r *PostgresRepository) InsertOrder(ctx context.Context, order *model.FoodOrder) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, order.ID, order.UserID, order.RestaurantID, order.Cost, order.OrderDate, order.IsDelivered,
		nullTime(order.TravelTime), pq.Array(orStrings(order.FoodID)), pq.Array(toInt64s(order.FoodAmount)),
		pq.Array(orStrings(order.AddressOriginList)), pq.Array(orStrings(order.AddressDestinationList)),
		order.SpecialInstructions, order.AddressName); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE users SET order_history = array_append(order_history, $1) WHERE id = $2",
		order.ID, order.UserID); err != nil {
		return err
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*model.FoodOrder, error) {
	var (
		order      model.FoodOrder
		travelTime sql.NullTime
		amounts    []int64
	)
	if err := row.Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.Cost, &order.OrderDate,
		&order.IsDelivered, &travelTime, pq.Array(&order.FoodID), pq.Array(&amounts),
		pq.Array(&order.AddressOriginList), pq.Array(&order.AddressDestinationList),
		&order.SpecialInstructions, &order.AddressName); err != nil {
		return nil, err
	}
	if travelTime.Valid {
		order.TravelTime = travelTime.Time
	}
	order.FoodAmount = toInts(amounts)
	return &order, nil
}

func (r *PostgresRepository) ListUserOrders(ctx context.Context, userID string, window domain.OrderRange) ([]model.FoodOrder, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1
		  AND ($2::timestamptz IS NULL OR order_date >= $2)
		  AND ($3::timestamptz IS NULL OR order_date <= $3)
		ORDER BY order_date DESC
	`, userID, window.From, window.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.FoodOrder{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*model.FoodOrder, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, service.ErrNotFound
	}
	return order, err
}

// MarkDelivered reports whether this call was the one that flipped the flag.
func (r *PostgresRepository) MarkDelivered(ctx context.Context, id string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, "UPDATE orders SET delivered = TRUE WHERE id = $1 AND NOT delivered", id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows == 0 {
		var exists bool
		if err := r.DB.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)", id).Scan(&exists); err != nil {
			return false, err
		}
		if !exists {
			return false, service.ErrNotFound
		}
	}
	return rows > 0, nil
}
