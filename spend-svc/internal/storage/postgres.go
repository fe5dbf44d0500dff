package storage

import (
	"context"
	"database/sql"
	"time"

	"foodrun/model"
	"foodrun/spend-svc/internal/service"
)

type PostgresOrders struct {
	DB *sql.DB
}

func NewPostgresOrders(db *sql.DB) *PostgresOrders {
	return &PostgresOrders{DB: db}
}

var _ service.OrderSource = (*PostgresOrders)(nil)

func (p *PostgresOrders) OrdersBetween(ctx context.Context, userID string, from, to time.Time) ([]model.FoodOrder, error) {
	rows, err := p.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, cost, order_date
		FROM orders
		WHERE user_id = $1 AND order_date BETWEEN $2 AND $3
		ORDER BY order_date
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.FoodOrder{}
	for rows.Next() {
		order := model.FoodOrder{UserID: userID}
		if err := rows.Scan(&order.ID, &order.RestaurantID, &order.Cost, &order.OrderDate); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
