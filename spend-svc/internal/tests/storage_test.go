package tests

import (
	"context"
	"testing"
	"time"

	"foodrun/spend-svc/internal/domain"
	"foodrun/spend-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresOrders_OrdersBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	orders := storage.NewPostgresOrders(db)

	from := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC)
	mock.ExpectQuery("SELECT id, restaurant_id, cost, order_date FROM orders").
		WithArgs("u1", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "cost", "order_date"}).
			AddRow("o1", "r1", 5.0, from.Add(8*time.Hour)).
			AddRow("o2", "r2", 2.5, to.Add(-time.Hour)))

	result, err := orders.OrdersBetween(context.Background(), "u1", from, to)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "u1", result[0].UserID)
	assert.Equal(t, 2.5, result[1].Cost)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	cache := storage.NewRedisCache(client)
	ctx := context.Background()

	missing, err := cache.Get(ctx, "u1", "2024-03-08")
	require.NoError(t, err)
	assert.Nil(t, missing)

	spend := &domain.DailySpend{Date: "2024-03-08", Total: 7.5, Orders: 2}
	require.NoError(t, cache.Set(ctx, "u1", spend, time.Hour))

	cached, err := cache.Get(ctx, "u1", "2024-03-08")
	require.NoError(t, err)
	assert.Equal(t, spend, cached)

	server.FastForward(2 * time.Hour)
	expired, err := cache.Get(ctx, "u1", "2024-03-08")
	require.NoError(t, err)
	assert.Nil(t, expired)
}
