package tests

import (
	"bytes"
	"context"
	"testing"
	"time"

	"foodrun/model"
	"foodrun/storage-svc/internal/domain"
	"foodrun/storage-svc/internal/service"
	"foodrun/storage-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderRowColumns = []string{
	"id", "user_id", "restaurant_id", "cost", "order_date", "delivered", "travel_time",
	"food_id", "food_amount", "address_origin", "address_destination", "special_instructions", "address_name",
}

func TestPostgresRepository_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orders").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS orders_user_date").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE OR REPLACE FUNCTION notify_orders_changed").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DROP TRIGGER IF EXISTS orders_changed").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TRIGGER orders_changed").WillReturnError(assert.AnError)

	err = repo.EnsureSchema(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_InsertOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	order := &model.FoodOrder{
		ID: "o1", UserID: "u1", RestaurantID: "r1", Cost: 12.5,
		OrderDate: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		FoodID:    []string{"f1"}, FoodAmount: []int{2},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users SET order_history = array_append").
		WithArgs("o1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.InsertOrder(context.Background(), order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_InsertOrder_RollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = repo.InsertOrder(context.Background(), &model.FoodOrder{ID: "o1", UserID: "u1"})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListUserOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	ordered := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	travel := ordered.Add(40 * time.Minute)
	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs("u1", nil, nil).
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow("o1", "u1", "r1", 12.5, ordered, false, travel, "{f1,f2}", "{2,1}", "{1.5,2.5}", "{3.5,4.5}", "", "Home").
			AddRow("o2", "u1", "r1", 3.0, ordered, true, nil, "{f1}", "{1}", "{}", "{}", "ring", ""))

	orders, err := repo.ListUserOrders(context.Background(), "u1", domain.OrderRange{})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, []string{"f1", "f2"}, orders[0].FoodID)
	assert.Equal(t, []int{2, 1}, orders[0].FoodAmount)
	assert.True(t, orders[0].TravelTime.Equal(travel))
	assert.True(t, orders[1].TravelTime.IsZero())
	assert.Equal(t, "ring", orders[1].SpecialInstructions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetOrder_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(orderRowColumns))

	_, err = repo.GetOrder(context.Background(), "ghost")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestPostgresRepository_MarkDelivered(t *testing.T) {
	tests := []struct {
		name          string
		prepare       func(mock sqlmock.Sqlmock)
		expectFlipped bool
		expectedError error
	}{
		{
			name: "first flip",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE orders SET delivered = TRUE").
					WithArgs("o1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectFlipped: true,
		},
		{
			name: "already delivered",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE orders SET delivered = TRUE").
					WithArgs("o1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs("o1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
		},
		{
			name: "unknown order",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE orders SET delivered = TRUE").
					WithArgs("o1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs("o1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expectedError: service.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			repo := storage.NewPostgresRepository(db)
			testCase.prepare(mock)

			flipped, err := repo.MarkDelivered(context.Background(), "o1")
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, testCase.expectFlipped, flipped)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDefaultQRGenerator(t *testing.T) {
	qr := service.DefaultQRGenerator{BaseURL: "https://foodrun.example.com/"}

	assert.Equal(t, "https://foodrun.example.com/track.html?order_id=o+1", qr.Link("o 1"))

	png, err := qr.Generate("o1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
