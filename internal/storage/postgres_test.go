package storage_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/internal/domain"
	"tableside/internal/service"
	"tableside/internal/storage"
)

func setupTestDB(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return storage.NewPostgresRepository(db), mock
}

var reservationCols = []string{"id", "customer_id", "customer_name", "restaurant_id", "restaurant_name", "date", "time", "guests", "status", "special_requests", "created_at"}

func TestPostgresRepository_CreateReservation(t *testing.T) {
	repo, mock := setupTestDB(t)
	created := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)

	res := &domain.Reservation{
		ID: "r-1", CustomerID: "u-1", CustomerName: "Ann", RestaurantID: "1", RestaurantName: "Bella Vista",
		Date: "2024-12-20", Time: "7:30 PM", Guests: 2, Status: domain.ReservationConfirmed, CreatedAt: created,
	}
	mock.ExpectExec("INSERT INTO reservations").
		WithArgs("r-1", "u-1", "Ann", "1", "Bella Vista", "2024-12-20", "7:30 PM", 2, domain.ReservationConfirmed, "", created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateReservation(context.Background(), res))
	assert.Equal(t, created, res.CreatedAt)
}

func TestPostgresRepository_CreateReservationRejectsUnknownStatus(t *testing.T) {
	repo, _ := setupTestDB(t)

	err := repo.CreateReservation(context.Background(), &domain.Reservation{ID: "r-1", Guests: 2, Status: "seated"})
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestPostgresRepository_GetReservation(t *testing.T) {
	tests := []struct {
		name          string
		prepare       func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "found",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, customer_id").WithArgs("1").
					WillReturnRows(sqlmock.NewRows(reservationCols).
						AddRow("1", "1", "John Doe", "1", "Bella Vista", "2024-12-20", "7:30 PM", 2, "confirmed", "Window table preferred", time.Now()))
			},
		},
		{
			name: "not_found",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, customer_id").WithArgs("1").WillReturnError(sql.ErrNoRows)
			},
			expectedError: service.ErrReservationNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupTestDB(t)
			testCase.prepare(mock)

			res, err := repo.GetReservation(context.Background(), "1")
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "John Doe", res.CustomerName)
			assert.Equal(t, domain.ReservationConfirmed, res.Status)
		})
	}
}

func TestPostgresRepository_ListReservationsFilters(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations")).
		WithArgs("2", "").
		WillReturnRows(sqlmock.NewRows(reservationCols).
			AddRow("2", "2", "Jane Smith", "2", "Sakura Sushi", "2024-12-22", "8:00 PM", 4, "pending", "", time.Now()))

	list, err := repo.ListReservations(context.Background(), service.ReservationFilter{RestaurantID: "2"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Jane Smith", list[0].CustomerName)
}

func TestPostgresRepository_UpdateReservationStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := setupTestDB(t)
		mock.ExpectExec("UPDATE reservations SET status").
			WithArgs(domain.ReservationCancelled, "2").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateReservationStatus(context.Background(), "2", domain.ReservationCancelled))
	})

	t.Run("missing_row", func(t *testing.T) {
		repo, mock := setupTestDB(t)
		mock.ExpectExec("UPDATE reservations SET status").
			WithArgs(domain.ReservationCancelled, "404").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateReservationStatus(context.Background(), "404", domain.ReservationCancelled)
		assert.ErrorIs(t, err, service.ErrReservationNotFound)
	})
}

func TestPostgresRepository_CreateOrderWritesItemsInTransaction(t *testing.T) {
	repo, mock := setupTestDB(t)
	now := time.Now()

	order := &domain.Order{
		ID: "o-1", RestaurantID: "1", TableNumber: "3", Status: domain.OrderPending, Total: 25, CreatedAt: now,
		Items: []domain.OrderItem{
			{MenuItemID: "A", Name: "Alpha", Price: 10, Quantity: 2},
			{MenuItemID: "B", Name: "Beta", Price: 5, Quantity: 1},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs("o-1", "1", "3", domain.OrderPending, 25.0, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs("o-1", 0, "A", "Alpha", 10.0, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs("o-1", 1, "B", "Beta", 5.0, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.CreateOrder(context.Background(), order))
}

func TestPostgresRepository_CreateOrderRollsBackOnItemFailure(t *testing.T) {
	repo, mock := setupTestDB(t)

	order := &domain.Order{
		ID: "o-1", RestaurantID: "1", TableNumber: "3", Status: domain.OrderPending, Total: 10,
		Items: []domain.OrderItem{{MenuItemID: "A", Name: "Alpha", Price: 10, Quantity: 1}},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.CreateOrder(context.Background(), order), sql.ErrConnDone)
}

func TestPostgresRepository_GetOrderLoadsItems(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("SELECT id, restaurant_id, table_number").WithArgs("1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "table_number", "status", "total", "created_at"}).
			AddRow("1", "1", "3", "preparing", 60.97, time.Now()))
	mock.ExpectQuery("FROM order_items").WithArgs("1").
		WillReturnRows(sqlmock.NewRows([]string{"menu_item_id", "name", "price", "quantity"}).
			AddRow("1", "Margherita Pizza", 18.99, 2).
			AddRow("2", "Spaghetti Carbonara", 22.99, 1))

	order, err := repo.GetOrder(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPreparing, order.Status)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "Margherita Pizza", order.Items[0].Name)
}

func TestPostgresRepository_GetOrderNotFound(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("SELECT id, restaurant_id, table_number").WithArgs("9").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetOrder(context.Background(), "9")
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestPostgresRepository_UpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	repo, _ := setupTestDB(t)

	err := repo.UpdateOrderStatus(context.Background(), "1", "burnt")
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestPostgresRepository_EnsureSchema(t *testing.T) {
	repo, mock := setupTestDB(t)

	for i := 0; i < 5; i++ {
		mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	assert.NoError(t, repo.EnsureSchema())
}

func TestPostgresRepository_SeedSamplesSkipsPopulatedTables(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	assert.NoError(t, repo.SeedSamples(context.Background(), storage.Seed(time.Now())))
}
