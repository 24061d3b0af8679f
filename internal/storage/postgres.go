package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tableside/internal/domain"
	"tableside/internal/service"
)

// PostgresRepository persists reservations and orders. The catalog is static
// and stays in memory.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateReservation(ctx context.Context, res *domain.Reservation) error {
	if !res.Status.Valid() {
		return fmt.Errorf("%w: %q", service.ErrInvalidStatus, res.Status)
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now()
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reservations (id, customer_id, customer_name, restaurant_id, restaurant_name, date, time, guests, status, special_requests, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, res.ID, res.CustomerID, res.CustomerName, res.RestaurantID, res.RestaurantName,
		res.Date, res.Time, res.Guests, res.Status, res.SpecialRequests, res.CreatedAt)
	return err
}

const reservationColumns = `id, customer_id, customer_name, restaurant_id, restaurant_name, date, time, guests, status, COALESCE(special_requests, ''), created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(&res.ID, &res.CustomerID, &res.CustomerName, &res.RestaurantID, &res.RestaurantName,
		&res.Date, &res.Time, &res.Guests, &res.Status, &res.SpecialRequests, &res.CreatedAt)
	return res, err
}

func (r *PostgresRepository) GetReservation(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := scanReservation(r.DB.QueryRowContext(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", service.ErrReservationNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *PostgresRepository) ListReservations(ctx context.Context, filter service.ReservationFilter) ([]domain.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE ($1 = '' OR restaurant_id = $1) AND ($2 = '' OR customer_id = $2)
		ORDER BY created_at, id
	`, filter.RestaurantID, filter.CustomerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []domain.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *PostgresRepository) UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", service.ErrInvalidStatus, status)
	}
	result, err := r.DB.ExecContext(ctx, "UPDATE reservations SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	return expectRow(result, service.ErrReservationNotFound, id)
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	if !order.Status.Valid() {
		return fmt.Errorf("%w: %q", service.ErrInvalidStatus, order.Status)
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, restaurant_id, table_number, status, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, order.ID, order.RestaurantID, order.TableNumber, order.Status, order.Total, order.CreatedAt); err != nil {
		return err
	}

	for i, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, menu_item_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.ID, i, item.MenuItemID, item.Name, item.Price, item.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, table_number, status, total, created_at
		FROM orders WHERE id = $1
	`, id).Scan(&order.ID, &order.RestaurantID, &order.TableNumber, &order.Status, &order.Total, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", service.ErrOrderNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	if order.Items, err = r.orderItems(ctx, order.ID); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context, filter service.OrderFilter) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, table_number, status, total, created_at
		FROM orders
		WHERE ($1 = '' OR restaurant_id = $1)
		ORDER BY created_at, id
	`, filter.RestaurantID)
	if err != nil {
		return nil, err
	}

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.RestaurantID, &order.TableNumber, &order.Status, &order.Total, &order.CreatedAt); err != nil {
			rows.Close()
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range orders {
		if orders[i].Items, err = r.orderItems(ctx, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *PostgresRepository) orderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT menu_item_id, name, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", service.ErrInvalidStatus, status)
	}
	result, err := r.DB.ExecContext(ctx, "UPDATE orders SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	return expectRow(result, service.ErrOrderNotFound, id)
}

func expectRow(result sql.Result, notFound error, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", notFound, id)
	}
	return nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS reservations (
			id TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL DEFAULT '',
			customer_name TEXT NOT NULL,
			restaurant_id TEXT NOT NULL,
			restaurant_name TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			guests INTEGER NOT NULL CHECK (guests > 0),
			status TEXT NOT NULL,
			special_requests TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL,
			table_number TEXT NOT NULL,
			status TEXT NOT NULL,
			total DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id TEXT NOT NULL REFERENCES orders(id),
			position INTEGER NOT NULL,
			menu_item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			PRIMARY KEY (order_id, position)
		)`,
		"CREATE INDEX IF NOT EXISTS reservations_restaurant_idx ON reservations (restaurant_id)",
		"CREATE INDEX IF NOT EXISTS orders_restaurant_idx ON orders (restaurant_id)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

// SeedSamples inserts the sample reservations and orders unless the tables
// already hold data.
func (r *PostgresRepository) SeedSamples(ctx context.Context, seed SeedData) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM reservations").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i := range seed.Reservations {
		if err := r.CreateReservation(ctx, &seed.Reservations[i]); err != nil {
			return fmt.Errorf("seed reservation %s: %w", seed.Reservations[i].ID, err)
		}
	}
	for i := range seed.Orders {
		if err := r.CreateOrder(ctx, &seed.Orders[i]); err != nil {
			return fmt.Errorf("seed order %s: %w", seed.Orders[i].ID, err)
		}
	}
	return nil
}

var (
	_ service.ReservationRepository = (*PostgresRepository)(nil)
	_ service.OrderRepository       = (*PostgresRepository)(nil)
)
