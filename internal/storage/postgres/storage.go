package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
	"github.com/polkiloo/cafeorders/internal/domain/model"
	"github.com/polkiloo/cafeorders/internal/domain/repository"
)

// pgxPool is the subset of *pgxpool.Pool used by Storage.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Orders returns the order repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            order_number TEXT UNIQUE NOT NULL,
            customer_name TEXT NOT NULL,
            customer_email TEXT NOT NULL,
            customer_phone TEXT NOT NULL,
            customer_address TEXT NOT NULL,
            items JSONB NOT NULL DEFAULT '[]',
            total_amount NUMERIC(12, 2) NOT NULL DEFAULT 0,
            status TEXT NOT NULL DEFAULT 'pending'
                CHECK (status IN ('pending', 'confirmed', 'preparing', 'ready', 'delivered', 'cancelled')),
            payment_method TEXT NOT NULL DEFAULT 'cash_on_delivery',
            delivery_type TEXT NOT NULL,
            delivery_address TEXT,
            notes TEXT,
            version BIGINT NOT NULL DEFAULT 1,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC, id DESC)`,
	}

	err := s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, order_number, customer_name, customer_email, customer_phone, customer_address,
                      items, total_amount, status, payment_method, delivery_type, delivery_address, notes,
                      version, created_at, updated_at`

type itemRecord struct {
	Product  productRecord   `json:"productRef"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

type productRecord struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Image string `json:"image,omitempty"`
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (model.Order, error) {
	var (
		o     model.Order
		items []byte
		total string
	)
	err := row.Scan(
		&o.ID, &o.OrderNumber,
		&o.Customer.Name, &o.Customer.Email, &o.Customer.Phone, &o.Customer.Address,
		&items, &total, &o.Status, &o.PaymentMethod, &o.DeliveryType, &o.DeliveryAddress, &o.Notes,
		&o.Version, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return model.Order{}, err
	}

	if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return model.Order{}, fmt.Errorf("decode total of order %d: %w", o.ID, err)
	}

	var records []itemRecord
	if len(items) > 0 {
		if err := json.Unmarshal(items, &records); err != nil {
			return model.Order{}, fmt.Errorf("decode items of order %d: %w", o.ID, err)
		}
	}
	o.Items = make([]model.OrderItem, 0, len(records))
	for _, r := range records {
		o.Items = append(o.Items, model.OrderItem{
			Product:  model.ProductRef{ID: r.Product.ID, Title: r.Product.Title, Image: r.Product.Image},
			Title:    r.Title,
			Price:    r.Price,
			Quantity: r.Quantity,
			Total:    r.Total,
		})
	}
	return o, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		r.checkTotals(&o)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return r.getOne(ctx, query, id)
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE order_number=$1`
	return r.getOne(ctx, query, number)
}

func (r *orderRepository) getOne(ctx context.Context, query string, arg any) (*model.Order, error) {
	o, err := scanOrder(r.storage.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	r.checkTotals(&o)
	return &o, nil
}

func (r *orderRepository) ApplyTransition(ctx context.Context, t model.Transition) (*model.Order, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	const query = `UPDATE orders SET status=$1, notes=COALESCE($2, notes), version=version+1, updated_at=NOW()
                   WHERE id=$3 AND status=$4 AND version=$5
                   RETURNING ` + orderColumns
	o, err := scanOrder(r.storage.pool.QueryRow(ctx, query, t.To, t.Notes, t.OrderID, t.From, t.ExpectedVersion))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, t.OrderID); getErr != nil {
				return nil, getErr
			}
			return nil, fmt.Errorf("%w: order %d changed since version %d", domainErrors.ErrVersionConflict, t.OrderID, t.ExpectedVersion)
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) checkTotals(o *model.Order) {
	if err := o.CheckTotals(); err != nil && r.storage.logger != nil {
		r.storage.logger.Error("stored order totals inconsistent",
			slog.String("order", o.OrderNumber),
			slog.String("error", err.Error()),
		)
	}
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
