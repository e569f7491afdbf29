package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("order not found")
	ErrLeadNotFound = errors.New("lead not found")
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Order struct {
	ID                int64
	LeadID            int64
	ProductType       string
	Price             float64
	Quantity          int
	SpecialNotes      *string
	OrderStatus       string
	PaymentStatus     string
	DeliveryStatus    string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

const orderColumns = `id, lead_id, product_type, price, quantity, special_notes,
		order_status, payment_status, delivery_status, estimated_delivery, actual_delivery,
		created_at, updated_at`

func scanOrder(row pgx.Row) (Order, error) {
	var order Order
	err := row.Scan(
		&order.ID, &order.LeadID, &order.ProductType, &order.Price, &order.Quantity,
		&order.SpecialNotes, &order.OrderStatus, &order.PaymentStatus, &order.DeliveryStatus,
		&order.EstimatedDelivery, &order.ActualDelivery, &order.CreatedAt, &order.UpdatedAt,
	)
	return order, err
}

func (r *Repository) LeadExists(ctx context.Context, leadID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM leads WHERE id = $1)`, leadID).Scan(&exists)
	return exists, err
}

type CreateOrderParams struct {
	LeadID            int64
	ProductType       string
	Price             float64
	Quantity          int
	SpecialNotes      *string
	EstimatedDelivery *time.Time
}

// Create inserts the order with the fixed initial statuses and flips the
// owning lead's follow_up_status to sale_completed, in one transaction. The
// lead update runs on every order, not just the first.
func (r *Repository) Create(ctx context.Context, params CreateOrderParams) (Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback(ctx)

	order, err := scanOrder(tx.QueryRow(ctx, `
		INSERT INTO orders (lead_id, product_type, price, quantity, special_notes, estimated_delivery,
			order_status, payment_status, delivery_status)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', 'pending', 'not_started')
		RETURNING `+orderColumns,
		params.LeadID, params.ProductType, params.Price, params.Quantity,
		params.SpecialNotes, params.EstimatedDelivery,
	))
	if err != nil {
		return Order{}, err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE leads SET follow_up_status = 'sale_completed', updated_at = now()
		WHERE id = $1
	`, params.LeadID)
	if err != nil {
		return Order{}, err
	}
	if tag.RowsAffected() == 0 {
		return Order{}, ErrLeadNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return Order{}, err
	}

	return order, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (Order, error) {
	order, err := scanOrder(r.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	return order, err
}

type UpdateOrderParams struct {
	OrderStatus          *string
	PaymentStatus        *string
	DeliveryStatus       *string
	SpecialNotes         *string
	SpecialNotesSet      bool
	EstimatedDelivery    *time.Time
	EstimatedDeliverySet bool
	ActualDelivery       *time.Time
	ActualDeliverySet    bool
}

func (r *Repository) Update(ctx context.Context, id int64, params UpdateOrderParams) (Order, error) {
	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	fields := []struct {
		enabled bool
		column  string
		value   interface{}
	}{
		{params.OrderStatus != nil, "order_status", params.OrderStatus},
		{params.PaymentStatus != nil, "payment_status", params.PaymentStatus},
		{params.DeliveryStatus != nil, "delivery_status", params.DeliveryStatus},
		{params.SpecialNotesSet, "special_notes", params.SpecialNotes},
		{params.EstimatedDeliverySet, "estimated_delivery", params.EstimatedDelivery},
		{params.ActualDeliverySet, "actual_delivery", params.ActualDelivery},
	}

	for _, field := range fields {
		if !field.enabled {
			continue
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", field.column, argIdx))
		args = append(args, field.value)
		argIdx++
	}

	setClauses = append(setClauses, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE orders SET %s
		WHERE id = $%d
		RETURNING `+orderColumns, strings.Join(setClauses, ", "), argIdx)

	order, err := scanOrder(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	return order, err
}

type ListParams struct {
	LeadID         *int64
	OrderStatus    *string
	PaymentStatus  *string
	DeliveryStatus *string
	Limit          int
	Offset         int
}

func (r *Repository) List(ctx context.Context, params ListParams) ([]Order, int, error) {
	whereClauses := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	filters := []struct {
		enabled bool
		column  string
		value   interface{}
	}{
		{params.LeadID != nil, "lead_id", params.LeadID},
		{params.OrderStatus != nil, "order_status", params.OrderStatus},
		{params.PaymentStatus != nil, "payment_status", params.PaymentStatus},
		{params.DeliveryStatus != nil, "delivery_status", params.DeliveryStatus},
	}

	for _, filter := range filters {
		if !filter.enabled {
			continue
		}
		whereClauses = append(whereClauses, fmt.Sprintf("%s = $%d", filter.column, argIdx))
		args = append(args, filter.value)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM orders WHERE %s", whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return orders, total, nil
}
