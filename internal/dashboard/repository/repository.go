package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// highIntentThreshold is the minimum browser intent score counted as a
// high-intent session on the dashboard.
const highIntentThreshold = 70

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Totals holds the scalar dashboard aggregates.
type Totals struct {
	TotalLeads         int
	ActiveDeals        int
	CompletedSales     int
	Revenue            float64
	HighIntentBrowsers int
	PendingFollowUps   int
}

// GetTotals computes the scalar KPIs in one round trip. A nil agentID means
// no agent filter. The browser count is always global: sessions have no
// agent association.
func (r *Repository) GetTotals(ctx context.Context, agentID *int64) (Totals, error) {
	var totals Totals
	err := r.pool.QueryRow(ctx, `
		SELECT
			(
				SELECT COUNT(*)
				FROM leads
				WHERE ($1::bigint IS NULL OR assigned_agent_id = $1)
			) AS total_leads,
			(
				SELECT COUNT(*)
				FROM leads
				WHERE stage = 'genuine_lead'
					AND ($1::bigint IS NULL OR assigned_agent_id = $1)
			) AS active_deals,
			(
				SELECT COUNT(*)
				FROM orders o
				JOIN leads l ON l.id = o.lead_id
				WHERE o.order_status = 'delivered'
					AND ($1::bigint IS NULL OR l.assigned_agent_id = $1)
			) AS completed_sales,
			(
				SELECT COALESCE(SUM(o.price), 0)
				FROM orders o
				JOIN leads l ON l.id = o.lead_id
				WHERE o.order_status = 'delivered'
					AND ($1::bigint IS NULL OR l.assigned_agent_id = $1)
			) AS revenue,
			(
				SELECT COUNT(*)
				FROM browsers
				WHERE high_intent_score >= $2
			) AS high_intent_browsers,
			(
				SELECT COUNT(*)
				FROM follow_up_activities f
				JOIN leads l ON l.id = f.lead_id
				WHERE f.completed = false
					AND ($1::bigint IS NULL OR l.assigned_agent_id = $1)
			) AS pending_follow_ups
	`, agentID, highIntentThreshold).Scan(
		&totals.TotalLeads,
		&totals.ActiveDeals,
		&totals.CompletedSales,
		&totals.Revenue,
		&totals.HighIntentBrowsers,
		&totals.PendingFollowUps,
	)
	if err != nil {
		return Totals{}, err
	}
	return totals, nil
}

// CountLeadsBy groups leads by the given column. Only observed values appear
// in the result; absent enum values are not zero-filled.
func (r *Repository) countLeadsBy(ctx context.Context, column string, agentID *int64) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+column+`, COUNT(*)
		FROM leads
		WHERE ($1::bigint IS NULL OR assigned_agent_id = $1)
		GROUP BY `+column, agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var value string
		var count int
		if err := rows.Scan(&value, &count); err != nil {
			return nil, err
		}
		counts[value] = count
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return counts, nil
}

func (r *Repository) CountLeadsByStage(ctx context.Context, agentID *int64) (map[string]int, error) {
	return r.countLeadsBy(ctx, "stage", agentID)
}

func (r *Repository) CountLeadsBySource(ctx context.Context, agentID *int64) (map[string]int, error) {
	return r.countLeadsBy(ctx, "source", agentID)
}

type MonthlySales struct {
	Month   string
	Sales   int
	Revenue float64
}

// SalesByMonth groups delivered orders created since the given time by
// calendar month, ascending.
func (r *Repository) SalesByMonth(ctx context.Context, agentID *int64, since time.Time) ([]MonthlySales, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT to_char(o.created_at, 'YYYY-MM') AS month, COUNT(*), COALESCE(SUM(o.price), 0)
		FROM orders o
		JOIN leads l ON l.id = o.lead_id
		WHERE o.order_status = 'delivered'
			AND o.created_at >= $2
			AND ($1::bigint IS NULL OR l.assigned_agent_id = $1)
		GROUP BY month
		ORDER BY month ASC
	`, agentID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]MonthlySales, 0)
	for rows.Next() {
		var entry MonthlySales
		if err := rows.Scan(&entry.Month, &entry.Sales, &entry.Revenue); err != nil {
			return nil, err
		}
		sales = append(sales, entry)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return sales, nil
}
