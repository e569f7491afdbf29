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

var ErrNotFound = errors.New("follow-up activity not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type FollowUp struct {
	ID          int64
	LeadID      int64
	AgentID     int64
	Title       string
	Description *string
	ScheduledAt time.Time
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

const followUpColumns = `id, lead_id, agent_id, title, description, scheduled_at,
		completed, completed_at, created_at`

func scanFollowUp(row pgx.Row) (FollowUp, error) {
	var fu FollowUp
	err := row.Scan(
		&fu.ID, &fu.LeadID, &fu.AgentID, &fu.Title, &fu.Description,
		&fu.ScheduledAt, &fu.Completed, &fu.CompletedAt, &fu.CreatedAt,
	)
	return fu, err
}

func (r *Repository) LeadExists(ctx context.Context, leadID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM leads WHERE id = $1)`, leadID).Scan(&exists)
	return exists, err
}

func (r *Repository) AgentExists(ctx context.Context, agentID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, agentID).Scan(&exists)
	return exists, err
}

type CreateFollowUpParams struct {
	LeadID      int64
	AgentID     int64
	Title       string
	Description *string
	ScheduledAt time.Time
}

func (r *Repository) Create(ctx context.Context, params CreateFollowUpParams) (FollowUp, error) {
	fu, err := scanFollowUp(r.pool.QueryRow(ctx, `
		INSERT INTO follow_up_activities (lead_id, agent_id, title, description, scheduled_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+followUpColumns,
		params.LeadID, params.AgentID, params.Title, params.Description, params.ScheduledAt,
	))
	if err != nil {
		return FollowUp{}, err
	}

	return fu, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (FollowUp, error) {
	fu, err := scanFollowUp(r.pool.QueryRow(ctx,
		`SELECT `+followUpColumns+` FROM follow_up_activities WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return FollowUp{}, ErrNotFound
	}
	return fu, err
}

// Complete marks the activity done. Re-completing an already completed
// activity just re-stamps completed_at.
func (r *Repository) Complete(ctx context.Context, id int64) (FollowUp, error) {
	fu, err := scanFollowUp(r.pool.QueryRow(ctx, `
		UPDATE follow_up_activities SET completed = true, completed_at = now()
		WHERE id = $1
		RETURNING `+followUpColumns, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return FollowUp{}, ErrNotFound
	}
	return fu, err
}

type ListParams struct {
	LeadID    *int64
	AgentID   *int64
	Completed *bool
	Limit     int
	Offset    int
}

func (r *Repository) List(ctx context.Context, params ListParams) ([]FollowUp, int, error) {
	whereClauses := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	filters := []struct {
		enabled bool
		column  string
		value   interface{}
	}{
		{params.LeadID != nil, "lead_id", params.LeadID},
		{params.AgentID != nil, "agent_id", params.AgentID},
		{params.Completed != nil, "completed", params.Completed},
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
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM follow_up_activities WHERE %s", whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf(`
		SELECT `+followUpColumns+`
		FROM follow_up_activities
		WHERE %s
		ORDER BY scheduled_at ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	followUps := make([]FollowUp, 0)
	for rows.Next() {
		fu, err := scanFollowUp(rows)
		if err != nil {
			return nil, 0, err
		}
		followUps = append(followUps, fu)
	}

	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return followUps, total, nil
}
