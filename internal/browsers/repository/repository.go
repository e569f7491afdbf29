package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	leadsrepo "varniya_crm_backend/internal/leads/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound      = errors.New("browser session not found")
	ErrSessionExists = errors.New("browser session already exists")
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Browser struct {
	ID              int64
	SessionID       string
	UserAgent       *string
	IPAddress       *string
	PagesVisited    int
	TimeSpent       int
	Actions         []string
	HighIntentScore int
	ConvertedToLead bool
	LeadID          *int64
	CreatedAt       time.Time
	LastActivity    time.Time
}

const browserColumns = `id, session_id, user_agent, ip_address, pages_visited, time_spent, actions,
		high_intent_score, converted_to_lead, lead_id, created_at, last_activity`

func scanBrowser(row pgx.Row) (Browser, error) {
	var browser Browser
	err := row.Scan(
		&browser.ID, &browser.SessionID, &browser.UserAgent, &browser.IPAddress,
		&browser.PagesVisited, &browser.TimeSpent, &browser.Actions,
		&browser.HighIntentScore, &browser.ConvertedToLead, &browser.LeadID,
		&browser.CreatedAt, &browser.LastActivity,
	)
	return browser, err
}

type CreateBrowserParams struct {
	SessionID       string
	UserAgent       *string
	IPAddress       *string
	PagesVisited    int
	TimeSpent       int
	Actions         []string
	HighIntentScore int
}

func (r *Repository) Create(ctx context.Context, params CreateBrowserParams) (Browser, error) {
	actions := params.Actions
	if actions == nil {
		actions = []string{}
	}

	browser, err := scanBrowser(r.pool.QueryRow(ctx, `
		INSERT INTO browsers (session_id, user_agent, ip_address, pages_visited, time_spent, actions, high_intent_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+browserColumns,
		params.SessionID, params.UserAgent, params.IPAddress,
		params.PagesVisited, params.TimeSpent, actions, params.HighIntentScore,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Browser{}, ErrSessionExists
		}
		return Browser{}, err
	}

	return browser, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (Browser, error) {
	browser, err := scanBrowser(r.pool.QueryRow(ctx,
		`SELECT `+browserColumns+` FROM browsers WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Browser{}, ErrNotFound
	}
	return browser, err
}

// Convert inserts the conversion lead and marks the browser converted in a
// single transaction, so a lead never exists without the converted flag and
// vice versa.
func (r *Repository) Convert(ctx context.Context, browserID int64, lead leadsrepo.CreateLeadParams) (leadsrepo.Lead, Browser, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return leadsrepo.Lead{}, Browser{}, err
	}
	defer tx.Rollback(ctx)

	var created leadsrepo.Lead
	err = tx.QueryRow(ctx, `
		INSERT INTO leads (
			name, phone, email, stage, medium, source, high_intent, request_type,
			urgency, special_date, occasion, assigned_agent_id, lead_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, name, phone, email, stage, status, follow_up_status, medium, source,
			high_intent, request_type, urgency, special_date, occasion, assigned_agent_id,
			lead_score, last_contact_at, created_at, updated_at
	`,
		lead.Name, lead.Phone, lead.Email, lead.Stage, lead.Medium, lead.Source,
		lead.HighIntent, lead.RequestType, lead.Urgency, lead.SpecialDate, lead.Occasion,
		lead.AssignedAgentID, lead.LeadScore,
	).Scan(
		&created.ID, &created.Name, &created.Phone, &created.Email, &created.Stage, &created.Status,
		&created.FollowUpStatus, &created.Medium, &created.Source, &created.HighIntent,
		&created.RequestType, &created.Urgency, &created.SpecialDate, &created.Occasion,
		&created.AssignedAgentID, &created.LeadScore, &created.LastContactAt,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return leadsrepo.Lead{}, Browser{}, err
	}

	browser, err := scanBrowser(tx.QueryRow(ctx, `
		UPDATE browsers SET converted_to_lead = true, lead_id = $2
		WHERE id = $1
		RETURNING `+browserColumns, browserID, created.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return leadsrepo.Lead{}, Browser{}, ErrNotFound
	}
	if err != nil {
		return leadsrepo.Lead{}, Browser{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return leadsrepo.Lead{}, Browser{}, err
	}

	return created, browser, nil
}

type ListParams struct {
	Converted *bool
	MinScore  *int
	Limit     int
	Offset    int
}

func (r *Repository) List(ctx context.Context, params ListParams) ([]Browser, int, error) {
	whereClauses := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if params.Converted != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("converted_to_lead = $%d", argIdx))
		args = append(args, *params.Converted)
		argIdx++
	}
	if params.MinScore != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("high_intent_score >= $%d", argIdx))
		args = append(args, *params.MinScore)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM browsers WHERE %s", whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf(`
		SELECT `+browserColumns+`
		FROM browsers
		WHERE %s
		ORDER BY last_activity DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	browsers := make([]Browser, 0)
	for rows.Next() {
		browser, err := scanBrowser(rows)
		if err != nil {
			return nil, 0, err
		}
		browsers = append(browsers, browser)
	}

	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return browsers, total, nil
}
