package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"varniya_crm_backend/internal/leads/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("lead not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Lead struct {
	ID              int64
	Name            *string
	Phone           *string
	Email           *string
	Stage           domain.Stage
	Status          *domain.Status
	FollowUpStatus  *domain.FollowUpStatus
	Medium          domain.Medium
	Source          domain.Source
	HighIntent      bool
	RequestType     domain.RequestType
	Urgency         *domain.Urgency
	SpecialDate     *string
	Occasion        *string
	AssignedAgentID *int64
	LeadScore       int
	LastContactAt   *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const leadColumns = `id, name, phone, email, stage, status, follow_up_status, medium, source,
		high_intent, request_type, urgency, special_date, occasion, assigned_agent_id,
		lead_score, last_contact_at, created_at, updated_at`

func scanLead(row pgx.Row) (Lead, error) {
	var lead Lead
	err := row.Scan(
		&lead.ID, &lead.Name, &lead.Phone, &lead.Email, &lead.Stage, &lead.Status, &lead.FollowUpStatus,
		&lead.Medium, &lead.Source, &lead.HighIntent, &lead.RequestType, &lead.Urgency,
		&lead.SpecialDate, &lead.Occasion, &lead.AssignedAgentID,
		&lead.LeadScore, &lead.LastContactAt, &lead.CreatedAt, &lead.UpdatedAt,
	)
	return lead, err
}

type CreateLeadParams struct {
	Name            *string
	Phone           *string
	Email           *string
	Stage           domain.Stage
	Medium          domain.Medium
	Source          domain.Source
	HighIntent      bool
	RequestType     domain.RequestType
	Urgency         *domain.Urgency
	SpecialDate     *string
	Occasion        *string
	AssignedAgentID *int64
	LeadScore       int
	LastContactAt   *time.Time
}

func (r *Repository) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	lead, err := scanLead(r.pool.QueryRow(ctx, `
		INSERT INTO leads (
			name, phone, email, stage, medium, source, high_intent, request_type,
			urgency, special_date, occasion, assigned_agent_id, lead_score, last_contact_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+leadColumns,
		params.Name, params.Phone, params.Email, params.Stage, params.Medium, params.Source,
		params.HighIntent, params.RequestType, params.Urgency, params.SpecialDate, params.Occasion,
		params.AssignedAgentID, params.LeadScore, params.LastContactAt,
	))
	if err != nil {
		return Lead{}, err
	}

	return lead, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (Lead, error) {
	lead, err := scanLead(r.pool.QueryRow(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

// GetByPhone returns the most recently created lead with the given phone
// number. Used by the inbound webhook dedupe path.
func (r *Repository) GetByPhone(ctx context.Context, phone string) (Lead, error) {
	lead, err := scanLead(r.pool.QueryRow(ctx, `
		SELECT `+leadColumns+`
		FROM leads WHERE phone = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, phone))
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

// TouchContact bumps last_contact_at and updated_at without changing
// anything else, including the score.
func (r *Repository) TouchContact(ctx context.Context, id int64) (Lead, error) {
	lead, err := scanLead(r.pool.QueryRow(ctx, `
		UPDATE leads SET last_contact_at = now(), updated_at = now()
		WHERE id = $1
		RETURNING `+leadColumns, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

type UpdateLeadParams struct {
	Name               *string
	NameSet            bool
	Phone              *string
	PhoneSet           bool
	Email              *string
	EmailSet           bool
	Stage              *domain.Stage
	Status             *domain.Status
	StatusSet          bool
	FollowUpStatus     *domain.FollowUpStatus
	FollowUpStatusSet  bool
	Medium             *domain.Medium
	Source             *domain.Source
	HighIntent         *bool
	RequestType        *domain.RequestType
	Urgency            *domain.Urgency
	UrgencySet         bool
	SpecialDate        *string
	SpecialDateSet     bool
	Occasion           *string
	OccasionSet        bool
	AssignedAgentID    *int64
	AssignedAgentIDSet bool
	LeadScore          *int
}

func (r *Repository) Update(ctx context.Context, id int64, params UpdateLeadParams) (Lead, error) {
	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	fields := []struct {
		enabled bool
		column  string
		value   interface{}
	}{
		{params.NameSet, "name", params.Name},
		{params.PhoneSet, "phone", params.Phone},
		{params.EmailSet, "email", params.Email},
		{params.Stage != nil, "stage", params.Stage},
		{params.StatusSet, "status", params.Status},
		{params.FollowUpStatusSet, "follow_up_status", params.FollowUpStatus},
		{params.Medium != nil, "medium", params.Medium},
		{params.Source != nil, "source", params.Source},
		{params.HighIntent != nil, "high_intent", params.HighIntent},
		{params.RequestType != nil, "request_type", params.RequestType},
		{params.UrgencySet, "urgency", params.Urgency},
		{params.SpecialDateSet, "special_date", params.SpecialDate},
		{params.OccasionSet, "occasion", params.Occasion},
		{params.AssignedAgentIDSet, "assigned_agent_id", params.AssignedAgentID},
		{params.LeadScore != nil, "lead_score", params.LeadScore},
	}

	for _, field := range fields {
		if !field.enabled {
			continue
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", field.column, argIdx))
		args = append(args, field.value)
		argIdx++
	}

	// updated_at is bumped even for an empty patch.
	setClauses = append(setClauses, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE leads SET %s
		WHERE id = $%d
		RETURNING `+leadColumns, strings.Join(setClauses, ", "), argIdx)

	lead, err := scanLead(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

type ListParams struct {
	Stage           *domain.Stage
	Status          *domain.Status
	FollowUpStatus  *domain.FollowUpStatus
	Source          *domain.Source
	AssignedAgentID *int64
	HighIntent      *bool
	Limit           int
	Offset          int
}

func (r *Repository) List(ctx context.Context, params ListParams) ([]Lead, int, error) {
	whereClauses := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	filters := []struct {
		enabled bool
		column  string
		value   interface{}
	}{
		{params.Stage != nil, "stage", params.Stage},
		{params.Status != nil, "status", params.Status},
		{params.FollowUpStatus != nil, "follow_up_status", params.FollowUpStatus},
		{params.Source != nil, "source", params.Source},
		{params.AssignedAgentID != nil, "assigned_agent_id", params.AssignedAgentID},
		{params.HighIntent != nil, "high_intent", params.HighIntent},
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
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM leads WHERE %s", whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf(`
		SELECT `+leadColumns+`
		FROM leads
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, 0, err
		}
		leads = append(leads, lead)
	}

	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return leads, total, nil
}
