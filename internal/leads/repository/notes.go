package repository

import (
	"context"
	"time"
)

type LeadNote struct {
	ID        int64
	LeadID    int64
	AgentID   int64
	Note      string
	CreatedAt time.Time
}

type CreateLeadNoteParams struct {
	LeadID  int64
	AgentID int64
	Note    string
}

// CreateLeadNote inserts the note and bumps the lead's last_contact_at and
// updated_at in one transaction. There is no FK from notes to leads, so the
// note persists even when the lead id references nothing; the bump then
// touches zero rows.
func (r *Repository) CreateLeadNote(ctx context.Context, params CreateLeadNoteParams) (LeadNote, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return LeadNote{}, err
	}
	defer tx.Rollback(ctx)

	var note LeadNote
	err = tx.QueryRow(ctx, `
		INSERT INTO lead_notes (lead_id, agent_id, note)
		VALUES ($1, $2, $3)
		RETURNING id, lead_id, agent_id, note, created_at
	`, params.LeadID, params.AgentID, params.Note).Scan(
		&note.ID,
		&note.LeadID,
		&note.AgentID,
		&note.Note,
		&note.CreatedAt,
	)
	if err != nil {
		return LeadNote{}, err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE leads SET last_contact_at = now(), updated_at = now()
		WHERE id = $1
	`, params.LeadID); err != nil {
		return LeadNote{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return LeadNote{}, err
	}

	return note, nil
}

func (r *Repository) ListLeadNotes(ctx context.Context, leadID int64) ([]LeadNote, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, lead_id, agent_id, note, created_at
		FROM lead_notes
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]LeadNote, 0)
	for rows.Next() {
		var note LeadNote
		if err := rows.Scan(
			&note.ID,
			&note.LeadID,
			&note.AgentID,
			&note.Note,
			&note.CreatedAt,
		); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return notes, nil
}
