package service

import (
	"context"

	"varniya_crm_backend/internal/leads/repository"
	"varniya_crm_backend/internal/leads/transport"
	"varniya_crm_backend/platform/apperr"
)

// AddNote appends a note to a lead. There is deliberately no lead existence
// check: the note persists regardless, and the contact-timestamp bump simply
// affects zero rows when the lead id references nothing.
func (s *Service) AddNote(ctx context.Context, leadID int64, req transport.AddNoteRequest) (transport.NoteResponse, error) {
	note, err := s.repo.CreateLeadNote(ctx, repository.CreateLeadNoteParams{
		LeadID:  leadID,
		AgentID: req.AgentID,
		Note:    req.Note,
	})
	if err != nil {
		s.log.DatabaseError("leads.add_note", err)
		return transport.NoteResponse{}, apperr.Wrap(apperr.KindInternal, "failed to add note", err)
	}

	return toNoteResponse(note), nil
}

func (s *Service) ListNotes(ctx context.Context, leadID int64) ([]transport.NoteResponse, error) {
	notes, err := s.repo.ListLeadNotes(ctx, leadID)
	if err != nil {
		s.log.DatabaseError("leads.list_notes", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list notes", err)
	}

	items := make([]transport.NoteResponse, 0, len(notes))
	for _, note := range notes {
		items = append(items, toNoteResponse(note))
	}

	return items, nil
}

func toNoteResponse(note repository.LeadNote) transport.NoteResponse {
	return transport.NoteResponse{
		ID:        note.ID,
		LeadID:    note.LeadID,
		AgentID:   note.AgentID,
		Note:      note.Note,
		CreatedAt: note.CreatedAt,
	}
}
