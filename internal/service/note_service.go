package service

import (
	"context"
	"encoding/json"

	"notes-backend/internal/dto"
	"notes-backend/internal/entity"
	"notes-backend/internal/pkg/apperror"
	"notes-backend/internal/pkg/logger"
	"notes-backend/internal/repository/contract"
	"notes-backend/pkg/events"
	pktNats "notes-backend/pkg/nats"
)

type INoteService interface {
	List(ctx context.Context) ([]*entity.Note, error)
	Get(ctx context.Context, id int64) (*entity.Note, error)
	Create(ctx context.Context, payload *dto.NotePayload) (*entity.Note, error)
	CreateBulk(ctx context.Context, payloads []*dto.NotePayload) ([]*entity.Note, error)
	Update(ctx context.Context, id int64, payload *dto.NotePayload) (*entity.Note, error)
	Patch(ctx context.Context, id int64, payload *dto.PatchNotePayload) (*entity.Note, error)
	Delete(ctx context.Context, id int64) error
}

type noteService struct {
	noteRepository   contract.NoteRepository
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewNoteService(
	noteRepository contract.NoteRepository,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) INoteService {
	return &noteService{
		noteRepository:   noteRepository,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *noteService) List(ctx context.Context) ([]*entity.Note, error) {
	notes, err := s.noteRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("NoteService", "Fetched all notes", map[string]interface{}{"count": len(notes)})
	return notes, nil
}

func (s *noteService) Get(ctx context.Context, id int64) (*entity.Note, error) {
	note, err := s.noteRepository.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		s.logger.Warn("NoteService", "Note not found", map[string]interface{}{"id": id})
		return nil, apperror.NewNoteNotFound(id)
	}
	return note, nil
}

func (s *noteService) Create(ctx context.Context, payload *dto.NotePayload) (*entity.Note, error) {
	note := s.fromPayload(payload)

	if err := s.noteRepository.Save(ctx, note); err != nil {
		return nil, err
	}
	s.logger.Info("NoteService", "Note created", map[string]interface{}{"id": note.Id})

	s.publishEvent(ctx, events.New(events.TypeNoteCreated, map[string]interface{}{
		"note_id": note.Id,
		"title":   note.Title,
	}))

	return note, nil
}

// CreateBulk hands the whole batch to the store in one call; the store may
// complete individual persists out of order but the result keeps input order.
// A failure on any record fails the whole operation.
func (s *noteService) CreateBulk(ctx context.Context, payloads []*dto.NotePayload) ([]*entity.Note, error) {
	notes := make([]*entity.Note, len(payloads))
	for i, payload := range payloads {
		notes[i] = s.fromPayload(payload)
	}

	if err := s.noteRepository.SaveAll(ctx, notes); err != nil {
		return nil, err
	}
	s.logger.Info("NoteService", "Bulk notes created", map[string]interface{}{"count": len(notes)})

	for _, note := range notes {
		s.publishEvent(ctx, events.New(events.TypeNoteCreated, map[string]interface{}{
			"note_id": note.Id,
			"title":   note.Title,
		}))
	}

	return notes, nil
}

// Update replaces title, content and updatedAt on the existing record.
// Owner fields are left untouched on the full-update path.
func (s *noteService) Update(ctx context.Context, id int64, payload *dto.NotePayload) (*entity.Note, error) {
	existing, err := s.noteRepository.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		s.logger.Warn("NoteService", "Note not found for update", map[string]interface{}{"id": id})
		return nil, apperror.NewNoteNotFound(id)
	}

	existing.Title = payload.Title
	existing.Content = payload.Content
	existing.UpdatedAt = payload.UpdatedAt

	if err := s.noteRepository.Save(ctx, existing); err != nil {
		return nil, err
	}
	s.logger.Info("NoteService", "Note updated", map[string]interface{}{"id": id})

	s.publishEvent(ctx, events.New(events.TypeNoteUpdated, map[string]interface{}{
		"note_id": existing.Id,
		"title":   existing.Title,
	}))

	return existing, nil
}

// Patch overwrites a field only when the payload supplies it; nil means
// "leave unchanged".
func (s *noteService) Patch(ctx context.Context, id int64, payload *dto.PatchNotePayload) (*entity.Note, error) {
	existing, err := s.noteRepository.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		s.logger.Warn("NoteService", "Note not found for patch", map[string]interface{}{"id": id})
		return nil, apperror.NewNoteNotFound(id)
	}

	if payload.Title != nil {
		existing.Title = *payload.Title
	}
	if payload.Content != nil {
		existing.Content = *payload.Content
	}
	if payload.UpdatedAt != nil {
		existing.UpdatedAt = payload.UpdatedAt
	}
	if payload.OwnerName != nil {
		existing.OwnerName = *payload.OwnerName
	}
	if payload.OwnerEmail != nil {
		existing.OwnerEmail = *payload.OwnerEmail
	}

	if err := s.noteRepository.Save(ctx, existing); err != nil {
		return nil, err
	}
	s.logger.Info("NoteService", "Note patched", map[string]interface{}{"id": id})

	s.publishEvent(ctx, events.New(events.TypeNoteUpdated, map[string]interface{}{
		"note_id": existing.Id,
		"title":   existing.Title,
	}))

	return existing, nil
}

// Delete removes the record if present. Deleting an absent id is a success.
func (s *noteService) Delete(ctx context.Context, id int64) error {
	if err := s.noteRepository.DeleteById(ctx, id); err != nil {
		return err
	}
	s.logger.Info("NoteService", "Note deleted", map[string]interface{}{"id": id})

	s.publishEvent(ctx, events.New(events.TypeNoteDeleted, map[string]interface{}{
		"note_id": id,
	}))

	return nil
}

func (s *noteService) fromPayload(payload *dto.NotePayload) *entity.Note {
	note := &entity.Note{
		Id:         payload.Id,
		Title:      payload.Title,
		Content:    payload.Content,
		UpdatedAt:  payload.UpdatedAt,
		OwnerName:  payload.OwnerName,
		OwnerEmail: payload.OwnerEmail,
	}
	if payload.CreatedAt != nil {
		note.CreatedAt = *payload.CreatedAt
	}
	return note
}

// publishEvent fans the event out to the in-process bus and, when configured,
// the external NATS bus. Eventing is auxiliary: failures are logged, never
// returned.
func (s *noteService) publishEvent(ctx context.Context, evt events.BaseEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		s.logger.Error("NoteService", "Failed to marshal event", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("NoteService", "Failed to publish event", map[string]interface{}{
			"type":  evt.Type,
			"error": err.Error(),
		})
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("NoteService", "Failed to publish event to NATS", map[string]interface{}{
				"type":  evt.Type,
				"error": err.Error(),
			})
		}
	}
}
