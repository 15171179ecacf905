package service

import (
	"context"
	"strings"
	"time"

	"lifehub-be/internal/apperror"
	"lifehub-be/internal/dto"
	"lifehub-be/internal/entity"
	"lifehub-be/internal/pkg/timeutil"
	"lifehub-be/internal/repository/specification"
	"lifehub-be/internal/repository/unitofwork"
	pktNats "lifehub-be/pkg/nats"

	"github.com/google/uuid"
)

const (
	maxNoteLength     = 10000
	notePreviewLength = 100
)

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	Edit(ctx context.Context, userId uuid.UUID, req *dto.EditNoteRequest) (*dto.EditNoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, noteId string) error
	List(ctx context.Context, userId uuid.UUID) ([]*dto.NotePreviewResponse, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	if strings.TrimSpace(req.Data) == "" {
		return nil, apperror.Validation("Note is too short")
	}
	if len([]rune(req.Data)) > maxNoteLength {
		return nil, apperror.Validation("Note exceeds maximum length")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note := entity.Note{
		Id:     uuid.New(),
		Data:   req.Data,
		Date:   time.Now(),
		UserId: userId,
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.publisherService, s.eventPublisher, activityNoteCreated, userId, note.Id, timeutil.Truncate(note.Data, 40))

	return &dto.CreateNoteResponse{Id: note.Id}, nil
}

func (s *noteService) Edit(ctx context.Context, userId uuid.UUID, req *dto.EditNoteRequest) (*dto.EditNoteResponse, error) {
	if req.NoteId == "" || req.NewData == "" {
		return nil, apperror.Validation("Incomplete data")
	}

	noteId, err := uuid.Parse(req.NoteId)
	if err != nil {
		return nil, apperror.NotFound("Note not found")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("Note not found")
	}
	if note.UserId != userId {
		return nil, apperror.Forbidden("You do not have permission to edit this note")
	}
	if len([]rune(req.NewData)) > maxNoteLength {
		return nil, apperror.Validation("Note exceeds maximum length")
	}

	note.Data = req.NewData
	note.Date = time.Now()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.publisherService, s.eventPublisher, activityNoteUpdated, userId, note.Id, timeutil.Truncate(note.Data, 40))

	return &dto.EditNoteResponse{
		NoteId:  note.Id,
		NewData: note.Data,
		NewDate: timeutil.FormatStampSec(note.Date),
	}, nil
}

// Delete is idempotent: an unknown id or a note owned by someone else
// is a silent no-op, so existence is never revealed to non-owners.
func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, noteIdStr string) error {
	noteId, err := uuid.Parse(noteIdStr)
	if err != nil {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return err
	}
	if note == nil || note.UserId != userId {
		return nil
	}

	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		return err
	}

	publishActivity(ctx, s.publisherService, s.eventPublisher, activityNoteDeleted, userId, note.Id, "")
	return nil
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID) ([]*dto.NotePreviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	previews := make([]*dto.NotePreviewResponse, 0, len(notes))
	for _, note := range notes {
		previews = append(previews, &dto.NotePreviewResponse{
			Id:          note.Id,
			Content:     timeutil.Truncate(note.Data, notePreviewLength),
			FullContent: note.Data,
			CreatedAt:   timeutil.FormatStamp(note.Date),
		})
	}

	return previews, nil
}
