package service

import (
	"context"
	"errors"

	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/events"
	"notekeeper-be/internal/pkg/apperror"
	"notekeeper-be/internal/pkg/sanitizer"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"

	"gorm.io/gorm"
)

const noteUpdateFieldsMessage = "Request body must content either 'folder_id', 'name' or 'content'"

type INoteService interface {
	GetAll(ctx context.Context) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, id uint) (*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) error
	Delete(ctx context.Context, id uint) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	sanitizer  *sanitizer.Sanitizer
	audit      *events.AuditPublisher
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	san *sanitizer.Sanitizer,
	audit *events.AuditPublisher,
) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		sanitizer:  san,
		audit:      audit,
	}
}

func (c *noteService) toResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:           note.Id,
		FolderId:     note.FolderId,
		Name:         c.sanitizer.Sanitize(note.Name),
		Content:      c.sanitizer.Sanitize(note.Content),
		TimeModified: note.TimeModified,
	}
}

// translateWriteError turns the store's foreign-key violation into the
// caller-facing constraint error; raw persistence errors pass through to the
// opaque 500 path.
func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperror.NewConstraintError("Referenced folder doesn't exist")
	}
	return err
}

func (c *noteService) GetAll(ctx context.Context) ([]*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, c.toResponse(note))
	}
	return result, nil
}

func (c *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	name := c.sanitizer.Sanitize(req.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	note := entity.Note{
		FolderId: req.FolderId,
		Name:     name,
		Content:  c.sanitizer.Sanitize(req.Content),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, translateWriteError(err)
	}

	c.audit.Publish("note", "created", note.Id)
	return c.toResponse(&note), nil
}

func (c *noteService) Show(ctx context.Context, id uint) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NewNotFoundError("Note")
	}

	return c.toResponse(note), nil
}

func (c *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	// Existence first, field validation second (contract ordering).
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.NewNotFoundError("Note")
	}

	if !req.HasUpdates() {
		return apperror.NewValidationError(noteUpdateFieldsMessage)
	}

	fields := map[string]interface{}{}
	if req.FolderId != nil {
		fields["folder_id"] = *req.FolderId
	}
	if req.Name != nil {
		name := c.sanitizer.Sanitize(*req.Name)
		if err := validateName(name); err != nil {
			return err
		}
		fields["name"] = name
	}
	if req.Content != nil {
		fields["content"] = c.sanitizer.Sanitize(*req.Content)
	}

	if err := uow.NoteRepository().UpdateFields(ctx, req.Id, fields); err != nil {
		return translateWriteError(err)
	}

	c.audit.Publish("note", "updated", req.Id)
	return nil
}

func (c *noteService) Delete(ctx context.Context, id uint) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.NewNotFoundError("Note")
	}

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}

	c.audit.Publish("note", "deleted", id)
	return nil
}
