package service

import (
	"context"

	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/events"
	"notekeeper-be/internal/pkg/apperror"
	"notekeeper-be/internal/pkg/sanitizer"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"
)

const folderUpdateFieldsMessage = "Request body must content either 'name'"

type IFolderService interface {
	GetAll(ctx context.Context) ([]*dto.FolderResponse, error)
	Create(ctx context.Context, req *dto.CreateFolderRequest) (*dto.FolderResponse, error)
	Show(ctx context.Context, id uint) (*dto.FolderResponse, error)
	Update(ctx context.Context, req *dto.UpdateFolderRequest) error
	Delete(ctx context.Context, id uint) error
}

type folderService struct {
	uowFactory unitofwork.RepositoryFactory
	sanitizer  *sanitizer.Sanitizer
	audit      *events.AuditPublisher
}

func NewFolderService(
	uowFactory unitofwork.RepositoryFactory,
	san *sanitizer.Sanitizer,
	audit *events.AuditPublisher,
) IFolderService {
	return &folderService{
		uowFactory: uowFactory,
		sanitizer:  san,
		audit:      audit,
	}
}

// toResponse sanitizes on the way out as well, so rows written by other
// paths never come back unsanitized.
func (c *folderService) toResponse(folder *entity.Folder) *dto.FolderResponse {
	return &dto.FolderResponse{
		Id:   folder.Id,
		Name: c.sanitizer.Sanitize(folder.Name),
	}
}

func (c *folderService) GetAll(ctx context.Context) ([]*dto.FolderResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	folders, err := uow.FolderRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FolderResponse, 0, len(folders))
	for _, folder := range folders {
		result = append(result, c.toResponse(folder))
	}
	return result, nil
}

func (c *folderService) Create(ctx context.Context, req *dto.CreateFolderRequest) (*dto.FolderResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	name := c.sanitizer.Sanitize(req.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	folder := entity.Folder{
		Name: name,
	}

	if err := uow.FolderRepository().Create(ctx, &folder); err != nil {
		return nil, err
	}

	c.audit.Publish("folder", "created", folder.Id)
	return c.toResponse(&folder), nil
}

func (c *folderService) Show(ctx context.Context, id uint) (*dto.FolderResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NewNotFoundError("Folder")
	}

	return c.toResponse(folder), nil
}

func (c *folderService) Update(ctx context.Context, req *dto.UpdateFolderRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	// Existence first: an unknown id with an empty body is a 404, not a
	// validation failure.
	folder, err := uow.FolderRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if folder == nil {
		return apperror.NewNotFoundError("Folder")
	}

	if !req.HasUpdates() {
		return apperror.NewValidationError(folderUpdateFieldsMessage)
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		name := c.sanitizer.Sanitize(*req.Name)
		if err := validateName(name); err != nil {
			return err
		}
		fields["name"] = name
	}

	if err := uow.FolderRepository().UpdateFields(ctx, req.Id, fields); err != nil {
		return err
	}

	c.audit.Publish("folder", "updated", req.Id)
	return nil
}

func (c *folderService) Delete(ctx context.Context, id uint) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if folder == nil {
		return apperror.NewNotFoundError("Folder")
	}

	// The cascade removes dependent notes inside the same transaction; the
	// folder and its notes disappear together or not at all.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.FolderRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	c.audit.Publish("folder", "deleted", id)
	return nil
}
