package service

import (
	"context"
	"errors"
	"fmt"

	"siteadmin/internal/lib/logger/utils"
	"siteadmin/internal/models"
	"siteadmin/internal/paginator"
	"siteadmin/internal/storage"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// DefaultMaxLength is the paginator width used when none is configured.
const DefaultMaxLength = 7

var (
	ErrTitleRequired = errors.New("project title is required")
	ErrInvalidStatus = errors.New("unknown project status")
)

type ProjectService struct {
	storage   storage.ProjectStorage
	maxLength int
}

func NewProjectService(storage storage.ProjectStorage, maxLength int) *ProjectService {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &ProjectService{
		storage:   storage,
		maxLength: maxLength,
	}
}

func validStatus(status models.ProjectStatus) bool {
	switch status {
	case models.ProjectPlanned, models.ProjectActive, models.ProjectCompleted:
		return true
	}
	return false
}

func (s *ProjectService) fromRequest(req *models.ProjectRequest) (*models.Project, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	status := req.Status
	if status == "" {
		status = models.ProjectPlanned
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return &models.Project{
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Location:    req.Location,
		Status:      status,
		Description: req.Description,
	}, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, req *models.ProjectRequest) (*models.Project, error) {
	utils.Logger.Debug("ProjectService.CreateProject", zap.String("title", req.Title))

	project, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}

	created, err := s.storage.Create(ctx, project)
	if err != nil {
		utils.Logger.Error("ProjectService.CreateProject - storage.Create failed", zap.Error(err))
		return nil, fmt.Errorf("ProjectService.CreateProject - storage.Create failed: %w", err)
	}

	utils.Logger.Info("ProjectService.CreateProject - project created", zap.Int("project_id", created.ID), zap.String("slug", created.Slug))
	return created, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id int) (*models.Project, error) {
	utils.Logger.Debug("ProjectService.GetProject", zap.Int("id", id))

	project, err := s.storage.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			return nil, storage.ErrProjectNotFound
		}
		utils.Logger.Error("ProjectService.GetProject - storage.GetByID failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("ProjectService.GetProject - storage.GetByID failed: %w", err)
	}
	return project, nil
}

// ListProjects returns one page of projects together with the paginator for
// it. A requested page past the end is moved to the last page.
func (s *ProjectService) ListProjects(ctx context.Context, filter *models.ProjectFilter, pagination *models.Pagination) (*models.ListResponse[models.Project], error) {
	utils.Logger.Debug("ProjectService.ListProjects", zap.Any("filter", filter), zap.Any("pagination", pagination))

	total, err := s.storage.Count(ctx, filter)
	if err != nil {
		utils.Logger.Error("ProjectService.ListProjects - storage.Count failed", zap.Error(err), zap.Any("filter", filter))
		return nil, fmt.Errorf("ProjectService.ListProjects - storage.Count failed: %w", err)
	}

	lastPage := paginator.LastPage(total, pagination.PageSize)
	current := &models.Pagination{
		Page:     paginator.Clamp(pagination.Page, lastPage),
		PageSize: pagination.PageSize,
	}

	projects := []models.Project{}
	if total > 0 {
		projects, err = s.storage.List(ctx, filter, current)
		if err != nil {
			utils.Logger.Error("ProjectService.ListProjects - storage.List failed", zap.Error(err), zap.Any("filter", filter), zap.Any("pagination", current))
			return nil, fmt.Errorf("ProjectService.ListProjects - storage.List failed: %w", err)
		}
	}

	links, err := paginator.Window(current.Page, lastPage, s.maxLength)
	if err != nil {
		return nil, fmt.Errorf("ProjectService.ListProjects - paginator.Window failed: %w", err)
	}
	controls := paginator.NewControls(current.Page, lastPage)

	return &models.ListResponse[models.Project]{
		Data: projects,
		Page: models.PageInfo{
			TotalCount: total,
			Page:       current.Page,
			PageSize:   current.PageSize,
			LastPage:   lastPage,
			Links:      links,
			Previous:   controls.Previous,
			Next:       controls.Next,
		},
	}, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id int, req *models.ProjectRequest) (*models.Project, error) {
	utils.Logger.Debug("ProjectService.UpdateProject", zap.Int("id", id), zap.String("title", req.Title))

	project, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	project.ID = id

	updated, err := s.storage.Update(ctx, project)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			return nil, storage.ErrProjectNotFound
		}
		utils.Logger.Error("ProjectService.UpdateProject - storage.Update failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("ProjectService.UpdateProject - storage.Update failed: %w", err)
	}
	utils.Logger.Info("ProjectService.UpdateProject - project updated", zap.Int("project_id", updated.ID), zap.String("title", updated.Title))
	return updated, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id int) error {
	utils.Logger.Debug("ProjectService.DeleteProject", zap.Int("id", id))

	err := s.storage.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			return storage.ErrProjectNotFound
		}
		utils.Logger.Error("ProjectService.DeleteProject - storage.Delete failed", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("ProjectService.DeleteProject - storage.Delete failed: %w", err)
	}
	utils.Logger.Info("ProjectService.DeleteProject - project deleted", zap.Int("project_id", id))
	return nil
}
