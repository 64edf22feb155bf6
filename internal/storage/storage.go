// internal/storage/storage.go
package storage

import (
	"context"
	"errors"

	"siteadmin/internal/models"
)

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mock_storage

var ErrProjectNotFound = errors.New("project not found")

type ProjectStorage interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	GetByID(ctx context.Context, id int) (*models.Project, error)
	Count(ctx context.Context, filter *models.ProjectFilter) (int, error)
	List(ctx context.Context, filter *models.ProjectFilter, pagination *models.Pagination) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) (*models.Project, error)
	Delete(ctx context.Context, id int) error
}
