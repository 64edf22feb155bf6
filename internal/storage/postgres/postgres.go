package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"siteadmin/internal/lib/logger/utils"
	"siteadmin/internal/models"
	"siteadmin/internal/storage"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// DB is the subset of *pgxpool.Pool and *pgx.Conn the storage needs.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var projectColumns = []string{"id", "title", "slug", "location", "status", "description", "created_at", "updated_at"}

type PgStorage struct {
	db DB
}

var _ storage.ProjectStorage = (*PgStorage)(nil)

func NewPgStorage(db DB) *PgStorage {
	return &PgStorage{db: db}
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Location, &p.Status, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func applyFilter(query squirrel.SelectBuilder, filter *models.ProjectFilter) squirrel.SelectBuilder {
	if filter == nil {
		return query
	}
	if filter.Title != nil && *filter.Title != "" {
		query = query.Where(squirrel.ILike{"title": "%" + *filter.Title + "%"})
	}
	if filter.Status != nil && *filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	return query
}

// Create inserts a new project.
func (s *PgStorage) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	query, args, err := psql.Insert("projects").
		Columns("title", "slug", "location", "status", "description").
		Values(project.Title, project.Slug, project.Location, string(project.Status), project.Description).
		Suffix("RETURNING " + strings.Join(projectColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("PgStorage.Create - build query failed: %w", err)
	}

	created, err := scanProject(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		utils.Logger.Error("PgStorage.Create - queryRow failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.Create - queryRow failed: %w", err)
	}
	return created, nil
}

func (s *PgStorage) GetByID(ctx context.Context, id int) (*models.Project, error) {
	query, args, err := psql.Select(projectColumns...).From("projects").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("PgStorage.GetByID - build query failed: %w", err)
	}

	project, err := scanProject(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrProjectNotFound
		}
		utils.Logger.Error("PgStorage.GetByID - queryRow failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("PgStorage.GetByID - queryRow failed: %w", err)
	}
	return project, nil
}

func (s *PgStorage) Count(ctx context.Context, filter *models.ProjectFilter) (int, error) {
	query, args, err := applyFilter(psql.Select("count(*)").From("projects"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("PgStorage.Count - build query failed: %w", err)
	}

	var n int
	if err := s.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		utils.Logger.Error("PgStorage.Count - queryRow failed", zap.Error(err), zap.Any("filter", filter))
		return 0, fmt.Errorf("PgStorage.Count - queryRow failed: %w", err)
	}
	return n, nil
}

func (s *PgStorage) List(ctx context.Context, filter *models.ProjectFilter, pagination *models.Pagination) ([]models.Project, error) {
	query, args, err := applyFilter(psql.Select(projectColumns...).From("projects"), filter).
		OrderBy("id").
		Limit(uint64(pagination.GetLimit())).
		Offset(uint64(pagination.GetOffset())).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("PgStorage.List - build query failed: %w", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		utils.Logger.Error("PgStorage.List - query failed", zap.Error(err), zap.Any("filter", filter), zap.Any("pagination", pagination))
		return nil, fmt.Errorf("PgStorage.List - query failed: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			utils.Logger.Error("PgStorage.List - rows.Scan failed", zap.Error(err))
			return nil, fmt.Errorf("PgStorage.List - rows.Scan failed: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		utils.Logger.Error("PgStorage.List - rows.Err failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.List - rows.Err failed: %w", err)
	}

	return projects, nil
}

func (s *PgStorage) Update(ctx context.Context, project *models.Project) (*models.Project, error) {
	query, args, err := psql.Update("projects").
		Set("title", project.Title).
		Set("slug", project.Slug).
		Set("location", project.Location).
		Set("status", string(project.Status)).
		Set("description", project.Description).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": project.ID}).
		Suffix("RETURNING " + strings.Join(projectColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("PgStorage.Update - build query failed: %w", err)
	}

	updated, err := scanProject(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrProjectNotFound
		}
		utils.Logger.Error("PgStorage.Update - queryRow failed", zap.Error(err), zap.Int("id", project.ID))
		return nil, fmt.Errorf("PgStorage.Update - queryRow failed: %w", err)
	}
	return updated, nil
}

func (s *PgStorage) Delete(ctx context.Context, id int) error {
	result, err := s.db.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		utils.Logger.Error("PgStorage.Delete - exec failed", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("PgStorage.Delete - exec failed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return storage.ErrProjectNotFound
	}
	return nil
}
