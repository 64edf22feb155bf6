// internal/api/handlers/projects/projects_handlers.go
package projects

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"siteadmin/internal/lib/logger/utils"
	"siteadmin/internal/lib/response"
	"siteadmin/internal/lib/validation"
	"siteadmin/internal/models"
	"siteadmin/internal/service"
	"siteadmin/internal/storage"
)

type ProjectHandlers struct {
	projectService *service.ProjectService
}

func NewProjectHandlers(projectService *service.ProjectService) *ProjectHandlers {
	return &ProjectHandlers{
		projectService: projectService,
	}
}

type listQuery struct {
	Title    string `query:"title" validate:"max=200"`
	Status   string `query:"status" validate:"omitempty,oneof=planned active completed"`
	Page     int    `query:"page" validate:"min=0"`
	PageSize int    `query:"pageSize" validate:"min=0,max=100"`
}

func queryInt(values map[string][]string, key string) (int, bool) {
	raw := ""
	if v := values[key]; len(v) > 0 {
		raw = v[0]
	}
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil
}

// @Summary List projects
// @Description List projects with optional title/status filters. The page object carries the paginator links.
// @Tags projects
// @Produce json
// @Param title query string false "Filter by title (substring, case-insensitive)"
// @Param status query string false "Filter by status" Enums(planned, active, completed)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Projects per page" default(10)
// @Success 200 {object} models.ListResponse[models.Project]
// @Failure 400 {string} string "Bad Request"
// @Failure 500 {string} string "Internal Server Error"
// @Router /projects [get]
func (h *ProjectHandlers) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("ListProjectsHandler called")

	queryParams := r.URL.Query()
	page, okPage := queryInt(queryParams, "page")
	pageSize, okSize := queryInt(queryParams, "pageSize")
	if !okPage || !okSize {
		utils.Logger.Warn("ListProjectsHandler - invalid pagination parameters", zap.String("query", r.URL.RawQuery))
		response.Error(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	query := listQuery{
		Title:    queryParams.Get("title"),
		Status:   queryParams.Get("status"),
		Page:     page,
		PageSize: pageSize,
	}
	fields, err := validation.Struct(query)
	if err != nil {
		utils.Logger.Error("ListProjectsHandler - validation failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}
	if fields != nil {
		utils.Logger.Warn("ListProjectsHandler - invalid query", zap.Any("fields", fields))
		response.ValidationError(w, "Invalid query parameters", fields)
		return
	}

	filter := &models.ProjectFilter{Title: stringPointer(query.Title)}
	if query.Status != "" {
		status := models.ProjectStatus(query.Status)
		filter.Status = &status
	}
	if filter.Title == nil && filter.Status == nil {
		filter = nil
	}
	pagination := models.NewPagination(query.Page, query.PageSize)

	result, err := h.projectService.ListProjects(r.Context(), filter, pagination)
	if err != nil {
		utils.Logger.Error("ListProjectsHandler - projectService.ListProjects failed", zap.Error(err), zap.Any("filter", filter), zap.Any("pagination", pagination))
		response.Error(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}

	response.JSON(w, http.StatusOK, result)
	utils.Logger.Debug("ListProjectsHandler - projects retrieved", zap.Int("count", len(result.Data)), zap.Int("total", result.Page.TotalCount))
}

// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param body body models.ProjectRequest true "Project to create"
// @Success 201 {object} models.Project
// @Failure 400 {string} string "Bad Request"
// @Failure 500 {string} string "Internal Server Error"
// @Router /projects [post]
func (h *ProjectHandlers) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("CreateProjectHandler called")
	var req models.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("CreateProjectHandler - invalid request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.projectService.CreateProject(r.Context(), &req)
	if err != nil {
		if status, msg, ok := requestError(err); ok {
			response.Error(w, status, msg)
			return
		}
		utils.Logger.Error("CreateProjectHandler - projectService.CreateProject failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	response.JSON(w, http.StatusCreated, created)
	utils.Logger.Info("CreateProjectHandler - project created successfully", zap.Int("project_id", created.ID), zap.String("title", created.Title))
}

// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {string} string "Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /projects/{id} [get]
func (h *ProjectHandlers) GetProjectHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetProjectHandler called")
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			response.Error(w, http.StatusNotFound, "Project not found")
			return
		}
		utils.Logger.Error("GetProjectHandler - projectService.GetProject failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to get project")
		return
	}

	response.JSON(w, http.StatusOK, project)
}

// @Summary Update project by ID
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param body body models.ProjectRequest true "Project details"
// @Success 200 {object} models.Project
// @Failure 400 {string} string "Bad Request"
// @Failure 404 {string} string "Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /projects/{id} [put]
func (h *ProjectHandlers) UpdateProjectHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("UpdateProjectHandler called")
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	var req models.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("UpdateProjectHandler - invalid request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.projectService.UpdateProject(r.Context(), id, &req)
	if err != nil {
		if status, msg, ok := requestError(err); ok {
			response.Error(w, status, msg)
			return
		}
		utils.Logger.Error("UpdateProjectHandler - projectService.UpdateProject failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to update project")
		return
	}

	response.JSON(w, http.StatusOK, updated)
	utils.Logger.Info("UpdateProjectHandler - project updated successfully", zap.Int("project_id", updated.ID))
}

// @Summary Delete project by ID
// @Tags projects
// @Param id path int true "Project ID"
// @Success 204 "No Content"
// @Failure 404 {string} string "Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /projects/{id} [delete]
func (h *ProjectHandlers) DeleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("DeleteProjectHandler called")
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	err := h.projectService.DeleteProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			response.Error(w, http.StatusNotFound, "Project not found")
			return
		}
		utils.Logger.Error("DeleteProjectHandler - projectService.DeleteProject failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	w.WriteHeader(http.StatusNoContent)
	utils.Logger.Info("DeleteProjectHandler - project deleted successfully", zap.Int("project_id", id))
}

func (h *ProjectHandlers) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func projectID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.Logger.Warn("invalid project ID", zap.Error(err), zap.String("id", idStr))
		response.Error(w, http.StatusBadRequest, "Invalid project ID")
		return 0, false
	}
	return id, true
}

// requestError maps service errors caused by the request itself.
func requestError(err error) (int, string, bool) {
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		return http.StatusBadRequest, "Project title is required", true
	case errors.Is(err, service.ErrInvalidStatus):
		return http.StatusBadRequest, "Unknown project status", true
	case errors.Is(err, storage.ErrProjectNotFound):
		return http.StatusNotFound, "Project not found", true
	}
	return 0, "", false
}

func stringPointer(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
