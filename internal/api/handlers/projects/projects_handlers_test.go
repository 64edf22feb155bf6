package projects_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"siteadmin/internal/api/handlers/projects"
	"siteadmin/internal/models"
	"siteadmin/internal/service"
	"siteadmin/internal/storage"
	mock_storage "siteadmin/internal/storage/mocks"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

const projectJSON = `{"id":1,"title":"Depot","slug":"depot","location":null,"status":"planned","description":null,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`

func newHandlers(ctrl *gomock.Controller, mockFn func(s *mock_storage.MockProjectStorage)) *projects.ProjectHandlers {
	mockStorage := mock_storage.NewMockProjectStorage(ctrl)
	mockFn(mockStorage)
	return projects.NewProjectHandlers(service.NewProjectService(mockStorage, 5))
}

func TestListProjectsHandler_Unit(t *testing.T) {
	testCases := []struct {
		name           string
		queryParams    string
		mockStorageFn  func(s *mock_storage.MockProjectStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "No filters, no pagination",
			queryParams: "",
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				s.EXPECT().Count(gomock.Any(), nil).Return(1, nil)
				s.EXPECT().List(gomock.Any(), nil, &models.Pagination{Page: 1, PageSize: 10}).
					Return([]models.Project{{ID: 1, Title: "Depot", Slug: "depot", Status: models.ProjectPlanned}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"data":[` + projectJSON + `],"page":{"totalCount":1,"page":1,"pageSize":10,"lastPage":1,"links":[1],` +
				`"previous":{"page":1,"disabled":true},"next":{"page":1,"disabled":true}}}`,
		},
		{
			name:        "Middle page of many",
			queryParams: "?page=10&pageSize=1",
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				s.EXPECT().Count(gomock.Any(), nil).Return(20, nil)
				s.EXPECT().List(gomock.Any(), nil, &models.Pagination{Page: 10, PageSize: 1}).
					Return([]models.Project{{ID: 1, Title: "Depot", Slug: "depot", Status: models.ProjectPlanned}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"data":[` + projectJSON + `],"page":{"totalCount":20,"page":10,"pageSize":1,"lastPage":20,"links":[1,"…",9,10,11,"…",20],` +
				`"previous":{"page":9,"disabled":false},"next":{"page":11,"disabled":false}}}`,
		},
		{
			name:        "Filter by title and status",
			queryParams: "?title=depot&status=active",
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				title := "depot"
				status := models.ProjectActive
				filter := &models.ProjectFilter{Title: &title, Status: &status}
				s.EXPECT().Count(gomock.Any(), filter).Return(0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"data":[],"page":{"totalCount":0,"page":1,"pageSize":10,"lastPage":1,"links":[1],` +
				`"previous":{"page":1,"disabled":true},"next":{"page":1,"disabled":true}}}`,
		},
		{
			name:           "Non-numeric page",
			queryParams:    "?page=two",
			mockStorageFn:  func(s *mock_storage.MockProjectStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid pagination parameters"}`,
		},
		{
			name:           "Out of range page size and unknown status",
			queryParams:    "?pageSize=500&status=paused",
			mockStorageFn:  func(s *mock_storage.MockProjectStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid query parameters","fields":{` +
				`"pageSize":"the field 'pageSize' must be at most 100",` +
				`"status":"the field 'status' must be one of [planned active completed]"}}`,
		},
		{
			name:        "Service error",
			queryParams: "",
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				s.EXPECT().Count(gomock.Any(), nil).Return(0, errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to list projects"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := newHandlers(ctrl, tc.mockStorageFn)

			req := httptest.NewRequest("GET", "/projects"+tc.queryParams, nil)
			w := httptest.NewRecorder()

			handler.ListProjectsHandler(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestCreateProjectHandler_Unit(t *testing.T) {
	testCases := []struct {
		name           string
		requestBody    string
		mockStorageFn  func(s *mock_storage.MockProjectStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Valid request",
			requestBody: `{"title": "Depot"}`,
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Project{ID: 1, Title: "Depot", Slug: "depot", Status: models.ProjectPlanned}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   projectJSON,
		},
		{
			name:           "Invalid request body",
			requestBody:    `invalid json`,
			mockStorageFn:  func(s *mock_storage.MockProjectStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body"}`,
		},
		{
			name:           "Missing title",
			requestBody:    `{"status": "active"}`,
			mockStorageFn:  func(s *mock_storage.MockProjectStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Project title is required"}`,
		},
		{
			name:           "Unknown status",
			requestBody:    `{"title": "Depot", "status": "paused"}`,
			mockStorageFn:  func(s *mock_storage.MockProjectStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Unknown project status"}`,
		},
		{
			name:        "Service error",
			requestBody: `{"title": "Depot"}`,
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to create project"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := newHandlers(ctrl, tc.mockStorageFn)

			req := httptest.NewRequest("POST", "/projects", bytes.NewBufferString(tc.requestBody))
			w := httptest.NewRecorder()

			handler.CreateProjectHandler(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestGetProjectHandler_Unit(t *testing.T) {
	testCases := []struct {
		name           string
		projectID      string
		mockStorageFn  func(s *mock_storage.MockProjectStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Valid request",
			projectID: "1",
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				s.EXPECT().GetByID(gomock.Any(), 1).Return(&models.Project{ID: 1, Title: "Depot", Slug: "depot", Status: models.ProjectPlanned}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   projectJSON,
		},
		{
			name:           "Invalid project ID",
			projectID:      "invalid",
			mockStorageFn:  func(s *mock_storage.MockProjectStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid project ID"}`,
		},
		{
			name:      "Project not found",
			projectID: "1",
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				s.EXPECT().GetByID(gomock.Any(), 1).Return(nil, storage.ErrProjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Project not found"}`,
		},
		{
			name:      "Service error",
			projectID: "1",
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				s.EXPECT().GetByID(gomock.Any(), 1).Return(nil, errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to get project"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := newHandlers(ctrl, tc.mockStorageFn)
			req := httptest.NewRequest("GET", "/projects/"+tc.projectID, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tc.projectID})
			w := httptest.NewRecorder()

			handler.GetProjectHandler(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestUpdateProjectHandler_Unit(t *testing.T) {
	testCases := []struct {
		name           string
		projectID      string
		requestBody    string
		mockStorageFn  func(s *mock_storage.MockProjectStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Valid request",
			projectID:   "1",
			requestBody: `{"title": "Depot"}`,
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				s.EXPECT().Update(gomock.Any(), &models.Project{ID: 1, Title: "Depot", Slug: "depot", Status: models.ProjectPlanned}).
					Return(&models.Project{ID: 1, Title: "Depot", Slug: "depot", Status: models.ProjectPlanned}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   projectJSON,
		},
		{
			name:           "Invalid project ID",
			projectID:      "invalid",
			requestBody:    `{"title": "Depot"}`,
			mockStorageFn:  func(s *mock_storage.MockProjectStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid project ID"}`,
		},
		{
			name:           "Invalid request body",
			projectID:      "1",
			requestBody:    `invalid json`,
			mockStorageFn:  func(s *mock_storage.MockProjectStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body"}`,
		},
		{
			name:        "Project not found",
			projectID:   "1",
			requestBody: `{"title": "Depot"}`,
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				s.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, storage.ErrProjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Project not found"}`,
		},
		{
			name:        "Service error",
			projectID:   "1",
			requestBody: `{"title": "Depot"}`,
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				s.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to update project"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := newHandlers(ctrl, tc.mockStorageFn)
			req := httptest.NewRequest("PUT", "/projects/"+tc.projectID, bytes.NewBufferString(tc.requestBody))
			req = mux.SetURLVars(req, map[string]string{"id": tc.projectID})
			w := httptest.NewRecorder()

			handler.UpdateProjectHandler(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestDeleteProjectHandler_Unit(t *testing.T) {
	testCases := []struct {
		name           string
		projectID      string
		mockStorageFn  func(s *mock_storage.MockProjectStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Valid request",
			projectID: "1",
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				s.EXPECT().Delete(gomock.Any(), 1).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
			expectedBody:   ``,
		},
		{
			name:           "Invalid project ID",
			projectID:      "invalid",
			mockStorageFn:  func(s *mock_storage.MockProjectStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid project ID"}`,
		},
		{
			name:      "Project not found",
			projectID: "1",
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				s.EXPECT().Delete(gomock.Any(), 1).Return(storage.ErrProjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Project not found"}`,
		},
		{
			name:      "Service error",
			projectID: "1",
			mockStorageFn: func(s *mock_storage.MockProjectStorage) {
				s.EXPECT().Delete(gomock.Any(), 1).Return(errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to delete project"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := newHandlers(ctrl, tc.mockStorageFn)
			req := httptest.NewRequest("DELETE", "/projects/"+tc.projectID, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tc.projectID})
			w := httptest.NewRecorder()

			handler.DeleteProjectHandler(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedBody == "" {
				assert.Empty(t, w.Body.String())
				return
			}
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestHealthCheckHandler_Unit(t *testing.T) {
	handler := projects.NewProjectHandlers(nil)
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.HealthCheckHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
