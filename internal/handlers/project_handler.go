package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecobridge/internal/models"
	"ecobridge/internal/responses"
	"ecobridge/internal/services"
	"ecobridge/internal/utils"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	matchService   *services.MatchService
}

func NewProjectHandler(projectService *services.ProjectService, matchService *services.MatchService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		matchService:   matchService,
	}
}

// CreateProject handles POST /api/v1/projects. Matching runs synchronously:
// the response carries the project and its freshly generated match list.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	project, matches, err := h.projectService.CreateProject(c.Request.Context(), userID, req)
	if err != nil {
		responses.Error(c, err, "Could not create project")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{
		"project": project,
		"matches": matches,
	}, "Project created and matched")
}

// ListProjects handles GET /api/v1/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var pg models.Pagination
	if err := c.ShouldBindQuery(&pg); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid pagination parameters")
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), userID, pg)
	if err != nil {
		responses.Error(c, err, "Could not list projects")
		return
	}

	responses.Success(c, http.StatusOK, projects, "Projects retrieved")
}

// GetProject handles GET /api/v1/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project id")
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), projectID, userID)
	if err != nil {
		responses.Error(c, err, "Could not load project")
		return
	}

	responses.Success(c, http.StatusOK, project, "Project retrieved")
}

// UpdateProject handles PATCH /api/v1/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project id")
		return
	}

	var patch models.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, userID, patch)
	if err != nil {
		responses.Error(c, err, "Could not update project")
		return
	}

	responses.Success(c, http.StatusOK, project, "Project updated")
}

// DeleteProject handles DELETE /api/v1/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project id")
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID, userID); err != nil {
		responses.Error(c, err, "Could not delete project")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Project deleted")
}

// ListProjectMatches handles GET /api/v1/projects/:id/matches
func (h *ProjectHandler) ListProjectMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project id")
		return
	}

	matches, err := h.matchService.ListProjectMatches(c.Request.Context(), projectID, userID)
	if err != nil {
		responses.Error(c, err, "Could not list project matches")
		return
	}

	responses.Success(c, http.StatusOK, matches, "Matches retrieved")
}
