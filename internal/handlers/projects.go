package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ahmedmasry1001/steelsite/internal/models"
	"github.com/ahmedmasry1001/steelsite/internal/storage"
	"github.com/ahmedmasry1001/steelsite/internal/store"
)

type ProjectsHandler struct {
	store   *store.Store
	files   *storage.Storage
	baseURL string
}

func NewProjectsHandler(store *store.Store, files *storage.Storage, baseURL string) *ProjectsHandler {
	return &ProjectsHandler{
		store:   store,
		files:   files,
		baseURL: baseURL,
	}
}

// ListProjects serves the public project listing with optional
// featured/category/limit filters. Each row carries its main image URL.
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	filter := store.ProjectFilter{
		Featured: c.Query("featured") != "",
		Category: c.Query("category"),
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid limit"})
			return
		}
		filter.Limit = limit
	}

	projects, err := h.store.ListActiveProjects(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list projects",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp := h.projectResponse(p.Project)
		if p.MainImagePath.Valid {
			url := storage.PublicURL(h.baseURL, p.MainImagePath.String)
			resp.MainImage = &url
			resp.Image = &url
		}
		responses = append(responses, resp)
	}

	c.JSON(http.StatusOK, responses)
}

// GetProject serves one public project with its full image list.
func (h *ProjectsHandler) GetProject(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projectID, ok := parseID(c, "project_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	project, err := h.store.GetActiveProject(projectID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get project",
			Message: err.Error(),
		})
		return
	}

	images, err := h.store.ListProjectImages(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get project images",
			Message: err.Error(),
		})
		return
	}

	resp := h.projectResponse(*project)
	resp.Images = make([]models.ImageResponse, 0, len(images))
	for _, img := range images {
		view := models.ImageResponse{
			ID:        img.ID,
			URL:       storage.PublicURL(h.baseURL, img.ImagePath),
			Path:      img.ImagePath,
			Name:      nullString(img.ImageName),
			IsMain:    img.IsMain,
			CreatedAt: img.CreatedAt,
		}
		resp.Images = append(resp.Images, view)
		if img.IsMain {
			url := view.URL
			resp.MainImage = &url
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "title is required"})
		return
	}

	projectID, err := h.store.CreateProject(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create project",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.CreateProjectResponse{
		Message:   "Project created successfully",
		ProjectID: projectID,
	})
}

func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projectID, ok := parseID(c, "project_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "title is required"})
		return
	}

	err := h.store.UpdateProject(projectID, req)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update project",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Project updated successfully"})
}

func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projectID, ok := parseID(c, "project_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	imagePaths, err := h.store.DeleteProject(projectID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete project",
			Message: err.Error(),
		})
		return
	}

	// Best effort; rows are already gone.
	for _, path := range imagePaths {
		h.files.Remove(path)
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Project deleted successfully"})
}

func (h *ProjectsHandler) projectResponse(p models.Project) models.ProjectResponse {
	return models.ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: nullString(p.Description),
		Category:    nullString(p.Category),
		Location:    nullString(p.Location),
		Size:        nullString(p.Size),
		Year:        nullString(p.Year),
		Featured:    p.Featured,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
