package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ahmedmasry1001/steelsite/internal/models"
	"github.com/ahmedmasry1001/steelsite/internal/storage"
	"github.com/ahmedmasry1001/steelsite/internal/store"
)

// maxUploadMemory bounds the in-memory portion of a multipart parse (32MB).
const maxUploadMemory = 32 << 20

type ImagesHandler struct {
	store   *store.Store
	files   *storage.Storage
	baseURL string
}

func NewImagesHandler(store *store.Store, files *storage.Storage, baseURL string) *ImagesHandler {
	return &ImagesHandler{
		store:   store,
		files:   files,
		baseURL: baseURL,
	}
}

// Upload accepts a multipart batch of project images. The first stored
// image of a project without a main image becomes the main image.
func (h *ImagesHandler) Upload(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projectID, ok := parseID(c, "project_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	if err := c.Request.ParseMultipartForm(maxUploadMemory); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return
	}

	form := c.Request.MultipartForm
	if form == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no files uploaded"})
		return
	}

	var files []*multipart.FileHeader
	for _, fieldName := range []string{"files", "images", "file", "image"} {
		if f := form.File[fieldName]; len(f) > 0 {
			files = f
			break
		}
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No files uploaded"})
		return
	}

	markMain := strings.EqualFold(c.PostForm("is_main"), "true")

	hasMain, err := h.store.HasMainImage(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to check main image",
			Message: err.Error(),
		})
		return
	}

	uploaded := make([]models.UploadedFile, 0, len(files))
	firstUpload := true
	for _, file := range files {
		if file.Filename == "" || !storage.Allowed(file.Filename) {
			continue
		}

		src, err := file.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			continue
		}

		relPath, err := h.files.Save(storage.ProjectsDir, file.Filename, data)
		if err != nil {
			continue
		}

		shouldBeMain := markMain || (!hasMain && firstUpload)

		if _, err := h.store.CreateProjectImage(projectID, relPath, file.Filename, shouldBeMain); err != nil {
			h.files.Remove(relPath)
			continue
		}

		uploaded = append(uploaded, models.UploadedFile{
			Filename:     strings.TrimPrefix(relPath, storage.ProjectsDir+"/"),
			OriginalName: file.Filename,
			Path:         relPath,
			IsMain:       shouldBeMain,
		})

		if shouldBeMain {
			hasMain = true
			markMain = false
		}
		firstUpload = false
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		Message: fmt.Sprintf("%d files uploaded successfully", len(uploaded)),
		Files:   uploaded,
	})
}

// ListImages returns the project's gallery, main image first.
func (h *ImagesHandler) ListImages(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projectID, ok := parseID(c, "project_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	images, err := h.store.ListProjectImages(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list images",
			Message: err.Error(),
		})
		return
	}

	views := make([]models.ImageResponse, 0, len(images))
	for _, img := range images {
		views = append(views, models.ImageResponse{
			ID:        img.ID,
			URL:       storage.PublicURL(h.baseURL, img.ImagePath),
			Path:      img.ImagePath,
			Name:      nullString(img.ImageName),
			IsMain:    img.IsMain,
			CreatedAt: img.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, models.ImageListResponse{Images: views})
}

func (h *ImagesHandler) DeleteImage(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projectID, ok := parseID(c, "project_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}
	imageID, ok := parseID(c, "image_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid image id"})
		return
	}

	img, err := h.store.GetProjectImage(projectID, imageID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Image not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get image",
			Message: err.Error(),
		})
		return
	}

	if err := h.store.DeleteProjectImage(projectID, imageID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete image",
			Message: err.Error(),
		})
		return
	}

	h.files.Remove(img.ImagePath)

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Image deleted successfully"})
}

// SetMainImage promotes one image to main; the store unsets the previous
// main in the same transaction.
func (h *ImagesHandler) SetMainImage(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projectID, ok := parseID(c, "project_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}
	imageID, ok := parseID(c, "image_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid image id"})
		return
	}

	err := h.store.SetMainProjectImage(projectID, imageID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Image not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to set main image",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Main image updated successfully"})
}
