package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ahmedmasry1001/steelsite/internal/config"
	"github.com/ahmedmasry1001/steelsite/internal/handlers"
	"github.com/ahmedmasry1001/steelsite/internal/store"
)

// Request validation runs before any database access, so these tests
// exercise the 400 paths with an unconnected store.

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateProject_MissingTitle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewProjectsHandler(&store.Store{}, nil, "http://localhost:8080")

	router := gin.New()
	router.POST("/api/admin/projects", handler.CreateProject)

	w := postJSON(router, "/api/admin/projects", `{"description": "no title"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title is required")
}

func TestCreateContactCard_MissingDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewContactCardsHandler(&store.Store{})

	router := gin.New()
	router.POST("/api/admin/contact-cards", handler.Create)

	w := postJSON(router, "/api/admin/contact-cards", `{"title": "Phone"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title and details are required")
}

func TestCreateEmployee_MissingName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewEmployeesHandler(&store.Store{})

	router := gin.New()
	router.POST("/api/admin/employees", handler.Create)

	w := postJSON(router, "/api/admin/employees", `{"role": "Engineer"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name is required")
}

func TestSubmitContact_MissingEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewContactsHandler(&store.Store{})

	router := gin.New()
	router.POST("/api/contact", handler.Submit)

	w := postJSON(router, "/api/contact", `{"name": "Jordan"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name and email are required")
}

func TestLogin_MissingCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := handlers.NewAuthHandler(cfg, &store.Store{})

	router := gin.New()
	router.POST("/api/admin/login", handler.Login)

	w := postJSON(router, "/api/admin/login", `{"username": "admin"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "username and password are required")
}

func TestCreateProject_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewProjectsHandler(&store.Store{}, nil, "http://localhost:8080")

	router := gin.New()
	router.POST("/api/admin/projects", handler.CreateProject)

	w := postJSON(router, "/api/admin/projects", `not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}
