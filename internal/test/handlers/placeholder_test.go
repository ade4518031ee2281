package handlers_test

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedmasry1001/steelsite/internal/handlers"
)

func placeholderRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/placeholder/:width/:height", handlers.PlaceholderHandler)
	return router
}

func TestPlaceholder_ReturnsImage(t *testing.T) {
	router := placeholderRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/placeholder/800/600", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestPlaceholder_RejectsInvalidDimensions(t *testing.T) {
	router := placeholderRouter()

	for _, path := range []string{
		"/api/placeholder/0/600",
		"/api/placeholder/800/abc",
		"/api/placeholder/99999/600",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}
