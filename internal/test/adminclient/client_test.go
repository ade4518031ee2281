package adminclient_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedmasry1001/steelsite/internal/adminclient"
)

func TestLoginStoresToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/admin/login", func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, c.ShouldBindJSON(&req))
		if req.Username != "admin" || req.Password != "secret" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"access_token": "issued-token", "username": "admin"})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	tokens := &adminclient.TokenStore{}
	client := adminclient.NewClient(server.URL, tokens)

	require.NoError(t, client.Login(tokens, "admin", "secret"))
	assert.True(t, tokens.Authenticated())
	assert.Equal(t, "issued-token", tokens.Token())

	tokens.Clear()
	assert.False(t, tokens.Authenticated())
}

func TestLoginRejectedIsUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/admin/login", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	tokens := &adminclient.TokenStore{}
	client := adminclient.NewClient(server.URL, tokens)

	err := client.Login(tokens, "admin", "wrong")
	require.Error(t, err)
	assert.Equal(t, adminclient.ErrorUnauthorized, adminclient.AsError(err).Kind)
	assert.Equal(t, "Invalid credentials", adminclient.AsError(err).Message)
	assert.False(t, tokens.Authenticated())
}

func TestRequestsCarryBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var gotAuth string
	router := gin.New()
	router.GET("/api/admin/employees", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		c.JSON(http.StatusOK, []gin.H{})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	client := adminclient.NewClient(server.URL, adminclient.StaticToken("abc123"))
	_, err := adminclient.List(client, adminclient.Employees())
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestGetFetchesSingleRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/admin/projects/3", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": 3, "title": "Bridge Retrofit", "category": "infrastructure"})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	client := adminclient.NewClient(server.URL, adminclient.StaticToken("abc123"))
	project, err := adminclient.Get(client, adminclient.Projects(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Bridge Retrofit", project.Title)
	assert.Equal(t, "infrastructure", project.Category)
}

func TestServerValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/admin/contact-cards", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and details are required"})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	client := adminclient.NewClient(server.URL, adminclient.StaticToken("abc123"))
	_, err := adminclient.Create(client, adminclient.ContactCards(), adminclient.ContactCard{
		Title:   "Phone",
		Details: "555-1234",
	})

	require.Error(t, err)
	apiErr := adminclient.AsError(err)
	assert.Equal(t, adminclient.ErrorValidation, apiErr.Kind)
	assert.Equal(t, "Title and details are required", apiErr.Message)
}

func TestConnectionFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := adminclient.NewClient(server.URL, adminclient.StaticToken(""))
	_, err := adminclient.List(client, adminclient.Projects())

	require.Error(t, err)
	assert.Equal(t, adminclient.ErrorNetwork, adminclient.AsError(err).Kind)
}

func TestCreateNormalizesProjectID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/admin/projects", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"message": "Project created successfully", "project_id": 11})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	client := adminclient.NewClient(server.URL, adminclient.StaticToken("abc123"))
	id, err := adminclient.Create(client, adminclient.Projects(), adminclient.Project{Title: "Bridge"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}
