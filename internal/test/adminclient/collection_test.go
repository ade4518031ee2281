package adminclient_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedmasry1001/steelsite/internal/adminclient"
)

func newTestClient(server *httptest.Server) *adminclient.Client {
	return adminclient.NewClient(server.URL, adminclient.StaticToken("test-token"))
}

func TestCollectionLoadIsIdempotent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/admin/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"id": 1, "title": "Office Complex", "category": "commercial"},
		})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	collection := adminclient.NewCollection(newTestClient(server), adminclient.Projects())

	require.NoError(t, collection.Load())
	first := collection.Records()

	require.NoError(t, collection.Load())
	second := collection.Records()

	assert.Equal(t, first, second)
	require.Len(t, second, 1)
	assert.Equal(t, "Office Complex", second[0].Title)
	assert.Equal(t, "commercial", second[0].Category)
}

func TestCollectionLoadFailureLeavesEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/admin/projects", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	collection := adminclient.NewCollection(newTestClient(server), adminclient.Projects())

	err := collection.Load()
	require.Error(t, err)
	assert.Equal(t, adminclient.ErrorNetwork, adminclient.AsError(err).Kind)
	assert.False(t, collection.Loaded())
	assert.Equal(t, 0, collection.Len())
}

func TestCommitValidationShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var calls int32
	router := gin.New()
	router.POST("/api/admin/contact-cards", func(c *gin.Context) {
		atomic.AddInt32(&calls, 1)
		c.JSON(http.StatusCreated, gin.H{"id": 1})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	collection := adminclient.NewCollection(newTestClient(server), adminclient.ContactCards())

	session, err := collection.StartCreate(adminclient.ContactCard{
		Details: "555-1234",
	})
	require.NoError(t, err)

	_, err = session.Commit()
	require.Error(t, err)
	assert.Equal(t, adminclient.ErrorValidation, adminclient.AsError(err).Kind)
	assert.Equal(t, "Title and details are required", adminclient.AsError(err).Message)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	// The session stays open for correction.
	session.Mutate(func(card *adminclient.ContactCard) {
		card.Title = "Phone"
	})
	record, err := session.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), record.ID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 1, collection.Len())
}

func TestCommitRejectsDoubleSubmit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var calls int32
	var once sync.Once
	started := make(chan struct{})
	release := make(chan struct{})

	router := gin.New()
	router.POST("/api/admin/employees", func(c *gin.Context) {
		atomic.AddInt32(&calls, 1)
		once.Do(func() { close(started) })
		<-release
		c.JSON(http.StatusCreated, gin.H{"id": 7})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	collection := adminclient.NewCollection(newTestClient(server), adminclient.Employees())

	session, err := collection.StartCreate(adminclient.Employee{Name: "Jordan"})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, commitErr := session.Commit()
		done <- commitErr
	}()

	<-started
	_, err = session.Commit()
	assert.ErrorIs(t, err, adminclient.ErrCommitInFlight)

	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 1, collection.Len())
}

func TestOneEditSessionPerCollection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := httptest.NewServer(gin.New())
	defer server.Close()

	collection := adminclient.NewCollection(newTestClient(server), adminclient.Employees())

	first, err := collection.StartCreate(adminclient.Employee{})
	require.NoError(t, err)

	_, err = collection.StartCreate(adminclient.Employee{})
	assert.ErrorIs(t, err, adminclient.ErrEditInProgress)

	first.Cancel()

	second, err := collection.StartCreate(adminclient.Employee{})
	require.NoError(t, err)
	second.Cancel()
}

func TestCommitUpdatesRecordInPlace(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/admin/employees", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"id": 1, "name": "Jordan", "role": "Welder"},
			{"id": 2, "name": "Sam", "role": "Engineer"},
		})
	})
	router.PUT("/api/admin/employees/1", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Employee updated successfully"})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	collection := adminclient.NewCollection(newTestClient(server), adminclient.Employees())
	require.NoError(t, collection.Load())

	session, err := collection.StartEdit(1)
	require.NoError(t, err)

	session.Mutate(func(e *adminclient.Employee) {
		e.Role = "Site Supervisor"
	})

	_, err = session.Commit()
	require.NoError(t, err)

	records := collection.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "Site Supervisor", records[0].Role)
	assert.Equal(t, "Sam", records[1].Name)
}

func TestDeleteFailureLeavesCollectionIntact(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/admin/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"id": 1, "title": "Office Complex", "category": "commercial"},
		})
	})
	router.DELETE("/api/admin/projects/1", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database is down"})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	collection := adminclient.NewCollection(newTestClient(server), adminclient.Projects())
	require.NoError(t, collection.Load())

	reconciler := adminclient.NewReconciler(collection)
	result := reconciler.Delete(1)

	assert.False(t, result.OK)
	assert.Equal(t, adminclient.ErrorNetwork, result.Err.Kind)

	_, stillThere := collection.Find(1)
	assert.True(t, stillThere)
}

func TestDeleteSuccessRemovesRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/admin/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"id": 1, "title": "Office Complex", "category": "commercial"},
			{"id": 2, "title": "Warehouse", "category": "industrial"},
		})
	})
	router.DELETE("/api/admin/projects/1", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	collection := adminclient.NewCollection(newTestClient(server), adminclient.Projects())
	require.NoError(t, collection.Load())

	reconciler := adminclient.NewReconciler(collection)
	result := reconciler.Delete(1)

	require.True(t, result.OK)
	assert.Equal(t, "Office Complex", result.Data.Title)
	assert.Equal(t, 1, collection.Len())

	_, gone := collection.Find(1)
	assert.False(t, gone)
}

func TestUnauthorizedFiresHook(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/admin/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{{"id": 1, "title": "Office Complex"}})
	})
	router.DELETE("/api/admin/projects/1", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	collection := adminclient.NewCollection(newTestClient(server), adminclient.Projects())
	require.NoError(t, collection.Load())

	loggedOut := false
	reconciler := adminclient.NewReconciler(collection)
	reconciler.OnUnauthorized = func() { loggedOut = true }

	result := reconciler.Delete(1)

	assert.False(t, result.OK)
	assert.Equal(t, adminclient.ErrorUnauthorized, result.Err.Kind)
	assert.True(t, loggedOut)
}

func TestDeleteNotFoundReloadsCollection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var listCalls int32
	router := gin.New()
	router.GET("/api/admin/projects", func(c *gin.Context) {
		if atomic.AddInt32(&listCalls, 1) == 1 {
			c.JSON(http.StatusOK, []gin.H{
				{"id": 1, "title": "Office Complex"},
				{"id": 2, "title": "Warehouse"},
			})
			return
		}
		// The record vanished server-side between load and delete.
		c.JSON(http.StatusOK, []gin.H{
			{"id": 2, "title": "Warehouse"},
		})
	})
	router.DELETE("/api/admin/projects/1", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	collection := adminclient.NewCollection(newTestClient(server), adminclient.Projects())
	require.NoError(t, collection.Load())

	reconciler := adminclient.NewReconciler(collection)
	result := reconciler.Delete(1)

	assert.False(t, result.OK)
	assert.Equal(t, adminclient.ErrorNotFound, result.Err.Kind)
	assert.Equal(t, int32(2), atomic.LoadInt32(&listCalls))
	assert.Equal(t, 1, collection.Len())
}

func TestDeleteNotFoundReloadFailureIsSurfaced(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var listCalls int32
	router := gin.New()
	router.GET("/api/admin/projects", func(c *gin.Context) {
		if atomic.AddInt32(&listCalls, 1) == 1 {
			c.JSON(http.StatusOK, []gin.H{
				{"id": 1, "title": "Office Complex"},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database unavailable"})
	})
	router.DELETE("/api/admin/projects/1", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	collection := adminclient.NewCollection(newTestClient(server), adminclient.Projects())
	require.NoError(t, collection.Load())

	reconciler := adminclient.NewReconciler(collection)
	result := reconciler.Delete(1)

	assert.False(t, result.OK)
	require.NotNil(t, result.Err)
	assert.Equal(t, adminclient.ErrorNotFound, result.Err.Kind)
	assert.Contains(t, result.Err.Message, "Project not found")
	assert.Contains(t, result.Err.Message, "reload failed")
	assert.Contains(t, result.Err.Message, "database unavailable")
}
