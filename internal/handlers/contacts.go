package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedmasry1001/steelsite/internal/models"
	"github.com/ahmedmasry1001/steelsite/internal/store"
)

type ContactsHandler struct {
	store *store.Store
}

func NewContactsHandler(store *store.Store) *ContactsHandler {
	return &ContactsHandler{store: store}
}

// Submit records a contact form submission from the public site.
func (h *ContactsHandler) Submit(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Name and email are required"})
		return
	}

	contactID, err := h.store.CreateContact(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save contact",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.CreatedResponse{
		Message: "Contact form submitted successfully",
		ID:      contactID,
	})
}

// List returns every submission, newest first.
func (h *ContactsHandler) List(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	contacts, err := h.store.ListContacts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list contacts",
			Message: err.Error(),
		})
		return
	}

	views := make([]models.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		views = append(views, models.ContactResponse{
			ID:        contact.ID,
			Name:      contact.Name,
			Email:     contact.Email,
			Phone:     nullString(contact.Phone),
			Company:   nullString(contact.Company),
			Message:   nullString(contact.Message),
			Status:    contact.Status,
			CreatedAt: contact.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, views)
}
