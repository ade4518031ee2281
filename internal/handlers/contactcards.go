package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedmasry1001/steelsite/internal/models"
	"github.com/ahmedmasry1001/steelsite/internal/store"
)

type ContactCardsHandler struct {
	store *store.Store
}

func NewContactCardsHandler(store *store.Store) *ContactCardsHandler {
	return &ContactCardsHandler{store: store}
}

func (h *ContactCardsHandler) ListPublic(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	cards, err := h.store.ListContactCards(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list contact cards",
			Message: err.Error(),
		})
		return
	}

	views := make([]models.PublicContactCardResponse, 0, len(cards))
	for _, card := range cards {
		emoji := nullString(card.IconEmoji)
		if emoji == "" {
			emoji = "📞"
		}
		views = append(views, models.PublicContactCardResponse{
			ID:         card.ID,
			Title:      card.Title,
			Details:    nullString(card.Details),
			SubDetails: nullString(card.SubDetails),
			Emoji:      emoji,
			Gradient:   "from-blue-500 to-purple-600",
			Verified:   true,
		})
	}

	c.JSON(http.StatusOK, views)
}

func (h *ContactCardsHandler) ListAdmin(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	cards, err := h.store.ListContactCards(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list contact cards",
			Message: err.Error(),
		})
		return
	}

	views := make([]models.ContactCardResponse, 0, len(cards))
	for _, card := range cards {
		views = append(views, models.ContactCardResponse{
			ID:           card.ID,
			Title:        card.Title,
			Details:      nullString(card.Details),
			SubDetails:   nullString(card.SubDetails),
			ContactType:  nullString(card.ContactType),
			IconEmoji:    nullString(card.IconEmoji),
			DisplayOrder: card.DisplayOrder,
			IsActive:     card.IsActive,
			CreatedAt:    card.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, views)
}

func (h *ContactCardsHandler) Create(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.ContactCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Title == "" || req.Details == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Title and details are required"})
		return
	}

	cardID, err := h.store.CreateContactCard(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create contact card",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.CreatedResponse{
		Message: "Contact card created successfully",
		ID:      cardID,
	})
}

func (h *ContactCardsHandler) Update(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	cardID, ok := parseID(c, "card_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid card id"})
		return
	}

	var req models.ContactCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Title == "" || req.Details == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Title and details are required"})
		return
	}

	err := h.store.UpdateContactCard(cardID, req)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Contact card not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update contact card",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Contact card updated successfully"})
}

func (h *ContactCardsHandler) Delete(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	cardID, ok := parseID(c, "card_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid card id"})
		return
	}

	err := h.store.DeleteContactCard(cardID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Contact card not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete contact card",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Contact card deleted successfully"})
}
