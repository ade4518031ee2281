package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedmasry1001/steelsite/internal/models"
	"github.com/ahmedmasry1001/steelsite/internal/store"
)

type EmployeesHandler struct {
	store *store.Store
}

func NewEmployeesHandler(store *store.Store) *EmployeesHandler {
	return &EmployeesHandler{store: store}
}

// ListPublic serves active employees in the shape the team page renders.
func (h *EmployeesHandler) ListPublic(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	employees, err := h.store.ListEmployees(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list employees",
			Message: err.Error(),
		})
		return
	}

	views := make([]models.PublicEmployeeResponse, 0, len(employees))
	for _, e := range employees {
		experience := "N/A"
		if e.ExperienceYears.Valid {
			experience = fmt.Sprintf("%d years", e.ExperienceYears.Int64)
		}
		avatar := nullString(e.AvatarURL)
		if avatar == "" {
			avatar = "👷"
		}
		views = append(views, models.PublicEmployeeResponse{
			ID:         e.ID,
			Name:       e.Name,
			Role:       nullString(e.Role),
			Experience: experience,
			Specialty:  nullString(e.Specialty),
			Avatar:     avatar,
			Verified:   true,
		})
	}

	c.JSON(http.StatusOK, views)
}

func (h *EmployeesHandler) ListAdmin(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	employees, err := h.store.ListEmployees(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list employees",
			Message: err.Error(),
		})
		return
	}

	views := make([]models.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		views = append(views, employeeResponse(e))
	}

	c.JSON(http.StatusOK, views)
}

func (h *EmployeesHandler) Create(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name is required"})
		return
	}

	employeeID, err := h.store.CreateEmployee(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create employee",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.CreatedResponse{
		Message: "Employee created successfully",
		ID:      employeeID,
	})
}

func (h *EmployeesHandler) Update(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	employeeID, ok := parseID(c, "employee_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid employee id"})
		return
	}

	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name is required"})
		return
	}

	err := h.store.UpdateEmployee(employeeID, req)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Employee not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update employee",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Employee updated successfully"})
}

func (h *EmployeesHandler) Delete(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	employeeID, ok := parseID(c, "employee_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid employee id"})
		return
	}

	err := h.store.DeleteEmployee(employeeID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Employee not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete employee",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Employee deleted successfully"})
}

func employeeResponse(e models.Employee) models.EmployeeResponse {
	resp := models.EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Role:         nullString(e.Role),
		Specialty:    nullString(e.Specialty),
		Bio:          nullString(e.Bio),
		Email:        nullString(e.Email),
		Phone:        nullString(e.Phone),
		AvatarURL:    nullString(e.AvatarURL),
		DisplayOrder: e.DisplayOrder,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
	}
	if e.ExperienceYears.Valid {
		years := e.ExperienceYears.Int64
		resp.ExperienceYears = &years
	}
	return resp
}
