package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ahmedmasry1001/steelsite/internal/models"
	"github.com/ahmedmasry1001/steelsite/internal/storage"
	"github.com/ahmedmasry1001/steelsite/internal/store"
)

type ContentHandler struct {
	store   *store.Store
	files   *storage.Storage
	baseURL string
}

func NewContentHandler(store *store.Store, files *storage.Storage, baseURL string) *ContentHandler {
	return &ContentHandler{
		store:   store,
		files:   files,
		baseURL: baseURL,
	}
}

// HomeContent serves the landing page payload: hero images, company
// description and the headline stats. The public and admin routes share it.
func (h *ContentHandler) HomeContent(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	content, err := h.store.ContentValues("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load home content",
			Message: err.Error(),
		})
		return
	}

	heroes, err := h.heroImageViews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load hero images",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.HomeContentResponse{
		HeroImages:         heroes,
		CompanyDescription: contentOr(content, "company_description", "S-Steel Construction is a leading provider of steel construction services."),
		Stats: models.HomeStats{
			YearsExperience:    contentInt(content, "years_experience", 15),
			ProjectsCompleted:  contentInt(content, "projects_completed", 500),
			TeamMembers:        contentInt(content, "team_members", 50),
			ClientSatisfaction: contentInt(content, "client_satisfaction", 99),
		},
	})
}

func (h *ContentHandler) heroImageViews() ([]models.HeroImageResponse, error) {
	images, err := h.store.ListHeroImages()
	if err != nil {
		return nil, err
	}

	views := make([]models.HeroImageResponse, 0, len(images))
	for _, img := range images {
		alt := nullString(img.AltText)
		if alt == "" {
			alt = fmt.Sprintf("Hero Image %d", img.ID)
		}
		views = append(views, models.HeroImageResponse{
			ID:  img.ID,
			URL: storage.PublicURL(h.baseURL, storage.GalleryDir+"/"+img.Filename),
			Alt: alt,
		})
	}

	// Placeholders keep the hero carousel populated before any upload.
	if len(views) == 0 {
		for i := 1; i <= 3; i++ {
			views = append(views, models.HeroImageResponse{
				ID:  int64(i),
				URL: "/api/placeholder/800/600",
				Alt: fmt.Sprintf("Steel Construction Project %d", i),
			})
		}
	}

	return views, nil
}

func (h *ContentHandler) UpdateDescription(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.store.UpsertContent("company_description", req.Description); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update description",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Company description updated successfully"})
}

// UpdateStats stores whichever headline stats the request carries;
// omitted fields keep their current values.
func (h *ContentHandler) UpdateStats(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.StatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	updates := map[string]json.Number{
		"years_experience":    req.YearsExperience,
		"projects_completed":  req.ProjectsCompleted,
		"team_members":        req.TeamMembers,
		"client_satisfaction": req.ClientSatisfaction,
	}

	for key, value := range updates {
		if value == "" {
			continue
		}
		if err := h.store.UpsertContent(key, value.String()); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to update statistics",
				Message: err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Statistics updated successfully"})
}

// UploadHeroImages accepts one or more hero images under the "images"
// or "image" multipart fields.
func (h *ContentHandler) UploadHeroImages(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
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
	var files []*multipart.FileHeader
	if form != nil {
		for _, fieldName := range []string{"images", "image"} {
			if f := form.File[fieldName]; len(f) > 0 {
				files = f
				break
			}
		}
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No image files provided"})
		return
	}

	uploaded := make([]models.HeroImageResponse, 0, len(files))
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

		relPath, err := h.files.Save(storage.GalleryDir, file.Filename, data)
		if err != nil {
			continue
		}
		filename := path.Base(relPath)

		alt := fmt.Sprintf("Hero Image %d", len(uploaded)+1)
		imageID, err := h.store.CreateHeroImage(filename, file.Filename, alt, len(uploaded))
		if err != nil {
			h.files.Remove(relPath)
			continue
		}

		uploaded = append(uploaded, models.HeroImageResponse{
			ID:       imageID,
			URL:      storage.PublicURL(h.baseURL, relPath),
			Alt:      alt,
			Filename: filename,
		})
	}

	if len(uploaded) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No valid image files were uploaded"})
		return
	}

	c.JSON(http.StatusOK, models.HeroUploadResponse{
		Message: fmt.Sprintf("%d image(s) uploaded successfully", len(uploaded)),
		Images:  uploaded,
	})
}

func (h *ContentHandler) DeleteHeroImage(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	imageID, ok := parseID(c, "image_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid image id"})
		return
	}

	filename, err := h.store.DeleteHeroImage(imageID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Image not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete hero image",
			Message: err.Error(),
		})
		return
	}

	if h.files != nil {
		h.files.Remove(storage.GalleryDir + "/" + filename)
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Image deleted successfully"})
}

// CompanyInfo serves the public footer and contact details.
func (h *ContentHandler) CompanyInfo(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	settings, err := h.companySettingValues()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load company info",
			Message: err.Error(),
		})
		return
	}

	mergeDefaults(settings, companyInfoDefaults())

	c.JSON(http.StatusOK, settings)
}

func (h *ContentHandler) GetCompanySettings(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	settings, err := h.companySettingValues()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load company settings",
			Message: err.Error(),
		})
		return
	}

	mergeDefaults(settings, companySettingDefaults())

	c.JSON(http.StatusOK, settings)
}

// companySettingValues returns the stored company_* values with the
// prefix stripped, plus footer_* values under their full keys.
func (h *ContentHandler) companySettingValues() (map[string]interface{}, error) {
	settings := make(map[string]interface{})

	companyValues, err := h.store.ContentValues("company_")
	if err != nil {
		return nil, err
	}
	for key, value := range companyValues {
		settings[strings.TrimPrefix(key, "company_")] = decodeSettingValue(value)
	}

	footerValues, err := h.store.ContentValues("footer_")
	if err != nil {
		return nil, err
	}
	for key, value := range footerValues {
		if strings.Contains(key, "certification") {
			settings[key] = strings.EqualFold(value, "true")
		} else {
			settings[key] = decodeSettingValue(value)
		}
	}

	return settings, nil
}

// UpdateCompanySettings upserts each submitted key. Keys already carrying
// a footer_ or dashboard_ prefix are stored as-is, everything else is
// stored under company_.
func (h *ContentHandler) UpdateCompanySettings(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	data, ok := bindSettings(c)
	if !ok {
		return
	}

	for key, value := range data {
		contentKey := key
		if !strings.HasPrefix(key, "footer_") && !strings.HasPrefix(key, "dashboard_") {
			contentKey = "company_" + key
		}

		if err := h.store.UpsertContent(contentKey, encodeSettingValue(value)); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to update company settings",
				Message: err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Company settings updated successfully"})
}

func (h *ContentHandler) GetDashboardSettings(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	values, err := h.store.ContentValues("dashboard_")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load dashboard settings",
			Message: err.Error(),
		})
		return
	}

	settings := make(map[string]interface{})
	for key, value := range values {
		settings[strings.TrimPrefix(key, "dashboard_")] = decodeSettingValue(value)
	}

	if _, ok := settings["stats_cards"]; !ok {
		settings["stats_cards"] = defaultStatsCards()
	}
	if _, ok := settings["quick_actions"]; !ok {
		settings["quick_actions"] = defaultQuickActions()
	}

	c.JSON(http.StatusOK, settings)
}

func (h *ContentHandler) UpdateDashboardSettings(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	data, ok := bindSettings(c)
	if !ok {
		return
	}

	for key, value := range data {
		encoded, err := json.Marshal(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid setting value"})
			return
		}

		if err := h.store.UpsertContent("dashboard_"+key, string(encoded)); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to update dashboard settings",
				Message: err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Dashboard settings updated successfully"})
}

// bindSettings decodes a flat JSON object, keeping numbers verbatim so
// they round-trip through the content table without float formatting.
func bindSettings(c *gin.Context) (map[string]interface{}, bool) {
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()

	var data map[string]interface{}
	if err := dec.Decode(&data); err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No data provided"})
		return nil, false
	}
	return data, true
}

// decodeSettingValue parses stored JSON where possible and falls back to
// the raw string for plain values.
func decodeSettingValue(value string) interface{} {
	var decoded interface{}
	if err := json.Unmarshal([]byte(value), &decoded); err == nil {
		return decoded
	}
	return value
}

func encodeSettingValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case json.Number:
		return v.String()
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}

func mergeDefaults(settings, defaults map[string]interface{}) {
	for key, value := range defaults {
		if _, ok := settings[key]; !ok {
			settings[key] = value
		}
	}
}

func contentOr(content map[string]string, key, fallback string) string {
	if v, ok := content[key]; ok && v != "" {
		return v
	}
	return fallback
}

func contentInt(content map[string]string, key string, fallback int) int {
	if v, ok := content[key]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func footerDefaults() map[string]interface{} {
	return map[string]interface{}{
		"footer_address":            "123 Steel Industry Blvd, Industrial City",
		"footer_phone":              "+1 (555) 123-4567",
		"footer_fax":                "+1 (555) 123-4568",
		"footer_email":              "info@s-steel.com",
		"footer_website":            "www.s-steel.com",
		"footer_facebook":           "",
		"footer_twitter":            "",
		"footer_instagram":          "",
		"footer_linkedin":           "",
		"footer_certification_iso":  true,
		"footer_certification_osha": true,
		"footer_certification_aws":  true,
	}
}

func companyInfoDefaults() map[string]interface{} {
	defaults := footerDefaults()
	defaults["address"] = "123 Steel Avenue, Industrial District, City, State 12345"
	defaults["phone"] = "+1 (555) 123-4567"
	defaults["email"] = "info@s-steel.com"
	defaults["website"] = "www.s-steel.com"
	return defaults
}

func companySettingDefaults() map[string]interface{} {
	defaults := footerDefaults()
	defaults["name"] = "S-Steel Construction"
	defaults["description"] = "Leading steel construction and engineering company specializing in industrial, commercial, and infrastructure projects."
	defaults["address"] = "123 Industrial Ave, Steel City, SC 12345"
	defaults["phone"] = "+1 (555) 123-4567"
	defaults["email"] = "info@s-steel.com"
	defaults["website"] = "www.s-steel.com"
	defaults["founded"] = "1995"
	defaults["employees"] = "250+"
	defaults["projects_completed"] = "500+"
	defaults["support_email"] = "support@s-steel.com"
	defaults["support_phone"] = "+1 (555) 123-4568"
	defaults["sales_email"] = "sales@s-steel.com"
	defaults["sales_phone"] = "+1 (555) 123-4569"
	defaults["emergency_contact"] = "+1 (555) 911-STEEL"
	defaults["business_hours"] = "Mon-Fri: 8:00 AM - 6:00 PM"
	defaults["office_locations"] = []map[string]interface{}{
		{
			"id":      1,
			"name":    "Main Office",
			"address": "123 Industrial Ave, Steel City, SC 12345",
			"phone":   "+1 (555) 123-4567",
		},
		{
			"id":      2,
			"name":    "Regional Office",
			"address": "456 Construction Blvd, Metro City, MC 67890",
			"phone":   "+1 (555) 987-6543",
		},
	}
	return defaults
}

func defaultStatsCards() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": 1, "title": "Total Projects", "value": "12", "change": "+12% this month", "icon": "BuildingOfficeIcon", "visible": true, "order": 1},
		{"id": 2, "title": "New Contacts", "value": "5", "change": "+8% this week", "icon": "ChatBubbleLeftRightIcon", "visible": true, "order": 2},
		{"id": 3, "title": "Active Projects", "value": "8", "change": "+2 from last month", "icon": "ChartBarIcon", "visible": true, "order": 3},
		{"id": 4, "title": "Revenue", "value": "$2.5M", "change": "+15% this quarter", "icon": "BanknotesIcon", "visible": true, "order": 4},
	}
}

func defaultQuickActions() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": 1, "title": "Add New Project", "description": "Create a new construction project", "link": "/admin/projects/new", "icon": "PlusIcon", "visible": true},
		{"id": 2, "title": "View Contacts", "description": "Manage customer inquiries", "link": "/admin/contacts", "icon": "ChatBubbleLeftRightIcon", "visible": true},
	}
}
