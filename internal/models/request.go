package models

import "encoding/json"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Size        string `json:"size"`
	Year        string `json:"year"`
	Featured    bool   `json:"featured"`
}

type EmployeeRequest struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	ExperienceYears *int   `json:"experience_years"`
	Specialty       string `json:"specialty"`
	Bio             string `json:"bio"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	AvatarURL       string `json:"avatar_url"`
	DisplayOrder    int    `json:"display_order"`
	// IsActive defaults to true when omitted.
	IsActive *bool `json:"is_active"`
}

type ContactCardRequest struct {
	Title        string `json:"title"`
	Details      string `json:"details"`
	SubDetails   string `json:"sub_details"`
	ContactType  string `json:"contact_type"`
	IconEmoji    string `json:"icon_emoji"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
}

type DescriptionRequest struct {
	Description string `json:"description"`
}

// StatsRequest fields accept either JSON numbers or strings; values are
// stored as text in the content table.
type StatsRequest struct {
	YearsExperience    json.Number `json:"yearsExperience"`
	ProjectsCompleted  json.Number `json:"projectsCompleted"`
	TeamMembers        json.Number `json:"teamMembers"`
	ClientSatisfaction json.Number `json:"clientSatisfaction"`
}
