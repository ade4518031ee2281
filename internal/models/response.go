package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}

type ProjectResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Location    string          `json:"location"`
	Size        string          `json:"size"`
	Year        string          `json:"year"`
	Featured    bool            `json:"featured"`
	Status      string          `json:"status"`
	MainImage   *string         `json:"main_image"`
	Image       *string         `json:"image,omitempty"`
	Images      []ImageResponse `json:"images,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateProjectResponse struct {
	Message   string `json:"message"`
	ProjectID int64  `json:"project_id"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type ImageResponse struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Path      string    `json:"path"`
	Name      string    `json:"name"`
	IsMain    bool      `json:"is_main"`
	CreatedAt time.Time `json:"created_at"`
}

type ImageListResponse struct {
	Images []ImageResponse `json:"images"`
}

type UploadedFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Path         string `json:"path"`
	IsMain       bool   `json:"is_main"`
}

type UploadResponse struct {
	Message string         `json:"message"`
	Files   []UploadedFile `json:"files"`
}

type EmployeeResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	ExperienceYears *int64    `json:"experience_years"`
	Specialty       string    `json:"specialty"`
	Bio             string    `json:"bio"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	AvatarURL       string    `json:"avatar_url"`
	DisplayOrder    int       `json:"display_order"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// PublicEmployeeResponse is the shape the public team page consumes.
type PublicEmployeeResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Experience string `json:"experience"`
	Specialty  string `json:"specialty"`
	Avatar     string `json:"avatar"`
	Verified   bool   `json:"verified"`
}

type ContactCardResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Details      string    `json:"details"`
	SubDetails   string    `json:"sub_details"`
	ContactType  string    `json:"contact_type"`
	IconEmoji    string    `json:"icon_emoji"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type PublicContactCardResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Details    string `json:"details"`
	SubDetails string `json:"subDetails"`
	Emoji      string `json:"emoji"`
	Gradient   string `json:"gradient"`
	Verified   bool   `json:"verified"`
}

type ContactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type HeroImageResponse struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	Alt      string `json:"alt"`
	Filename string `json:"filename,omitempty"`
}

type HomeStats struct {
	YearsExperience    int `json:"yearsExperience"`
	ProjectsCompleted  int `json:"projectsCompleted"`
	TeamMembers        int `json:"teamMembers"`
	ClientSatisfaction int `json:"clientSatisfaction"`
}

type HomeContentResponse struct {
	HeroImages         []HeroImageResponse `json:"heroImages"`
	CompanyDescription string              `json:"companyDescription"`
	Stats              HomeStats           `json:"stats"`
}

type HeroUploadResponse struct {
	Message string              `json:"message"`
	Images  []HeroImageResponse `json:"images"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
