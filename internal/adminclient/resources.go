package adminclient

import "time"

// Resource describes one REST collection: its endpoint name, how to read
// and assign record ids, and the required-field checks run before any
// create or update leaves the client.
type Resource[T any] struct {
	// Name is the path under /api/, e.g. "admin/employees".
	Name     string
	ID       func(T) int64
	SetID    func(*T, int64)
	Validate func(T) error
}

func (r Resource[T]) path() string {
	return "/api/" + r.Name
}

type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Size        string    `json:"size"`
	Year        string    `json:"year"`
	Featured    bool      `json:"featured"`
	Status      string    `json:"status"`
	MainImage   *string   `json:"main_image,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

type Employee struct {
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
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

type ContactCard struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Details      string    `json:"details"`
	SubDetails   string    `json:"sub_details"`
	ContactType  string    `json:"contact_type"`
	IconEmoji    string    `json:"icon_emoji"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Image is one gallery entry of a project. At most one image per project
// has IsMain set; the server owns that invariant.
type Image struct {
	ID     int64  `json:"id"`
	URL    string `json:"url"`
	Path   string `json:"path"`
	Name   string `json:"name"`
	IsMain bool   `json:"is_main"`
}

func Projects() Resource[Project] {
	return Resource[Project]{
		Name:  "admin/projects",
		ID:    func(p Project) int64 { return p.ID },
		SetID: func(p *Project, id int64) { p.ID = id },
		Validate: func(p Project) error {
			if p.Title == "" {
				return validationError("Title is required")
			}
			return nil
		},
	}
}

func Employees() Resource[Employee] {
	return Resource[Employee]{
		Name:  "admin/employees",
		ID:    func(e Employee) int64 { return e.ID },
		SetID: func(e *Employee, id int64) { e.ID = id },
		Validate: func(e Employee) error {
			if e.Name == "" {
				return validationError("Name is required")
			}
			return nil
		},
	}
}

func ContactCards() Resource[ContactCard] {
	return Resource[ContactCard]{
		Name:  "admin/contact-cards",
		ID:    func(c ContactCard) int64 { return c.ID },
		SetID: func(c *ContactCard, id int64) { c.ID = id },
		Validate: func(c ContactCard) error {
			if c.Title == "" || c.Details == "" {
				return validationError("Title and details are required")
			}
			return nil
		},
	}
}

// Contacts is read-only from the admin panel; submissions arrive through
// the public form.
func Contacts() Resource[Contact] {
	return Resource[Contact]{
		Name:  "admin/contacts",
		ID:    func(c Contact) int64 { return c.ID },
		SetID: func(c *Contact, id int64) { c.ID = id },
	}
}
