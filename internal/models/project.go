package models

import (
	"database/sql"
	"time"
)

type Project struct {
	ID          int64
	Title       string
	Description sql.NullString
	Category    sql.NullString
	Location    sql.NullString
	Size        sql.NullString
	Year        sql.NullString
	Featured    bool
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProjectImage struct {
	ID        int64
	ProjectID int64
	ImagePath string
	ImageName sql.NullString
	IsMain    bool
	CreatedAt time.Time
}
