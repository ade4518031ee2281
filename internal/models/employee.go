package models

import (
	"database/sql"
	"time"
)

type Employee struct {
	ID              int64
	Name            string
	Role            sql.NullString
	ExperienceYears sql.NullInt64
	Specialty       sql.NullString
	Bio             sql.NullString
	Email           sql.NullString
	Phone           sql.NullString
	AvatarURL       sql.NullString
	DisplayOrder    int
	IsActive        bool
	CreatedAt       time.Time
}
