package models

import (
	"database/sql"
	"time"
)

type HeroImage struct {
	ID           int64
	Filename     string
	OriginalName sql.NullString
	AltText      sql.NullString
	DisplayOrder int
	CreatedAt    time.Time
}

type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
