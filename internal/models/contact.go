package models

import (
	"database/sql"
	"time"
)

type Contact struct {
	ID        int64
	Name      string
	Email     string
	Phone     sql.NullString
	Company   sql.NullString
	Message   sql.NullString
	Status    string
	CreatedAt time.Time
}

type ContactCard struct {
	ID           int64
	Title        string
	Details      sql.NullString
	SubDetails   sql.NullString
	ContactType  sql.NullString
	IconEmoji    sql.NullString
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
}
