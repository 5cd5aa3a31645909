package models

import (
	"database/sql"
	"time"
)

// Organization is a row of the organizations table.
type Organization struct {
	ID                string         `db:"id"`
	OrganizationCode  string         `db:"organization_code"` // unique
	Name              string         `db:"name"`
	Description       sql.NullString `db:"description"`
	ContactInfo       ContactInfo    `db:"contact_info"` // JSONB
	Region            sql.NullString `db:"region"`
	EstablishmentDate NullDate       `db:"establishment_date"`
	LogoURL           sql.NullString `db:"logo_url"`
	Status            string         `db:"status"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}
