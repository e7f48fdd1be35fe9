package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Account is the persisted per-identity record: tier flags, usage counters
// and editor preferences. Saved resume snapshots live in Mongo, keyed by the
// account id (see repositories/mongo).
type Account struct {
	ID      string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email   string `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	Name    string `gorm:"column:name;type:text" json:"name"`
	Picture string `gorm:"column:picture;type:text" json:"picture"`

	IsPro   bool `gorm:"column:is_pro" json:"is_pro"`
	IsGuest bool `gorm:"column:is_guest" json:"is_guest"`

	UploadsCount int `gorm:"column:uploads_count" json:"uploads_count"`

	// Latest ATS keyword insight (Pro feature).
	Keywords pq.StringArray `gorm:"column:keywords;type:text[]" json:"keywords"`

	// Editor preferences (template, region, page size, font scale) as raw JSON.
	Preferences datatypes.JSON `gorm:"column:preferences;type:jsonb" json:"preferences"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Account) TableName() string { return "accounts" }
