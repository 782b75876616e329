// Package models contains database model definitions.
package models

// Setting represents one editable site content field stored in the database.
// Structured values (such as the team roster) are stored as text and remain
// opaque at this layer.
type Setting struct {
	Key   string `gorm:"primaryKey;size:100"`
	Value string `gorm:"type:text"`
}

// TableName specifies the database table name for the Setting model.
// This overrides GORM's default pluralized table naming.
func (Setting) TableName() string {
	return "settings"
}
