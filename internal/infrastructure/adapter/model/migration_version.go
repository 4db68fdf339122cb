package model

import "time"

// MigrationVersion is one row of the schema history; the newest AppliedAt is the live schema
type MigrationVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;index"`
	AppliedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index"`
	Details   string    `gorm:"type:text"`
}

func (MigrationVersion) TableName() string {
	return "schema_versions"
}
