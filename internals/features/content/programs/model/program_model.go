package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ProgramTags is a text[] on postgres and the same array literal in a text column elsewhere.
type ProgramTags []string

func (ProgramTags) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func (t ProgramTags) Value() (driver.Value, error) {
	return pq.StringArray(t).Value()
}

func (t *ProgramTags) Scan(src any) error {
	return (*pq.StringArray)(t).Scan(src)
}

type ProgramModel struct {
	ProgramID          uuid.UUID   `gorm:"column:program_id;type:uuid;primaryKey" json:"program_id"`
	ProgramSlug        string      `gorm:"column:program_slug;size:120;not null;uniqueIndex" json:"program_slug"`
	ProgramTitle       string      `gorm:"column:program_title;size:160;not null" json:"program_title"`
	ProgramDescription string      `gorm:"column:program_description;type:text" json:"program_description"`
	ProgramImage       string      `gorm:"column:program_image;size:255" json:"program_image"`
	ProgramColor       string      `gorm:"column:program_color;size:32" json:"program_color"`
	ProgramTags        ProgramTags `gorm:"column:program_tags" json:"program_tags"`
	ProgramSortOrder   int         `gorm:"column:program_sort_order;not null;default:0" json:"program_sort_order"`
	ProgramCreatedAt   time.Time   `gorm:"column:program_created_at;autoCreateTime" json:"program_created_at"`
}

func (ProgramModel) TableName() string { return "programs" }

func (p *ProgramModel) BeforeCreate(*gorm.DB) error {
	if p.ProgramID == uuid.Nil {
		p.ProgramID = uuid.New()
	}
	return nil
}
