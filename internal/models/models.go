package models

import (
	"time"
)

// Project represents a customer project that owns a set of templates
type Project struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	WabaID        string    `gorm:"type:varchar(255)" json:"waba_id"`
	PhoneNumberID string    `gorm:"type:varchar(255)" json:"phone_number_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

// Template represents a WhatsApp message template owned by a project
type Template struct {
	ID           uint                  `gorm:"primaryKey" json:"id"`
	ProjectID    uint                  `gorm:"index;not null" json:"project_id"`
	Name         string                `gorm:"type:varchar(255);not null;index" json:"name"`
	Category     string                `gorm:"type:varchar(100)" json:"category"`
	Translations []TemplateTranslation `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE;" json:"translations"`
	CreatedAt    time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Template) TableName() string {
	return "templates"
}

// TemplateTranslation is one language variant of a template. Body keeps the
// labeled placeholders authors write; NumericBody is the converted form the
// delivery API accepts; VariableMap is the label->position mapping as JSON.
type TemplateTranslation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TemplateID  uint      `gorm:"index;not null" json:"template_id"`
	Language    string    `gorm:"type:varchar(50);not null" json:"language"`
	Body        string    `gorm:"type:text" json:"body"`
	NumericBody string    `gorm:"type:text" json:"numeric_body"`
	VariableMap string    `gorm:"type:text" json:"variable_map"` // JSON label->position
	Buttons     string    `gorm:"type:text" json:"buttons"`      // JSON button definitions
	Status      string    `gorm:"type:varchar(50)" json:"status"`
	GalleryID   string    `gorm:"type:varchar(255)" json:"gallery_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TemplateTranslation) TableName() string {
	return "template_translations"
}

// SyncLog records the outcome of one rollout-status check for a project
type SyncLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"index;not null" json:"project_id"`
	Status    string    `gorm:"type:varchar(20);not null" json:"status"` // synchronized, pending, rejected
	Detail    string    `gorm:"type:text" json:"detail"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SyncLog) TableName() string {
	return "sync_logs"
}

// SystemSetting stores configuration overrides in the database
type SystemSetting struct {
	Key       string    `gorm:"primaryKey;type:varchar(255)" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}
