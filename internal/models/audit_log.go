package models

// AuditLog records ledger and budget mutations per user.
type AuditLog struct {
	Base
	UserID       string `gorm:"type:varchar(36);not null;index" json:"userId"`
	Action       string `gorm:"size:64;not null" json:"action"`
	ResourceType string `gorm:"size:32;not null" json:"resourceType"`
	ResourceID   string `gorm:"type:varchar(36)" json:"resourceId"`
	IPAddress    string `gorm:"size:64" json:"ipAddress"`
	Changes      string `gorm:"type:text" json:"changes,omitempty"`
}
