package models

import "time"

type Profile struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FullName     *string   `json:"full_name,omitempty"`
	Role         Role      `gorm:"type:text;not null;default:viewer" json:"role"`
	Specialty    *string   `json:"specialty,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Category struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type MedicalGuide struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description *string    `json:"description,omitempty"`
	CategoryID  *string    `gorm:"type:uuid;index" json:"category_id,omitempty"`
	FileURL     string     `gorm:"not null" json:"file_url"` // opaque storage key, not a public URL
	FileType    *string    `json:"file_type,omitempty"`
	Tags        StringList `gorm:"type:jsonb" json:"tags,omitempty"`
	CreatedBy   string     `gorm:"type:uuid;not null;index" json:"created_by"`
	UpdatedBy   *string    `gorm:"type:uuid" json:"updated_by,omitempty"`
	IsPublished bool       `gorm:"not null;default:false" json:"is_published"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AccessLog rows are append-only: one per successful guide detail view,
// never updated or deleted by the application.
type AccessLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"user_id"`
	GuideID   string    `gorm:"type:uuid;index;not null" json:"guide_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	JTI       string     `gorm:"primaryKey;size:64" json:"jti"`
	UserID    string     `gorm:"type:uuid;index;not null" json:"user_id"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
