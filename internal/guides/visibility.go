package guides

import (
	"gorm.io/gorm"

	"medguides/internal/models"
)

// Visible reports whether one guide is eligible for listing under a role:
// published guides for everyone, drafts only for admin and editor.
func Visible(role models.Role, guide models.MedicalGuide) bool {
	return guide.IsPublished || role.CanSeeUnpublished()
}

// visibilityScope pushes the same predicate into the listing query, so a
// viewer never receives unpublished rows over the wire at all.
func visibilityScope(role models.Role) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if role.CanSeeUnpublished() {
			return db
		}
		return db.Where("medical_guides.is_published = ?", true)
	}
}
