package guides

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"medguides/internal/models"
	"medguides/internal/storage"
)

// SignedURLTTL is the validity window of every document link issued on a
// detail view.
const SignedURLTTL = 3600 * time.Second

// Service owns the guide workflows: role-filtered listing, detail fetch with
// best-effort access logging and link issuance, and the upload pipeline.
type Service struct {
	db    *gorm.DB
	store storage.ObjectStore
	lg    *zap.SugaredLogger
}

func NewService(db *gorm.DB, store storage.ObjectStore, lg *zap.SugaredLogger) *Service {
	return &Service{db: db, store: store, lg: lg}
}

// GuideView is one listing row: the guide joined with its category name and
// creator display name.
type GuideView struct {
	models.MedicalGuide
	CategoryName *string `json:"category_name,omitempty"`
	CreatorName  *string `json:"creator_name,omitempty"`
}

// GuideDetail is the detail-page view. SignedURL is empty when link issuance
// failed; the caller simply omits the view/download affordances.
type GuideDetail struct {
	GuideView
	CreatorSpecialty *string `json:"creator_specialty,omitempty"`
	SignedURL        string  `json:"signed_url,omitempty"`
}

// ResolveRole looks up the caller's role. A missing profile and a lookup
// error both degrade to viewer, the lowest privilege.
func (s *Service) ResolveRole(ctx context.Context, userID string) models.Role {
	var p models.Profile
	if err := s.db.WithContext(ctx).First(&p, "id = ?", userID).Error; err != nil {
		return models.RoleViewer
	}
	return p.Role
}

// ListGuides returns guides visible to the role, newest first. The publish
// predicate is part of the query, not a post-filter.
func (s *Service) ListGuides(ctx context.Context, role models.Role) ([]GuideView, error) {
	var rows []GuideView
	err := s.db.WithContext(ctx).
		Table("medical_guides").
		Select("medical_guides.*, categories.name AS category_name, profiles.full_name AS creator_name").
		Joins("LEFT JOIN categories ON categories.id = medical_guides.category_id").
		Joins("LEFT JOIN profiles ON profiles.id = medical_guides.created_by").
		Scopes(visibilityScope(role)).
		Order("medical_guides.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetGuide fetches one guide by id for any authenticated identity. No
// publish or role predicate applies here; the listing filter is deliberately
// not repeated on single-record fetch. On a hit it appends one access-log row
// and issues a fresh signed URL, both best-effort: neither failure affects
// the returned guide.
func (s *Service) GetGuide(ctx context.Context, viewerID, id string) (*GuideDetail, error) {
	var row GuideDetail
	err := s.db.WithContext(ctx).
		Table("medical_guides").
		Select("medical_guides.*, categories.name AS category_name, profiles.full_name AS creator_name, profiles.specialty AS creator_specialty").
		Joins("LEFT JOIN categories ON categories.id = medical_guides.category_id").
		Joins("LEFT JOIN profiles ON profiles.id = medical_guides.created_by").
		Where("medical_guides.id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	entry := models.AccessLog{UserID: viewerID, GuideID: row.ID, CreatedAt: time.Now()}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		s.lg.Warnw("access log write failed", "guide_id", row.ID, "user_id", viewerID, "error", err)
	}

	url, err := s.store.Presign(ctx, row.FileURL, SignedURLTTL)
	if err != nil {
		s.lg.Warnw("signed url issuance failed", "guide_id", row.ID, "error", err)
	} else {
		row.SignedURL = url
	}
	return &row, nil
}

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.WithContext(ctx).Order("name asc").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// DashboardCounts returns the published-guide and category totals shown on
// the dashboard.
func (s *Service) DashboardCounts(ctx context.Context) (guides int64, categories int64, err error) {
	if err = s.db.WithContext(ctx).Model(&models.MedicalGuide{}).Where("is_published = ?", true).Count(&guides).Error; err != nil {
		return 0, 0, err
	}
	if err = s.db.WithContext(ctx).Model(&models.Category{}).Count(&categories).Error; err != nil {
		return 0, 0, err
	}
	return guides, categories, nil
}
