package guides

import (
	"context"
	"io"
	"time"

	"medguides/internal/models"
)

// Upload progress checkpoints, reported for UI feedback only. The workflow is
// neither resumable nor cancellable.
const (
	ProgressValidated = 25
	ProgressStored    = 50
	ProgressComplete  = 100
)

// UploadInput carries one upload form submission.
type UploadInput struct {
	UserID      string
	Title       string
	Description string
	CategoryID  string // optional; empty means no category
	TagsRaw     string // free-text comma-separated
	FileName    string
	FileType    string
	File        io.Reader
	Size        int64
	IsPublished bool
}

// UploadResult reports the created guide and the last checkpoint reached.
type UploadResult struct {
	GuideID  string `json:"guide_id,omitempty"`
	Progress int    `json:"progress"`
}

// Upload runs the two-phase upload: store the object, then create the record
// referencing it. The ordering guarantees a stored record never points at a
// missing object. If the record insert fails after the object is stored, the
// object is removed again best-effort so it does not linger orphaned.
func (s *Service) Upload(ctx context.Context, in UploadInput) (UploadResult, error) {
	res := UploadResult{}

	if in.UserID == "" {
		return res, &ValidationError{Msg: "sign in to upload a guide"}
	}
	if trim(in.Title) == "" {
		return res, &ValidationError{Msg: "title is required"}
	}
	if in.FileName == "" || in.File == nil {
		return res, &ValidationError{Msg: "a file is required"}
	}
	if !ExtensionAllowed(in.FileName) {
		return res, &ValidationError{Msg: "only .pdf, .doc and .docx files are accepted"}
	}
	res.Progress = ProgressValidated

	key := ObjectKey(in.UserID, in.FileName)
	if err := s.store.Put(ctx, key, in.File, in.Size, in.FileType); err != nil {
		return res, err
	}
	res.Progress = ProgressStored

	guide := models.MedicalGuide{
		Title:       trim(in.Title),
		Description: optional(in.Description),
		CategoryID:  optional(in.CategoryID),
		FileURL:     key,
		FileType:    optional(in.FileType),
		Tags:        NormalizeTags(in.TagsRaw),
		CreatedBy:   in.UserID,
		IsPublished: in.IsPublished,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&guide).Error; err != nil {
		if rmErr := s.store.Remove(ctx, key); rmErr != nil {
			s.lg.Warnw("orphaned object left in storage", "key", key, "error", rmErr)
		}
		return res, err
	}
	res.Progress = ProgressComplete
	res.GuideID = guide.ID
	return res, nil
}
