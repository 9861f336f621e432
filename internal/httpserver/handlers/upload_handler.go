package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"medguides/internal/auth"
	"medguides/internal/guides"
)

// maxUploadBytes bounds an upload request body. The original UI only
// advertised the 10 MB limit; here it is enforced.
const maxUploadBytes = 10 << 20

// UploadGuide accepts the multipart upload form and runs the two-phase
// upload workflow.
func UploadGuide(svc *guides.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "file too large or malformed form", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		in := guides.UploadInput{
			UserID:      auth.Subject(r.Context()),
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			CategoryID:  r.FormValue("category_id"),
			TagsRaw:     r.FormValue("tags"),
			IsPublished: r.FormValue("is_published") == "true",
		}
		if err == nil {
			defer file.Close()
			in.File = file
			in.FileName = header.Filename
			in.FileType = header.Header.Get("Content-Type")
			in.Size = header.Size
		}

		res, err := svc.Upload(r.Context(), in)
		if err != nil {
			status := http.StatusBadRequest
			if !guides.IsValidation(err) {
				status = http.StatusInternalServerError
				lg.Errorw("upload failed", "user_id", in.UserID, "progress", res.Progress, "error", err)
			}
			http.Error(w, err.Error(), status)
			return
		}
		respondJSON(w, res)
	}
}
