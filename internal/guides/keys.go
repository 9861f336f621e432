package guides

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// allowedExtensions is the document-type allow-list for uploads.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

func ExtensionAllowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ObjectKey derives a collision-resistant storage key for an upload. Keys are
// namespaced by the uploader's id so concurrent uploads by different
// identities cannot collide, and keep the original file extension.
func ObjectKey(userID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%d-%s%s", userID, time.Now().UnixMilli(), uuid.NewString(), ext)
}
