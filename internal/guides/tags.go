package guides

import (
	"strings"

	"medguides/internal/models"
)

// NormalizeTags parses the free-text comma-separated tag field. Tags are
// trimmed and empty entries dropped; blank input yields nil so the record
// stores no tag set rather than an empty one.
func NormalizeTags(raw string) models.StringList {
	var tags models.StringList
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
