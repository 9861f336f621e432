package guides

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyNamespacedByUploader(t *testing.T) {
	key := ObjectKey("user-1", "venopuncion.pdf")
	assert.True(t, strings.HasPrefix(key, "user-1/"), "key %q not namespaced", key)
	assert.True(t, strings.HasSuffix(key, ".pdf"), "key %q lost its extension", key)
}

func TestObjectKeyCollisionResistant(t *testing.T) {
	a := ObjectKey("user-1", "doc.pdf")
	b := ObjectKey("user-1", "doc.pdf")
	assert.NotEqual(t, a, b)
}

func TestExtensionAllowed(t *testing.T) {
	assert.True(t, ExtensionAllowed("guide.pdf"))
	assert.True(t, ExtensionAllowed("guide.DOC"))
	assert.True(t, ExtensionAllowed("guide.docx"))
	assert.False(t, ExtensionAllowed("guide.exe"))
	assert.False(t, ExtensionAllowed("guide"))
	assert.False(t, ExtensionAllowed("guide.pdf.sh"))
}
