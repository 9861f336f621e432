package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoleUnknownDegradesToViewer(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleEditor, ParseRole("editor"))
	assert.Equal(t, RoleViewer, ParseRole("viewer"))
	assert.Equal(t, RoleViewer, ParseRole(""))
	assert.Equal(t, RoleViewer, ParseRole("superuser"))
	assert.Equal(t, RoleViewer, ParseRole("Admin"))
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleAdmin.CanSeeUnpublished())
	assert.True(t, RoleEditor.CanSeeUnpublished())
	assert.False(t, RoleViewer.CanSeeUnpublished())

	assert.True(t, RoleAdmin.CanUpload())
	assert.True(t, RoleEditor.CanUpload())
	assert.False(t, RoleViewer.CanUpload())
}
