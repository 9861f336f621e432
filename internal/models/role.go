package models

// Role is the closed set of profile roles. It governs write capability and
// whether unpublished guides are visible in listings.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// CanSeeUnpublished reports whether draft guides appear in listings for this role.
func (r Role) CanSeeUnpublished() bool {
	return r == RoleAdmin || r == RoleEditor
}

// CanUpload reports whether this role may create guides.
func (r Role) CanUpload() bool {
	return r == RoleAdmin || r == RoleEditor
}

// ParseRole maps an arbitrary string onto the closed role set. Anything
// unknown degrades to viewer, the lowest privilege.
func ParseRole(s string) Role {
	r := Role(s)
	if !r.Valid() {
		return RoleViewer
	}
	return r
}
