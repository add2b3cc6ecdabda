package constants

import "fmt"

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyUsersCanAccess  = "❌ Fitur %s hanya untuk user yang sudah login."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorUser(feature string) string {
	return fmt.Sprintf(ErrOnlyUsersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	RoleAdmin = "admin"
	RoleOwner = "owner"
	RoleUser  = "user"

	AdminAndAbove = []string{"admin", "owner"}
	AllRoles      = []string{"user", "admin", "owner"}
)
