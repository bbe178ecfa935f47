package constants

import "fmt"

const (
	RoleStudent    = "student"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

// Template pesan error role
const (
	ErrOnlySupervisorsCanAccess = "❌ Hanya supervisor atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess      = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStudentsCanAccess    = "❌ Hanya mahasiswa peserta yang boleh mengakses fitur %s."
)

func RoleErrorSupervisor(feature string) string {
	return fmt.Sprintf(ErrOnlySupervisorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleSupervisor,
		RoleAdmin,
	}

	SupervisorAndAbove = []string{
		RoleSupervisor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)
