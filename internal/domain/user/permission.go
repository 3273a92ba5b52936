package user

type Permission string

const (
	// Attendance Management
	PermissionAttendanceViewOwn  Permission = "attendance.view_own"
	PermissionAttendanceClock    Permission = "attendance.clock"
	PermissionAttendanceViewAll  Permission = "attendance.view_all"
	PermissionAttendanceCloseAny Permission = "attendance.close_any"

	// Reports
	PermissionReportsViewOwn Permission = "reports.view_own"
	PermissionReportsViewAll Permission = "reports.view_all"

	// Face Recognition
	PermissionFaceManageOwn Permission = "face.manage_own"
)

var staffPermissions = []Permission{
	PermissionAttendanceViewOwn,
	PermissionAttendanceClock,
	PermissionReportsViewOwn,
	PermissionFaceManageOwn,
}

var elevatedPermissions = append([]Permission{
	PermissionAttendanceViewAll,
	PermissionAttendanceCloseAny,
	PermissionReportsViewAll,
}, staffPermissions...)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: elevatedPermissions,
	RoleOwner:      elevatedPermissions,
	RoleAdmin:      elevatedPermissions,
	RoleCashier:    staffPermissions,
	RoleKitchen:    staffPermissions,
	RoleWaiter:     staffPermissions,
	RoleMember: {
		// Members have no attendance access
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
