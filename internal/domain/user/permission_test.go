package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsElevated(t *testing.T) {
	for _, r := range []Role{RoleSuperAdmin, RoleOwner, RoleAdmin} {
		assert.True(t, r.IsElevated(), r)
	}
	for _, r := range []Role{RoleCashier, RoleKitchen, RoleWaiter, RoleMember, Role("unknown")} {
		assert.False(t, r.IsElevated(), r)
	}
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleOwner, PermissionAttendanceViewAll))
	assert.True(t, HasPermission(RoleAdmin, PermissionAttendanceCloseAny))
	assert.True(t, HasPermission(RoleCashier, PermissionAttendanceClock))
	assert.False(t, HasPermission(RoleCashier, PermissionAttendanceViewAll))
	assert.False(t, HasPermission(RoleMember, PermissionAttendanceClock))
	assert.False(t, HasPermission(Role("ghost"), PermissionAttendanceViewOwn))
}
