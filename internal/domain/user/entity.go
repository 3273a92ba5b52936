package user

type Role string

const (
	RoleSuperAdmin Role = "super_admin" // Platform operator
	RoleOwner      Role = "owner"       // Business owner - full access
	RoleAdmin      Role = "admin"       // Business admin
	RoleCashier    Role = "kasir"       // Cashier
	RoleKitchen    Role = "kitchen"     // Kitchen staff
	RoleWaiter     Role = "waiter"      // Waiter
	RoleMember     Role = "member"      // Customer account, no staff access
)

// IsElevated reports whether the role may act on other employees' shifts.
func (r Role) IsElevated() bool {
	return r == RoleSuperAdmin || r == RoleOwner || r == RoleAdmin
}

// IsStaff reports whether the role belongs to a business employee whose
// subscription is inherited from the business owner.
func (r Role) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleCashier, RoleKitchen, RoleWaiter:
		return true
	default:
		return false
	}
}
