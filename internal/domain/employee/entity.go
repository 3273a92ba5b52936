package employee

// Employee is a staff member of a business, keyed by the user account.
type Employee struct {
	UserID     string
	BusinessID string
	Name       string
	Email      string
	IsActive   bool
}
