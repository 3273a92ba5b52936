package face

// Profile is the face descriptor registered for a user.
type Profile struct {
	UserID     string
	Descriptor []float64
	Registered bool
}

// IsRegistered reports whether the profile can be matched against.
func (p Profile) IsRegistered() bool {
	return p.Registered && len(p.Descriptor) > 0
}
