package subscription

import "time"

// Feature is a plan flag that gates part of the product.
type Feature string

const (
	FeatureAttendance      Feature = "has_attendance_access"
	FeatureFaceRecognition Feature = "has_face_recognition_access"
)

// SubscriptionStatus represents the status of a subscription
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusExpired   SubscriptionStatus = "expired"
)

// Plan holds the feature flags of a subscription plan.
type Plan struct {
	ID                  string
	Name                string
	HasAttendanceAccess bool
}

// Subscription is a user's subscription to a plan.
type Subscription struct {
	ID       string
	UserID   string
	Plan     Plan
	Status   SubscriptionStatus
	EndsAt   time.Time
	StartsAt time.Time
}

// IsActiveAt reports whether the subscription grants access at t.
func (s Subscription) IsActiveAt(t time.Time) bool {
	return s.Status == StatusActive && t.Before(s.EndsAt)
}
