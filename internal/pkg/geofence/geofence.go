package geofence

import (
	"fmt"
	"math"
)

const (
	// EarthRadiusMeters is the mean Earth radius used by Distance.
	EarthRadiusMeters = 6371000

	// DefaultRadiusMeters applies when an outlet has no radius configured.
	DefaultRadiusMeters = 100.0
)

const (
	MessageGPSMandatory  = "GPS mandatory for this outlet"
	MessageNotConfigured = "outlet not configured with GPS"
	MessageNotValidated  = "location not validated"
)

type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Fix is a GPS sample reported by the device. Either coordinate may be missing.
type Fix struct {
	Latitude  *float64
	Longitude *float64
}

// Point returns the fix as a Point, or nil when a coordinate is missing.
func (f Fix) Point() *Point {
	if f.Latitude == nil || f.Longitude == nil {
		return nil
	}
	return &Point{Latitude: *f.Latitude, Longitude: *f.Longitude}
}

// Policy is an outlet's geofence configuration.
type Policy struct {
	Center       *Point
	GPSRequired  bool
	RadiusMeters float64
}

func (p Policy) radius() float64 {
	if p.RadiusMeters <= 0 {
		return DefaultRadiusMeters
	}
	return p.RadiusMeters
}

type Result struct {
	Valid          bool     `json:"valid"`
	DistanceMeters *float64 `json:"distance"`
	Message        string   `json:"message"`
}

// Distance returns the great-circle distance in meters between a and b
// using the Haversine formula.
func Distance(a, b Point) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180.0)

	lat1 := a.Latitude * (math.Pi / 180.0)
	lat2 := b.Latitude * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// Validate checks a fix against the policy. Rules are evaluated in order:
// a required fix must be present, the outlet must have coordinates when GPS
// is required, an optional fix may be omitted, and a present fix must lie
// within the radius. The raw distance is compared against the radius; only
// the reported value is rounded to centimeters.
func Validate(p Policy, f Fix) Result {
	point := f.Point()

	if p.GPSRequired && point == nil {
		return Result{Valid: false, Message: MessageGPSMandatory}
	}

	if p.Center == nil {
		if p.GPSRequired {
			return Result{Valid: false, Message: MessageNotConfigured}
		}
		return Result{Valid: true, Message: MessageNotValidated}
	}

	if point == nil {
		return Result{Valid: true, Message: MessageNotValidated}
	}

	raw := Distance(*p.Center, *point)
	distance := round2(raw)
	radius := p.radius()
	if raw > radius {
		return Result{
			Valid:          false,
			DistanceMeters: &distance,
			Message:        fmt.Sprintf("you are %.2f m from the outlet, maximum allowed radius is %.0f m", distance, radius),
		}
	}

	return Result{
		Valid:          true,
		DistanceMeters: &distance,
		Message:        fmt.Sprintf("location valid, %.2f m from the outlet", distance),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
