package outlet

import (
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/civil"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/geofence"
)

type Outlet struct {
	ID           string
	BusinessID   string
	Name         string
	Latitude     *float64
	Longitude    *float64
	GPSRequired  bool
	RadiusMeters float64

	// Configured shift end times, nullable
	ShiftPagiEnd  *civil.TimeOfDay
	ShiftSiangEnd *civil.TimeOfDay
	ShiftMalamEnd *civil.TimeOfDay
}

// GeofencePolicy returns the outlet's geofence configuration.
func (o Outlet) GeofencePolicy() geofence.Policy {
	var center *geofence.Point
	if o.Latitude != nil && o.Longitude != nil {
		center = &geofence.Point{Latitude: *o.Latitude, Longitude: *o.Longitude}
	}
	return geofence.Policy{
		Center:       center,
		GPSRequired:  o.GPSRequired,
		RadiusMeters: o.RadiusMeters,
	}
}

// DefaultShiftEnd is assumed when an outlet configures no shift end times.
var DefaultShiftEnd = civil.TimeOfDay{Hour: 17}

// ShiftEnds returns the configured shift end times, or DefaultShiftEnd when
// none are set.
func (o Outlet) ShiftEnds() []civil.TimeOfDay {
	var ends []civil.TimeOfDay
	for _, end := range []*civil.TimeOfDay{o.ShiftPagiEnd, o.ShiftSiangEnd, o.ShiftMalamEnd} {
		if end != nil {
			ends = append(ends, *end)
		}
	}
	if len(ends) == 0 {
		return []civil.TimeOfDay{DefaultShiftEnd}
	}
	return ends
}
