package geofence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var outletCenter = Point{Latitude: -6.200000, Longitude: 106.816666}

// northOf returns the point the given number of meters due north of p.
func northOf(p Point, meters float64) Point {
	return Point{
		Latitude:  p.Latitude + (meters/EarthRadiusMeters)*(180.0/math.Pi),
		Longitude: p.Longitude,
	}
}

func fixAt(p Point) Fix {
	lat, lon := p.Latitude, p.Longitude
	return Fix{Latitude: &lat, Longitude: &lon}
}

func TestDistance_Properties(t *testing.T) {
	a := outletCenter
	b := Point{Latitude: -6.175392, Longitude: 106.827153}

	assert.Equal(t, 0.0, Distance(a, a))
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)

	prev := 0.0
	for _, m := range []float64{1, 10, 50, 100, 1000, 10000} {
		d := Distance(a, northOf(a, m))
		assert.Greater(t, d, prev, "distance must grow with separation")
		assert.InDelta(t, m, d, 1e-6)
		prev = d
	}
}

func TestValidate_Scenario(t *testing.T) {
	policy := Policy{Center: &outletCenter, GPSRequired: true, RadiusMeters: 100}

	inside := Validate(policy, fixAt(northOf(outletCenter, 85)))
	assert.True(t, inside.Valid)
	require.NotNil(t, inside.DistanceMeters)
	assert.Equal(t, 85.0, *inside.DistanceMeters)

	outside := Validate(policy, fixAt(northOf(outletCenter, 150)))
	assert.False(t, outside.Valid)
	require.NotNil(t, outside.DistanceMeters)
	assert.Equal(t, 150.0, *outside.DistanceMeters)
	assert.Contains(t, outside.Message, "150.00")
	assert.Contains(t, outside.Message, "100 m")
}

func TestValidate_RadiusBoundary(t *testing.T) {
	policy := Policy{Center: &outletCenter, RadiusMeters: 100}

	assert.True(t, Validate(policy, fixAt(northOf(outletCenter, 99.999))).Valid)
	assert.False(t, Validate(policy, fixAt(northOf(outletCenter, 101))).Valid)
}

func TestValidate_JustPastRadius(t *testing.T) {
	policy := Policy{Center: &outletCenter, RadiusMeters: 100}

	res := Validate(policy, fixAt(northOf(outletCenter, 100.003)))
	assert.False(t, res.Valid)
	require.NotNil(t, res.DistanceMeters)
	assert.Equal(t, 100.0, *res.DistanceMeters)
}

func TestValidate_DefaultRadius(t *testing.T) {
	policy := Policy{Center: &outletCenter}

	assert.True(t, Validate(policy, fixAt(northOf(outletCenter, 99))).Valid)
	assert.False(t, Validate(policy, fixAt(northOf(outletCenter, 120))).Valid)
}

func TestValidate_DecisionTable(t *testing.T) {
	lat := -6.2
	cases := []struct {
		name      string
		policy    Policy
		fix       Fix
		valid     bool
		message   string
		hasMeters bool
	}{
		{
			name:    "required without fix",
			policy:  Policy{Center: &outletCenter, GPSRequired: true},
			fix:     Fix{},
			valid:   false,
			message: MessageGPSMandatory,
		},
		{
			name:    "required with half a fix",
			policy:  Policy{Center: &outletCenter, GPSRequired: true},
			fix:     Fix{Latitude: &lat},
			valid:   false,
			message: MessageGPSMandatory,
		},
		{
			name:    "required without outlet coordinates",
			policy:  Policy{GPSRequired: true},
			fix:     fixAt(outletCenter),
			valid:   false,
			message: MessageNotConfigured,
		},
		{
			name:    "optional without outlet coordinates",
			policy:  Policy{},
			fix:     fixAt(outletCenter),
			valid:   true,
			message: MessageNotValidated,
		},
		{
			name:    "optional without fix",
			policy:  Policy{Center: &outletCenter},
			fix:     Fix{},
			valid:   true,
			message: MessageNotValidated,
		},
		{
			name:      "optional with fix is still checked",
			policy:    Policy{Center: &outletCenter},
			fix:       fixAt(northOf(outletCenter, 500)),
			valid:     false,
			hasMeters: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Validate(c.policy, c.fix)
			assert.Equal(t, c.valid, got.Valid)
			if c.message != "" {
				assert.Equal(t, c.message, got.Message)
			}
			assert.Equal(t, c.hasMeters, got.DistanceMeters != nil)
		})
	}
}
