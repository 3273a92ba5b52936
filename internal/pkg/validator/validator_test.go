package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
		"123e4567-e89b-42d3-a456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-02d3-a456-426614174000",
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:15", "23:59", "22:00:00"}
	invalid := []string{"24:00", "9", "ab:cd", ""}
	for _, s := range valid {
		if _, ok := IsValidTimeOfDay(s); !ok {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidTimeOfDay(s); ok {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestCoordinates(t *testing.T) {
	if !IsValidLatitude(-6.2) || IsValidLatitude(91) || IsValidLatitude(-90.5) {
		t.Error("latitude bounds are wrong")
	}
	if !IsValidLongitude(106.8) || IsValidLongitude(181) || !IsValidLongitude(-180) {
		t.Error("longitude bounds are wrong")
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Fatal("empty errors must be nil")
	}
	errs.Add("shift_date", "shift_date is required")
	errs.Add("start_time", "start_time must be HH:MM")

	if errs.Err() == nil {
		t.Fatal("expected error")
	}
	m := errs.ToMap()
	if m["shift_date"] != "shift_date is required" || len(m) != 2 {
		t.Errorf("unexpected map %v", m)
	}
	if got := errs.Error(); got != "shift_date: shift_date is required; start_time: start_time must be HH:MM" {
		t.Errorf("Error() = %q", got)
	}
}
