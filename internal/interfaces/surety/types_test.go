// Package surety
package surety

import (
	"errors"
	"testing"
)

func TestAmountString(t *testing.T) {
	tests := []struct {
		amount   Amount
		expected string
	}{
		{0, "0"},
		{Units(1), "1"},
		{Units(10), "10"},
		{Units(1) / 2, "0.5"},
		{Units(1) * 3 / 2, "1.5"},
		{1, "0.000000001"},
		{-Units(2), "-2"},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		if result := test.amount.String(); result != test.expected {
			fail++
			t.Errorf("Amount(%d).String() = %q; expected %q", int64(test.amount), result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestAmountString: %d pass, %d fail", pass, fail)
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		status StatusCode
		valid  bool
		late   bool
		name   string
	}{
		{StatusUnknown, true, false, "unknown"},
		{StatusOnTime, true, false, "on_time"},
		{StatusLateAirline, true, true, "late_airline"},
		{StatusLateWeather, true, true, "late_weather"},
		{StatusLateTechnical, true, true, "late_technical"},
		{StatusLateOther, true, true, "late_other"},
		{StatusCode(15), false, false, "status(15)"},
	}
	for _, test := range tests {
		if test.status.IsValid() != test.valid {
			t.Errorf("%d.IsValid() = %v; expected %v", int(test.status), !test.valid, test.valid)
		}
		if test.status.IsLate() != test.late {
			t.Errorf("%d.IsLate() = %v; expected %v", int(test.status), !test.late, test.late)
		}
		if test.status.String() != test.name {
			t.Errorf("%d.String() = %q; expected %q", int(test.status), test.status.String(), test.name)
		}
	}
}

func TestIdentityAndFlightKeyNormalization(t *testing.T) {
	if id := NewIdentity("  Airline-ONE "); id != "airline-one" {
		t.Errorf("NewIdentity = %q; expected %q", id, "airline-one")
	}
	key := NewFlightKey("airline-one", " sa101", 1700000000)
	if key.Designator != "SA101" {
		t.Errorf("NewFlightKey designator = %q; expected SA101", key.Designator)
	}
	if key.String() != "airline-one/SA101@1700000000" {
		t.Errorf("FlightKey.String() = %q", key.String())
	}
}

func TestErrorfKeepsKind(t *testing.T) {
	err := Errorf(ErrNotFound, "flight %s", "x")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Errorf lost the sentinel: %v", err)
	}
	if err.Error() != "not found: flight x" {
		t.Errorf("Errorf message = %q", err.Error())
	}
	if !errors.Is(ErrFlightClosed, ErrUnauthorized) {
		t.Error("ErrFlightClosed must match ErrUnauthorized")
	}
}
