package units

import (
	"math"
	"testing"
)

func TestDerive(t *testing.T) {
	usys := Derive(Kpc, KmPerS)

	if usys.Length != Kpc || usys.Velocity != KmPerS {
		t.Errorf("Derive changed its inputs: length = %g, velocity = %g.",
			usys.Length, usys.Velocity)
	}

	wantMass := KmPerS * KmPerS * Kpc / G
	if relErr(usys.Mass, wantMass) > 1e-12 {
		t.Errorf("Expected mass unit %g kg, got %g.", wantMass, usys.Mass)
	}

	// With mass chosen so G = 1, the time unit collapses to x/v.
	if relErr(usys.Time, Kpc/KmPerS) > 1e-12 {
		t.Errorf("Expected time unit %g s, got %g.", Kpc/KmPerS, usys.Time)
	}
	wantTime := math.Sqrt(Kpc * Kpc * Kpc / (G * usys.Mass))
	if relErr(usys.Time, wantTime) > 1e-12 {
		t.Errorf("Expected time unit %g s, got %g.", wantTime, usys.Time)
	}
}

func relErr(x, y float64) float64 {
	return math.Abs(x-y) / math.Abs(y)
}
