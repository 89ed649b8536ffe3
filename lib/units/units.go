/*package units derives a self-consistent gravitational unit system from the
physical scale of a snapshot's position and velocity columns. EXP snapshots
are stored in dimensionless N-body units; once the user says what one unit of
position and one unit of velocity mean physically, the matching mass and time
units follow from requiring G = 1 in simulation units.
*/
package units

import (
	"math"
)

// G is the Newtonian constant of gravitation in SI units (CODATA 2018).
const G = 6.67430e-11

// Handy SI values for the scales astronomers actually use.
const (
	Kpc    = 3.0856775814913673e19 // m
	KmPerS = 1e3                   // m/s
	Msun   = 1.98892e30            // kg
	Myr    = 3.15576e13            // s
)

// System is a gravitational unit system. Each field is the SI value of one
// simulation unit of that quantity.
type System struct {
	Length   float64 // m
	Velocity float64 // m/s
	Mass     float64 // kg
	Time     float64 // s
}

// Derive computes the unit system implied by a length unit and a velocity
// unit, both in SI: mass = v^2 x / G and time = sqrt(x^3 / (G m)).
func Derive(length, velocity float64) *System {
	mass := velocity * velocity * length / G
	time := math.Sqrt(length * length * length / (G * mass))
	return &System{Length: length, Velocity: velocity, Mass: mass, Time: time}
}
