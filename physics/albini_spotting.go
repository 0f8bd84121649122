package physics

import "math"

// dragCoefficient and airDensity are the constants Albini's terminal
// velocity balance uses for an ember treated as a falling sphere/disk.
const (
	emberDragCoefficient = 0.4
	emberAirDensity      = 1.225
	emberReferenceTempK  = 293.15
)

// LoftHeight computes the Albini ember loft height in meters from
// fire-line intensity in kW/m, capped by the atmospheric column height
// available (e.g. plume height).
func LoftHeight(intensityKWm, columnCapMeters float64) float64 {
	h := 12.2 * math.Pow(math.Max(intensityKWm, 0), 0.4)
	if columnCapMeters > 0 {
		h = math.Min(h, columnCapMeters)
	}
	return h
}

// WindAtHeight extrapolates 10 m wind speed to height z using a 1/7-power
// -like profile exponent of 0.15, per spec.md.
func WindAtHeight(wind10m, z float64) float64 {
	if z <= 0 {
		return 0
	}
	return wind10m * math.Pow(z/10.0, 0.15)
}

// TerminalVelocity returns the terminal fall velocity (m/s) of an ember of
// the given diameter (m) and density (kg/m^3), from a drag-gravity force
// balance with the Albini-standard drag coefficient.
func TerminalVelocity(diameterM, emberDensity float64) float64 {
	if diameterM <= 0 || emberDensity <= 0 {
		return 0
	}
	// m*g = 0.5*Cd*rho_air*A*v^2, with m = rho_ember*(4/3)*pi*r^3,
	// A = pi*r^2 -> v = sqrt((8*rho_ember*r*g)/(3*Cd*rho_air))
	r := diameterM / 2.0
	num := 8.0 * emberDensity * r * gravityAccel
	den := 3.0 * emberDragCoefficient * emberAirDensity
	if den <= 0 {
		return 0
	}
	return math.Sqrt(num / den)
}

const gravityAccel = 9.80665

// TerrainFactor returns the Albini terrain multiplier on maximum spotting
// distance, bounded below by 0.5.
func TerrainFactor(slopeDegrees float64) float64 {
	f := 1 + slopeDegrees/45.0*0.5
	return math.Max(f, 0.5)
}

// MaxSpottingDistance returns the Albini maximum spotting distance in
// meters.
func MaxSpottingDistance(loftHeight, windAtLoftHeight, terminalVelocity, slopeDegrees float64) float64 {
	if terminalVelocity <= 0 {
		return 0
	}
	return loftHeight * (windAtLoftHeight / terminalVelocity) * TerrainFactor(slopeDegrees)
}

// EmberState is the integration state for a single ember's trajectory.
type EmberState struct {
	X, Y, Z    float64 // position, meters; Z is height above ground
	VX, VY, VZ float64 // velocity, m/s
	TempK      float64 // ember temperature, used for buoyancy
	DiameterM  float64
	DensityKgM3 float64
}

// StepEmberTrajectory integrates one Euler step of the ember equations of
// motion: wind advection with a height-dependent profile, quadratic drag,
// gravity, and hot-ember buoyancy (reduced effective gravity scaled by the
// ratio of the ember's temperature to the reference ambient of 293.15 K).
func StepEmberTrajectory(s EmberState, wind10mX, wind10mY float64, dt float64) EmberState {
	if s.Z < 0 {
		s.Z = 0
	}

	windX := WindAtHeight(wind10mX, s.Z)
	windY := WindAtHeight(wind10mY, s.Z)

	relVX := s.VX - windX
	relVY := s.VY - windY
	relVZ := s.VZ
	speed := math.Sqrt(relVX*relVX + relVY*relVY + relVZ*relVZ)

	r := s.DiameterM / 2.0
	area := math.Pi * r * r
	mass := s.DensityKgM3 * (4.0 / 3.0) * math.Pi * r * r * r
	if mass <= 0 {
		mass = 1e-9
	}

	dragMag := 0.5 * emberDragCoefficient * emberAirDensity * area * speed * speed
	var ax, ay, az float64
	if speed > 1e-9 {
		ax = -dragMag * relVX / speed / mass
		ay = -dragMag * relVY / speed / mass
		az = -dragMag * relVZ / speed / mass
	}

	// Buoyancy reduces effective gravity in proportion to how much hotter
	// than ambient the ember is.
	buoyancyFactor := emberReferenceTempK / math.Max(s.TempK, emberReferenceTempK)
	effectiveGravity := gravityAccel * buoyancyFactor

	az -= effectiveGravity

	next := s
	next.VX += ax * dt
	next.VY += ay * dt
	next.VZ += az * dt
	next.X += next.VX * dt
	next.Y += next.VY * dt
	next.Z += next.VZ * dt
	if next.Z < 0 {
		next.Z = 0
		next.VZ = 0
	}
	return next
}
