package units

// Physical constants shared across the simulation. Defined once and
// referenced by value; no simulation state lives here.
const (
	// GravityAccel is standard gravitational acceleration, m/s^2.
	GravityAccel = 9.80665

	// StefanBoltzmann is the Stefan-Boltzmann constant, W/(m^2*K^4).
	StefanBoltzmann = 5.670374419e-8

	// AirDensity is the density of air at sea level, kg/m^3.
	AirDensity = 1.225

	// AirSpecificHeat is the specific heat of air at constant pressure,
	// kJ/(kg*K).
	AirSpecificHeat = 1.005

	// LatentHeatVaporization is the latent heat of vaporization of water,
	// kJ/kg.
	LatentHeatVaporization = 2260.0

	// StoichiometricOxygenRatio is the mass of O2 consumed per unit mass
	// of dry cellulosic fuel burned.
	StoichiometricOxygenRatio = 1.33

	// AmbientOxygenFraction is the O2 mass fraction of ordinary air.
	AmbientOxygenFraction = 0.21

	// PhiFixedPointScale is the fixed-point scale factor (2^10) used to
	// quantize the level-set field phi for replication.
	PhiFixedPointScale = 1024

	// PhiFixedPointShift is log2(PhiFixedPointScale); used by the integer
	// sqrt helper in replication.
	PhiFixedPointShift = 10
)
