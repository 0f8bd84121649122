package field

import "github.com/blazeforge/ember/simerr"

// Backend is the public field-solver contract; both the CPU and an
// eventual GPU implementation satisfy it (spec.md §4.4: "Variants:
// {CPU, GPU}. Both implement the same public contract; only CPU is
// required."). *Field is the CPU implementation.
type Backend interface {
	Tick(dt, relHumidityPct float64) error
	Dimensions() Dimensions
	IsGPUAccelerated() bool
	ReadTemperature() []float64
	ReadLevelSet() []float64
	ReadROS() []float64
	IgniteAt(x, y, radius float64)
	SetWindField(windX, windY []float64) error
	SetAmbientTemperature(tAmbientK float64)
}

var _ Backend = (*Field)(nil)

// Tick advances every field by dt seconds through the fixed five-step
// operator-split sequence from spec.md §4.4: heat transfer, combustion,
// moisture, level-set, ignition sync. ROS is refreshed before the
// level-set step since the level-set kernel consumes it directly.
func (f *Field) Tick(dt, relHumidityPct float64) error {
	if dt <= 0 {
		return simerr.Newf(simerr.InvalidInput, "tick: dt must be positive, got %v", dt)
	}

	f.stepHeatTransfer(dt)
	f.stepCombustion(dt)
	f.stepMoisture(dt, relHumidityPct)
	f.refreshROS()
	f.applySuppressionHook()

	if cfl := f.MaxCFL(dt); cfl >= 1.0 {
		return simerr.Newf(simerr.DomainLimit, "tick: CFL %.3f >= 1.0 at dt=%v, reduce dt", cfl, dt)
	}

	f.stepLevelSet(dt, f.simTime)
	f.stepIgnitionSync()

	f.simTime += dt
	return nil
}
