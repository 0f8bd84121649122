package field

import "testing"

func TestStepCombustionNoOpWhenUnburned(t *testing.T) {
	f := testField(t, 10, 10)
	before := f.FuelConsumed()
	f.stepCombustion(0.1)
	if after := f.FuelConsumed(); after != before {
		t.Errorf("fuel consumed changed with no burning cells: before=%v after=%v", before, after)
	}
}

func TestStepCombustionRequiresIgnitionTemperature(t *testing.T) {
	f := testField(t, 10, 10)
	i := f.dims.Index(5, 5)
	f.phi[i] = -1 // burning region but cold
	f.t[i] = f.tAmbient
	f.stepCombustion(0.1)
	if f.fuelFraction[i] != 1.0 {
		t.Errorf("fuel should not combust below ignition temperature: fraction=%v", f.fuelFraction[i])
	}
}

func TestStepCombustionBurnsHotIgnitedCell(t *testing.T) {
	f := testField(t, 10, 10)
	i := f.dims.Index(5, 5)
	f.phi[i] = -1
	f.t[i] = 900
	for n := 0; n < 20; n++ {
		f.stepCombustion(0.5)
	}
	if f.fuelFraction[i] >= 1.0 {
		t.Errorf("expected fuel fraction to decrease, got %v", f.fuelFraction[i])
	}
	if f.oxygen[i] >= 0.21 {
		t.Errorf("expected oxygen fraction to decrease, got %v", f.oxygen[i])
	}
}

func TestStepCombustionQueuesHeatForcing(t *testing.T) {
	f := testField(t, 10, 10)
	i := f.dims.Index(5, 5)
	f.phi[i] = -1
	f.t[i] = 900
	f.stepCombustion(0.5)
	if f.heatForcing[i] <= 0 {
		t.Errorf("expected positive heat forcing after combustion, got %v", f.heatForcing[i])
	}
}

func TestStepCombustionFuelFractionNeverNegative(t *testing.T) {
	f := testField(t, 10, 10)
	i := f.dims.Index(5, 5)
	f.phi[i] = -1
	f.t[i] = 900
	for n := 0; n < 500; n++ {
		f.stepCombustion(1.0)
	}
	if f.fuelFraction[i] < 0 {
		t.Errorf("fuel fraction went negative: %v", f.fuelFraction[i])
	}
}
